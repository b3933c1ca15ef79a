package h5writer

import (
	"fmt"

	hdf5 "github.com/jmbenlloch/go-hdf5"
)

// Row types. The HDF5 column names are the Go field names.

type eventRowHDF5 struct {
	event int32
	time  float64
}

type sensorParamsRowHDF5 struct {
	npmt   int32
	pmtwl  int32
	nsipm  int32
	sipmwl int32
}

type hitRowHDF5 struct {
	event int32
	time  float64
	npeak int32
	Xpeak float64
	Ypeak float64
	nsipm int32
	X     float64
	Y     float64
	Xrms  float64
	Yrms  float64
	Z     float64
	Q     float64
	E     float64
}

type krRowHDF5 struct {
	event   int32
	time    float64
	s1_peak int32
	s2_peak int32
	nS1     int32
	nS2     int32
	S1w     float64
	S1h     float64
	S1e     float64
	S1t     float64
	S2w     float64
	S2h     float64
	S2e     float64
	S2q     float64
	S2t     float64
	Nsipm   int32
	DT      float64
	Z       float64
	X       float64
	Y       float64
	R       float64
	Phi     float64
	Xrms    float64
	Yrms    float64
}

type voxelRowHDF5 struct {
	event int32
	X     float64
	Y     float64
	Z     float64
	E     float64
	size  [3]float64
}

func openFile(fname string) (*hdf5.File, error) {
	f, err := hdf5.CreateFile(fname, hdf5.F_ACC_TRUNC)
	if err != nil {
		return nil, &ErrOpenFile{Filename: fname, Err: err}
	}
	return f, nil
}

func createGroup(file *hdf5.File, groupName string) (*hdf5.Group, error) {
	g, err := file.CreateGroup(groupName)
	if err != nil {
		return nil, &ErrCreateGroup{GroupName: groupName, Err: err}
	}
	return g, nil
}

func createTable(group *hdf5.Group, name string, datatype interface{}, compressionLevel int) (*hdf5.Dataset, error) {
	dims := []uint{0}
	unlimitedDims := -1 // H5S_UNLIMITED is -1L
	maxDims := []uint{uint(unlimitedDims)}
	file_space, err := hdf5.CreateSimpleDataspace(dims, maxDims)
	if err != nil {
		return nil, &ErrCreateTable{TableName: name, Err: fmt.Errorf("error creating dataspace: %w", err)}
	}
	defer file_space.Close()

	// create property list
	plist, err := hdf5.NewPropList(hdf5.P_DATASET_CREATE)
	if err != nil {
		return nil, &ErrCreateTable{TableName: name, Err: fmt.Errorf("error creating property list: %w", err)}
	}
	defer plist.Close()

	chunks := []uint{32768}
	if err := plist.SetChunk(chunks); err != nil {
		return nil, &ErrCreateTable{TableName: name, Err: fmt.Errorf("error setting chunk size: %w", err)}
	}

	// Set compression level
	if err := plist.SetDeflate(compressionLevel); err != nil {
		return nil, &ErrCreateTable{TableName: name, Err: fmt.Errorf("error setting compression: %w", err)}
	}

	// create the memory data type
	dtype, err := hdf5.NewDatatypeFromValue(datatype)
	if err != nil {
		return nil, &ErrCreateTable{TableName: name, Err: fmt.Errorf("error creating datatype: %w", err)}
	}

	// create the dataset
	dset, err := group.CreateDatasetWith(name, dtype, file_space, plist)
	if err != nil {
		return nil, &ErrCreateTable{TableName: name, Err: err}
	}
	return dset, nil
}

func writeEntryToTable[T any](dataset *hdf5.Dataset, data T, rowsInTable int) error {
	array := []T{data}
	return writeArrayToTable(dataset, &array, rowsInTable)
}

// writeArrayToTable appends data after the first rowsInTable rows.
func writeArrayToTable[T any](dataset *hdf5.Dataset, data *[]T, rowsInTable int) error {
	length := uint(len(*data))
	if length == 0 {
		return nil
	}
	dims := []uint{length}
	dataspace, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		return fmt.Errorf("error creating memory dataspace: %w", err)
	}
	defer dataspace.Close()

	// extend
	rows := uint(rowsInTable)
	newsize := []uint{rows + length}
	if err := dataset.Resize(newsize); err != nil {
		return fmt.Errorf("error extending table: %w", err)
	}
	filespace := dataset.Space()
	defer filespace.Close()

	start := []uint{rows}
	count := []uint{length}
	if err := filespace.SelectHyperslab(start, nil, count, nil); err != nil {
		return fmt.Errorf("error selecting hyperslab: %w", err)
	}

	if err := dataset.WriteSubset(data, dataspace, filespace); err != nil {
		return fmt.Errorf("error writing rows: %w", err)
	}
	return nil
}
