package h5writer

import (
	"errors"
	"fmt"

	hdf5 "github.com/jmbenlloch/go-hdf5"
	evm "github.com/next-exp/evm_go/evm"
)

// Writer stores reconstructed events in an HDF5 DST. Each table grows by
// appending rows; the counters hold the number of rows already written.
type Writer struct {
	File              *hdf5.File
	Filename          string
	RunGroup          *hdf5.Group
	RecoGroup         *hdf5.Group
	DSTGroup          *hdf5.Group
	VoxelsGroup       *hdf5.Group
	EventTable        *hdf5.Dataset
	SensorParamsTable *hdf5.Dataset
	HitsTable         *hdf5.Dataset
	KrTable           *hdf5.Dataset
	VoxelsTable       *hdf5.Dataset
	EvtCounter        int
	HitCounter        int
	KrCounter         int
	VoxelCounter      int
	SensorCounter     int

	eventsWritten map[int]struct{}
}

func NewWriter(filename string, compressionLevel int) (*Writer, error) {
	var err error
	writer := &Writer{
		Filename:      filename,
		eventsWritten: make(map[int]struct{}),
	}
	if writer.File, err = openFile(filename); err != nil {
		return nil, err
	}

	groups := []struct {
		group **hdf5.Group
		name  string
	}{
		{&writer.RunGroup, "Run"},
		{&writer.RecoGroup, "RECO"},
		{&writer.DSTGroup, "DST"},
		{&writer.VoxelsGroup, "Voxels"},
	}
	for _, g := range groups {
		if *g.group, err = createGroup(writer.File, g.name); err != nil {
			return nil, errors.Join(err, writer.Close())
		}
	}

	tables := []struct {
		table    **hdf5.Dataset
		group    *hdf5.Group
		name     string
		datatype interface{}
	}{
		{&writer.EventTable, writer.RunGroup, "events", eventRowHDF5{}},
		{&writer.SensorParamsTable, writer.RunGroup, "sensorParams", sensorParamsRowHDF5{}},
		{&writer.HitsTable, writer.RecoGroup, "Events", hitRowHDF5{}},
		{&writer.KrTable, writer.DSTGroup, "Events", krRowHDF5{}},
		{&writer.VoxelsTable, writer.VoxelsGroup, "Events", voxelRowHDF5{}},
	}
	for _, t := range tables {
		if *t.table, err = createTable(t.group, t.name, t.datatype, compressionLevel); err != nil {
			return nil, errors.Join(err, writer.Close())
		}
	}
	return writer, nil
}

func (w *Writer) WriteSensorParams(sp evm.SensorParams) error {
	if err := writeEntryToTable(w.SensorParamsTable, sensorParamsRow(sp), w.SensorCounter); err != nil {
		return &ErrWriteTable{TableName: "Run/sensorParams", Err: err}
	}
	w.SensorCounter++
	return nil
}

// writeEvent adds the event to Run/events the first time it is seen.
func (w *Writer) writeEvent(event evm.Event) error {
	if _, ok := w.eventsWritten[event.EventNumber()]; ok {
		return nil
	}
	if err := writeEntryToTable(w.EventTable, eventRow(event), w.EvtCounter); err != nil {
		return &ErrWriteTable{TableName: "Run/events", Err: err}
	}
	w.eventsWritten[event.EventNumber()] = struct{}{}
	w.EvtCounter++
	return nil
}

func (w *Writer) WriteHits(hc *evm.HitCollection) error {
	if err := w.writeEvent(hc.Event); err != nil {
		return err
	}
	rows := hitRows(hc)
	if err := writeArrayToTable(w.HitsTable, &rows, w.HitCounter); err != nil {
		return &ErrWriteTable{TableName: "RECO/Events", Err: err}
	}
	w.HitCounter += len(rows)
	return nil
}

func (w *Writer) WriteKr(kr *evm.KrEvent) error {
	rows, err := krRows(kr)
	if err != nil {
		return fmt.Errorf("event %d: %w", kr.EventNumber(), err)
	}
	if err := w.writeEvent(kr.Event); err != nil {
		return err
	}
	if err := writeArrayToTable(w.KrTable, &rows, w.KrCounter); err != nil {
		return &ErrWriteTable{TableName: "DST/Events", Err: err}
	}
	w.KrCounter += len(rows)
	return nil
}

func (w *Writer) WriteVoxels(event int, voxels []evm.Voxel) error {
	rows := voxelRows(event, voxels)
	if err := writeArrayToTable(w.VoxelsTable, &rows, w.VoxelCounter); err != nil {
		return &ErrWriteTable{TableName: "Voxels/Events", Err: err}
	}
	w.VoxelCounter += len(rows)
	return nil
}

func (w *Writer) Close() error {
	var errs []error

	datasets := []struct {
		dset *hdf5.Dataset
		name string
	}{
		{w.EventTable, "event table"},
		{w.SensorParamsTable, "sensor params table"},
		{w.HitsTable, "hits table"},
		{w.KrTable, "kr table"},
		{w.VoxelsTable, "voxels table"},
	}
	for _, d := range datasets {
		if d.dset == nil {
			continue
		}
		if err := d.dset.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing %s: %w", d.name, err))
		}
	}

	groups := []struct {
		group *hdf5.Group
		name  string
	}{
		{w.RunGroup, "run group"},
		{w.RecoGroup, "RECO group"},
		{w.DSTGroup, "DST group"},
		{w.VoxelsGroup, "voxels group"},
	}
	for _, g := range groups {
		if g.group == nil {
			continue
		}
		if err := g.group.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing %s: %w", g.name, err))
		}
	}

	if w.File != nil {
		if err := w.File.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing file: %w", err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
