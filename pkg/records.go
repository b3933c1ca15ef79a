package dst

import (
	evm "github.com/next-exp/evm_go/evm"
)

// Records are the flat, serializable view of the event model. Keys follow
// the model's field names; dual names (npmt/NPMT, npeak/peak_number) are
// both written with the same value.

type SensorParamsRecord struct {
	Npmt   int `json:"npmt"`
	NPMT   int `json:"NPMT"`
	Pmtwl  int `json:"pmtwl"`
	PMTWL  int `json:"PMTWL"`
	Nsipm  int `json:"nsipm"`
	NSIPM  int `json:"NSIPM"`
	Sipmwl int `json:"sipmwl"`
	SIPMWL int `json:"SIPMWL"`
}

func NewSensorParamsRecord(sp evm.SensorParams) SensorParamsRecord {
	return SensorParamsRecord{
		Npmt:   sp.Npmt(),
		NPMT:   sp.NPMT(),
		Pmtwl:  sp.Pmtwl(),
		PMTWL:  sp.PMTWL(),
		Nsipm:  sp.Nsipm(),
		NSIPM:  sp.NSIPM(),
		Sipmwl: sp.Sipmwl(),
		SIPMWL: sp.SIPMWL(),
	}
}

type HitRecord struct {
	Npeak      int     `json:"npeak"`
	PeakNumber int     `json:"peak_number"`
	Xpeak      float64 `json:"Xpeak"`
	Ypeak      float64 `json:"Ypeak"`
	Nsipm      int     `json:"nsipm"`
	X          float64 `json:"X"`
	Y          float64 `json:"Y"`
	Xrms       float64 `json:"Xrms"`
	Yrms       float64 `json:"Yrms"`
	R          float64 `json:"R"`
	Phi        float64 `json:"Phi"`
	Z          float64 `json:"Z"`
	Q          float64 `json:"Q"`
	E          float64 `json:"E"`
}

func NewHitRecord(h evm.Hit) HitRecord {
	return HitRecord{
		Npeak:      h.Npeak(),
		PeakNumber: h.PeakNumber(),
		Xpeak:      h.Xpeak(),
		Ypeak:      h.Ypeak(),
		Nsipm:      h.Nsipm(),
		X:          h.X(),
		Y:          h.Y(),
		Xrms:       h.Xrms(),
		Yrms:       h.Yrms(),
		R:          h.R(),
		Phi:        h.Phi(),
		Z:          h.Z(),
		Q:          h.Q(),
		E:          h.E(),
	}
}

type HitCollectionRecord struct {
	Event int         `json:"event"`
	Time  float64     `json:"time"`
	Hits  []HitRecord `json:"hits"`
}

func NewHitCollectionRecord(hc *evm.HitCollection) HitCollectionRecord {
	hits := hc.Hits()
	records := make([]HitRecord, len(hits))
	for i, hit := range hits {
		records[i] = NewHitRecord(hit)
	}
	return HitCollectionRecord{
		Event: hc.EventNumber(),
		Time:  hc.Time(),
		Hits:  records,
	}
}

type KrEventRecord struct {
	Event int       `json:"event"`
	Time  float64   `json:"time"`
	NS1   int       `json:"nS1"`
	NS2   int       `json:"nS2"`
	S1w   []float64 `json:"S1w"`
	S1h   []float64 `json:"S1h"`
	S1e   []float64 `json:"S1e"`
	S1t   []float64 `json:"S1t"`
	S2w   []float64 `json:"S2w"`
	S2h   []float64 `json:"S2h"`
	S2e   []float64 `json:"S2e"`
	S2t   []float64 `json:"S2t"`
	S2q   []float64 `json:"S2q"`
	Nsipm []int     `json:"Nsipm"`
	DT    []float64 `json:"DT"`
	Z     []float64 `json:"Z"`
	X     []float64 `json:"X"`
	Y     []float64 `json:"Y"`
	R     []float64 `json:"R"`
	Phi   []float64 `json:"Phi"`
	Xrms  []float64 `json:"Xrms"`
	Yrms  []float64 `json:"Yrms"`
}

func NewKrEventRecord(kr *evm.KrEvent) KrEventRecord {
	return KrEventRecord{
		Event: kr.EventNumber(),
		Time:  kr.Time(),
		NS1:   kr.NS1,
		NS2:   kr.NS2,
		S1w:   kr.S1w,
		S1h:   kr.S1h,
		S1e:   kr.S1e,
		S1t:   kr.S1t,
		S2w:   kr.S2w,
		S2h:   kr.S2h,
		S2e:   kr.S2e,
		S2t:   kr.S2t,
		S2q:   kr.S2q,
		Nsipm: kr.Nsipm,
		DT:    kr.DT,
		Z:     kr.Z,
		X:     kr.X,
		Y:     kr.Y,
		R:     kr.R,
		Phi:   kr.Phi,
		Xrms:  kr.Xrms,
		Yrms:  kr.Yrms,
	}
}

// KrEvent builds the model object back. Missing lists stay empty.
func (r KrEventRecord) KrEvent() *evm.KrEvent {
	kr := evm.NewKrEvent(r.Event, r.Time)
	kr.NS1 = r.NS1
	kr.NS2 = r.NS2
	kr.S1w = append(kr.S1w, r.S1w...)
	kr.S1h = append(kr.S1h, r.S1h...)
	kr.S1e = append(kr.S1e, r.S1e...)
	kr.S1t = append(kr.S1t, r.S1t...)
	kr.S2w = append(kr.S2w, r.S2w...)
	kr.S2h = append(kr.S2h, r.S2h...)
	kr.S2e = append(kr.S2e, r.S2e...)
	kr.S2t = append(kr.S2t, r.S2t...)
	kr.S2q = append(kr.S2q, r.S2q...)
	kr.Nsipm = append(kr.Nsipm, r.Nsipm...)
	kr.DT = append(kr.DT, r.DT...)
	kr.Z = append(kr.Z, r.Z...)
	kr.X = append(kr.X, r.X...)
	kr.Y = append(kr.Y, r.Y...)
	kr.R = append(kr.R, r.R...)
	kr.Phi = append(kr.Phi, r.Phi...)
	kr.Xrms = append(kr.Xrms, r.Xrms...)
	kr.Yrms = append(kr.Yrms, r.Yrms...)
	return kr
}

type VoxelRecord struct {
	X    float64    `json:"X"`
	Y    float64    `json:"Y"`
	Z    float64    `json:"Z"`
	E    float64    `json:"E"`
	Size [3]float64 `json:"size"`
}

func NewVoxelRecord(v evm.Voxel) VoxelRecord {
	return VoxelRecord{X: v.X(), Y: v.Y(), Z: v.Z(), E: v.E(), Size: v.Size()}
}

func (r VoxelRecord) Voxel() evm.Voxel {
	return evm.NewVoxel(r.X, r.Y, r.Z, r.E, r.Size)
}

type VoxelsRecord struct {
	Event  int           `json:"event"`
	Voxels []VoxelRecord `json:"voxels"`
}

func NewVoxelsRecord(event int, voxels []evm.Voxel) VoxelsRecord {
	records := make([]VoxelRecord, len(voxels))
	for i, v := range voxels {
		records[i] = NewVoxelRecord(v)
	}
	return VoxelsRecord{Event: event, Voxels: records}
}
