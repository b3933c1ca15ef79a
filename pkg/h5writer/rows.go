package h5writer

import (
	evm "github.com/next-exp/evm_go/evm"
)

func eventRow(event evm.Event) eventRowHDF5 {
	return eventRowHDF5{
		event: int32(event.EventNumber()),
		time:  event.Time(),
	}
}

func sensorParamsRow(sp evm.SensorParams) sensorParamsRowHDF5 {
	return sensorParamsRowHDF5{
		npmt:   int32(sp.Npmt()),
		pmtwl:  int32(sp.Pmtwl()),
		nsipm:  int32(sp.Nsipm()),
		sipmwl: int32(sp.Sipmwl()),
	}
}

// hitRows returns one row per hit, in the collection's order.
// The array MUST be allocated at creation, HDF5 writes from its backing array.
func hitRows(hc *evm.HitCollection) []hitRowHDF5 {
	hits := hc.Hits()
	rows := make([]hitRowHDF5, len(hits))
	for i, hit := range hits {
		rows[i] = hitRowHDF5{
			event: int32(hc.EventNumber()),
			time:  hc.Time(),
			npeak: int32(hit.Npeak()),
			Xpeak: hit.Xpeak(),
			Ypeak: hit.Ypeak(),
			nsipm: int32(hit.Nsipm()),
			X:     hit.X(),
			Y:     hit.Y(),
			Xrms:  hit.Xrms(),
			Yrms:  hit.Yrms(),
			Z:     hit.Z(),
			Q:     hit.Q(),
			E:     hit.E(),
		}
	}
	return rows
}

// krRows returns one row per (S1, S2) peak pair. Events without S1 or S2
// peaks produce no rows.
func krRows(kr *evm.KrEvent) ([]krRowHDF5, error) {
	if err := kr.Validate(); err != nil {
		return nil, err
	}
	nS1, nS2 := kr.PeakCounts()
	rows := make([]krRowHDF5, 0, nS1*nS2)
	for i := 0; i < nS1; i++ {
		for j := 0; j < nS2; j++ {
			rows = append(rows, krRowHDF5{
				event:   int32(kr.EventNumber()),
				time:    kr.Time(),
				s1_peak: int32(i),
				s2_peak: int32(j),
				nS1:     int32(kr.NS1),
				nS2:     int32(kr.NS2),
				S1w:     kr.S1w[i],
				S1h:     kr.S1h[i],
				S1e:     kr.S1e[i],
				S1t:     kr.S1t[i],
				S2w:     kr.S2w[j],
				S2h:     kr.S2h[j],
				S2e:     kr.S2e[j],
				S2q:     kr.S2q[j],
				S2t:     kr.S2t[j],
				Nsipm:   int32(kr.Nsipm[j]),
				DT:      kr.DT[j],
				Z:       kr.Z[j],
				X:       kr.X[j],
				Y:       kr.Y[j],
				R:       kr.R[j],
				Phi:     kr.Phi[j],
				Xrms:    kr.Xrms[j],
				Yrms:    kr.Yrms[j],
			})
		}
	}
	return rows, nil
}

func voxelRows(event int, voxels []evm.Voxel) []voxelRowHDF5 {
	rows := make([]voxelRowHDF5, len(voxels))
	for i, v := range voxels {
		rows[i] = voxelRowHDF5{
			event: int32(event),
			X:     v.X(),
			Y:     v.Y(),
			Z:     v.Z(),
			E:     v.E(),
			size:  v.Size(),
		}
	}
	return rows
}
