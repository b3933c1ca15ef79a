package main

import (
	"encoding/json"
	"fmt"

	evm "github.com/next-exp/evm_go/evm"
	dst "github.com/next-exp/evm_go/pkg"
)

// hitInput is one hit as produced by the hit finder: the cluster found on
// the tracking plane plus its drift position, energy and peak.
type hitInput struct {
	Npeak int     `json:"npeak"`
	Q     float64 `json:"Q"`
	X     float64 `json:"X"`
	Y     float64 `json:"Y"`
	Xvar  float64 `json:"Xvar"`
	Yvar  float64 `json:"Yvar"`
	Nsipm int     `json:"nsipm"`
	Z     float64 `json:"Z"`
	E     float64 `json:"E"`
	Xpeak float64 `json:"Xpeak"`
	Ypeak float64 `json:"Ypeak"`
}

type eventInput struct {
	Event  int                `json:"event"`
	Time   float64            `json:"time"`
	Hits   []hitInput         `json:"hits"`
	Kr     *dst.KrEventRecord `json:"kr"`
	Voxels []dst.VoxelRecord  `json:"voxels"`
}

func parseEvent(data []byte) (dst.RecoEvent, error) {
	var input eventInput
	if err := json.Unmarshal(data, &input); err != nil {
		return dst.RecoEvent{}, fmt.Errorf("error parsing event: %w", err)
	}
	return input.recoEvent()
}

func (in eventInput) recoEvent() (dst.RecoEvent, error) {
	hc := evm.NewHitCollection(in.Event, in.Time)
	for i, h := range in.Hits {
		cluster, err := evm.NewCluster(h.Q, evm.NewXY(h.X, h.Y), evm.NewXY(h.Xvar, h.Yvar), h.Nsipm)
		if err != nil {
			return dst.RecoEvent{}, fmt.Errorf("event %d, hit %d: %w", in.Event, i, err)
		}
		hc.Append(evm.NewHit(h.Npeak, cluster, h.Z, h.E, evm.NewXY(h.Xpeak, h.Ypeak)))
	}

	event := dst.RecoEvent{Hits: hc}
	if in.Kr != nil {
		record := *in.Kr
		record.Event = in.Event
		record.Time = in.Time
		kr := record.KrEvent()
		if err := kr.Validate(); err != nil {
			return dst.RecoEvent{}, fmt.Errorf("event %d: %w", in.Event, err)
		}
		event.Kr = kr
	}
	if len(in.Voxels) > 0 {
		event.Voxels = make([]evm.Voxel, len(in.Voxels))
		for i, v := range in.Voxels {
			event.Voxels[i] = v.Voxel()
		}
	}
	return event, nil
}
