package dst

import (
	"errors"
	"fmt"

	evm "github.com/next-exp/evm_go/evm"
)

// RecoEvent is everything the reconstruction produced for one event.
// Kr and Voxels are optional.
type RecoEvent struct {
	Hits   *evm.HitCollection
	Kr     *evm.KrEvent
	Voxels []evm.Voxel
	Error  bool
}

func (e RecoEvent) EventNumber() int {
	switch {
	case e.Hits != nil:
		return e.Hits.EventNumber()
	case e.Kr != nil:
		return e.Kr.EventNumber()
	default:
		return -1
	}
}

// EventWriter is implemented by every output of the pipeline.
type EventWriter interface {
	WriteSensorParams(sp evm.SensorParams) error
	WriteHits(hc *evm.HitCollection) error
	WriteKr(kr *evm.KrEvent) error
	WriteVoxels(event int, voxels []evm.Voxel) error
}

// ProcessRecoEvent sends the parts of an event enabled in the configuration
// to every writer. Events flagged with Error are not written.
func ProcessRecoEvent(event RecoEvent, configuration Configuration, writers ...EventWriter) error {
	if !configuration.WriteData || event.Error {
		return nil
	}
	var errs []error
	for _, writer := range writers {
		if configuration.WriteHits && event.Hits != nil {
			if err := writer.WriteHits(event.Hits); err != nil {
				errs = append(errs, fmt.Errorf("error writing hits: %w", err))
			}
		}
		if configuration.WriteKr && event.Kr != nil {
			if err := writer.WriteKr(event.Kr); err != nil {
				errs = append(errs, fmt.Errorf("error writing kr event: %w", err))
			}
		}
		if configuration.WriteVoxels && len(event.Voxels) > 0 {
			if err := writer.WriteVoxels(event.EventNumber(), event.Voxels); err != nil {
				errs = append(errs, fmt.Errorf("error writing voxels: %w", err))
			}
		}
	}
	return errors.Join(errs...)
}
