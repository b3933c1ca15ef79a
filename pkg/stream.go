package dst

import (
	"fmt"
	"io"

	evm "github.com/next-exp/evm_go/evm"
	"github.com/vmihailenco/msgpack/v5"
)

// StreamWriter writes event model records as a msgpack stream. Each value
// is preceded by its record kind so readers can dispatch on it.
type StreamWriter struct {
	encoder      *msgpack.Encoder
	EvtCounter   int
	HitCounter   int
	KrCounter    int
	VoxelCounter int
}

const (
	SensorParamsKind = "sensor_params"
	HitsKind         = "hits"
	KrKind           = "kr"
	VoxelsKind       = "voxels"
)

func NewStreamWriter(w io.Writer) *StreamWriter {
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json") // Use json tags for MessagePack
	return &StreamWriter{encoder: encoder}
}

func (s *StreamWriter) encode(kind string, event int, record any) error {
	if err := s.encoder.EncodeString(kind); err != nil {
		return &ErrWriteRecord{Record: kind, Event: event, Err: err}
	}
	if err := s.encoder.Encode(record); err != nil {
		return &ErrWriteRecord{Record: kind, Event: event, Err: err}
	}
	if configuration.Verbosity > 2 {
		message := fmt.Sprintf("Wrote %s record for event %d", kind, event)
		logger.Info(message, "stream")
	}
	return nil
}

func (s *StreamWriter) WriteSensorParams(sp evm.SensorParams) error {
	return s.encode(SensorParamsKind, -1, NewSensorParamsRecord(sp))
}

func (s *StreamWriter) WriteHits(hc *evm.HitCollection) error {
	if err := s.encode(HitsKind, hc.EventNumber(), NewHitCollectionRecord(hc)); err != nil {
		return err
	}
	s.EvtCounter++
	s.HitCounter += hc.Len()
	return nil
}

func (s *StreamWriter) WriteKr(kr *evm.KrEvent) error {
	if err := s.encode(KrKind, kr.EventNumber(), NewKrEventRecord(kr)); err != nil {
		return err
	}
	s.KrCounter++
	return nil
}

func (s *StreamWriter) WriteVoxels(event int, voxels []evm.Voxel) error {
	if err := s.encode(VoxelsKind, event, NewVoxelsRecord(event, voxels)); err != nil {
		return err
	}
	s.VoxelCounter += len(voxels)
	return nil
}
