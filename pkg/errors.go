package dst

import "fmt"

// ErrSensorParams represents a failure loading the sensor description of a run.
type ErrSensorParams struct {
	RunNumber int
	Err       error
}

func (e *ErrSensorParams) Error() string {
	return fmt.Sprintf("error loading sensor params for run %d: %v", e.RunNumber, e.Err)
}

func (e *ErrSensorParams) Unwrap() error {
	return e.Err
}

// ErrWriteRecord represents a failure writing a record to an output stream.
type ErrWriteRecord struct {
	Record string
	Event  int
	Err    error
}

func (e *ErrWriteRecord) Error() string {
	return fmt.Sprintf("error writing %s record for event %d: %v", e.Record, e.Event, e.Err)
}

func (e *ErrWriteRecord) Unwrap() error {
	return e.Err
}
