package evm

import "fmt"

// SensorParams describes the number of sensors and the waveform length of
// each sensor plane. Every value is reachable under two accessor names
// (Npmt and NPMT, ...) that read the same field.
type SensorParams struct {
	npmt   int
	pmtwl  int
	nsipm  int
	sipmwl int
}

func NewSensorParams(npmt, pmtwl, nsipm, sipmwl int) SensorParams {
	return SensorParams{
		npmt:   npmt,
		pmtwl:  pmtwl,
		nsipm:  nsipm,
		sipmwl: sipmwl,
	}
}

func (s SensorParams) Npmt() int   { return s.npmt }
func (s SensorParams) NPMT() int   { return s.npmt }
func (s SensorParams) Pmtwl() int  { return s.pmtwl }
func (s SensorParams) PMTWL() int  { return s.pmtwl }
func (s SensorParams) Nsipm() int  { return s.nsipm }
func (s SensorParams) NSIPM() int  { return s.nsipm }
func (s SensorParams) Sipmwl() int { return s.sipmwl }
func (s SensorParams) SIPMWL() int { return s.sipmwl }

func (s SensorParams) String() string {
	return fmt.Sprintf("(npmt=%d, pmtwl=%d, nsipm=%d, sipmwl=%d)", s.npmt, s.pmtwl, s.nsipm, s.sipmwl)
}
