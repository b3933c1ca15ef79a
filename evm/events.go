package evm

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// UnsetPeakCount is the value of the KrEvent peak counters before the
// pipeline fills them.
const UnsetPeakCount = -1

// Event holds the metadata shared by every per-event record.
type Event struct {
	event int
	time  float64
}

func NewEvent(event int, time float64) Event {
	return Event{event: event, time: time}
}

func (e Event) EventNumber() int { return e.event }
func (e Event) Time() float64    { return e.time }

func (e Event) String() string {
	return fmt.Sprintf("event number = %d, event time = %.2f", e.event, e.time)
}

// HitCollection is the ordered list of hits found in one event.
// Appends are not synchronized; concurrent writers must serialize them.
type HitCollection struct {
	Event
	hits []Hit
}

func NewHitCollection(event int, time float64) *HitCollection {
	return &HitCollection{
		Event: NewEvent(event, time),
		hits:  make([]Hit, 0),
	}
}

// Append adds hits in the given order. Hits are not checked against the
// collection's event.
func (hc *HitCollection) Append(hits ...Hit) {
	hc.hits = append(hc.hits, hits...)
}

// Hits returns a copy of the hits in insertion order.
func (hc *HitCollection) Hits() []Hit {
	return slices.Clone(hc.hits)
}

func (hc *HitCollection) Len() int {
	return len(hc.hits)
}

func (hc *HitCollection) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\nHit list:\n", hc.Event))
	for _, hit := range hc.hits {
		sb.WriteString(hit.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// KrEvent is the per-peak summary of a calibration event. Entries of the
// S1 lists are indexed by S1 peak, every other list by S2 peak.
// NS1 and NS2 start at UnsetPeakCount and are set by whoever fills the lists.
type KrEvent struct {
	Event

	NS1 int
	NS2 int

	S1w []float64
	S1h []float64
	S1e []float64
	S1t []float64

	S2w []float64
	S2h []float64
	S2e []float64
	S2t []float64
	S2q []float64

	Nsipm []int
	DT    []float64
	Z     []float64
	X     []float64
	Y     []float64
	R     []float64
	Phi   []float64
	Xrms  []float64
	Yrms  []float64
}

func NewKrEvent(event int, time float64) *KrEvent {
	return &KrEvent{
		Event: NewEvent(event, time),
		NS1:   UnsetPeakCount,
		NS2:   UnsetPeakCount,
		S1w:   []float64{},
		S1h:   []float64{},
		S1e:   []float64{},
		S1t:   []float64{},
		S2w:   []float64{},
		S2h:   []float64{},
		S2e:   []float64{},
		S2t:   []float64{},
		S2q:   []float64{},
		Nsipm: []int{},
		DT:    []float64{},
		Z:     []float64{},
		X:     []float64{},
		Y:     []float64{},
		R:     []float64{},
		Phi:   []float64{},
		Xrms:  []float64{},
		Yrms:  []float64{},
	}
}

// PeakCounts returns NS1 and NS2 with UnsetPeakCount read as zero.
func (k *KrEvent) PeakCounts() (int, int) {
	return peakCount(k.NS1), peakCount(k.NS2)
}

func peakCount(n int) int {
	if n == UnsetPeakCount {
		return 0
	}
	return n
}

// Validate checks that every list holds one entry per peak.
func (k *KrEvent) Validate() error {
	nS1, nS2 := k.PeakCounts()
	s1Fields := []struct {
		name   string
		length int
	}{
		{"S1w", len(k.S1w)}, {"S1h", len(k.S1h)}, {"S1e", len(k.S1e)}, {"S1t", len(k.S1t)},
	}
	for _, f := range s1Fields {
		if f.length != nS1 {
			return &ErrInconsistentKrEvent{Field: f.name, Count: nS1, Len: f.length}
		}
	}
	s2Fields := []struct {
		name   string
		length int
	}{
		{"S2w", len(k.S2w)}, {"S2h", len(k.S2h)}, {"S2e", len(k.S2e)}, {"S2t", len(k.S2t)},
		{"S2q", len(k.S2q)}, {"Nsipm", len(k.Nsipm)}, {"DT", len(k.DT)}, {"Z", len(k.Z)},
		{"X", len(k.X)}, {"Y", len(k.Y)}, {"R", len(k.R)}, {"Phi", len(k.Phi)},
		{"Xrms", len(k.Xrms)}, {"Yrms", len(k.Yrms)},
	}
	for _, f := range s2Fields {
		if f.length != nS2 {
			return &ErrInconsistentKrEvent{Field: f.name, Count: nS2, Len: f.length}
		}
	}
	return nil
}

func (k *KrEvent) String() string {
	return fmt.Sprintf("%s\nnS1 = %d nS2 = %d\nS1w = %v S1h = %v S1e = %v S1t = %v\n"+
		"S2w = %v S2h = %v S2e = %v S2t = %v S2q = %v\nNsipm = %v DT = %v Z = %v\n"+
		"X = %v Y = %v R = %v Phi = %v Xrms = %v Yrms = %v",
		k.Event, k.NS1, k.NS2, k.S1w, k.S1h, k.S1e, k.S1t,
		k.S2w, k.S2h, k.S2e, k.S2t, k.S2q, k.Nsipm, k.DT, k.Z,
		k.X, k.Y, k.R, k.Phi, k.Xrms, k.Yrms)
}
