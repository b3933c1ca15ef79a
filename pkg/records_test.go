package dst

import (
	"encoding/json"
	"testing"

	evm "github.com/next-exp/evm_go/evm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHitCollection(t *testing.T) *evm.HitCollection {
	t.Helper()
	c, err := evm.NewCluster(75, evm.NewXY(3, 0), evm.NewXY(0.25, 0.49), 5)
	require.NoError(t, err)

	hc := evm.NewHitCollection(1, 0.5)
	hc.Append(evm.NewHit(2, c, 10, 500, evm.NewXY(2.5, 0.5)))
	return hc
}

func testKrEvent() *evm.KrEvent {
	kr := evm.NewKrEvent(4, 2.5)
	kr.NS1 = 1
	kr.NS2 = 1
	kr.S1w = []float64{150}
	kr.S1h = []float64{3.2}
	kr.S1e = []float64{20.1}
	kr.S1t = []float64{100e3}
	kr.S2w = []float64{8e3}
	kr.S2h = []float64{400}
	kr.S2e = []float64{7e3}
	kr.S2t = []float64{500e3}
	kr.S2q = []float64{300}
	kr.Nsipm = []int{12}
	kr.DT = []float64{400}
	kr.Z = []float64{400}
	kr.X = []float64{10}
	kr.Y = []float64{5}
	kr.R = []float64{11.18}
	kr.Phi = []float64{0.46}
	kr.Xrms = []float64{3}
	kr.Yrms = []float64{3.5}
	return kr
}

func TestSensorParamsRecordAliases(t *testing.T) {
	record := NewSensorParamsRecord(evm.NewSensorParams(12, 48000, 1792, 1200))

	data, err := json.Marshal(record)
	require.NoError(t, err)
	var fields map[string]int
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Equal(t, map[string]int{
		"npmt": 12, "NPMT": 12,
		"pmtwl": 48000, "PMTWL": 48000,
		"nsipm": 1792, "NSIPM": 1792,
		"sipmwl": 1200, "SIPMWL": 1200,
	}, fields)
}

func TestHitCollectionRecord(t *testing.T) {
	record := NewHitCollectionRecord(testHitCollection(t))

	assert.Equal(t, 1, record.Event)
	assert.Equal(t, 0.5, record.Time)
	require.Len(t, record.Hits, 1)

	hit := record.Hits[0]
	assert.Equal(t, 2, hit.Npeak)
	assert.Equal(t, 2, hit.PeakNumber)
	assert.Equal(t, 3.0, hit.X)
	assert.Equal(t, 3.0, hit.R)
	assert.Equal(t, 0.0, hit.Phi)
	assert.InDelta(t, 0.5, hit.Xrms, 1e-12)
	assert.Equal(t, 75.0, hit.Q)
	assert.Equal(t, 500.0, hit.E)
}

func TestHitCollectionRecordEmpty(t *testing.T) {
	record := NewHitCollectionRecord(evm.NewHitCollection(-1, -1))
	assert.NotNil(t, record.Hits)
	assert.Empty(t, record.Hits)

	data, err := json.Marshal(record)
	require.NoError(t, err)
	assert.JSONEq(t, `{"event": -1, "time": -1, "hits": []}`, string(data))
}

func TestKrEventRecordRoundTrip(t *testing.T) {
	kr := testKrEvent()
	back := NewKrEventRecord(kr).KrEvent()

	assert.Equal(t, kr, back)
	assert.NoError(t, back.Validate())
}

func TestKrEventRecordMissingLists(t *testing.T) {
	var record KrEventRecord
	require.NoError(t, json.Unmarshal([]byte(`{"event": 8, "time": 1.5, "nS1": -1, "nS2": -1}`), &record))

	kr := record.KrEvent()
	assert.Equal(t, 8, kr.EventNumber())
	assert.Equal(t, -1, kr.NS1)
	assert.NotNil(t, kr.S2q)
	assert.Empty(t, kr.S2q)
	assert.NotNil(t, kr.Nsipm)
}

func TestVoxelsRecord(t *testing.T) {
	voxels := []evm.Voxel{evm.NewVoxel(1, 2, 3, 40, [3]float64{1, 1, 2})}
	record := NewVoxelsRecord(6, voxels)

	assert.Equal(t, 6, record.Event)
	require.Len(t, record.Voxels, 1)
	assert.Equal(t, voxels[0], record.Voxels[0].Voxel())
}
