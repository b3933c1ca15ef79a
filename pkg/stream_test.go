package dst

import (
	"bytes"
	"testing"

	evm "github.com/next-exp/evm_go/evm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func decodeRecord(t *testing.T, decoder *msgpack.Decoder) (string, map[string]interface{}) {
	t.Helper()
	kind, err := decoder.DecodeString()
	require.NoError(t, err)
	record, err := decoder.DecodeMap()
	require.NoError(t, err)
	return kind, record
}

func TestStreamWriter(t *testing.T) {
	var buf bytes.Buffer
	writer := NewStreamWriter(&buf)

	require.NoError(t, writer.WriteSensorParams(evm.NewSensorParams(12, 48000, 1792, 1200)))
	require.NoError(t, writer.WriteHits(testHitCollection(t)))
	require.NoError(t, writer.WriteKr(testKrEvent()))
	require.NoError(t, writer.WriteVoxels(1, []evm.Voxel{evm.NewVoxel(1, 2, 3, 40, [3]float64{1, 1, 1})}))

	assert.Equal(t, 1, writer.EvtCounter)
	assert.Equal(t, 1, writer.HitCounter)
	assert.Equal(t, 1, writer.KrCounter)
	assert.Equal(t, 1, writer.VoxelCounter)

	decoder := msgpack.NewDecoder(&buf)

	kind, record := decodeRecord(t, decoder)
	assert.Equal(t, SensorParamsKind, kind)
	for _, key := range []string{"npmt", "NPMT", "pmtwl", "PMTWL", "nsipm", "NSIPM", "sipmwl", "SIPMWL"} {
		assert.Contains(t, record, key)
	}
	assert.EqualValues(t, record["npmt"], record["NPMT"])

	kind, record = decodeRecord(t, decoder)
	assert.Equal(t, HitsKind, kind)
	assert.EqualValues(t, 1, record["event"])
	hits, ok := record["hits"].([]interface{})
	require.True(t, ok)
	require.Len(t, hits, 1)
	hit, ok := hits[0].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 2, hit["npeak"])
	assert.EqualValues(t, 2, hit["peak_number"])

	kind, record = decodeRecord(t, decoder)
	assert.Equal(t, KrKind, kind)
	assert.EqualValues(t, 1, record["nS1"])
	assert.Contains(t, record, "S2q")

	kind, record = decodeRecord(t, decoder)
	assert.Equal(t, VoxelsKind, kind)
	assert.EqualValues(t, 1, record["event"])
}

func TestStreamWriterEmptyHitCollection(t *testing.T) {
	var buf bytes.Buffer
	writer := NewStreamWriter(&buf)
	require.NoError(t, writer.WriteHits(evm.NewHitCollection(-1, -1)))

	_, record := decodeRecord(t, msgpack.NewDecoder(&buf))
	hits, ok := record["hits"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, hits)
}
