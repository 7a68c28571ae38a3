package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIntn int

func (f fixedIntn) Intn(n int) int { return int(f) % n }

func TestLoadPoolEmbedded(t *testing.T) {
	pool, err := LoadPool("")
	require.NoError(t, err)
	assert.Equal(t, 4, pool.LayerCount())
	assert.Equal(t, 2, pool.ClusterCount())

	id, ok := pool.LayerID("vent")
	require.True(t, ok)
	tmpl, ok := pool.Layer(id)
	require.True(t, ok)
	assert.Equal(t, "Thermal Vent", tmpl.Name)
	assert.Equal(t, Color{R: 0xff, G: 0x9a, B: 0x6b, A: 0xff}, tmpl.Tint)
}

func TestNewPoolIssuesDenseIDs(t *testing.T) {
	pool, err := NewPool(
		[]LayerTemplate{{Key: "a", Radius: 1}, {Key: "b", Radius: 1}},
		[]ClusterTemplate{{Key: "c", Value: 1, PickupRadius: 1}},
	)
	require.NoError(t, err)

	for i, l := range pool.Layers() {
		assert.Equal(t, LayerTemplateID(i+1), l.ID)
	}
	_, ok := pool.Layer(0)
	assert.False(t, ok)
	_, ok = pool.Layer(3)
	assert.False(t, ok)
	c, ok := pool.Cluster(1)
	require.True(t, ok)
	assert.Equal(t, "c", c.Key)
}

func TestNewPoolRejectsDuplicates(t *testing.T) {
	_, err := NewPool([]LayerTemplate{{Key: "a", Radius: 1}, {Key: "a", Radius: 1}}, nil)
	assert.Error(t, err)

	_, err = NewPool(nil, []ClusterTemplate{{Key: "c", Value: 1, PickupRadius: 1}, {Key: "c", Value: 1, PickupRadius: 1}})
	assert.Error(t, err)
}

func TestNewPoolRejectsBadValues(t *testing.T) {
	_, err := NewPool([]LayerTemplate{{Key: "a"}}, nil)
	assert.Error(t, err)

	_, err = NewPool(nil, []ClusterTemplate{{Key: "c", Value: 0, PickupRadius: 1}})
	assert.Error(t, err)
}

func TestRandomPickFromEmptyPool(t *testing.T) {
	pool, err := NewPool(nil, nil)
	require.NoError(t, err)

	_, err = pool.RandomLayer(fixedIntn(0))
	assert.ErrorIs(t, err, ErrEmptyTemplatePool)
	_, err = pool.RandomCluster(fixedIntn(0))
	assert.ErrorIs(t, err, ErrEmptyTemplatePool)
}

func TestRandomLayerUsesSource(t *testing.T) {
	pool, err := LoadPool("")
	require.NoError(t, err)

	got, err := pool.RandomLayer(fixedIntn(2))
	require.NoError(t, err)
	assert.Equal(t, LayerTemplateID(3), got.ID)
}

func TestLoadPoolFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.yaml")
	data := []byte(`
layers:
  - key: only
    name: Only
    tint: "#10203040"
    radius: 10
clusters:
  - key: one
    value: 3
    pickup_radius: 2
    color: "#ffffff"
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	pool, err := LoadPool(path)
	require.NoError(t, err)
	l, _ := pool.Layer(1)
	assert.Equal(t, Color{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, l.Tint)
	assert.Equal(t, 1.0, l.NoiseScale, "missing noise scale defaults to 1")
	c, _ := pool.Cluster(1)
	assert.Equal(t, 3, c.Value)
}

func TestLoadPoolBadColor(t *testing.T) {
	_, err := ParsePool([]byte("layers:\n  - key: x\n    tint: \"#zz\"\n    radius: 1\n"))
	assert.Error(t, err)
}

func TestColorRoundTrip(t *testing.T) {
	c, err := ParseHexColor("#7fb2ff")
	require.NoError(t, err)
	out, err := c.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "#7fb2ff", out)
}
