package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileDefaults(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "extra.json"))

	extra, err := f.Load()
	assert.Error(t, err)
	assert.Equal(t, Extra{"alpha": 1.0}, extra)
}

func TestLoad_CorruptFileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	extra, err := NewFile(path).Load()
	assert.Error(t, err)
	assert.Equal(t, DefaultExtra(), extra)
}

func TestLoad_NullDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0644))

	extra, err := NewFile(path).Load()
	assert.Error(t, err)
	assert.Equal(t, DefaultExtra(), extra)
}

func TestLoad_KeepsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"alpha": 0.5, "foo": "bar"}`), 0644))

	extra, err := NewFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 0.5, extra.Alpha())
	assert.Equal(t, "bar", extra["foo"])
}

func TestLoad_AddsMissingAlpha(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"foo": 1}`), 0644))

	extra, err := NewFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 1.0, extra[AlphaKey])
	assert.Equal(t, 1.0, extra["foo"])
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "extra.json")
	f := NewFile(path)

	require.NoError(t, f.Save(Extra{"alpha": 0.3, "foo": "bar", "old": true}))
	require.NoError(t, f.Save(Extra{"alpha": 0.8, "foo": "bar"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"alpha": 0.8, "foo": "bar"}`, string(data))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "extra.json"))
	require.NoError(t, f.Save(Extra{"alpha": 0.25, "nested": map[string]any{"a": "b"}}))

	extra, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, 0.25, extra.Alpha())
	assert.Equal(t, map[string]any{"a": "b"}, extra["nested"])
}

func TestAlpha(t *testing.T) {
	tests := []struct {
		name     string
		extra    Extra
		expected float64
	}{
		{"float", Extra{"alpha": 0.5}, 0.5},
		{"int", Extra{"alpha": 1}, 1.0},
		{"missing", Extra{}, DefaultAlpha},
		{"string", Extra{"alpha": "half"}, DefaultAlpha},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.extra.Alpha())
		})
	}
}

func TestSetAlpha(t *testing.T) {
	extra := Extra{"alpha": 0.5, "foo": "bar"}
	extra.SetAlpha(0.8)
	assert.Equal(t, Extra{"alpha": 0.8, "foo": "bar"}, extra)
}

func TestNewFile_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, NewFile("").Path())
}

func TestSave_DefaultAlphaEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.json")
	require.NoError(t, NewFile(path).Save(DefaultExtra()))

	// encoding/json writes integral floats without a fraction
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":1}`, string(data))
}
