package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifest_RegeneratesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	g := NewGenerator(path, 2048)
	g.Hash = true
	result, err := g.WriteFile()
	require.NoError(t, err)

	manifestPath := filepath.Join(dir, "data.toml")
	require.NoError(t, WriteManifest(manifestPath, NewManifest("SMALL", result)))

	manifest, err := ReadManifest(manifestPath)
	require.NoError(t, err)
	assert.Equal(t, path, manifest.Path)
	assert.Equal(t, "SMALL", manifest.Preset)
	assert.Equal(t, int64(2048), manifest.Count)
	assert.Equal(t, int64(2048*IntSize), manifest.Bytes)
	assert.Equal(t, NativeByteOrder(), manifest.ByteOrder)
	assert.Equal(t, result.MD5, manifest.MD5)
	assert.False(t, manifest.Generated.IsZero())

	// The recorded seed must be enough to rebuild the exact same file
	seed, err := manifest.SeedValue()
	require.NoError(t, err)
	again := filepath.Join(dir, "again.bin")
	_, err = seeded(again, uint64(manifest.Count), seed).WriteFile()
	require.NoError(t, err)
	original, err := os.ReadFile(path)
	require.NoError(t, err)
	rebuilt, err := os.ReadFile(again)
	require.NoError(t, err)
	assert.Equal(t, original, rebuilt)
}

func TestReadManifest_Missing(t *testing.T) {
	_, err := ReadManifest(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
