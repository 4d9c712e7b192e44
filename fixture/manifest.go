package fixture

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml"
)

// A sidecar description of a generated file, so fixtures can be checked or
// regenerated later
type Manifest struct {
	Path      string    `toml:"path"`
	Preset    string    `toml:"preset"`
	Count     int64     `toml:"count"`
	Bytes     int64     `toml:"bytes"`
	ByteOrder string    `toml:"byte_order"`
	Seed      string    `toml:"seed"`
	MD5       string    `toml:"md5,omitempty"`
	Generated time.Time `toml:"generated"`
}

// Build the manifest for a finished run
func NewManifest(preset string, result *Result) Manifest {
	return Manifest{
		Path:      result.Path,
		Preset:    preset,
		Count:     int64(result.Count),
		Bytes:     int64(result.Bytes),
		ByteOrder: NativeByteOrder(),
		Seed:      strconv.FormatUint(result.Seed, 10),
		MD5:       result.MD5,
		Generated: time.Now().UTC().Truncate(time.Second),
	}
}

// Seed as a number, ready to pass back into a Generator
func (m Manifest) SeedValue() (uint64, error) {
	return strconv.ParseUint(m.Seed, 10, 64)
}

func WriteManifest(path string, manifest Manifest) error {
	raw, err := toml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("couldn't encode manifest: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("couldn't write manifest %s: %w", path, err)
	}
	return nil
}

func ReadManifest(path string) (Manifest, error) {
	var manifest Manifest
	raw, err := os.ReadFile(path)
	if err != nil {
		return manifest, fmt.Errorf("couldn't read manifest %s: %w", path, err)
	}
	if err := toml.Unmarshal(raw, &manifest); err != nil {
		return manifest, fmt.Errorf("couldn't parse manifest %s: %w", path, err)
	}
	return manifest, nil
}
