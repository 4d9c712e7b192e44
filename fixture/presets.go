package fixture

import (
	"errors"
	"fmt"
)

// Each generated value takes up this many bytes in the output
const IntSize = 4

type Preset string

const (
	Small  Preset = "SMALL"
	Medium Preset = "MEDIUM"
	Large  Preset = "LARGE"
)

var ErrUnknownSize = errors.New("unknown size")

// Byte counts for each preset. Every entry is a multiple of IntSize.
var presetBytes = map[Preset]uint64{
	Small:  512 * 1024 * 1024,
	Medium: 1024 * 1024 * 1024,
	Large:  2 * 1024 * 1024 * 1024,
}

// Names of all presets, smallest first
func PresetNames() []string {
	return []string{string(Small), string(Medium), string(Large)}
}

// Get the total file size for the given preset name. Names are case sensitive.
func PresetBytes(name string) (uint64, error) {
	bytes, ok := presetBytes[Preset(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSize, name)
	}
	return bytes, nil
}

// Get the amount of integers to generate for the given preset name
func ResolveCount(name string) (uint64, error) {
	bytes, err := PresetBytes(name)
	if err != nil {
		return 0, err
	}
	return bytes / IntSize, nil
}
