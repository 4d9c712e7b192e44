package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOutputPath(t *testing.T) {
	cases := map[string]string{
		"foo":           "foo.bin",
		"foo.bin":       "foo.bin",
		"test":          "test.bin",
		"/tmp/data.bin": "/tmp/data.bin",
		"/tmp/data":     "/tmp/data.bin",
		"foo.bin.bak":   "foo.bin.bak",
		"foo.txt":       "foo.txt.bin",
		"bins/foo":      "bins/foo.bin",
		"-data":         "-data.bin",
	}
	for in, expected := range cases {
		assert.Equal(t, expected, NormalizeOutputPath(in), in)
	}
}
