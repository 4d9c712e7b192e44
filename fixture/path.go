package fixture

import "strings"

const Extension = ".bin"

// Make sure the output path looks like a bin file. Anything that already
// mentions the extension somewhere is left alone.
func NormalizeOutputPath(path string) string {
	if strings.Contains(path, Extension) {
		return path
	}
	return path + Extension
}
