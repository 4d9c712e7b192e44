package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/randomouscrap98/binfixture/fixture"
)

// Report a failure the same way everywhere: what we were working on, what we
// were trying to do, and why it didn't work.
func reportErr(logger *log.Logger, subject string, doing string, err error) {
	logger.Printf("%s - Couldn't %s: %s", subject, doing, err)
}

// Json output for scripts
func PrintJson(w io.Writer, obj interface{}) error {
	rawjson, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("couldn't serialize json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(rawjson))
	return err
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: generator -size <SIZE> -output <OUTPUT FILE PATH>")
	fmt.Fprintf(w, "Valid sizes: %s\n", strings.Join(fixture.PresetNames(), ", "))
}

// Log every time another tenth of the file is done
func progressLogger(logger *log.Logger, path string) fixture.ProgressFunc {
	lastTenth := uint64(0)
	return func(written uint64, total uint64) {
		if total == 0 {
			return
		}
		tenth := written * 10 / total
		if tenth > lastTenth {
			lastTenth = tenth
			logger.Printf("%s: %d%% (%s)", path, tenth*10, humanize.IBytes(written*fixture.IntSize))
		}
	}
}
