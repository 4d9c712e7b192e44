package fixture

import (
	"crypto/md5"
	crand "crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"math/rand/v2"
	"os"
)

// Size of each write; also how often progress is reported
const ChunkSize = 1024 * 1024

// Second PCG word, mixed with the seed so a single number is enough to
// reproduce a file
const seedStream = 0x9e3779b97f4a7c15

type GenerationRequest struct {
	Path  string
	Count uint64
}

// Called after every flushed chunk with the amount of integers written so far
type ProgressFunc func(written uint64, total uint64)

type Generator struct {
	GenerationRequest
	// Fixed seed for reproducible output. When nil, a fresh seed is pulled
	// from the system entropy source.
	Seed     *uint64
	Hash     bool
	Progress ProgressFunc
}

// Everything we know about a finished generation run
type Result struct {
	Path  string
	Count uint64
	Bytes uint64
	Seed  uint64
	MD5   string `json:",omitempty"`
}

func NewGenerator(path string, count uint64) *Generator {
	return &Generator{
		GenerationRequest: GenerationRequest{Path: path, Count: count},
	}
}

// Pull a seed from the OS. Reproducibility isn't a concern, we just want
// every run to be different
func RandomSeed() (uint64, error) {
	var raw [8]byte
	if _, err := crand.Read(raw[:]); err != nil {
		return 0, fmt.Errorf("couldn't read entropy: %w", err)
	}
	return binary.LittleEndian.Uint64(raw[:]), nil
}

func newSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^seedStream))
}

// Produce the sequence of values a given seed generates. Mostly useful for
// checking files after the fact.
func SeededValues(seed uint64, count int) []int32 {
	r := newSource(seed)
	result := make([]int32, count)
	for i := range result {
		result[i] = int32(r.Uint32())
	}
	return result
}

func (g *Generator) resolveSeed() (uint64, error) {
	if g.Seed != nil {
		return *g.Seed, nil
	}
	return RandomSeed()
}

// Write Count random integers to the given writer in native byte order, one
// ChunkSize buffer at a time. The writer is not closed.
func (g *Generator) Generate(w io.Writer) (*Result, error) {
	seed, err := g.resolveSeed()
	if err != nil {
		return nil, err
	}
	result := &Result{Path: g.Path, Seed: seed}

	var hasher hash.Hash
	if g.Hash {
		hasher = md5.New()
		w = io.MultiWriter(w, hasher)
	}

	r := newSource(seed)
	chunk := make([]byte, ChunkSize)
	perChunk := uint64(ChunkSize / IntSize)

	for result.Count < g.Count {
		n := min(perChunk, g.Count-result.Count)
		for i := uint64(0); i < n; i++ {
			binary.NativeEndian.PutUint32(chunk[i*IntSize:], r.Uint32())
		}
		written, err := w.Write(chunk[:n*IntSize])
		result.Bytes += uint64(written)
		if err != nil {
			return result, fmt.Errorf("couldn't write values: %w", err)
		}
		result.Count += n
		if g.Progress != nil {
			g.Progress(result.Count, g.Count)
		}
	}

	if hasher != nil {
		result.MD5 = hex.EncodeToString(hasher.Sum(nil))
	}
	return result, nil
}

// Create (or truncate) the output file and fill it. The file is always closed
// before returning; a failed close counts as a failed run.
func (g *Generator) WriteFile() (*Result, error) {
	file, err := os.Create(g.Path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open %s for writing: %w", g.Path, err)
	}
	result, err := g.Generate(file)
	if cerr := file.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("couldn't close %s: %w", g.Path, cerr)
	}
	return result, err
}

// Name of the host byte order, as written into generated files
func NativeByteOrder() string {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)
	if probe[0] == 1 {
		return "little"
	}
	return "big"
}
