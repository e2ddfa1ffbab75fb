// Package auxdata loads the auxiliary side files of a quantized pool:
// pairs, per-object group weights and baseline predictions.
//
// Files are plain tab-separated text, resolved through a pathscheme
// registry so they can live on the local file system or in object
// storage. Inputs compressed with gzip, zstd or lz4 are decompressed
// transparently based on the file extension (.gz, .zst, .lz4).
//
// Formats:
//   - group weights: one float per object, one per line
//   - pairs: winner<TAB>loser[<TAB>weight] per line, weight defaults to 1
//   - baseline: a header row naming the baseline columns, then one row
//     of per-class float values per object
//
// Group weights are per-object rather than per-group because the decoder
// never materializes the group-id to row mapping.
package auxdata

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Pair is one object-preference constraint: the object at WinnerID
// should rank above the object at LoserID.
type Pair struct {
	WinnerID uint32
	LoserID  uint32
	Weight   float32
}

func parseFloat32(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}

func parseIndex(s string, objectCount uint32) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if uint32(v) >= objectCount {
		return 0, fmt.Errorf("object index %d out of range (object count %d)", v, objectCount)
	}
	return uint32(v), nil
}

// scanLines iterates non-empty lines of r, calling fn with the 1-based
// line number and the line's tab-separated fields.
func scanLines(r *bufio.Scanner, fn func(line int, fields []string) error) error {
	line := 0
	for r.Scan() {
		line++
		text := strings.TrimRight(r.Text(), "\r\n")
		if text == "" {
			continue
		}
		if err := fn(line, strings.Split(text, "\t")); err != nil {
			return err
		}
	}
	return r.Err()
}
