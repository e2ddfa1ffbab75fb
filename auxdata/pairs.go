package auxdata

import (
	"bufio"
	"context"
	"fmt"

	"github.com/hupe1980/quantpool/pathscheme"
)

// LoadPairs reads object-preference pairs: winner<TAB>loser[<TAB>weight]
// per line. Both indices must be below objectCount; weight defaults to 1.
func LoadPairs(ctx context.Context, registry *pathscheme.Registry, p pathscheme.Path, objectCount uint32) ([]Pair, error) {
	rc, err := open(ctx, registry, p)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var pairs []Pair
	err = scanLines(bufio.NewScanner(rc), func(line int, fields []string) error {
		if len(fields) != 2 && len(fields) != 3 {
			return fmt.Errorf("auxdata: pairs %s line %d: expected 2 or 3 fields, got %d", p, line, len(fields))
		}

		winner, err := parseIndex(fields[0], objectCount)
		if err != nil {
			return fmt.Errorf("auxdata: pairs %s line %d: winner: %w", p, line, err)
		}
		loser, err := parseIndex(fields[1], objectCount)
		if err != nil {
			return fmt.Errorf("auxdata: pairs %s line %d: loser: %w", p, line, err)
		}

		weight := float32(1)
		if len(fields) == 3 {
			weight, err = parseFloat32(fields[2])
			if err != nil {
				return fmt.Errorf("auxdata: pairs %s line %d: weight: %w", p, line, err)
			}
		}

		pairs = append(pairs, Pair{WinnerID: winner, LoserID: loser, Weight: weight})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pairs, nil
}
