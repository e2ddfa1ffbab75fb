package auxdata

import (
	"bufio"
	"context"
	"fmt"

	"github.com/hupe1980/quantpool/pathscheme"
)

// LoadGroupWeights reads per-object group weights: one float per line,
// exactly objectCount lines.
func LoadGroupWeights(ctx context.Context, registry *pathscheme.Registry, p pathscheme.Path, objectCount uint32) ([]float32, error) {
	rc, err := open(ctx, registry, p)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	weights := make([]float32, 0, objectCount)
	err = scanLines(bufio.NewScanner(rc), func(line int, fields []string) error {
		if len(fields) != 1 {
			return fmt.Errorf("auxdata: group weights %s line %d: expected 1 field, got %d", p, line, len(fields))
		}
		w, err := parseFloat32(fields[0])
		if err != nil {
			return fmt.Errorf("auxdata: group weights %s line %d: %w", p, line, err)
		}
		weights = append(weights, w)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uint32(len(weights)) != objectCount {
		return nil, fmt.Errorf("auxdata: group weights %s: got %d weights, want %d", p, len(weights), objectCount)
	}
	return weights, nil
}
