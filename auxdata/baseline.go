package auxdata

import (
	"bufio"
	"context"
	"fmt"

	"github.com/hupe1980/quantpool/pathscheme"
)

// LoadBaseline reads baseline predictions: a header row naming the
// baseline columns, then one row of float values per object. Multi-class
// pools carry one column per class (validated against classNames);
// otherwise a single column is expected. The result holds one slice of
// objectCount values per column.
func LoadBaseline(ctx context.Context, registry *pathscheme.Registry, p pathscheme.Path, objectCount uint32, classNames []string) ([][]float32, error) {
	rc, err := open(ctx, registry, p)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var (
		baseline   [][]float32
		classCount int
		rows       uint32
	)
	err = scanLines(bufio.NewScanner(rc), func(line int, fields []string) error {
		if baseline == nil {
			// Header row.
			classCount = len(fields)
			if len(classNames) > 1 && classCount != len(classNames) {
				return fmt.Errorf("auxdata: baseline %s: %d columns for %d classes", p, classCount, len(classNames))
			}
			if len(classNames) <= 1 && classCount != 1 {
				return fmt.Errorf("auxdata: baseline %s: expected a single column, got %d", p, classCount)
			}
			baseline = make([][]float32, classCount)
			for i := range baseline {
				baseline[i] = make([]float32, 0, objectCount)
			}
			return nil
		}

		if len(fields) != classCount {
			return fmt.Errorf("auxdata: baseline %s line %d: expected %d fields, got %d", p, line, classCount, len(fields))
		}
		for i, field := range fields {
			v, err := parseFloat32(field)
			if err != nil {
				return fmt.Errorf("auxdata: baseline %s line %d: %w", p, line, err)
			}
			baseline[i] = append(baseline[i], v)
		}
		rows++
		return nil
	})
	if err != nil {
		return nil, err
	}

	if baseline == nil {
		return nil, fmt.Errorf("auxdata: baseline %s: missing header", p)
	}
	if rows != objectCount {
		return nil, fmt.Errorf("auxdata: baseline %s: got %d rows, want %d", p, rows, objectCount)
	}
	return baseline, nil
}
