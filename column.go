package quantpool

import "fmt"

// ColumnType is the semantic type of a pool column.
type ColumnType int

const (
	// ColumnUnsupported marks a column this decoder cannot handle.
	ColumnUnsupported ColumnType = iota
	// ColumnQuantizedFeature holds bit-packed quantized feature values.
	ColumnQuantizedFeature
	// ColumnLabel holds per-object target values (float32).
	ColumnLabel
	// ColumnBaseline holds per-object per-class baseline predictions,
	// stored as float64.
	ColumnBaseline
	// ColumnWeight holds per-object weights (float32).
	ColumnWeight
	// ColumnGroupWeight holds per-object group weights (float32).
	ColumnGroupWeight
	// ColumnGroupID holds per-object group identifiers (uint64).
	ColumnGroupID
	// ColumnSubgroupID holds per-object subgroup identifiers (uint32).
	ColumnSubgroupID
	// ColumnDocumentID is the legacy document-id column. Present in old
	// pools; always skipped during decoding.
	ColumnDocumentID
	// ColumnStringIdentifier holds display-only string identifiers.
	// Never decoded into features.
	ColumnStringIdentifier
)

func (c ColumnType) String() string {
	switch c {
	case ColumnQuantizedFeature:
		return "QuantizedFeature"
	case ColumnLabel:
		return "Label"
	case ColumnBaseline:
		return "Baseline"
	case ColumnWeight:
		return "Weight"
	case ColumnGroupWeight:
		return "GroupWeight"
	case ColumnGroupID:
		return "GroupId"
	case ColumnSubgroupID:
		return "SubgroupId"
	case ColumnDocumentID:
		return "DocumentId"
	case ColumnStringIdentifier:
		return "StringIdentifier"
	case ColumnUnsupported:
		return "Unsupported"
	default:
		return fmt.Sprintf("ColumnType(%d)", int(c))
	}
}

// dispatchable reports whether chunks of this column type may reach the
// column dispatcher. String-identifier and legacy document-id columns are
// filtered out before this check; anything outside this set at dispatch
// time is a format error.
func (c ColumnType) dispatchable() bool {
	switch c {
	case ColumnQuantizedFeature, ColumnLabel, ColumnBaseline,
		ColumnWeight, ColumnGroupWeight, ColumnGroupID, ColumnSubgroupID:
		return true
	default:
		return false
	}
}

// ObjectsOrder declares how objects in the pool are ordered.
type ObjectsOrder int

const (
	// OrderUndefined means the ordering is unknown.
	OrderUndefined ObjectsOrder = iota
	// OrderOrdered means objects keep a meaningful source order
	// (e.g. timestamp order).
	OrderOrdered
	// OrderRandomShuffled means objects were shuffled at pool build time.
	OrderRandomShuffled
)

func (o ObjectsOrder) String() string {
	switch o {
	case OrderOrdered:
		return "Ordered"
	case OrderRandomShuffled:
		return "RandomShuffled"
	default:
		return "Undefined"
	}
}
