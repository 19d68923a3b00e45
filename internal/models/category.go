package models

// Category is the closed set of transaction kinds the report knows about.
type Category int

const (
	// Unrecognized is any label other than the known ones. It contributes
	// nothing to the totals.
	Unrecognized Category = iota
	Supply
	Buy
)

// Literal labels as they appear in the input log and in the report.
const (
	labelSupply = "supply"
	labelBuy    = "buy"
)

// ParseCategory maps an operation label to its Category. Matching is exact
// and case-sensitive; the caller is expected to have trimmed the label.
func ParseCategory(label string) Category {
	switch label {
	case labelSupply:
		return Supply
	case labelBuy:
		return Buy
	default:
		return Unrecognized
	}
}

// String returns the label used for the category in the input and report.
func (c Category) String() string {
	switch c {
	case Supply:
		return labelSupply
	case Buy:
		return labelBuy
	default:
		return "unrecognized"
	}
}

// Known reports whether the category contributes to the totals.
func (c Category) Known() bool {
	return c == Supply || c == Buy
}
