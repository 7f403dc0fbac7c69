package quiz

import (
	"errors"
	"fmt"
)

// ErrInvalidTable is returned when a threshold table fails validation.
var ErrInvalidTable = errors.New("invalid threshold table")

// Band associates a minimum aggregate score with a category.
type Band struct {
	Min      int
	Category Category
}

// Table is an ordered set of bands, ascending by Min.
type Table []Band

// DefaultTable returns the thresholds used by the diagnostic tool.
func DefaultTable() Table {
	return Table{
		{Min: 0, Category: Conservative},
		{Min: 6, Category: Balanced},
		{Min: 9, Category: Aggressive},
		{Min: 12, Category: Speculative},
	}
}

// Validate checks that thresholds are non-decreasing and that categories
// climb strictly from the lowest one, so the bands cover the score range
// without gaps.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: no bands", ErrInvalidTable)
	}
	if t[0].Category != AllCategories()[0] {
		return fmt.Errorf("%w: first band must be %s, got %s",
			ErrInvalidTable, AllCategories()[0], t[0].Category)
	}
	for i := 1; i < len(t); i++ {
		if t[i].Min < t[i-1].Min {
			return fmt.Errorf("%w: band %d threshold %d below previous %d",
				ErrInvalidTable, i, t[i].Min, t[i-1].Min)
		}
		if t[i].Category.Rank() <= t[i-1].Category.Rank() {
			return fmt.Errorf("%w: band %d category %s does not climb from %s",
				ErrInvalidTable, i, t[i].Category, t[i-1].Category)
		}
	}
	return nil
}

// Lowest returns the category of the first band.
func (t Table) Lowest() Category {
	if len(t) == 0 {
		return AllCategories()[0]
	}
	return t[0].Category
}

// Classify maps an aggregate score to a category. Bands are scanned from the
// highest threshold down; the first one the total meets wins. Scores below
// every threshold fall into the lowest category.
func (t Table) Classify(total int) Category {
	for i := len(t) - 1; i >= 0; i-- {
		if total >= t[i].Min {
			return t[i].Category
		}
	}
	return t.Lowest()
}
