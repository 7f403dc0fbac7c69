package quiz

// Category is a discrete risk label assigned to a completed session.
type Category int

const (
	Conservative Category = iota // C1
	Balanced                     // C3
	Aggressive                   // C5
	Speculative                  // C5+
)

// AllCategories returns all categories in order from lowest to highest.
func AllCategories() []Category {
	return []Category{Conservative, Balanced, Aggressive, Speculative}
}

// Label returns the display label for the category.
func (c Category) Label() string {
	switch c {
	case Conservative:
		return "C1 保守型"
	case Balanced:
		return "C3 稳健型"
	case Aggressive:
		return "C5 进取型"
	case Speculative:
		return "C5+ 激进型"
	default:
		return "未知"
	}
}

// Code returns the short code (C1, C3, ...) used in mail subjects and logs.
func (c Category) Code() string {
	switch c {
	case Conservative:
		return "C1"
	case Balanced:
		return "C3"
	case Aggressive:
		return "C5"
	case Speculative:
		return "C5+"
	default:
		return "?"
	}
}

// Rank orders categories; higher means more risk tolerant.
func (c Category) Rank() int {
	return int(c)
}

func (c Category) String() string {
	return c.Code()
}
