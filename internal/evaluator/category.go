package evaluator

// Category represents the strength class of a three card hand.
// Higher values beat lower values.
type Category int

const (
	HighCard Category = iota + 1
	Pair
	Flush
	Straight
	ThreeOfAKind
	StraightFlush
)

// NumCategories is the number of hand categories, for table sizing
const NumCategories = int(StraightFlush) + 1

// Categories lists all categories in ascending strength order
var Categories = []Category{HighCard, Pair, Flush, Straight, ThreeOfAKind, StraightFlush}

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// ParseCategory converts a readable category name back to a Category.
// Returns false if the name is not recognised.
func ParseCategory(name string) (Category, bool) {
	for _, c := range Categories {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}
