package remedy

// Category classifies a remedy by the emotional group it addresses,
// following the seven Bach groups plus the emergency formula.
type Category string

const (
	CategoryFear                 Category = "fear"
	CategoryUncertainty          Category = "uncertainty"
	CategoryInsufficientInterest Category = "insufficient_interest"
	CategoryLoneliness           Category = "loneliness"
	CategoryOversensitive        Category = "oversensitive"
	CategoryDespondency          Category = "despondency"
	CategoryOvercare             Category = "overcare"
	CategoryEmergency            Category = "emergency"
)

// Categories lists every known category in a stable order.
var Categories = []Category{
	CategoryFear,
	CategoryUncertainty,
	CategoryInsufficientInterest,
	CategoryLoneliness,
	CategoryOversensitive,
	CategoryDespondency,
	CategoryOvercare,
	CategoryEmergency,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }
