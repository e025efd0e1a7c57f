package models

// Expense category taxonomy. The set is closed: anything outside it is stored as Misc.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryShopping      = "Shopping"
	CategoryBills         = "Bills"
	CategoryEntertainment = "Entertainment"
	CategoryHealth        = "Health"
	CategoryEducation     = "Education"
	CategoryTravel        = "Travel"
	CategoryMisc          = "Misc"
)

// AllCategories returns all valid category constants in display order
func AllCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryBills,
		CategoryEntertainment,
		CategoryHealth,
		CategoryEducation,
		CategoryTravel,
		CategoryMisc,
	}
}

// IsValidCategory checks if a category string is an exact taxonomy member
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// CircuitBreakerState is the state of a circuit breaker guarding an external service
type CircuitBreakerState int

func (s CircuitBreakerState) String() string {
	switch s {
	case 0:
		return "closed"
	case 1:
		return "open"
	case 2:
		return "half_open"
	default:
		return "unknown"
	}
}
