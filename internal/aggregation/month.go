package aggregation

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const monthKeyLayout = "Jan 2006"

// MonthKey identifies a calendar month
type MonthKey struct {
	Year  int
	Month time.Month
}

func KeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// ParseMonthKey parses labels such as "Jan 2026"
func ParseMonthKey(label string) (MonthKey, error) {
	t, err := time.Parse(monthKeyLayout, label)
	if err != nil {
		return MonthKey{}, fmt.Errorf("invalid month label %q: %w", label, err)
	}
	return KeyOf(t), nil
}

// String renders the key as "Jan 2026"
func (k MonthKey) String() string {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC).Format(monthKeyLayout)
}

func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

func (k MonthKey) Prev() MonthKey {
	if k.Month == time.January {
		return MonthKey{Year: k.Year - 1, Month: time.December}
	}
	return MonthKey{Year: k.Year, Month: k.Month - 1}
}

// MonthData is the rollup of one month. Total always equals the sum of Categories
// and only positive category sums are present.
type MonthData struct {
	Total      decimal.Decimal
	Categories map[string]decimal.Decimal
}

func newMonthData(categories map[string]decimal.Decimal) MonthData {
	data := MonthData{
		Total:      decimal.Zero,
		Categories: make(map[string]decimal.Decimal, len(categories)),
	}
	for category, amount := range categories {
		data.Categories[category] = amount
		data.Total = data.Total.Add(amount)
	}
	return data
}

// IsEmpty reports whether no category holds a positive amount
func (m MonthData) IsEmpty() bool {
	return len(m.Categories) == 0
}

// Ranked returns the categories by amount, largest first, ties in name order
func (m MonthData) Ranked() []string {
	categories := make([]string, 0, len(m.Categories))
	for category := range m.Categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		a, b := m.Categories[categories[i]], m.Categories[categories[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return categories[i] < categories[j]
	})
	return categories
}
