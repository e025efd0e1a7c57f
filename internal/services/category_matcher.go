package services

import (
	"strings"

	"expense-capture/internal/models"
)

// fuzzyThreshold is the minimum similarity for a label to be accepted as a taxonomy member
const fuzzyThreshold = 0.7

type categoryMatcher struct {
	aliases map[string]string
}

func NewCategoryMatcher() CategoryMatcherInterface {
	return &categoryMatcher{
		aliases: initCategoryAliases(),
	}
}

// Match resolves raw in three steps: exact (case-insensitive) member, known alias,
// then Levenshtein similarity against member names and aliases.
func (m *categoryMatcher) Match(raw string) (string, float64) {
	normalized := normalizeForMatching(raw)
	if normalized == "" {
		return models.CategoryMisc, 0.0
	}

	for _, category := range models.AllCategories() {
		if normalizeForMatching(category) == normalized {
			return category, 1.0
		}
	}

	if category, ok := m.aliases[normalized]; ok {
		return category, 0.95
	}

	var bestMatch string
	var bestScore float64

	for _, category := range models.AllCategories() {
		score := calculateSimilarity(normalized, normalizeForMatching(category))
		if score > bestScore && score > fuzzyThreshold {
			bestScore = score
			bestMatch = category
		}
	}

	for alias, category := range m.aliases {
		score := calculateSimilarity(normalized, alias)
		if score > bestScore && score > fuzzyThreshold {
			bestScore = score
			bestMatch = category
		}
	}

	if bestMatch == "" {
		return models.CategoryMisc, 0.0
	}

	return bestMatch, bestScore
}

// initCategoryAliases maps labels seen from clients and models to taxonomy members.
// Keys are in normalizeForMatching form.
func initCategoryAliases() map[string]string {
	return map[string]string{
		"healthcare":     models.CategoryHealth,
		"medical":        models.CategoryHealth,
		"pharmacy":       models.CategoryHealth,
		"fitness":        models.CategoryHealth,
		"groceries":      models.CategoryFood,
		"grocery":        models.CategoryFood,
		"dining":         models.CategoryFood,
		"restaurant":     models.CategoryFood,
		"restaurants":    models.CategoryFood,
		"coffee":         models.CategoryFood,
		"foodanddrink":   models.CategoryFood,
		"transportation": models.CategoryTransport,
		"taxi":           models.CategoryTransport,
		"fuel":           models.CategoryTransport,
		"gas":            models.CategoryTransport,
		"commute":        models.CategoryTransport,
		"clothing":       models.CategoryShopping,
		"clothes":        models.CategoryShopping,
		"electronics":    models.CategoryShopping,
		"utilities":      models.CategoryBills,
		"utility":        models.CategoryBills,
		"rent":           models.CategoryBills,
		"subscription":   models.CategoryBills,
		"subscriptions":  models.CategoryBills,
		"insurance":      models.CategoryBills,
		"phone":          models.CategoryBills,
		"internet":       models.CategoryBills,
		"movies":         models.CategoryEntertainment,
		"games":          models.CategoryEntertainment,
		"gaming":         models.CategoryEntertainment,
		"music":          models.CategoryEntertainment,
		"streaming":      models.CategoryEntertainment,
		"books":          models.CategoryEducation,
		"tuition":        models.CategoryEducation,
		"courses":        models.CategoryEducation,
		"school":         models.CategoryEducation,
		"flights":        models.CategoryTravel,
		"flight":         models.CategoryTravel,
		"hotel":          models.CategoryTravel,
		"hotels":         models.CategoryTravel,
		"vacation":       models.CategoryTravel,
		"other":          models.CategoryMisc,
		"miscellaneous":  models.CategoryMisc,
		"general":        models.CategoryMisc,
		"uncategorized":  models.CategoryMisc,
	}
}

// calculateSimilarity returns 1 - distance/maxLen using the Levenshtein distance
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}

	r1, r2 := []rune(s1), []rune(s2)
	if len(r1) == 0 || len(r2) == 0 {
		return 0.0
	}

	maxLen := len(r1)
	if len(r2) > maxLen {
		maxLen = len(r2)
	}

	return 1.0 - float64(levenshteinDistance(r1, r2))/float64(maxLen)
}

// levenshteinDistance uses two rolling rows instead of the full matrix
func levenshteinDistance(s1, s2 []rune) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

// normalizeForMatching lowercases and strips separators and punctuation
func normalizeForMatching(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	replacer := strings.NewReplacer("-", "", "_", "", " ", "", "'", "", ".", "", "&", "and", "/", "")
	return replacer.Replace(s)
}
