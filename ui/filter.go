package ui

// FilterAll is the filter category that shows every card
const FilterAll = "all"

// FilterVisible tells if a card of the given category stays visible for the active filter
func FilterVisible(activeCategory, cardCategory string) bool {
	return activeCategory == FilterAll || activeCategory == "" || activeCategory == cardCategory
}

// FilterCategories returns the distinct categories in first seen order, prefixed by "all"
func FilterCategories(categories []string) []string {
	seen := map[string]bool{FilterAll: true}
	result := []string{FilterAll}

	for _, c := range categories {
		if c == "" || seen[c] {
			continue
		}

		seen[c] = true
		result = append(result, c)
	}

	return result
}
