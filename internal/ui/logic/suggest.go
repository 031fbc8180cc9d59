package logic

import "docfinder/internal/domain"

// MaxSuggestions is the number of autocomplete rows shown under the search input
const MaxSuggestions = 3

// Suggest returns the first doctors, in fetch order, whose name contains text.
// Other filters never affect suggestions. Empty text hides them.
func Suggest(all []domain.Doctor, text string) []domain.Doctor {
	if text == "" {
		return nil
	}

	var matches []domain.Doctor
	for _, doc := range all {
		if MatchesName(doc, text) {
			matches = append(matches, doc)
			if len(matches) == MaxSuggestions {
				break
			}
		}
	}
	return matches
}
