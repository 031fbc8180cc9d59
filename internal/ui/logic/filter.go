package logic

import (
	"strings"

	"docfinder/internal/domain"
)

// MatchesName checks if a doctor's name contains the query, ignoring case
func MatchesName(doc domain.Doctor, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(doc.Name), strings.ToLower(query))
}

// MatchesConsultation checks the consultation type; an unset filter matches everything
func MatchesConsultation(doc domain.Doctor, consultation domain.ConsultationType) bool {
	if consultation == domain.ConsultationUnset {
		return true
	}
	return doc.ConsultationType == consultation
}

// MatchesSpecialties checks if the doctor has at least one of the selected specialties.
// An empty selection matches everything.
func MatchesSpecialties(doc domain.Doctor, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, spec := range selected {
		if doc.HasSpecialty(spec) {
			return true
		}
	}
	return false
}

// ApplyFilters computes the displayed list for a filter state.
// Stages narrow each other: name, consultation type, specialties, then sort.
// The input slice is never modified; the result is always a fresh slice.
func ApplyFilters(all []domain.Doctor, state domain.FilterState) []domain.Doctor {
	result := make([]domain.Doctor, 0, len(all))
	for _, doc := range all {
		if !MatchesName(doc, state.SearchText) {
			continue
		}
		if !MatchesConsultation(doc, state.Consultation) {
			continue
		}
		if !MatchesSpecialties(doc, state.Specialties) {
			continue
		}
		result = append(result, doc)
	}

	SortDoctors(result, state.Sort)
	return result
}
