package logic

import (
	"sort"

	"docfinder/internal/domain"
)

// SortDoctors sorts the slice in place according to the sort key.
// Sorting is stable so equal keys keep their previous relative order;
// an unset or unknown key leaves the order untouched.
func SortDoctors(doctors []domain.Doctor, key domain.SortKey) {
	switch key {
	case domain.SortFees:
		sortByFees(doctors)
	case domain.SortExperience:
		sortByExperience(doctors)
	}
}

// sortByFees sorts ascending by fee
func sortByFees(doctors []domain.Doctor) {
	sort.SliceStable(doctors, func(i, j int) bool {
		return doctors[i].Fees < doctors[j].Fees
	})
}

// sortByExperience sorts descending by years of experience
func sortByExperience(doctors []domain.Doctor) {
	sort.SliceStable(doctors, func(i, j int) bool {
		return doctors[i].Experience > doctors[j].Experience
	})
}
