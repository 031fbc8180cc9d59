package logic

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docfinder/internal/domain"
)

func scenarioDoctors() []domain.Doctor {
	return []domain.Doctor{
		{Name: "Alice Smith", Specialties: []string{"Dentist"}, ConsultationType: domain.InClinic, Experience: 5, Fees: 300},
		{Name: "Bob Lee", Specialties: []string{"Cardiologist"}, ConsultationType: domain.VideoConsult, Experience: 10, Fees: 200},
	}
}

func fixtureDoctors() []domain.Doctor {
	return []domain.Doctor{
		{Name: "Dr. Amit Rao", Specialties: []string{"Dentist", "ENT"}, ConsultationType: domain.InClinic, Experience: 12, Fees: 500},
		{Name: "Dr. Priya Nair", Specialties: []string{"Dermatologist"}, ConsultationType: domain.VideoConsult, Experience: 8, Fees: 300},
		{Name: "Dr. Ravi Kumar", Specialties: []string{"Cardiologist"}, ConsultationType: domain.InClinic, Experience: 20, Fees: 800},
		{Name: "Dr. Anita Desai", Specialties: []string{"Dentist"}, ConsultationType: domain.VideoConsult, Experience: 8, Fees: 300},
		{Name: "Dr. amar Singh", Specialties: []string{"Homeopath"}, ConsultationType: domain.InClinic, Experience: 3, Fees: 150},
		{Name: "Dr. Meera Iyer", Specialties: []string{"ENT", "Paediatrician"}, ConsultationType: domain.VideoConsult, Experience: 15, Fees: 300},
	}
}

func names(doctors []domain.Doctor) []string {
	out := make([]string, len(doctors))
	for i, d := range doctors {
		out[i] = d.Name
	}
	return out
}

func sampleStates() []domain.FilterState {
	return []domain.FilterState{
		{},
		{SearchText: "dr."},
		{SearchText: "AM"},
		{Consultation: domain.VideoConsult},
		{Consultation: domain.InClinic, Sort: domain.SortFees},
		{Specialties: []string{"Dentist", "ENT"}},
		{Specialties: []string{"Unknown"}},
		{Sort: domain.SortExperience},
		{SearchText: "a", Consultation: domain.VideoConsult, Specialties: []string{"Dentist", "Dermatologist"}, Sort: domain.SortFees},
		{Consultation: "Home Visit"},
		{Sort: "rating"},
	}
}

func TestScenarioConsultationFilter(t *testing.T) {
	got := ApplyFilters(scenarioDoctors(), domain.FilterState{Consultation: domain.VideoConsult})
	assert.Equal(t, []string{"Bob Lee"}, names(got))
}

func TestScenarioSortByFees(t *testing.T) {
	got := ApplyFilters(scenarioDoctors(), domain.FilterState{Sort: domain.SortFees})
	assert.Equal(t, []string{"Bob Lee", "Alice Smith"}, names(got))
}

func TestScenarioSortByExperience(t *testing.T) {
	got := ApplyFilters(scenarioDoctors(), domain.FilterState{Sort: domain.SortExperience})
	assert.Equal(t, []string{"Bob Lee", "Alice Smith"}, names(got))
}

func TestScenarioSpecialtiesAreOred(t *testing.T) {
	got := ApplyFilters(scenarioDoctors(), domain.FilterState{Specialties: []string{"Dentist", "Cardiologist"}})
	assert.Equal(t, []string{"Alice Smith", "Bob Lee"}, names(got))
}

func TestStagesCompose(t *testing.T) {
	state := domain.FilterState{
		SearchText:   "dr. a",
		Consultation: domain.InClinic,
		Specialties:  []string{"Dentist", "Homeopath"},
		Sort:         domain.SortFees,
	}
	got := ApplyFilters(fixtureDoctors(), state)
	assert.Equal(t, []string{"Dr. amar Singh", "Dr. Amit Rao"}, names(got))
}

func TestEmptyResultIsValid(t *testing.T) {
	got := ApplyFilters(fixtureDoctors(), domain.FilterState{SearchText: "nobody"})
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = ApplyFilters(nil, domain.FilterState{Sort: domain.SortFees})
	assert.Empty(t, got)
}

func TestUnsetSortKeepsFetchOrder(t *testing.T) {
	all := fixtureDoctors()
	got := ApplyFilters(all, domain.FilterState{})
	assert.Equal(t, names(all), names(got))
}

func TestApplyFiltersDoesNotMutateInput(t *testing.T) {
	all := fixtureDoctors()
	before := names(all)

	for _, state := range sampleStates() {
		_ = ApplyFilters(all, state)
		require.Equal(t, before, names(all), "input reordered by %+v", state)
	}
}

func TestApplyFiltersIsIdempotent(t *testing.T) {
	all := fixtureDoctors()
	for i, state := range sampleStates() {
		t.Run(fmt.Sprintf("state_%d", i), func(t *testing.T) {
			once := ApplyFilters(all, state)
			twice := ApplyFilters(once, state)
			assert.Equal(t, once, twice)
			assert.LessOrEqual(t, len(once), len(all))
		})
	}
}

func TestSearchMatchesExactlyTheSubstringSet(t *testing.T) {
	all := fixtureDoctors()
	for _, query := range []string{"", "a", "AM", "dr. r", "nair", "zzz", "."} {
		got := ApplyFilters(all, domain.FilterState{SearchText: query})
		inResult := make(map[string]bool)
		for _, d := range got {
			inResult[d.Name] = true
			assert.Contains(t, strings.ToLower(d.Name), strings.ToLower(query))
		}
		for _, d := range all {
			if !inResult[d.Name] {
				assert.NotContains(t, strings.ToLower(d.Name), strings.ToLower(query))
			}
		}
	}
}

func TestSortIsOrderedAndStable(t *testing.T) {
	all := fixtureDoctors()

	byFees := ApplyFilters(all, domain.FilterState{Sort: domain.SortFees})
	for i := 1; i < len(byFees); i++ {
		assert.LessOrEqual(t, byFees[i-1].Fees, byFees[i].Fees)
	}
	// Three doctors share a fee of 300; they keep fetch order.
	assert.Equal(t, []string{"Dr. amar Singh", "Dr. Priya Nair", "Dr. Anita Desai", "Dr. Meera Iyer", "Dr. Amit Rao", "Dr. Ravi Kumar"}, names(byFees))

	byExp := ApplyFilters(all, domain.FilterState{Sort: domain.SortExperience})
	for i := 1; i < len(byExp); i++ {
		assert.GreaterOrEqual(t, byExp[i-1].Experience, byExp[i].Experience)
	}
	assert.Equal(t, []string{"Dr. Ravi Kumar", "Dr. Meera Iyer", "Dr. Amit Rao", "Dr. Priya Nair", "Dr. Anita Desai", "Dr. amar Singh"}, names(byExp))
}

func TestUnknownValuesMatchNothingOrAreIgnored(t *testing.T) {
	all := fixtureDoctors()

	assert.Empty(t, ApplyFilters(all, domain.FilterState{Consultation: "Home Visit"}))
	assert.Empty(t, ApplyFilters(all, domain.FilterState{Specialties: []string{"Astrologer"}}))
	assert.Equal(t, names(all), names(ApplyFilters(all, domain.FilterState{Sort: "rating"})))
}
