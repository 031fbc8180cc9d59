package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecialtiesList(t *testing.T) {
	require.Len(t, Specialties, 24)

	seen := make(map[string]bool)
	for _, s := range Specialties {
		assert.False(t, seen[s], "duplicate specialty %q", s)
		seen[s] = true
		assert.True(t, IsKnownSpecialty(s))
	}
	assert.False(t, IsKnownSpecialty("Astrologer"))
}

func TestSpecialtyTestID(t *testing.T) {
	assert.Equal(t, "filter-specialty-General-Physician", SpecialtyTestID("General Physician"))
	assert.Equal(t, "filter-specialty-Dietitian-Nutritionist", SpecialtyTestID("Dietitian/Nutritionist"))
	assert.Equal(t, "filter-specialty-ENT", SpecialtyTestID("ENT"))
}

func TestParseEnums(t *testing.T) {
	c, ok := ParseConsultationType("Video Consult")
	assert.True(t, ok)
	assert.Equal(t, VideoConsult, c)

	c, ok = ParseConsultationType("Home Visit")
	assert.False(t, ok)
	assert.Equal(t, ConsultationType("Home Visit"), c)

	k, ok := ParseSortKey("experience")
	assert.True(t, ok)
	assert.Equal(t, SortExperience, k)

	_, ok = ParseSortKey("rating")
	assert.False(t, ok)
}

func TestFilterStateClone(t *testing.T) {
	s := FilterState{Specialties: []string{"Dentist"}}
	c := s.Clone()
	c.Specialties[0] = "ENT"
	assert.Equal(t, "Dentist", s.Specialties[0])

	assert.True(t, FilterState{}.IsEmpty())
	assert.False(t, s.IsEmpty())
	assert.True(t, s.HasSpecialty("Dentist"))
}

func TestDoctorHelpers(t *testing.T) {
	d := Doctor{Name: "Alice Smith", Specialties: []string{"Dentist", "ENT"}}
	assert.True(t, d.HasSpecialty("ENT"))
	assert.False(t, d.HasSpecialty("Cardiologist"))
	assert.Equal(t, "Dentist, ENT", d.SpecialtyLine())
}
