package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestEmptyText(t *testing.T) {
	assert.Empty(t, Suggest(fixtureDoctors(), ""))
	assert.Empty(t, Suggest(nil, ""))
}

func TestSuggestScenario(t *testing.T) {
	got := Suggest(scenarioDoctors(), "bob")
	assert.Equal(t, []string{"Bob Lee"}, names(got))
}

func TestSuggestLimitAndOrder(t *testing.T) {
	got := Suggest(fixtureDoctors(), "dr.")
	assert.Equal(t, []string{"Dr. Amit Rao", "Dr. Priya Nair", "Dr. Ravi Kumar"}, names(got))

	for _, text := range []string{"a", "A", "r", "zzz", "Dr. M"} {
		assert.LessOrEqual(t, len(Suggest(fixtureDoctors(), text)), MaxSuggestions)
	}
}

func TestSuggestIsCaseInsensitive(t *testing.T) {
	got := Suggest(fixtureDoctors(), "AMAR")
	assert.Equal(t, []string{"Dr. amar Singh"}, names(got))
}
