package query

import (
	"net/url"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docfinder/internal/domain"
	"docfinder/internal/ui/services/events"
)

func newService(t *testing.T, raw string) (*Service, *ValuesStore) {
	t.Helper()
	values, err := ParseAddress(raw)
	require.NoError(t, err)
	store := NewValuesStore(values)
	return NewService(store, nil), store
}

func TestParseAddressForms(t *testing.T) {
	tests := []struct {
		raw  string
		want url.Values
	}{
		{"", url.Values{}},
		{"search=bob", url.Values{"search": {"bob"}}},
		{"?sort=fees", url.Values{"sort": {"fees"}}},
		{"docfinder://browse?consultation=In+Clinic", url.Values{"consultation": {"In Clinic"}}},
		{"https://example.com/?specialties=ENT&specialties=Dentist#top", url.Values{"specialties": {"ENT", "Dentist"}}},
		{"docfinder://browse", url.Values{}},
		{"search=what?&sort=fees", url.Values{"search": {"what?"}, "sort": {"fees"}}},
		{"search=http://x&sort=fees", url.Values{"search": {"http://x"}, "sort": {"fees"}}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseAddress(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseAddress("search=%zz")
	assert.Error(t, err)
}

func TestSeedDefaults(t *testing.T) {
	svc, _ := newService(t, "")
	assert.Equal(t, domain.FilterState{}, svc.Seed())
}

func TestSeedReadsEveryKey(t *testing.T) {
	svc, _ := newService(t, "search=Bob&consultation=Video+Consult&specialties=Dentist&specialties=ENT&sort=experience")
	assert.Equal(t, domain.FilterState{
		SearchText:   "Bob",
		Consultation: domain.VideoConsult,
		Specialties:  []string{"Dentist", "ENT"},
		Sort:         domain.SortExperience,
	}, svc.Seed())
}

func TestSeedToleratesUnknownValues(t *testing.T) {
	svc, _ := newService(t, "consultation=Home+Visit&specialties=Astrologer&sort=rating")
	state := svc.Seed()
	assert.Equal(t, domain.ConsultationType("Home Visit"), state.Consultation)
	assert.Equal(t, []string{"Astrologer"}, state.Specialties)
	assert.Equal(t, domain.SortKey("rating"), state.Sort)
}

func TestEmptySingleValuesRemoveKeys(t *testing.T) {
	svc, store := newService(t, "search=bob&consultation=In+Clinic&sort=fees")

	svc.SetSearch("")
	svc.SetConsultation(domain.ConsultationUnset)
	svc.SetSort(domain.SortUnset)

	assert.Empty(t, store.Snapshot())
	assert.Equal(t, "", svc.Encode())
	assert.Equal(t, LinkPrefix, svc.Link())
}

func TestSpecialtiesReplacedAtomically(t *testing.T) {
	svc, store := newService(t, "specialties=ENT&specialties=Dentist")

	svc.SetSpecialties([]string{"Dentist", "Cardiologist"})
	assert.Equal(t, []string{"Dentist", "Cardiologist"}, store.Values(KeySpecialties))

	svc.SetSpecialties(nil)
	_, present := store.Snapshot()[KeySpecialties]
	assert.False(t, present)
}

func TestLinkAndEncode(t *testing.T) {
	svc, _ := newService(t, "")
	svc.SetSearch("Bob Lee")
	svc.SetSort(domain.SortFees)

	assert.Equal(t, "search=Bob+Lee&sort=fees", svc.Encode())
	assert.Equal(t, "docfinder://browse?search=Bob+Lee&sort=fees", svc.Link())
}

func TestClearRemovesFilterKeysOnly(t *testing.T) {
	svc, store := newService(t, "search=a&consultation=In+Clinic&specialties=ENT&sort=fees&utm=x")
	svc.Clear()
	assert.Equal(t, url.Values{"utm": {"x"}}, store.Snapshot())
}

func TestRoundTrip(t *testing.T) {
	addresses := []string{
		"",
		"search=bob",
		"consultation=Video+Consult&sort=experience",
		"specialties=Dentist&specialties=ENT&specialties=Dietitian%2FNutritionist",
		"search=Dr.+A&consultation=In+Clinic&specialties=Cardiologist&sort=fees",
		"consultation=Home+Visit&sort=rating&specialties=Astrologer",
	}

	for _, raw := range addresses {
		t.Run(raw, func(t *testing.T) {
			seedSvc, original := newService(t, raw)
			state := seedSvc.Seed()

			out := NewValuesStore(nil)
			NewService(out, nil).WriteState(state)

			assert.Equal(t, normalized(original.Snapshot()), normalized(out.Snapshot()))
		})
	}
}

func TestPublishesAddressChanges(t *testing.T) {
	bus := events.NewBus()
	var got []AddressChangedEvent
	bus.Subscribe(events.TypeOf(AddressChangedEvent{}), func(e interface{}) {
		got = append(got, e.(AddressChangedEvent))
	})

	svc := NewService(NewValuesStore(nil), bus)
	svc.SetSearch("bob")
	svc.SetSpecialties([]string{"ENT"})

	require.Len(t, got, 2)
	assert.Equal(t, AddressChangedEvent{Key: KeySearch, Address: "search=bob"}, got[0])
	assert.Equal(t, "search=bob&specialties=ENT", got[1].Address)
}

func normalized(v url.Values) url.Values {
	out := url.Values{}
	for k, vals := range v {
		sorted := append([]string(nil), vals...)
		sort.Strings(sorted)
		out[k] = sorted
	}
	return out
}
