package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docfinder/internal/domain"
	"docfinder/internal/ui/services/events"
)

func TestNextKeyCycles(t *testing.T) {
	svc := NewService(nil, domain.SortUnset)
	assert.Equal(t, domain.SortFees, svc.NextKey())

	svc.SetKey(domain.SortFees)
	assert.Equal(t, domain.SortExperience, svc.NextKey())

	svc.SetKey(domain.SortExperience)
	assert.Equal(t, domain.SortUnset, svc.NextKey())

	svc.SetKey("rating")
	assert.Equal(t, domain.SortFees, svc.NextKey())
	assert.Equal(t, "unknown", svc.GetKeyString())
}

func TestSetKeyPublishesChanges(t *testing.T) {
	bus := events.NewBus()
	var got []SortKeyChangedEvent
	bus.Subscribe(events.TypeOf(SortKeyChangedEvent{}), func(e interface{}) {
		got = append(got, e.(SortKeyChangedEvent))
	})

	svc := NewService(bus, domain.SortUnset)
	svc.SetKey(domain.SortFees)
	svc.SetKey(domain.SortFees)

	assert.Equal(t, []SortKeyChangedEvent{{OldKey: domain.SortUnset, NewKey: domain.SortFees}}, got)
	assert.Equal(t, "fees", svc.GetKeyString())
}
