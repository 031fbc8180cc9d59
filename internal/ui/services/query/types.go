package query

import (
	"net/url"
)

// Parameter keys of the shareable address
const (
	KeySearch       = "search"
	KeyConsultation = "consultation"
	KeySpecialties  = "specialties"
	KeySort         = "sort"
)

// LinkPrefix starts every shareable link
const LinkPrefix = "docfinder://browse"

// Store is a string-keyed, multi-valued parameter store
type Store interface {
	Get(key string) string
	Values(key string) []string
	Set(key, value string)
	Replace(key string, values []string)
	Del(key string)
	Encode() string
}

// ValuesStore is a Store backed by url.Values
type ValuesStore struct {
	values url.Values
}

// NewValuesStore wraps a copy of values
func NewValuesStore(values url.Values) *ValuesStore {
	copied := make(url.Values, len(values))
	for k, v := range values {
		copied[k] = append([]string(nil), v...)
	}
	return &ValuesStore{values: copied}
}

func (s *ValuesStore) Get(key string) string {
	return s.values.Get(key)
}

func (s *ValuesStore) Values(key string) []string {
	return append([]string(nil), s.values[key]...)
}

func (s *ValuesStore) Set(key, value string) {
	s.values.Set(key, value)
}

// Replace swaps every value under key at once; an empty slice removes the key
func (s *ValuesStore) Replace(key string, values []string) {
	if len(values) == 0 {
		s.values.Del(key)
		return
	}
	s.values[key] = append([]string(nil), values...)
}

func (s *ValuesStore) Del(key string) {
	s.values.Del(key)
}

func (s *ValuesStore) Encode() string {
	return s.values.Encode()
}

// Snapshot returns a copy of the underlying values
func (s *ValuesStore) Snapshot() url.Values {
	return NewValuesStore(s.values).values
}

// Event types
type AddressChangedEvent struct {
	Key     string
	Address string
}
