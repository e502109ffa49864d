package entries

import "strings"

// Entry represents a key-value pair held by an in-memory table.
type Entry struct {
	Key   string
	Value string
}

// New returns an entry for the given pair.
func New(key, value string) *Entry {
	return &Entry{Key: key, Value: value}
}

// Probe returns an entry carrying only a key, used for lookups.
func Probe(key string) *Entry {
	return &Entry{Key: key}
}

// CompareKeys orders entries by key only, values play no part. It is the
// comparator the ordered tables are built with.
func CompareKeys(a, b *Entry) int {
	return strings.Compare(a.Key, b.Key)
}

func (e *Entry) String() string {
	return e.Key + "=" + e.Value
}
