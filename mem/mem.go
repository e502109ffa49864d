package mem

import (
	"github.com/nireo/treerb/entries"
	"github.com/nireo/treerb/tree"
	"github.com/nireo/treerb/utils"
	"github.com/willf/bloom"
)

// MEM represents an ordered in-memory key-value table. Entries are kept in a
// red-black tree ordered by key, and a bloom filter in front of the tree
// answers most lookups of missing keys without a descent.
type MEM struct {
	kvs    *tree.Tree[*entries.Entry]
	filter *bloom.BloomFilter
	config *Config

	// removed counts deletions since the filter was last rebuilt. Deleted
	// keys stay set in the filter until then.
	removed int
}

// Config configures a memory table.
type Config struct {
	ExpectedItems     uint         // sizes the bloom filter
	FalsePositiveRate float64      // target rate of the bloom filter
	Tree              *tree.Config // configuration of the underlying tree
}

// DefaultConfiguration returns the configuration used by New.
func DefaultConfiguration() *Config {
	return &Config{
		ExpectedItems:     1024,
		FalsePositiveRate: 0.01,
		Tree:              tree.DefaultConfiguration(),
	}
}

// New creates a new instance of a memory table
func New() *MEM {
	return NewWithConfig(DefaultConfiguration())
}

// NewWithConfig creates a memory table with the given configuration. A zero
// ExpectedItems or a FalsePositiveRate outside (0, 1) is replaced by the
// default value; the caller's config is not modified.
func NewWithConfig(config *Config) *MEM {
	if config == nil {
		config = DefaultConfiguration()
	}

	defaults := DefaultConfiguration()
	checked := *config
	if checked.ExpectedItems == 0 {
		checked.ExpectedItems = defaults.ExpectedItems
	}
	if !(checked.FalsePositiveRate > 0 && checked.FalsePositiveRate < 1) {
		checked.FalsePositiveRate = defaults.FalsePositiveRate
	}
	config = &checked

	return &MEM{
		kvs:    tree.NewWithConfig(entries.CompareKeys, config.Tree),
		filter: bloom.NewWithEstimates(config.ExpectedItems, config.FalsePositiveRate),
		config: config,
	}
}

// Put adds a value to the table, overwriting the previous value of key. An
// error is returned only when the tree cannot allocate a node.
func (m *MEM) Put(key, val string) error {
	if _, err := m.kvs.Upsert(entries.New(key, val)); err != nil {
		return err
	}

	m.filter.Add([]byte(key))
	return nil
}

// Get finds a value in the table and returns a status on if the item is found.
func (m *MEM) Get(key string) (val string, ok bool) {
	if !m.filter.Test([]byte(key)) {
		return "", false
	}

	entry, ok := m.kvs.Get(entries.Probe(key))
	if !ok {
		return "", false
	}

	return entry.Value, true
}

// Delete removes key from the table and reports whether it was present.
func (m *MEM) Delete(key string) bool {
	if !m.kvs.Remove(entries.Probe(key)) {
		return false
	}

	m.removed++
	if m.removed > m.kvs.Size() && uint(m.removed) > m.config.ExpectedItems/2 {
		m.rebuildFilter()
	}

	return true
}

// rebuildFilter drops the deleted keys from the filter.
func (m *MEM) rebuildFilter() {
	debug := m.config.Tree != nil && m.config.Tree.Debug
	utils.PrintDebugWhen(debug, "rebuilding bloom filter: %d removed, %d live", m.removed, m.kvs.Size())

	m.filter.ClearAll()
	m.kvs.Ascend(func(e *entries.Entry) bool {
		m.filter.Add([]byte(e.Key))
		return true
	})
	m.removed = 0
}

// Size returns the amount of elements in the table
func (m *MEM) Size() int {
	return m.kvs.Size()
}

// ConvertIntoEntries returns copies of the key-value pairs ordered by key.
// Changing a returned entry does not affect the table.
func (m *MEM) ConvertIntoEntries() []*entries.Entry {
	entrs := make([]*entries.Entry, 0, m.kvs.Size())
	m.kvs.Ascend(func(e *entries.Entry) bool {
		entrs = append(entrs, &entries.Entry{Key: e.Key, Value: e.Value})
		return true
	})

	return entrs
}

// Range calls fn for every pair with from <= key < to in key order until fn
// returns false. An empty to means no upper bound.
func (m *MEM) Range(from, to string, fn func(key, val string) bool) {
	m.kvs.AscendFrom(entries.Probe(from), func(e *entries.Entry) bool {
		if to != "" && e.Key >= to {
			return false
		}
		return fn(e.Key, e.Value)
	})
}

// Clear drops every pair.
func (m *MEM) Clear() {
	m.kvs.Clear()
	m.filter.ClearAll()
	m.removed = 0
}
