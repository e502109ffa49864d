package tree

// Config holds the tunables of a tree.
type Config struct {
	// InitialCapacity is the number of node slots reserved up front.
	InitialCapacity int `toml:"initial_capacity"`

	// MaxNodes bounds the number of live nodes. Zero means no bound.
	MaxNodes int `toml:"max_nodes"`

	// CheckInvariants runs Verify after every mutation and panics on a
	// violation. Meant for tests and debugging, it makes every write O(n).
	CheckInvariants bool `toml:"check_invariants"`

	// Debug turns on debug logging for this tree only. utils.SetDebuggingMode
	// switches it on for every tree at once.
	Debug bool `toml:"debug"`
}

// DefaultConfiguration returns the configuration used by New.
func DefaultConfiguration() *Config {
	return &Config{
		InitialCapacity: 16,
		MaxNodes:        0,
		CheckInvariants: false,
		Debug:           false,
	}
}
