package tree

import "log"

const (
	// DefaultCapacity is the number of nodes pre-allocated by trees created
	// with the default configuration.
	DefaultCapacity = 16
)

// Config carries the configuration of a tree.
type Config struct {
	// Number of nodes the arena is sized for when the tree is initialized.
	// The arena grows as needed past this limit.
	Capacity int

	// Tracer, if non-nil, is called each time the rebalancing code resolves
	// a red-red violation.
	Tracer func(Event)
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration.
func DefaultConfig() *Config {
	return &Config{
		Capacity: DefaultCapacity,
	}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// Tree instances.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// Capacity is a configuration option setting the number of nodes allocated
// upfront by a tree. Values larger than the number of elements a tree can
// hold are clamped.
//
// Default: 16
func Capacity(n int) Option {
	return option(func(config *Config) { config.Capacity = n })
}

// Trace is a configuration option installing a function called with the
// events emitted while rebalancing the tree.
func Trace(f func(Event)) Option {
	return option(func(config *Config) { config.Tracer = f })
}

// FixupCase identifies the configurations resolved by the rebalancing code
// after an insertion.
type FixupCase uint8

const (
	// RedUncle is resolved by recoloring the parent, uncle and grandparent,
	// then continuing from the grandparent.
	RedUncle FixupCase = iota + 1
	// Straight is resolved by rotating the parent over the grandparent, when
	// the node and its parent are children on the same side.
	Straight
	// ZigZag is resolved by rotating the node over its parent then applying
	// the Straight rotation.
	ZigZag
)

func (c FixupCase) String() string {
	switch c {
	case RedUncle:
		return "red-uncle"
	case Straight:
		return "straight"
	case ZigZag:
		return "zig-zag"
	default:
		return "unknown"
	}
}

// Event is passed to tracers for each resolved violation. Value is the value
// held by the red node whose parent was red.
type Event struct {
	Case  FixupCase
	Value any
}

// LogTracer returns a tracer printing events to logger. The standard logger is
// used if logger is nil.
func LogTracer(logger *log.Logger) func(Event) {
	if logger == nil {
		logger = log.Default()
	}
	return func(e Event) {
		logger.Printf("tree: fixup %s at %v", e.Case, e.Value)
	}
}
