package bvec

import "fmt"

const (
	// DefaultBranching is the max fanout of inner nodes if none is configured.
	DefaultBranching = 16
	// DefaultLeafCapacity is the max number of values per leaf if none is configured.
	DefaultLeafCapacity = 32

	minBranching    = 3
	minLeafCapacity = 2
	maxCapacity     = 4096
)

// Config configures the node capacities of a Vec. Both capacities are fixed
// for the lifetime of a Vec.
//
// Larger capacities make the tree shallower, at the cost of more values or
// children to shift on every edit within a node.
type Config struct {
	// Branching is the maximum number of children of an inner node (B).
	// Zero selects DefaultBranching.
	Branching int
	// LeafCapacity is the maximum number of values held by a leaf (C).
	// Zero selects DefaultLeafCapacity.
	LeafCapacity int
}

func (cfg Config) normalized() Config {
	if cfg.Branching == 0 {
		cfg.Branching = DefaultBranching
	}
	if cfg.LeafCapacity == 0 {
		cfg.LeafCapacity = DefaultLeafCapacity
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Branching < minBranching || cfg.Branching > maxCapacity {
		return fmt.Errorf("%w: branching must be in [%d, %d], is %d",
			ErrInvalidConfig, minBranching, maxCapacity, cfg.Branching)
	}
	if cfg.LeafCapacity < minLeafCapacity || cfg.LeafCapacity > maxCapacity {
		return fmt.Errorf("%w: leaf capacity must be in [%d, %d], is %d",
			ErrInvalidConfig, minLeafCapacity, maxCapacity, cfg.LeafCapacity)
	}
	return nil
}

// minChildren is the lower occupancy bound of non-root inner nodes, ⌈B/2⌉.
func (cfg Config) minChildren() int {
	return (cfg.Branching-1)/2 + 1
}

// minLeafLen is the lower occupancy bound of non-root leaves, ⌈C/2⌉.
func (cfg Config) minLeafLen() int {
	return (cfg.LeafCapacity-1)/2 + 1
}
