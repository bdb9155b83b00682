// Package idgen provides ID generation utilities
package idgen

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// PrefixedGenerator generates UUID-backed IDs with a specific prefix.
// The orchestrator uses one to tag every call's log records with an
// operation id.
type PrefixedGenerator struct {
	prefix string
}

// NewPrefixed creates a new generator with the given prefix
func NewPrefixed(prefix string) *PrefixedGenerator {
	return &PrefixedGenerator{prefix: prefix}
}

// Generate creates a new ID with the format: prefix_uuid
func (g *PrefixedGenerator) Generate() string {
	return fmt.Sprintf("%s_%s", g.prefix, uuid.NewString())
}

// Sequential generates deterministic IDs for tests.
type Sequential struct {
	prefix string
	next   int
}

// NewSequential creates a deterministic generator with the given prefix.
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

// Generate returns prefix_1, prefix_2, ...
func (g *Sequential) Generate() string {
	g.next++
	return fmt.Sprintf("%s_%d", g.prefix, g.next)
}
