// Package idgen provides the id generators used for decks and cards.
//
// The store takes a Generator so tests can supply deterministic ids.
package idgen

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Generator produces unique opaque ids
type Generator interface {
	Generate() string
}

// UUIDGenerator generates random (version 4) UUIDs.
//
// Thread-safety: UUIDGenerator is stateless and safe for concurrent use.
type UUIDGenerator struct{}

// Generate returns a new hyphenated UUID string
func (UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// NanoIDGenerator generates 21-character URL-safe nano ids.
type NanoIDGenerator struct{}

// Generate returns a new nano id.
// Falls back to a UUID if the random source fails.
func (NanoIDGenerator) Generate() string {
	id, err := gonanoid.New()
	if err != nil {
		return uuid.NewString()
	}
	return id
}

// ForFormat returns the generator for a configured id format ("uuid" or "nanoid")
func ForFormat(format string) Generator {
	if format == "nanoid" {
		return NanoIDGenerator{}
	}
	return UUIDGenerator{}
}

// FixedGenerator returns predetermined ids for testing.
//
// Thread-safety: FixedGenerator is safe for concurrent use via internal mutex.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that returns ids in order.
//
// Panics once all ids have been consumed.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next predetermined id
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedGenerator: all ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}

// SequenceGenerator returns prefix-1, prefix-2, ... without limit.
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequenceGenerator creates a sequence generator with the given prefix
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix, next: 1}
}

// Generate returns the next id in the sequence
func (g *SequenceGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := fmt.Sprintf("%s-%d", g.prefix, g.next)
	g.next++
	return id
}
