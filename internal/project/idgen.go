package project

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator hands out identifiers that are unique within a session
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator generates random version 4 UUIDs
type UUIDGenerator struct{}

// NewID returns a new random UUID string
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator generates "<prefix>-1", "<prefix>-2", ... in order.
// Useful where output must be reproducible, such as tests.
type SequenceGenerator struct {
	Prefix string
	n      int
}

// NewSequence returns a SequenceGenerator starting at 1
func NewSequence(prefix string) *SequenceGenerator {
	return &SequenceGenerator{Prefix: prefix}
}

// NewID returns the next id of the sequence
func (g *SequenceGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("%s-%d", g.Prefix, g.n)
}
