package store

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator hands out item ids.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator returns random v4 UUIDs. It is the default.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// SequenceGenerator returns Prefix followed by an increasing counter.
// The zero value starts at 1 with no prefix.
type SequenceGenerator struct {
	Prefix string
	next   uint64
}

func (g *SequenceGenerator) NewID() string {
	g.next++
	return g.Prefix + strconv.FormatUint(g.next, 10)
}
