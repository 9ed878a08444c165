package ident

import (
	"fmt"
	"sync"

	"webinarhub/internal/domain"

	"github.com/google/uuid"
)

type uuidGenerator struct{}

// NewUUIDGenerator returns the production IdentifierGenerator, producing
// random (version 4) UUID strings.
func NewUUIDGenerator() domain.IdentifierGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) Generate() string {
	return uuid.NewString()
}

type sequenceGenerator struct {
	mu sync.Mutex
	n  int
}

// NewSequenceGenerator returns a deterministic IdentifierGenerator yielding
// "id-1", "id-2", ... so test assertions are reproducible.
func NewSequenceGenerator() domain.IdentifierGenerator {
	return &sequenceGenerator{}
}

func (g *sequenceGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}
