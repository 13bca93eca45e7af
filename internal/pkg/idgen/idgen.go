package idgen

import (
	"sync"

	"github.com/google/uuid"
)

type Provider interface {
	NewID() uuid.UUID
}

// UUIDv7Provider issues time-ordered identifiers, which keeps primary key inserts append-only.
type UUIDv7Provider struct{}

func NewUUIDv7Provider() Provider {
	return &UUIDv7Provider{}
}

func (p *UUIDv7Provider) NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does.
		return uuid.New()
	}
	return id
}

// SequenceProvider returns deterministic ids (…0001, …0002, …) for tests.
type SequenceProvider struct {
	mu     sync.Mutex
	next   uint64
	issued []uuid.UUID
}

func NewSequenceProvider() *SequenceProvider {
	return &SequenceProvider{next: 1}
}

func (p *SequenceProvider) NewID() uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()

	var id uuid.UUID
	n := p.next
	for i := len(id) - 1; i >= 8 && n > 0; i-- {
		id[i] = byte(n)
		n >>= 8
	}
	p.next++
	p.issued = append(p.issued, id)
	return id
}

func (p *SequenceProvider) Issued() []uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]uuid.UUID, len(p.issued))
	copy(out, p.issued)
	return out
}
