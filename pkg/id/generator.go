package id

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator produces identifiers from a clock and a random byte source.
// The zero value is not usable; use New.
type Generator struct {
	now    func() time.Time
	random io.Reader

	seqOnce sync.Once
	seqErr  error
	seq     atomic.Uint64

	ulidMu      sync.Mutex
	ulidEntropy *ulid.MonotonicEntropy
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the time source. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithRandom sets the byte source used for UUIDs, URL-safe IDs, ULIDs and
// the composite sequence seed. It must be safe for concurrent reads.
// Defaults to crypto/rand.Reader.
func WithRandom(r io.Reader) Option {
	return func(g *Generator) {
		if r != nil {
			g.random = r
		}
	}
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		now:    time.Now,
		random: rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.ulidEntropy = ulid.Monotonic(g.random, 0)
	return g
}

var std = New()

// Default returns the Generator behind the package-level functions.
func Default() *Generator {
	return std
}

// nextSequence returns the next composite sequence value in [0, 1000).
// The counter starts at a random offset on first use.
func (g *Generator) nextSequence() (uint64, error) {
	g.seqOnce.Do(func() {
		var b [2]byte
		if _, err := io.ReadFull(g.random, b[:]); err != nil {
			g.seqErr = entropyError(err)
			return
		}
		g.seq.Store(uint64(binary.BigEndian.Uint16(b[:])) % sequenceModulus)
	})
	if g.seqErr != nil {
		return 0, g.seqErr
	}
	return (g.seq.Add(1) - 1) % sequenceModulus, nil
}

// Now returns the Generator's current time.
func (g *Generator) Now() time.Time {
	return g.now()
}
