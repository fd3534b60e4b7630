package responder

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/CasterlyGit/Home/models"
)

var (
	// ErrEmptyMessage is returned when the incoming message is empty or
	// whitespace only.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrNilPersona is returned when no persona is supplied.
	ErrNilPersona = errors.New("persona is nil")
)

// Classification is the coarse category assigned to an incoming message.
type Classification string

const (
	Greeting Classification = "greeting"
	General  Classification = "general"
)

// greetingTokens classify a message as a greeting on a plain substring hit.
// Deliberately not word-boundary matching: "this" contains "hi" and counts.
var greetingTokens = []string{"hi", "hello", "hey"}

// Classify buckets a message into Greeting or General.
func Classify(message string) Classification {
	lower := strings.ToLower(message)
	for _, token := range greetingTokens {
		if strings.Contains(lower, token) {
			return Greeting
		}
	}
	return General
}

// Pools holds the candidate replies for one persona, one slice per
// classification.
type Pools struct {
	Greeting []string
	General  []string
}

// Responder picks a canned reply for a (message, persona) pair. Pools are
// fixed at construction; selection is uniform random with no memory, so
// identical inputs may answer differently. That's the point of the demo.
type Responder struct {
	pools      map[string]Pools
	fallbackID string
	delay      time.Duration
	intn       func(n int) int
}

// Option configures a Responder.
type Option func(*Responder)

// WithDelay overrides the simulated think delay.
func WithDelay(d time.Duration) Option {
	return func(r *Responder) { r.delay = d }
}

// WithRand injects a random source, e.g. a seeded one in tests.
func WithRand(intn func(n int) int) Option {
	return func(r *Responder) { r.intn = intn }
}

// New builds a Responder over the given pool table. Personas without an entry
// fall back to fallbackID's pools; that id must be present in the table.
func New(pools map[string]Pools, fallbackID string, opts ...Option) (*Responder, error) {
	if _, ok := pools[fallbackID]; !ok {
		return nil, errors.New("responder: fallback id has no pools")
	}
	for id, p := range pools {
		if len(p.Greeting) == 0 || len(p.General) == 0 {
			return nil, errors.New("responder: empty pool for persona " + id)
		}
	}

	r := &Responder{
		pools:      pools,
		fallbackID: fallbackID,
		delay:      800 * time.Millisecond,
		intn:       rand.Intn,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Respond classifies the message, narrows to the persona's pool and returns
// one reply. The think delay is awaited on a timer so concurrent calls never
// serialize; cancelling ctx aborts the wait.
func (r *Responder) Respond(ctx context.Context, message string, persona *models.Persona) (string, error) {
	if persona == nil {
		return "", ErrNilPersona
	}
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	classification := Classify(message)
	pool := r.pool(persona.ID, classification)

	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	reply := pool[r.intn(len(pool))]

	log.WithFields(log.Fields{
		"persona":        persona.ID,
		"classification": classification,
	}).Debug("selected canned response")

	return reply, nil
}

// pool resolves the candidate slice for a persona and classification,
// falling back to the default persona's pools for unregistered ids.
func (r *Responder) pool(personaID string, c Classification) []string {
	pools, ok := r.pools[personaID]
	if !ok {
		pools = r.pools[r.fallbackID]
	}
	if c == Greeting {
		return pools.Greeting
	}
	return pools.General
}
