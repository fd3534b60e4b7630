package navigation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/CasterlyGit/Home/models"
)

// Stage is the current camera focus level.
type Stage string

const (
	StageSolar       Stage = "solar"
	StagePlanetFocus Stage = "planet"
	StageTraitFocus  Stage = "trait"
)

// ErrInvalidTransition is returned when a navigation event is not legal from
// the current stage, or when a trait does not belong to the focused persona.
// These are UI-contract violations and fail loudly; the machine never
// silently substitutes a target.
var ErrInvalidTransition = errors.New("invalid navigation transition")

// Snapshot is the published state after every transition. The rendering
// layer animates its camera toward TargetPosition; the machine itself does
// no interpolation.
type Snapshot struct {
	SessionID      string          `json:"sessionId"`
	Stage          Stage           `json:"stage"`
	Persona        *models.Persona `json:"persona,omitempty"`
	Trait          *models.Trait   `json:"trait,omitempty"`
	TargetPosition models.Vector3  `json:"targetPosition"`
}

// Observer receives a snapshot after each successful transition.
type Observer func(Snapshot)

// Machine tracks one UI session's view stage. It is single-owner by nature;
// sessions never share a machine. The mutex only guards against a sloppy
// caller driving one session from two goroutines.
type Machine struct {
	mu        sync.Mutex
	sessionID string
	stage     Stage
	persona   *models.Persona
	trait     *models.Trait
	target    models.Vector3
	observers []Observer
}

// NewMachine starts a machine at the solar stage aimed at the origin.
func NewMachine(sessionID string, observers ...Observer) *Machine {
	return &Machine{
		sessionID: sessionID,
		stage:     StageSolar,
		target:    models.Origin,
		observers: observers,
	}
}

// SelectPersona moves solar -> planet focus, aiming the camera at the
// persona's position.
func (m *Machine) SelectPersona(p models.Persona) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stage != StageSolar {
		return Snapshot{}, fmt.Errorf("%w: selectPersona from %s", ErrInvalidTransition, m.stage)
	}

	clone := p.Clone()
	m.stage = StagePlanetFocus
	m.persona = &clone
	m.trait = nil
	m.target = clone.Position

	return m.publish(), nil
}

// SelectTrait moves planet -> trait focus. The trait must belong to the
// focused persona; pos is the trait moon's current position supplied by the
// UI (moons orbit client-side, the machine only records the aim point).
func (m *Machine) SelectTrait(traitID string, pos models.Vector3) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stage != StagePlanetFocus || m.persona == nil {
		return Snapshot{}, fmt.Errorf("%w: selectTrait from %s", ErrInvalidTransition, m.stage)
	}
	trait, ok := m.persona.Trait(traitID)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: trait %q not owned by persona %q", ErrInvalidTransition, traitID, m.persona.ID)
	}

	m.stage = StageTraitFocus
	m.trait = &trait
	m.target = pos

	return m.publish(), nil
}

// Back moves trait focus back to the owning planet.
func (m *Machine) Back() (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stage != StageTraitFocus {
		return Snapshot{}, fmt.Errorf("%w: back from %s", ErrInvalidTransition, m.stage)
	}

	m.stage = StagePlanetFocus
	m.trait = nil
	m.target = m.persona.Position

	return m.publish(), nil
}

// BackToSolar returns to the full solar view from either focus stage and
// clears both focus references.
func (m *Machine) BackToSolar() (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stage == StageSolar {
		return Snapshot{}, fmt.Errorf("%w: backToSolar from %s", ErrInvalidTransition, m.stage)
	}

	m.stage = StageSolar
	m.persona = nil
	m.trait = nil
	m.target = models.Origin

	return m.publish(), nil
}

// Snapshot returns the current state without transitioning.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

func (m *Machine) snapshot() Snapshot {
	s := Snapshot{
		SessionID:      m.sessionID,
		Stage:          m.stage,
		TargetPosition: m.target,
	}
	if m.persona != nil {
		clone := m.persona.Clone()
		s.Persona = &clone
	}
	if m.trait != nil {
		clone := m.trait.Clone()
		s.Trait = &clone
	}
	return s
}

// publish snapshots the state and notifies observers. Called with the lock
// held; observers must not call back into the machine.
func (m *Machine) publish() Snapshot {
	s := m.snapshot()
	for _, o := range m.observers {
		o(s)
	}
	return s
}
