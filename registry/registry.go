package registry

import (
	"errors"
	"fmt"

	"github.com/CasterlyGit/Home/models"
)

// ErrPersonaNotFound is returned by Get for ids absent from the catalogue.
var ErrPersonaNotFound = errors.New("persona not found")

// Registry is the immutable persona catalogue. It is built once at startup
// and only ever read afterwards, so concurrent lookups need no locking.
type Registry struct {
	personas []models.Persona
	byID     map[string]int
}

// New builds a registry from a catalogue. The catalogue is validated and
// deep-copied so later mutation of the input cannot leak into the registry.
func New(personas []models.Persona) (*Registry, error) {
	if len(personas) == 0 {
		return nil, errors.New("registry: empty catalogue")
	}

	r := &Registry{
		personas: make([]models.Persona, 0, len(personas)),
		byID:     make(map[string]int, len(personas)),
	}

	for _, p := range personas {
		if p.ID == "" {
			return nil, fmt.Errorf("registry: persona %q has no id", p.Name)
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("registry: duplicate persona id %q", p.ID)
		}
		if len(p.Traits) == 0 {
			return nil, fmt.Errorf("registry: persona %q has no traits", p.ID)
		}
		for _, t := range p.Traits {
			if t.Intensity < 0 || t.Intensity > 1 {
				return nil, fmt.Errorf("registry: persona %q trait %q intensity %v out of range", p.ID, t.ID, t.Intensity)
			}
		}
		r.byID[p.ID] = len(r.personas)
		r.personas = append(r.personas, p.Clone())
	}

	return r, nil
}

// All returns the catalogue in registration order. Callers get copies, the
// registry's own personas are never handed out.
func (r *Registry) All() []models.Persona {
	out := make([]models.Persona, len(r.personas))
	for i, p := range r.personas {
		out[i] = p.Clone()
	}
	return out
}

// Get looks up a persona by id.
func (r *Registry) Get(id string) (models.Persona, error) {
	i, ok := r.byID[id]
	if !ok {
		return models.Persona{}, fmt.Errorf("%w: %q", ErrPersonaNotFound, id)
	}
	return r.personas[i].Clone(), nil
}

// Has reports whether the id is present without copying the persona.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Len returns the catalogue size.
func (r *Registry) Len() int {
	return len(r.personas)
}
