package models

// Vector3 is a point in the visualization space. Positions are not simulated,
// they only serve as camera targets and orbit parameters for the frontend.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Origin is the default camera aim when nothing is focused.
var Origin = Vector3{}

// Trait is a single personality attribute of a persona.
// Inherited traits are the "Sun" core traits that every persona carries;
// each persona holds its own copy so they never share mutable state.
type Trait struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Intensity   float64  `json:"intensity"` // declared strength in [0,1]
	Inherited   bool     `json:"inherited"`
}

// Clone returns a deep copy of the trait.
func (t Trait) Clone() Trait {
	c := t
	if t.Tags != nil {
		c.Tags = make([]string, len(t.Tags))
		copy(c.Tags, t.Tags)
	}
	return c
}

// Persona is one planet in the solar system: a named chatbot character
// with display metadata and an ordered trait list.
type Persona struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
	Traits      []Trait `json:"traits"`
	Position    Vector3 `json:"position"`
}

// Clone returns a deep copy of the persona, traits included.
func (p Persona) Clone() Persona {
	c := p
	c.Traits = CloneTraits(p.Traits)
	return c
}

// Trait returns the persona's trait with the given id, or false if the
// persona does not own it.
func (p Persona) Trait(id string) (Trait, bool) {
	for _, t := range p.Traits {
		if t.ID == id {
			return t, true
		}
	}
	return Trait{}, false
}

// CloneTraits deep-copies a trait list.
func CloneTraits(traits []Trait) []Trait {
	if traits == nil {
		return nil
	}
	out := make([]Trait, len(traits))
	for i, t := range traits {
		out[i] = t.Clone()
	}
	return out
}
