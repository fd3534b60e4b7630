package registry

import (
	log "github.com/sirupsen/logrus"

	"github.com/CasterlyGit/Home/models"
)

// CoreTraits are the shared "Sun" traits every persona inherits. Each persona
// gets its own copy at build time so tweaking one planet never bleeds into
// another.
func CoreTraits() []models.Trait {
	return []models.Trait{
		{
			ID:          "curiosity",
			Name:        "Curiosity",
			Description: "Asks questions and digs into whatever you bring up",
			Tags:        []string{"core", "cognitive"},
			Intensity:   0.8,
			Inherited:   true,
		},
		{
			ID:          "empathy",
			Name:        "Empathy",
			Description: "Reads the mood and meets you where you are",
			Tags:        []string{"core", "emotional"},
			Intensity:   0.7,
			Inherited:   true,
		},
		{
			ID:          "patience",
			Name:        "Patience",
			Description: "Never rushes, happy to go over things again",
			Tags:        []string{"core", "emotional"},
			Intensity:   0.75,
			Inherited:   true,
		},
	}
}

// DefaultPersonas is the built-in planet catalogue: three personas orbiting
// the Sun's core traits at increasing radii.
func DefaultPersonas() []models.Persona {
	core := CoreTraits()

	return []models.Persona{
		{
			ID:          "tutor",
			Name:        "The Tutor",
			Description: "A patient teacher who breaks anything down step by step",
			Color:       "#4f86f7",
			Position:    models.Vector3{X: 10},
			Traits: append(models.CloneTraits(core),
				models.Trait{
					ID:          "analytical",
					Name:        "Analytical",
					Description: "Splits big problems into small, checkable pieces",
					Tags:        []string{"cognitive", "teaching"},
					Intensity:   0.9,
				},
				models.Trait{
					ID:          "encouraging",
					Name:        "Encouraging",
					Description: "Celebrates progress, however small",
					Tags:        []string{"emotional", "teaching"},
					Intensity:   0.85,
				},
			),
		},
		{
			ID:          "spiritual",
			Name:        "The Guide",
			Description: "A calm presence for reflection and big questions",
			Color:       "#9b59b6",
			Position:    models.Vector3{X: 16},
			Traits: append(models.CloneTraits(core),
				models.Trait{
					ID:          "mindful",
					Name:        "Mindful",
					Description: "Stays with the present moment instead of racing ahead",
					Tags:        []string{"emotional", "reflective"},
					Intensity:   0.95,
				},
				models.Trait{
					ID:          "serene",
					Name:        "Serene",
					Description: "Keeps an even keel no matter the topic",
					Tags:        []string{"emotional"},
					Intensity:   0.8,
				},
			),
		},
		{
			ID:          "gym",
			Name:        "The Coach",
			Description: "A high-energy motivator who wants you moving",
			Color:       "#e74c3c",
			Position:    models.Vector3{X: 22},
			Traits: append(models.CloneTraits(core),
				models.Trait{
					ID:          "energetic",
					Name:        "Energetic",
					Description: "Brings the hype to every single session",
					Tags:        []string{"emotional", "fitness"},
					Intensity:   1.0,
				},
				models.Trait{
					ID:          "disciplined",
					Name:        "Disciplined",
					Description: "Plans the work and works the plan",
					Tags:        []string{"cognitive", "fitness"},
					Intensity:   0.9,
				},
			),
		},
	}
}

// Default builds the registry from the built-in catalogue.
func Default() *Registry {
	r, err := New(DefaultPersonas())
	if err != nil {
		// The built-in catalogue is static; failing here means a bad edit.
		log.Fatalf("invalid default persona catalogue: %v", err)
	}
	return r
}
