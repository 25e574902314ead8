package activity

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"github.com/alexanderramin/jornada/internal/domain"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is returned when catalog data fails to parse or validate.
var ErrInvalidCatalog = errors.New("invalid activity catalog")

//go:embed catalog.yaml
var builtinCatalog []byte

// Catalog holds the canonical item lists, the journey path and the
// conquest board.
type Catalog struct {
	Missions     []domain.ActivityItem `yaml:"missions" validate:"required,min=1,dive"`
	Quiz         []domain.ActivityItem `yaml:"quiz" validate:"required,min=1,dive"`
	Verses       []domain.ActivityItem `yaml:"verses" validate:"required,min=1,dive"`
	Journey      []domain.JourneyStep  `yaml:"journey" validate:"required,min=1,dive"`
	Achievements []domain.Achievement  `yaml:"achievements" validate:"required,min=1,dive"`
	// Streak is the count of consecutive devotion days shown on the profile.
	Streak int `yaml:"streak" validate:"gte=0"`
}

// LoadCatalog parses the catalog embedded in the binary.
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(builtinCatalog)
}

// ParseCatalog decodes and validates catalog YAML. Unknown fields are
// rejected.
func ParseCatalog(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: decoding: %v", ErrInvalidCatalog, err)
	}
	if err := validator.New().Struct(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := c.check(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return &c, nil
}

// check enforces the rules struct tags cannot express.
func (c *Catalog) check() error {
	for _, q := range c.Quiz {
		if len(q.Options) < 2 {
			return fmt.Errorf("quiz item %s: needs at least two options", q.ID)
		}
		if q.Correct >= len(q.Options) {
			return fmt.Errorf("quiz item %s: correct option %d out of range", q.ID, q.Correct)
		}
	}
	lists := map[string][]domain.ActivityItem{"missions": c.Missions, "quiz": c.Quiz, "verses": c.Verses}
	for name, items := range lists {
		seen := make(map[string]bool, len(items))
		for _, it := range items {
			if seen[it.ID] {
				return fmt.Errorf("%s: duplicate item id %s", name, it.ID)
			}
			seen[it.ID] = true
		}
	}
	steps := make(map[string]bool, len(c.Journey))
	for _, s := range c.Journey {
		if steps[s.ID] {
			return fmt.Errorf("journey: duplicate step id %s", s.ID)
		}
		steps[s.ID] = true
	}
	achievements := make(map[string]bool, len(c.Achievements))
	for _, a := range c.Achievements {
		if achievements[a.ID] {
			return fmt.Errorf("achievements: duplicate id %s", a.ID)
		}
		achievements[a.ID] = true
	}
	return nil
}

// Items returns a copy of the canonical items for mode.
func (c *Catalog) Items(mode domain.ActivityMode) []domain.ActivityItem {
	switch mode {
	case domain.ModeChecklist:
		return cloneItems(c.Missions)
	case domain.ModeQuiz:
		return cloneItems(c.Quiz)
	case domain.ModeReader:
		return cloneItems(c.Verses)
	default:
		return nil
	}
}

// Step returns the journey step with the given id.
func (c *Catalog) Step(id string) (domain.JourneyStep, bool) {
	for _, s := range c.Journey {
		if s.ID == id {
			return s, true
		}
	}
	return domain.JourneyStep{}, false
}

// Open starts a fresh activity for a journey step kind. Chat steps do not
// open an activity.
func Open(c *Catalog, kind domain.StepKind) (*Activity, error) {
	mode, ok := kind.Mode()
	if !ok {
		return nil, fmt.Errorf("%w: step kind %q", ErrUnknownMode, kind)
	}
	return New(mode, c.Items(mode))
}
