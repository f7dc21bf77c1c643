// Package roster loads tournament competitors from YAML documents.
//
// A roster looks like:
//
//	competitors:
//	  - id: "7"            # optional, generated when empty
//	    name: Alice
//	    matches: [win, draw, loss]
//	    disqualified: false
//	    penalty_points: 0
package roster

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/okian/blade/internal/domain/model"
)

//go:embed sample.yaml
var sampleRoster []byte

type document struct {
	Competitors []entry `yaml:"competitors"`
}

type entry struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Matches       []string `yaml:"matches"`
	Disqualified  bool     `yaml:"disqualified"`
	PenaltyPoints int      `yaml:"penalty_points"`
}

// Load reads and parses the roster file at path.
func Load(ctx context.Context, path string) ([]*model.Competitor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", path, err)
	}
	return Parse(ctx, data)
}

// Sample returns the built-in demonstration roster.
func Sample(ctx context.Context) ([]*model.Competitor, error) {
	return Parse(ctx, sampleRoster)
}

// Parse decodes a YAML roster. Competitors keep document order; entries
// without an id are given a random UUID.
func Parse(_ context.Context, data []byte) ([]*model.Competitor, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoster, err)
	}

	seen := make(map[string]struct{}, len(doc.Competitors))
	out := make([]*model.Competitor, 0, len(doc.Competitors))
	for i, e := range doc.Competitors {
		c, err := e.competitor()
		if err != nil {
			return nil, fmt.Errorf("%w: competitor %d: %w", ErrInvalidRoster, i, err)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCompetitor, c.ID)
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

func (e entry) competitor() (*model.Competitor, error) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	if e.PenaltyPoints < 0 {
		return nil, fmt.Errorf("%s: penalty points must not be negative, got %d", name, e.PenaltyPoints)
	}

	id := strings.TrimSpace(e.ID)
	if id == "" {
		id = uuid.NewString()
	}

	c := &model.Competitor{
		ID:            id,
		Name:          name,
		Matches:       make([]model.Outcome, 0, len(e.Matches)),
		Disqualified:  e.Disqualified,
		PenaltyPoints: e.PenaltyPoints,
	}
	for j, raw := range e.Matches {
		o, err := model.ParseOutcome(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: match %d: %w", name, j, err)
		}
		c.AddMatch(o)
	}
	return c, nil
}
