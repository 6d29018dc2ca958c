// Package seed loads the static site content bundled with the binary.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/neuralink-ai/site-backend/internal/domain"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the content the stores are populated with at startup.
type Catalog struct {
	DashboardUser domain.DashboardUser `yaml:"dashboardUser"`
	Services      []domain.Service     `yaml:"services"`
	Team          []domain.TeamMember  `yaml:"team"`
	Contact       domain.ContactInfo   `yaml:"contact"`
}

// Load decodes the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse decodes a catalog document and checks id uniqueness per collection.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[int]struct{}, len(cat.Services))
	for i := range cat.Services {
		svc := &cat.Services[i]
		if _, dup := seen[svc.ID]; dup {
			return nil, fmt.Errorf("duplicate service id %d", svc.ID)
		}
		seen[svc.ID] = struct{}{}
		if svc.Features == nil {
			svc.Features = []string{}
		}
	}

	seen = make(map[int]struct{}, len(cat.Team))
	for _, member := range cat.Team {
		if _, dup := seen[member.ID]; dup {
			return nil, fmt.Errorf("duplicate team member id %d", member.ID)
		}
		seen[member.ID] = struct{}{}
	}
	return &cat, nil
}
