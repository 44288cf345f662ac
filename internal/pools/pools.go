// Package pools holds the fixed reference data the samplers draw from.
// The data is embedded, so a build always generates from the same pools.
package pools

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nkiryanov/pointseed/internal/apperrors"
	"github.com/nkiryanov/pointseed/internal/models"
)

//go:embed data/*.yaml
var data embed.FS

type City struct {
	Name     string `yaml:"name"`
	Province string `yaml:"province"`
}

type Category struct {
	Name  string   `yaml:"category"`
	Shops []string `yaml:"shops"`
}

// Shop is one (category, name) pair of the taxonomy
type Shop struct {
	Category string
	Name     string
}

type Pools struct {
	Surnames      []string   `yaml:"surnames"`
	GivenNames    []string   `yaml:"given_names"`
	Cities        []City     `yaml:"cities"`
	StoreSuffixes []string   `yaml:"store_suffixes"`
	Taxonomy      []Category `yaml:"taxonomy"`
}

// Load reads the shared pools and overlays the profile's own file
func Load(profile string) (*Pools, error) {
	switch profile {
	case models.ProfileRealistic, models.ProfileWxpay:
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownProfile, profile)
	}

	var p Pools
	for _, name := range []string{"common.yaml", profile + ".yaml"} {
		if err := decode(name, &p); err != nil {
			return nil, err
		}
	}

	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("pools for profile %q: %w", profile, err)
	}

	return &p, nil
}

func decode(name string, p *Pools) error {
	raw, err := data.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("reading pool file %s: %w", name, err)
	}

	// Unmarshal into the same struct only sets keys present in the file
	if err := yaml.Unmarshal(raw, p); err != nil {
		return fmt.Errorf("parsing pool file %s: %w", name, err)
	}

	return nil
}

func (p *Pools) validate() error {
	required := map[string]int{
		"surnames":    len(p.Surnames),
		"given_names": len(p.GivenNames),
		"cities":      len(p.Cities),
		"taxonomy":    len(p.Taxonomy),
	}
	for key, n := range required {
		if n == 0 {
			return fmt.Errorf("%w: %s", apperrors.ErrEmptyPool, key)
		}
	}

	for _, c := range p.Taxonomy {
		if len(c.Shops) == 0 {
			return fmt.Errorf("%w: category %q has no shops", apperrors.ErrEmptyPool, c.Name)
		}
	}

	return nil
}

// Shops flattens the taxonomy keeping file order
func (p *Pools) Shops() []Shop {
	var shops []Shop
	for _, c := range p.Taxonomy {
		for _, name := range c.Shops {
			shops = append(shops, Shop{Category: c.Name, Name: name})
		}
	}
	return shops
}
