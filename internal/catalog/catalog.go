// internal/catalog/catalog.go
//
// This package owns the order content: which toys can be commissioned at
// each difficulty tier and the per-mechanic parameters that make a round
// harder or easier. The built-in table ships embedded in the binary; extra
// packs can be merged in from YAML files listed in the user's settings.

package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed orders.yaml
var builtinOrdersYAML []byte

// Tier buckets orders by difficulty and drives Foreman drift scaling.
type Tier int

const (
	TierEasy Tier = iota + 1
	TierStandard
	TierNightmare
)

// String returns the display name used on briefing screens.
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "EASY"
	case TierStandard:
		return "STANDARD"
	case TierNightmare:
		return "NIGHTMARE"
	default:
		return "UNKNOWN"
	}
}

// TierForRound maps a 1-based round number to its difficulty tier.
// Rounds 1-3 are easy, 4-7 standard, everything after is nightmare.
func TierForRound(round int) Tier {
	switch {
	case round <= 3:
		return TierEasy
	case round <= 7:
		return TierStandard
	default:
		return TierNightmare
	}
}

// GiftVariant holds the two possible appearances of one gift layer.
type GiftVariant struct {
	Good string `yaml:"good"`
	Bad  string `yaml:"bad"`
}

// Pick returns the matching appearance for an outcome.
func (v GiftVariant) Pick(ok bool) string {
	if ok {
		return v.Good
	}
	return v.Bad
}

// Wrap and bow layers are not order-specific; every gift shares the same
// two variants for each.
var (
	WrapVariant = GiftVariant{Good: "Gold Foil", Bad: "Torn Wrapping Paper"}
	BowVariant  = GiftVariant{Good: "Satin Ribbon", Bad: "Toilet Paper Ribbon"}
)

// OrderDefinition is one orderable toy plus the difficulty parameters the
// round orchestrator pushes into each mechanic. Definitions are immutable
// once loaded.
type OrderDefinition struct {
	Name       string      `yaml:"name"`
	Dialog     string      `yaml:"dialog"`
	ArrowCount int         `yaml:"arrows"`
	TimeLimit  float64     `yaml:"time_limit"`
	DecayRate  float64     `yaml:"decay_rate"`
	ZoneSize   float64     `yaml:"zone_size"`
	Toy        GiftVariant `yaml:"toy"`
}

func (o OrderDefinition) validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return fmt.Errorf("order name is required")
	}
	if o.ArrowCount < 0 {
		return fmt.Errorf("order %s: arrow count must be >= 0", o.Name)
	}
	if o.ZoneSize <= 0 || o.ZoneSize > 1 {
		return fmt.Errorf("order %s: zone size must be in (0,1], got %v", o.Name, o.ZoneSize)
	}
	if o.DecayRate < 0 {
		return fmt.Errorf("order %s: decay rate must be >= 0", o.Name)
	}
	// A zero or negative time limit is tolerated: the orchestrator treats it
	// as an instantly-scored round rather than refusing the order.
	return nil
}

// Catalog is the queryable order table, keyed by tier.
type Catalog struct {
	orders map[Tier][]OrderDefinition
}

// packDocument models the YAML layout of an order pack file.
type packDocument struct {
	Orders struct {
		Easy      []OrderDefinition `yaml:"easy"`
		Standard  []OrderDefinition `yaml:"standard"`
		Nightmare []OrderDefinition `yaml:"nightmare"`
	} `yaml:"orders"`
}

// Builtin loads the embedded order table.
func Builtin() (*Catalog, error) {
	c, err := parse(builtinOrdersYAML)
	if err != nil {
		return nil, fmt.Errorf("catalog: builtin orders: %w", err)
	}
	return c, nil
}

// LoadPack parses a standalone order pack file.
func LoadPack(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read pack %s: %w", path, err)
	}
	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: pack %s: %w", path, err)
	}
	return c, nil
}

func parse(data []byte) (*Catalog, error) {
	var doc packDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse orders: %w", err)
	}
	c := &Catalog{orders: map[Tier][]OrderDefinition{
		TierEasy:      doc.Orders.Easy,
		TierStandard:  doc.Orders.Standard,
		TierNightmare: doc.Orders.Nightmare,
	}}
	for tier, orders := range c.orders {
		for _, o := range orders {
			if err := o.validate(); err != nil {
				return nil, fmt.Errorf("%s tier: %w", strings.ToLower(tier.String()), err)
			}
		}
	}
	return c, nil
}

// Merge appends every order from another catalog into the matching tier.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil {
		return
	}
	for tier, orders := range other.orders {
		c.orders[tier] = append(c.orders[tier], orders...)
	}
}

// Orders returns the definitions available at a tier. The returned slice is
// shared; callers must not mutate it.
func (c *Catalog) Orders(tier Tier) []OrderDefinition {
	return c.orders[tier]
}

// Len reports the total number of orders across all tiers.
func (c *Catalog) Len() int {
	n := 0
	for _, orders := range c.orders {
		n += len(orders)
	}
	return n
}
