package badges

// Rarity is a display tier. It plays no part in evaluation.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// Definition is the human-facing description of a badge.
type Definition struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Rarity      Rarity `json:"rarity"`
}

// Catalog maps badges to their definitions.
type Catalog map[ID]Definition

// DefaultCatalog returns the league's badge definitions.
func DefaultCatalog() Catalog {
	return Catalog{
		ThirtyPointGame: {
			ID:          ThirtyPointGame,
			Name:        "30 Piece",
			Description: "Scored 30 or more points in a game",
			Category:    "scoring",
			Rarity:      RarityRare,
		},
		TripleDouble: {
			ID:          TripleDouble,
			Name:        "Triple-Double",
			Description: "Double figures in three of points, rebounds, assists, steals and blocks",
			Category:    "all-around",
			Rarity:      RarityLegendary,
		},
		DoubleDouble: {
			ID:          DoubleDouble,
			Name:        "Double-Double",
			Description: "Double figures in two of points, rebounds, assists, steals and blocks",
			Category:    "all-around",
			Rarity:      RarityCommon,
		},
		Sharpshooter: {
			ID:          Sharpshooter,
			Name:        "Sharpshooter",
			Description: "Made 5 or more three-pointers in a game",
			Category:    "shooting",
			Rarity:      RarityRare,
		},
		DefensiveAnchor: {
			ID:          DefensiveAnchor,
			Name:        "Defensive Anchor",
			Description: "Combined 5 or more steals and blocks in a game",
			Category:    "defense",
			Rarity:      RarityRare,
		},
		PerfectGame: {
			ID:          PerfectGame,
			Name:        "Perfect Game",
			Description: "Made every field goal on at least 5 attempts",
			Category:    "shooting",
			Rarity:      RarityLegendary,
		},
	}
}

// Lookup returns the definition for id.
func (c Catalog) Lookup(id ID) (Definition, bool) {
	def, ok := c[id]
	return def, ok
}

// Definitions returns the catalog in evaluation order, skipping badges it lacks.
func (c Catalog) Definitions() []Definition {
	defs := make([]Definition, 0, len(c))
	for _, id := range Order {
		if def, ok := c[id]; ok {
			defs = append(defs, def)
		}
	}
	return defs
}

// Tier is how a rarity renders.
type Tier struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Palette maps each rarity to its display tier.
type Palette map[Rarity]Tier

// DefaultPalette returns the app's rarity colours.
func DefaultPalette() Palette {
	return Palette{
		RarityCommon:    {Label: "Common", Color: "#9CA3AF"},
		RarityRare:      {Label: "Rare", Color: "#3B82F6"},
		RarityLegendary: {Label: "Legendary", Color: "#F59E0B"},
	}
}
