package model

// ScryfallCard is a raw card record as downloaded from the Scryfall API.
// Every field is optional in the source JSON; metadata extraction fills
// documented defaults for whatever is missing.
type ScryfallCard struct {
	Name          *string           `json:"name"`           // Pointer distinguishes an absent name from an empty one
	OracleID      string            `json:"oracle_id"`      // Stable identifier shared across printings
	ID            string            `json:"id"`             // Printing-specific Scryfall identifier
	ManaCost      string            `json:"mana_cost"`      // Symbol string, e.g. "{1}{R}{R}"
	CMC           float64           `json:"cmc"`            // Converted mana cost, may be fractional
	TypeLine      string            `json:"type_line"`      // e.g. "Legendary Creature — God"
	OracleText    string            `json:"oracle_text"`    // Free-form rules text, possibly empty
	Colors        []string          `json:"colors"`         // Single-letter color codes
	ColorIdentity []string          `json:"color_identity"` // Color codes including costs in rules text
	Keywords      []string          `json:"keywords"`       // Named keyword abilities
	Power         *string           `json:"power"`          // Not guaranteed numeric ("*", "1+*")
	Toughness     *string           `json:"toughness"`      // Not guaranteed numeric
	Loyalty       *string           `json:"loyalty"`        // Planeswalkers only
	Legalities    map[string]string `json:"legalities"`     // format name → status string
}

// CardMetadata is the canonical, normalized form of a card record.
// Immutable once extracted; absent source fields are already defaulted
// (empty string, zero, empty list, or null for power/toughness/loyalty).
type CardMetadata struct {
	Name          string   `json:"name"`
	OracleID      string   `json:"oracle_id"`
	ScryfallID    string   `json:"scryfall_id"`
	ManaCost      string   `json:"mana_cost"`
	CMC           float64  `json:"cmc"`
	TypeLine      string   `json:"type_line"`
	OracleText    string   `json:"oracle_text"`
	Colors        []string `json:"colors"`
	ColorIdentity []string `json:"color_identity"`
	Keywords      []string `json:"keywords"`
	Power         *string  `json:"power"`
	Toughness     *string  `json:"toughness"`
	Loyalty       *string  `json:"loyalty"`
}
