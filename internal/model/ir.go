package model

// IRVersion is the schema version stamped on every generated record
const IRVersion = "1.0.0"

// Zone names a card can occupy during play
const (
	ZoneHand        = "hand"
	ZoneBattlefield = "battlefield"
	ZoneGraveyard   = "graveyard"
	ZoneExile       = "exile"
	ZoneLibrary     = "library"
	ZoneStack       = "stack"
)

// LegalityNotLegal is the status assumed for formats absent from the input
const LegalityNotLegal = "not_legal"

// FormatLegality carries the commander legality status and the derived
// commander eligibility flag
type FormatLegality struct {
	Commander      string `json:"commander"`        // Status string, "not_legal" when absent from input
	CanBeCommander bool   `json:"can_be_commander"` // Legendary creature check over the type line
}

// GameplayMetadata holds zone and timing facts the simulator needs
type GameplayMetadata struct {
	Zones                   []string `json:"zones"`
	EntersTapped            bool     `json:"enters_tapped"`
	HasAbilitiesInGraveyard bool     `json:"has_abilities_in_graveyard"`
}

// CardIR is the complete intermediate representation for one card.
// Immutable after assembly; each input record yields exactly one CardIR
// with no shared identity across records.
type CardIR struct {
	IRVersion        string           `json:"ir_version"`
	GeneratedAt      string           `json:"generated_at"` // ISO-8601 UTC with trailing "Z"
	CardMetadata     CardMetadata     `json:"card_metadata"`
	ParsedAbilities  []Ability        `json:"parsed_abilities"`
	StrategicTags    StrategicTagSet  `json:"strategic_tags"`
	FormatLegality   FormatLegality   `json:"format_legality"`
	GameplayMetadata GameplayMetadata `json:"gameplay_metadata"`
}
