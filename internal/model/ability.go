package model

// AbilityType classifies how an ability is used in play
type AbilityType string

const (
	AbilityActivated AbilityType = "activated" // Paid abilities with a cost-colon-effect shape
	AbilityTriggered AbilityType = "triggered" // Abilities introduced by a trigger word
	AbilityKeyword   AbilityType = "keyword"   // Evergreen keyword abilities
	AbilityStatic    AbilityType = "static"    // Everything else, including plain spell effects
)

// CostKind classifies an individual ability cost entry
type CostKind string

const (
	CostMana CostKind = "mana" // Brace-delimited mana symbol
	CostTap  CostKind = "tap"  // The tap symbol or the word "tap"
)

// Cost is a single cost entry in order of appearance
type Cost struct {
	Kind  CostKind `json:"kind"`
	Value string   `json:"value"` // Verbatim symbol for mana, "Tap" for tap
}

// Trigger is a recognized trigger clause
type Trigger struct {
	Condition string `json:"condition"` // The matched span, lowercased
	Timing    string `json:"timing"`    // "when", "whenever", or "at"
}

// EffectKind classifies a parsed effect
type EffectKind string

// EffectDamage is the only effect kind the parser currently emits
const EffectDamage EffectKind = "damage"

// Effect is a single parsed effect clause
type Effect struct {
	Kind    EffectKind `json:"kind"`
	Targets []string   `json:"targets"`
	Value   int        `json:"value"`
}

// ParsedComponents holds the structured pieces extracted from ability text.
// All three sequences preserve order of appearance; unrecognized text
// simply yields empty sequences.
type ParsedComponents struct {
	Costs    []Cost    `json:"costs"`
	Triggers []Trigger `json:"triggers"`
	Effects  []Effect  `json:"effects"`
}

// Ability is one parsed ability. The current parser treats a card's entire
// oracle text as a single ability rather than splitting on line breaks.
type Ability struct {
	AbilityID        string           `json:"ability_id"`   // Derived from the card name; collisions possible and tolerated
	AbilityType      AbilityType      `json:"ability_type"`
	RawText          string           `json:"raw_text"`     // Verbatim source text
	ParsedComponents ParsedComponents `json:"parsed_components"`
}
