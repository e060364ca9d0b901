package model

// HierarchicalTag is a matched category/subcategory pair with the
// confidence of the matcher kind that produced it
type HierarchicalTag struct {
	Path       []string `json:"path"`       // [category, subcategory]
	Confidence float64  `json:"confidence"` // 0.9 for text rules, 0.8 for metadata predicates
}

// Archetype hint labels
const (
	ArchetypeAggro   = "aggro"
	ArchetypeControl = "control"
	ArchetypeTempo   = "tempo"
	ArchetypeCombo   = "combo"
)

// RewardHints are coarse reward-shaping signals for the training loop
type RewardHints struct {
	ImmediateImpact bool `json:"immediate_impact"` // Resolves at instant speed
	DelayedImpact   bool `json:"delayed_impact"`   // Permanents that pay off over time
	Symmetrical     bool `json:"symmetrical"`      // Affects every player
	CardAdvantage   int  `json:"card_advantage"`   // -1, 0, or 1
}

// StrategicTagSet is the full tagging output for one card
type StrategicTagSet struct {
	HierarchicalTags []HierarchicalTag `json:"hierarchical_tags"`
	FlattenedTags    []string          `json:"flattened_tags"`  // Sorted union of matched category and subcategory names
	ArchetypeHints   []string          `json:"archetype_hints"` // Zero or more archetype labels, non-exclusive
	RewardHints      RewardHints       `json:"reward_hints"`
}
