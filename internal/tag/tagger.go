package tag

import (
	"sort"
	"strings"

	"github.com/karnai/cardir/internal/model"
)

// Tagger derives strategic tags from card metadata and oracle text
type Tagger struct{}

// NewTagger creates a new tagger
func NewTagger() *Tagger {
	return &Tagger{}
}

// Generate evaluates the rule table in declaration order, then the
// archetype and reward heuristics. Every matched subcategory contributes
// one hierarchical tag and both of its path names to the flattened set.
// Matches are independent; a card may tag into several categories.
func (t *Tagger) Generate(meta model.CardMetadata) model.StrategicTagSet {
	oracleText := strings.ToLower(meta.OracleText)

	hierarchical := make([]model.HierarchicalTag, 0)
	flattened := make(map[string]bool)

	for _, cat := range tagRules {
		for _, rule := range cat.rules {
			if rule.matcher.Match(meta, oracleText) {
				hierarchical = append(hierarchical, model.HierarchicalTag{
					Path:       []string{cat.category, rule.subcategory},
					Confidence: rule.matcher.Confidence(),
				})
				flattened[cat.category] = true
				flattened[rule.subcategory] = true
			}
		}
	}

	return model.StrategicTagSet{
		HierarchicalTags: hierarchical,
		FlattenedTags:    sortedNames(flattened),
		ArchetypeHints:   t.archetypeHints(meta, oracleText),
		RewardHints:      t.rewardHints(meta, oracleText),
	}
}

// archetypeHints evaluates every archetype condition regardless of earlier
// outcomes; hints are non-exclusive
func (t *Tagger) archetypeHints(meta model.CardMetadata, oracleText string) []string {
	hints := make([]string, 0)
	typeLine := strings.ToLower(meta.TypeLine)

	if meta.CMC <= 2 {
		hints = append(hints, model.ArchetypeAggro)
	}
	if meta.CMC >= 6 {
		hints = append(hints, model.ArchetypeControl)
	}
	if strings.Contains(typeLine, "instant") || strings.Contains(oracleText, "flash") {
		hints = append(hints, model.ArchetypeTempo)
	}
	for _, signal := range comboSignals {
		if strings.Contains(oracleText, signal) {
			hints = append(hints, model.ArchetypeCombo)
			break
		}
	}

	return hints
}

func (t *Tagger) rewardHints(meta model.CardMetadata, oracleText string) model.RewardHints {
	typeLine := strings.ToLower(meta.TypeLine)

	return model.RewardHints{
		ImmediateImpact: strings.Contains(typeLine, "instant") || strings.Contains(oracleText, "flash"),
		DelayedImpact:   strings.Contains(typeLine, "enchantment") || strings.Contains(typeLine, "artifact"),
		Symmetrical:     strings.Contains(oracleText, "each player") || strings.Contains(oracleText, "all players"),
		CardAdvantage:   estimateCardAdvantage(oracleText),
	}
}

// estimateCardAdvantage resolves by fixed priority: drawing beats tutoring
// beats trading. A text containing both "draw" and "damage" scores 1.
func estimateCardAdvantage(oracleText string) int {
	switch {
	case strings.Contains(oracleText, "draw"):
		return 1
	case strings.Contains(oracleText, "search"):
		return 0
	case strings.Contains(oracleText, "deals"),
		strings.Contains(oracleText, "damage"),
		strings.Contains(oracleText, "destroy"):
		return -1
	}
	return 0
}

// sortedNames flattens the tag name set in sorted order so serialized
// output is stable across runs
func sortedNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
