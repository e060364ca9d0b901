package tag

import (
	"strings"

	"github.com/karnai/cardir/internal/model"
)

// Confidence by matcher kind: text rules are considered stronger evidence
// than metadata heuristics
const (
	substringConfidence = 0.9
	predicateConfidence = 0.8
)

// Matcher decides whether a subcategory applies to a card. Confidence
// depends only on the matcher kind, never on the individual rule.
type Matcher interface {
	Match(meta model.CardMetadata, oracleText string) bool
	Confidence() float64
}

// Substrings matches when any listed substring occurs in the lowercased
// oracle text; the list is tested in order and stops at the first hit
type Substrings []string

// Match reports whether any substring occurs in the oracle text
func (s Substrings) Match(_ model.CardMetadata, oracleText string) bool {
	for _, sub := range s {
		if strings.Contains(oracleText, sub) {
			return true
		}
	}
	return false
}

// Confidence returns the fixed confidence for text rules
func (s Substrings) Confidence() float64 { return substringConfidence }

// Predicate matches when the metadata test returns true
type Predicate func(meta model.CardMetadata) bool

// Match applies the predicate to the card metadata
func (p Predicate) Match(meta model.CardMetadata, _ string) bool { return p(meta) }

// Confidence returns the fixed confidence for metadata heuristics
func (p Predicate) Confidence() float64 { return predicateConfidence }

// tagRule pairs a subcategory name with its matcher
type tagRule struct {
	subcategory string
	matcher     Matcher
}

// tagCategory groups rules under a category name
type tagCategory struct {
	category string
	rules    []tagRule
}

// tagRules is the fixed tagging rule table. Declaration order is the
// evaluation order; the table is read-only for the lifetime of the process.
var tagRules = []tagCategory{
	{"interaction", []tagRule{
		{"removal", Substrings{"deals", "damage", "destroy", "exile", "return to hand"}},
		{"counterspell", Substrings{"counter target"}},
		{"protection", Substrings{"prevent", "indestructible", "hexproof"}},
	}},
	{"tempo", []tagRule{
		{"low_cost_interaction", Predicate(func(meta model.CardMetadata) bool { return meta.CMC <= 2 })},
		{"bounce", Substrings{"return", "bounce"}},
	}},
	{"value", []tagRule{
		{"card_draw", Substrings{"draw", "cards"}},
		{"tutoring", Substrings{"search", "library"}},
	}},
	{"ramp", []tagRule{
		{"mana_acceleration", Substrings{"add mana", "lands", "mana cost"}},
	}},
}

// comboSignals are oracle-text markers for the combo archetype hint
var comboSignals = []string{"combo", "infinite", "win the game"}
