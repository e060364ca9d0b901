package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/karnai/cardir/internal/model"
)

// Fixed lexical patterns, compiled once at startup and never mutated.
// Mana symbols are matched against the raw text (symbols are uppercase by
// convention); trigger and effect scans run over the lowercased text.
var (
	manaSymbolRe = regexp.MustCompile(`\{([WUBRG\d]+)\}`)
	tapWordRe    = regexp.MustCompile(`(?i)\b(tap|t)\b`)
	damageRe     = regexp.MustCompile(`deals (\d+) damage to (.+?)(?:\.|$)`)
)

// triggerTemplate pairs a trigger clause pattern with its timing label
type triggerTemplate struct {
	pattern *regexp.Regexp
	timing  string
}

var triggerTemplates = []triggerTemplate{
	{regexp.MustCompile(`when .* enters`), "when"},
	{regexp.MustCompile(`whenever .* dies`), "whenever"},
	{regexp.MustCompile(`at the beginning`), "at"},
}

// AbilityParser decomposes oracle text into structured ability components.
// It is best-effort lexical matching: text outside the known patterns
// yields empty components, never an error.
type AbilityParser struct {
	triggerWords []string
	keywords     []string
}

// NewAbilityParser creates a new ability parser
func NewAbilityParser() *AbilityParser {
	return &AbilityParser{
		triggerWords: []string{"when", "whenever", "at the beginning"},
		keywords:     []string{"flying", "trample", "haste", "vigilance"},
	}
}

// ParseCard parses a card's oracle text into abilities. The entire text is
// treated as one ability; no splitting on line breaks. A card with no text
// yields no abilities.
func (p *AbilityParser) ParseCard(card model.ScryfallCard) []model.Ability {
	if card.OracleText == "" {
		return []model.Ability{}
	}

	name := "unknown"
	if card.Name != nil {
		name = *card.Name
	}

	return []model.Ability{p.Parse(card.OracleText, AbilityID(name))}
}

// Parse decomposes a single ability text. It is total: unrecognized text
// produces a classified ability with empty component lists.
func (p *AbilityParser) Parse(text string, abilityID string) model.Ability {
	return model.Ability{
		AbilityID:   abilityID,
		AbilityType: p.classify(text),
		RawText:     text,
		ParsedComponents: model.ParsedComponents{
			Costs:    p.extractCosts(text),
			Triggers: p.extractTriggers(text),
			Effects:  p.extractEffects(text),
		},
	}
}

// classify picks the ability type by a fixed priority: a colon always wins,
// then trigger words, then keyword abilities, then static
func (p *AbilityParser) classify(text string) model.AbilityType {
	if strings.Contains(text, ":") {
		return model.AbilityActivated
	}

	lower := strings.ToLower(text)
	for _, word := range p.triggerWords {
		if strings.Contains(lower, word) {
			return model.AbilityTriggered
		}
	}
	for _, keyword := range p.keywords {
		if strings.Contains(lower, keyword) {
			return model.AbilityKeyword
		}
	}

	return model.AbilityStatic
}

// extractCosts collects mana symbols in order of appearance, duplicates
// included, then at most one synthetic tap cost when the whole word "tap"
// or "t" occurs anywhere in the text
func (p *AbilityParser) extractCosts(text string) []model.Cost {
	costs := make([]model.Cost, 0)

	for _, match := range manaSymbolRe.FindAllStringSubmatch(text, -1) {
		costs = append(costs, model.Cost{Kind: model.CostMana, Value: "{" + match[1] + "}"})
	}

	if tapWordRe.MatchString(text) {
		costs = append(costs, model.Cost{Kind: model.CostTap, Value: "Tap"})
	}

	return costs
}

// extractTriggers tests each template independently against the lowercased
// text, keeping only the first occurrence per template. A text can yield at
// most one trigger entry per template.
func (p *AbilityParser) extractTriggers(text string) []model.Trigger {
	triggers := make([]model.Trigger, 0)
	lower := strings.ToLower(text)

	for _, tmpl := range triggerTemplates {
		if span := tmpl.pattern.FindString(lower); span != "" {
			triggers = append(triggers, model.Trigger{Condition: span, Timing: tmpl.timing})
		}
	}

	return triggers
}

// extractEffects collects every non-overlapping damage clause from the
// lowercased text. The target capture is non-greedy and ends at a period
// or the end of the text.
func (p *AbilityParser) extractEffects(text string) []model.Effect {
	effects := make([]model.Effect, 0)
	lower := strings.ToLower(text)

	for _, match := range damageRe.FindAllStringSubmatch(lower, -1) {
		value, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		effects = append(effects, model.Effect{
			Kind:    model.EffectDamage,
			Targets: []string{strings.TrimSpace(match[2])},
			Value:   value,
		})
	}

	return effects
}

// AbilityID derives the deterministic ability identifier from a card name.
// Distinct cards with the same name produce colliding IDs; the conversion
// does not enforce uniqueness.
func AbilityID(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_") + "_main_effect"
}
