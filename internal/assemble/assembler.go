package assemble

import (
	"strings"
	"time"

	"github.com/karnai/cardir/internal/model"
)

// nowFunc returns the generation time; overridden in tests
var nowFunc = time.Now

// Assembler composes the final IR record from its extracted parts
type Assembler struct{}

// NewAssembler creates a new assembler
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble builds the versioned, timestamped IR record. Assembly is total:
// any well-formed metadata produces a record.
func (a *Assembler) Assemble(meta model.CardMetadata, abilities []model.Ability, tags model.StrategicTagSet, legalities map[string]string) model.CardIR {
	return model.CardIR{
		IRVersion:        model.IRVersion,
		GeneratedAt:      timestamp(nowFunc()),
		CardMetadata:     meta,
		ParsedAbilities:  abilities,
		StrategicTags:    tags,
		FormatLegality:   a.legality(legalities, meta.TypeLine),
		GameplayMetadata: a.gameplay(meta),
	}
}

// legality looks up the commander status, defaulting when the format is
// absent from the input map. Commander eligibility requires both
// "legendary" and "creature" somewhere in the type line, in any order.
func (a *Assembler) legality(legalities map[string]string, typeLine string) model.FormatLegality {
	status, ok := legalities["commander"]
	if !ok {
		status = model.LegalityNotLegal
	}

	lower := strings.ToLower(typeLine)

	return model.FormatLegality{
		Commander:      status,
		CanBeCommander: strings.Contains(lower, "legendary") && strings.Contains(lower, "creature"),
	}
}

// gameplay derives zone and timing facts from the metadata
func (a *Assembler) gameplay(meta model.CardMetadata) model.GameplayMetadata {
	typeLine := strings.ToLower(meta.TypeLine)
	oracleText := strings.ToLower(meta.OracleText)

	zones := []string{model.ZoneHand}
	if containsAny(typeLine, "creature", "artifact", "enchantment", "planeswalker") {
		zones = append(zones, model.ZoneBattlefield)
	}
	zones = append(zones, model.ZoneGraveyard, model.ZoneExile, model.ZoneLibrary)
	// Instants and sorceries are the types that do NOT get the stack zone.
	// TODO: confirm with the simulator team whether this inversion is
	// intended; downstream consumers currently rely on it as shipped.
	if !containsAny(typeLine, "instant", "sorcery") {
		zones = append(zones, model.ZoneStack)
	}

	return model.GameplayMetadata{
		Zones:                   zones,
		EntersTapped:            strings.Contains(oracleText, "enters tapped") || strings.Contains(oracleText, "enters the battlefield tapped"),
		HasAbilitiesInGraveyard: strings.Contains(oracleText, "graveyard") && (strings.Contains(oracleText, "activate") || strings.Contains(oracleText, ":")),
	}
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// timestamp renders the generation time in the IR's format: UTC,
// microsecond precision, literal trailing "Z"
func timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000") + "Z"
}
