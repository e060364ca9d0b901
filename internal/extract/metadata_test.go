package extract

import (
	"testing"

	"github.com/karnai/cardir/internal/model"
)

func TestMetadataExtractor_Defaults(t *testing.T) {
	extractor := NewMetadataExtractor()

	meta := extractor.Extract(model.ScryfallCard{})

	if meta.Name != "" {
		t.Errorf("expected empty name, got %q", meta.Name)
	}
	if meta.CMC != 0 {
		t.Errorf("expected cmc 0, got %v", meta.CMC)
	}
	if meta.Colors == nil || len(meta.Colors) != 0 {
		t.Errorf("expected empty non-nil colors, got %#v", meta.Colors)
	}
	if meta.ColorIdentity == nil || len(meta.ColorIdentity) != 0 {
		t.Errorf("expected empty non-nil color identity, got %#v", meta.ColorIdentity)
	}
	if meta.Keywords == nil || len(meta.Keywords) != 0 {
		t.Errorf("expected empty non-nil keywords, got %#v", meta.Keywords)
	}
	if meta.Power != nil {
		t.Errorf("expected nil power, got %q", *meta.Power)
	}
	if meta.Toughness != nil {
		t.Errorf("expected nil toughness, got %q", *meta.Toughness)
	}
	if meta.Loyalty != nil {
		t.Errorf("expected nil loyalty, got %q", *meta.Loyalty)
	}
}

func TestMetadataExtractor_AllFields(t *testing.T) {
	extractor := NewMetadataExtractor()

	name := "Tarmogoyf"
	power := "*"
	toughness := "1+*"

	meta := extractor.Extract(model.ScryfallCard{
		Name:          &name,
		OracleID:      "oracle-123",
		ID:            "scryfall-456",
		ManaCost:      "{1}{G}",
		CMC:           2,
		TypeLine:      "Creature — Lhurgoyf",
		OracleText:    "Tarmogoyf's power is equal to the number of card types among cards in all graveyards.",
		Colors:        []string{"G"},
		ColorIdentity: []string{"G"},
		Keywords:      []string{},
		Power:         &power,
		Toughness:     &toughness,
	})

	if meta.Name != "Tarmogoyf" {
		t.Errorf("expected name Tarmogoyf, got %q", meta.Name)
	}
	if meta.OracleID != "oracle-123" {
		t.Errorf("expected oracle_id oracle-123, got %q", meta.OracleID)
	}
	if meta.ScryfallID != "scryfall-456" {
		t.Errorf("expected scryfall_id scryfall-456, got %q", meta.ScryfallID)
	}
	if meta.Power == nil || *meta.Power != "*" {
		t.Errorf("expected power *, got %v", meta.Power)
	}
	if meta.Toughness == nil || *meta.Toughness != "1+*" {
		t.Errorf("expected toughness 1+*, got %v", meta.Toughness)
	}
}

func TestMetadataExtractor_FractionalCMC(t *testing.T) {
	extractor := NewMetadataExtractor()

	meta := extractor.Extract(model.ScryfallCard{CMC: 0.5})

	if meta.CMC != 0.5 {
		t.Errorf("expected cmc 0.5, got %v", meta.CMC)
	}
}
