package extract

import (
	"github.com/karnai/cardir/internal/model"
)

// MetadataExtractor normalizes raw Scryfall records into canonical metadata
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new metadata extractor
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// Extract builds the metadata record from a raw card. There is no
// validation beyond defaulting: absent strings become "", absent lists
// become empty, an absent cmc becomes 0, and power/toughness/loyalty stay
// null. Extraction never fails.
func (e *MetadataExtractor) Extract(card model.ScryfallCard) model.CardMetadata {
	return model.CardMetadata{
		Name:          stringOrEmpty(card.Name),
		OracleID:      card.OracleID,
		ScryfallID:    card.ID,
		ManaCost:      card.ManaCost,
		CMC:           card.CMC,
		TypeLine:      card.TypeLine,
		OracleText:    card.OracleText,
		Colors:        emptyIfNil(card.Colors),
		ColorIdentity: emptyIfNil(card.ColorIdentity),
		Keywords:      emptyIfNil(card.Keywords),
		Power:         card.Power,
		Toughness:     card.Toughness,
		Loyalty:       card.Loyalty,
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// emptyIfNil keeps list fields serializable as [] rather than null
func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
