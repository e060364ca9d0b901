package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/karnai/cardir/internal/assemble"
	"github.com/karnai/cardir/internal/extract"
	"github.com/karnai/cardir/internal/model"
	"github.com/karnai/cardir/internal/tag"
)

// Generator converts raw Scryfall card records into IR records. All rule
// tables live in process-wide immutable constants, so a single Generator
// is safe to share across goroutines and conversions never observe one
// another.
type Generator struct {
	metadata  *extract.MetadataExtractor
	abilities *extract.AbilityParser
	tagger    *tag.Tagger
	assembler *assemble.Assembler
	renderer  *Renderer
}

// NewGenerator creates a new generator
func NewGenerator() *Generator {
	return &Generator{
		metadata:  extract.NewMetadataExtractor(),
		abilities: extract.NewAbilityParser(),
		tagger:    tag.NewTagger(),
		assembler: assemble.NewAssembler(),
		renderer:  NewRenderer(),
	}
}

// Renderer exposes the generator's renderer for summary output
func (g *Generator) Renderer() *Renderer {
	return g.renderer
}

// Convert converts a single raw card record into its IR. Conversion is a
// pure function of the record plus the fixed rule tables; it keeps no
// state between calls and never fails.
func (g *Generator) Convert(card model.ScryfallCard) model.CardIR {
	meta := g.metadata.Extract(card)
	abilities := g.abilities.ParseCard(card)
	tags := g.tagger.Generate(meta)

	return g.assembler.Assemble(meta, abilities, tags, card.Legalities)
}

// ConvertFile reads one Scryfall JSON file, converts it, and writes the IR
// to outputPath. Read, decode, and write failures propagate to the caller;
// there are no retries and no partial output recovery.
func (g *Generator) ConvertFile(inputPath, outputPath string) (model.CardIR, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return model.CardIR{}, fmt.Errorf("read input: %w", err)
	}

	var card model.ScryfallCard
	if err := json.Unmarshal(data, &card); err != nil {
		return model.CardIR{}, fmt.Errorf("decode card: %w", err)
	}

	ir := g.Convert(card)

	if err := g.renderer.RenderJSON(ir, outputPath); err != nil {
		return model.CardIR{}, err
	}

	return ir, nil
}
