package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/karnai/cardir/internal/model"
)

// Renderer writes IR records to disk and prints human-readable summaries
type Renderer struct{}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes the record as two-space-indented JSON. HTML escaping
// is disabled so card text round-trips verbatim.
func (r *Renderer) RenderJSON(ir model.CardIR, path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(ir); err != nil {
		return fmt.Errorf("encode ir: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write ir: %w", err)
	}

	return nil
}

// RenderSummary prints a one-card summary of the generated record
func (r *Renderer) RenderSummary(ir model.CardIR, w io.Writer) {
	name := ir.CardMetadata.Name
	if name == "" {
		name = "(unnamed card)"
	}

	fmt.Fprintf(w, "✓ %s\n", name)
	fmt.Fprintf(w, "  Type:       %s\n", valueOrDash(ir.CardMetadata.TypeLine))
	fmt.Fprintf(w, "  Abilities:  %s\n", abilitySummary(ir.ParsedAbilities))
	fmt.Fprintf(w, "  Tags:       %s\n", valueOrDash(strings.Join(ir.StrategicTags.FlattenedTags, ", ")))
	fmt.Fprintf(w, "  Archetypes: %s\n", valueOrDash(strings.Join(ir.StrategicTags.ArchetypeHints, ", ")))
}

func abilitySummary(abilities []model.Ability) string {
	if len(abilities) == 0 {
		return "none"
	}

	kinds := make([]string, 0, len(abilities))
	for _, ability := range abilities {
		kinds = append(kinds, string(ability.AbilityType))
	}
	return strings.Join(kinds, ", ")
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
