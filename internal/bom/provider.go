// Package bom resolves finished-product models to their bills of materials.
package bom

import (
	"sort"
	"strings"

	"github.com/voltworks/inventory-engine/internal/domain"
)

// Provider resolves a model identifier to its ordered BOM lines.
type Provider interface {
	// BOM returns the lines for a model, or false if the model is unknown.
	// Lookup tolerates case and separator variants of the identifier.
	BOM(model string) ([]domain.BOMLine, bool)

	// Models lists all known model identifiers as declared by the source.
	Models() []string
}

// NormalizeModel canonicalizes a model identifier for lookup: upper-case
// with space, underscore and hyphen separators stripped. Upstream systems
// format the same model inconsistently ("S1_V1", "s1 v1", "S1-V1").
func NormalizeModel(model string) string {
	upper := strings.ToUpper(strings.TrimSpace(model))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, upper)
}

// MemoryProvider serves BOMs from an in-memory map.
type MemoryProvider struct {
	names map[string]string // normalized -> declared name
	boms  map[string][]domain.BOMLine
}

// NewMemoryProvider builds a provider over declared model -> lines pairs.
// Later duplicates of the same normalized model are ignored.
func NewMemoryProvider(specs map[string][]domain.BOMLine) *MemoryProvider {
	p := &MemoryProvider{
		names: make(map[string]string, len(specs)),
		boms:  make(map[string][]domain.BOMLine, len(specs)),
	}
	for model, lines := range specs {
		key := NormalizeModel(model)
		if _, exists := p.boms[key]; exists {
			continue
		}
		p.names[key] = model
		p.boms[key] = lines
	}
	return p
}

func (p *MemoryProvider) BOM(model string) ([]domain.BOMLine, bool) {
	lines, ok := p.boms[NormalizeModel(model)]
	return lines, ok
}

func (p *MemoryProvider) Models() []string {
	models := make([]string, 0, len(p.names))
	for _, name := range p.names {
		models = append(models, name)
	}
	sort.Strings(models)
	return models
}
