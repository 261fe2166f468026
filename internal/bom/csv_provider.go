package bom

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/voltworks/inventory-engine/internal/domain"
)

// LoadCSV reads a BOM table with columns (model, part_id, quantity) and
// returns a provider preserving per-model line order. Rows with a malformed
// quantity are dropped.
func LoadCSV(path string) (*MemoryProvider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bom file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return NewMemoryProvider(nil), nil
	}

	idx := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, required := range []string{"model", "part_id", "quantity"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("bom file %s missing column %q", filepath.Base(path), required)
		}
	}

	field := func(rec []string, col string) string {
		i := idx[col]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	specs := make(map[string][]domain.BOMLine)
	for _, rec := range records[1:] {
		model := field(rec, "model")
		partID := field(rec, "part_id")
		if model == "" || partID == "" {
			continue
		}
		qty, err := strconv.ParseFloat(field(rec, "quantity"), 64)
		if err != nil {
			log.Debug().Str("model", model).Str("part_id", partID).Msg("dropping bom line with bad quantity")
			continue
		}
		specs[model] = append(specs[model], domain.BOMLine{PartID: partID, Quantity: qty})
	}

	provider := NewMemoryProvider(specs)
	log.Info().Int("models", len(specs)).Str("file", filepath.Base(path)).Msg("boms loaded")
	return provider, nil
}
