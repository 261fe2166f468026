package bom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltworks/inventory-engine/internal/domain"
)

func TestNormalizeModel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"S1_V1", "S1V1"},
		{"s1 v1", "S1V1"},
		{"S1-V1", "S1V1"},
		{"  s1_v1  ", "S1V1"},
		{"S1V1", "S1V1"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeModel(tt.in), "input %q", tt.in)
	}
}

func TestMemoryProvider(t *testing.T) {
	provider := NewMemoryProvider(map[string][]domain.BOMLine{
		"S1_V1": {{PartID: "P1", Quantity: 2}},
		"S2_V1": {{PartID: "P2", Quantity: 1}},
	})

	lines, ok := provider.BOM("s1 v1")
	require.True(t, ok)
	require.Len(t, lines, 1)
	assert.Equal(t, "P1", lines[0].PartID)

	_, ok = provider.BOM("S9_V9")
	assert.False(t, ok)

	assert.Equal(t, []string{"S1_V1", "S2_V1"}, provider.Models())
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boms.csv")
	content := "model,part_id,quantity\n" +
		"S1_V1,P1,2\n" +
		"S1_V1,P2,4\n" +
		"S1_V1,P3,not-a-number\n" +
		"S2_V1,P1,1\n" +
		",P4,1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	provider, err := LoadCSV(path)
	require.NoError(t, err)

	lines, ok := provider.BOM("S1_V1")
	require.True(t, ok)
	// the malformed row is dropped, line order is preserved
	require.Len(t, lines, 2)
	assert.Equal(t, domain.BOMLine{PartID: "P1", Quantity: 2}, lines[0])
	assert.Equal(t, domain.BOMLine{PartID: "P2", Quantity: 4}, lines[1])

	assert.Equal(t, []string{"S1_V1", "S2_V1"}, provider.Models())
}

func TestLoadCSVMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boms.csv")
	require.NoError(t, os.WriteFile(path, []byte("model,part_id\nS1,P1\n"), 0644))

	_, err := LoadCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "quantity"`)
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
