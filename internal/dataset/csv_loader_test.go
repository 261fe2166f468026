package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestCSVLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "material_master.csv",
		"part_id,part_name,part_type,used_in_models\n"+
			"P1,Frame,Mechanical,\"S1_V1, S2_V1\"\n"+
			",Orphan,Mechanical,\n")
	writeTable(t, dir, "stock_levels.csv",
		"part_id,quantity_available,location\n"+
			"P1,40,WH1\n"+
			"P2,bad,WH1\n"+
			"P3,-5,WH2\n")
	writeTable(t, dir, "dispatch_parameters.csv",
		"part_id,min_stock_level,reorder_quantity,reorder_interval_days\n"+
			"P1,100,50,7\n")
	writeTable(t, dir, "stock_movements.csv",
		"part_id,quantity,type,date\n"+
			"P1,20,consumption,2024-01-01\n"+
			"P1,30,consumption,01/11/2024\n"+
			"P1,10,consumption,not-a-date\n")
	writeTable(t, dir, "material_orders.csv",
		"order_id,part_id,supplier_id,quantity_ordered,status,order_date,expected_delivery_date,actual_delivered_at\n"+
			"O1,P1,S1,30,Pending,2024-01-01,2024-01-15,\n")

	snap, err := NewCSVLoader(dir).Load(context.Background())
	require.NoError(t, err)

	assert.True(t, snap.Has(TableMaterials))
	assert.True(t, snap.Has(TableStockLevels))
	assert.True(t, snap.Has(TableDispatchParameters))
	assert.True(t, snap.Has(TableStockMovements))
	assert.True(t, snap.Has(TableMaterialOrders))
	assert.False(t, snap.Has(TableSuppliers))
	assert.False(t, snap.Has(TableSalesOrders))

	// the row without a part_id is dropped
	require.Len(t, snap.Materials(), 1)
	assert.Equal(t, []string{"S1_V1", "S2_V1"}, snap.Materials()[0].UsedInModels)

	// the row with a malformed quantity is dropped, negatives are kept
	require.Len(t, snap.StockLevels(), 2)
	stock, ok := snap.StockLevel("P3")
	require.True(t, ok)
	assert.InDelta(t, -5.0, stock.QuantityAvailable, 1e-9)

	// both supported date layouts parse; the bad date leaves a zero time
	movements := snap.StockMovements()
	require.Len(t, movements, 3)
	assert.False(t, movements[0].Date.IsZero())
	assert.False(t, movements[1].Date.IsZero())
	assert.True(t, movements[2].Date.IsZero())

	orders := snap.PendingOrders("P1")
	require.Len(t, orders, 1)
	require.NotNil(t, orders[0].ExpectedDeliveryDate)
	assert.Nil(t, orders[0].ActualDeliveredAt)
}

func TestCSVLoaderMissingDir(t *testing.T) {
	_, err := NewCSVLoader(filepath.Join(t.TempDir(), "nope")).Load(context.Background())
	assert.Error(t, err)
}

func TestCSVLoaderEmptyDirYieldsAbsentTables(t *testing.T) {
	snap, err := NewCSVLoader(t.TempDir()).Load(context.Background())
	require.NoError(t, err)

	for _, table := range []string{
		TableMaterials, TableStockLevels, TableMaterialOrders,
		TableSalesOrders, TableSuppliers, TableStockMovements, TableDispatchParameters,
	} {
		assert.False(t, snap.Has(table), "table %s", table)
	}
}
