package pantry

import (
	"Pantry-Tracker/entities"
	"Pantry-Tracker/internal/utils/dbtest"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPantryEntryConnectsOrCreatesInOneTransaction(t *testing.T) {
	db, rec := dbtest.DryRun(t)
	repo := NewPantryRepository(db)

	entry := &entities.PantryEntry{ExpiryDate: date(2024, time.March, 17)}
	require.NoError(t, repo.AddPantryEntry(context.Background(), "Milk", entry))

	statements := rec.Statements()
	require.Len(t, statements, 3)

	lookup := statements[0].SQL
	assert.True(t, strings.HasPrefix(lookup, `SELECT * FROM "products" WHERE "products"."name" = $1`), lookup)
	assert.Contains(t, statements[0].Vars, "Milk")

	assert.Contains(t, statements[1].SQL, `INSERT INTO "products"`)
	assert.Contains(t, statements[1].Vars, "Milk")

	assert.Contains(t, statements[2].SQL, `INSERT INTO "pantry_entries"`)
	assert.Contains(t, statements[2].Vars, date(2024, time.March, 17))

	begun, committed, rolledBack := rec.Transactions()
	assert.Equal(t, 1, begun)
	assert.Equal(t, 1, committed)
	assert.Zero(t, rolledBack)

	require.NotNil(t, entry.Product)
	assert.Equal(t, "Milk", entry.Product.Name)
}

func TestPantryReadsLoadRelationsExplicitly(t *testing.T) {
	db, rec := dbtest.DryRun(t)
	repo := NewPantryRepository(db)
	ctx := context.Background()

	_, err := repo.GetPantryEntriesWithProduct(ctx)
	require.NoError(t, err)
	stmt, ok := rec.Find(`FROM "pantry_entries"`)
	require.True(t, ok)
	assert.Contains(t, stmt.SQL, "ORDER BY id asc")
	assert.ElementsMatch(t, []string{"Product", "Product.Shoppables"}, stmt.Preloads)
}

func TestGetPantryEntryWithProduct(t *testing.T) {
	db, rec := dbtest.DryRun(t)

	_, err := NewPantryRepository(db).GetPantryEntryWithProduct(context.Background(), 4)
	require.NoError(t, err)

	stmt, ok := rec.Find(`FROM "pantry_entries"`)
	require.True(t, ok)
	assert.Contains(t, stmt.SQL, "WHERE id = $1")
	assert.Contains(t, stmt.Vars, int64(4))
	assert.Equal(t, []string{"Product"}, stmt.Preloads)
}

func TestGetPantryEntriesExpiringByComparesDates(t *testing.T) {
	db, rec := dbtest.DryRun(t)

	_, err := NewPantryRepository(db).GetPantryEntriesExpiringBy(context.Background(), date(2024, time.March, 17))
	require.NoError(t, err)

	stmt, ok := rec.Find(`FROM "pantry_entries"`)
	require.True(t, ok)
	assert.Contains(t, stmt.SQL, "WHERE expiry_date <= $1")
	assert.Contains(t, stmt.SQL, "ORDER BY expiry_date asc")
	assert.Equal(t, []any{"2024-03-17"}, stmt.Vars)
}

func TestPantryWrites(t *testing.T) {
	db, rec := dbtest.DryRun(t)
	repo := NewPantryRepository(db)
	ctx := context.Background()

	_, err := repo.MarkPantryEntryOpened(ctx, 9)
	require.NoError(t, err)
	stmt, ok := rec.Find(`UPDATE "pantry_entries"`)
	require.True(t, ok)
	assert.Contains(t, stmt.SQL, `"opened"=$1`)
	assert.Contains(t, stmt.SQL, "WHERE id = ")
	assert.Equal(t, true, stmt.Vars[0])

	_, err = repo.DeletePantryEntry(ctx, 9)
	require.NoError(t, err)
	stmt, ok = rec.Find(`DELETE FROM "pantry_entries"`)
	require.True(t, ok)
	assert.Contains(t, stmt.SQL, "WHERE id = $1")
	assert.Equal(t, []any{int64(9)}, stmt.Vars)
}
