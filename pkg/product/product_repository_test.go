package product

import (
	"Pantry-Tracker/entities"
	"Pantry-Tracker/internal/utils/dbtest"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchProductsEscapesLikePattern(t *testing.T) {
	tests := []struct {
		search  string
		pattern string
	}{
		{"mil", "%mil%"},
		{"50%_off", `%50\%\_off%`},
		{`a\b`, `%a\\b%`},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			db, rec := dbtest.DryRun(t)
			repo := NewProductRepository(db)

			_, err := repo.SearchProducts(context.Background(), tt.search)
			require.NoError(t, err)

			stmt, ok := rec.Find(`FROM "products"`)
			require.True(t, ok)
			assert.Contains(t, stmt.SQL, `WHERE name LIKE $1 ESCAPE '\'`)
			assert.Contains(t, stmt.SQL, "ORDER BY id asc")
			require.NotEmpty(t, stmt.Vars)
			assert.Equal(t, tt.pattern, stmt.Vars[0])
		})
	}
}

func TestGetProductsOrdersByID(t *testing.T) {
	db, rec := dbtest.DryRun(t)

	_, err := NewProductRepository(db).GetProducts(context.Background())
	require.NoError(t, err)

	stmt, ok := rec.Find(`FROM "products"`)
	require.True(t, ok)
	assert.NotContains(t, stmt.SQL, "WHERE")
	assert.Contains(t, stmt.SQL, "ORDER BY id asc")
}

func TestProductWrites(t *testing.T) {
	db, rec := dbtest.DryRun(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateProduct(ctx, &entities.Product{Name: "Milk"}))
	stmt, ok := rec.Find(`INSERT INTO "products"`)
	require.True(t, ok)
	assert.Contains(t, stmt.Vars, "Milk")

	image := "https://example.com/milk.png"
	_, err := repo.UpdateExternalImage(ctx, 7, &image)
	require.NoError(t, err)
	stmt, ok = rec.Find(`UPDATE "products"`)
	require.True(t, ok)
	assert.Contains(t, stmt.SQL, `"external_image"=$1`)
	assert.Contains(t, stmt.SQL, "WHERE id = ")
	assert.Contains(t, stmt.Vars, int64(7))

	_, err = repo.DeleteProduct(ctx, 7)
	require.NoError(t, err)
	stmt, ok = rec.Find(`DELETE FROM "products"`)
	require.True(t, ok)
	assert.Contains(t, stmt.SQL, "WHERE id = $1")
	assert.Equal(t, []any{int64(7)}, stmt.Vars)
}
