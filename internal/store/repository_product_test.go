package store

import (
	"context"
	"errors"
	"testing"

	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/models"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows(productColumns)
}

func TestFindProductByURL_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProductRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM products WHERE url = \\$1").
		WithArgs("https://shop/item").
		WillReturnRows(productRows().AddRow(
			"p1", "https://shop/item", "Phone", "img.png", "desc", "shop",
			999.0, 899.0, 1099.0, 4.5,
			[]byte(`[{"price":1099,"date":"2024-09-01"},{"price":999,"date":"2024-10-01"}]`),
		))

	product, err := repo.FindProductByURL(context.Background(), "https://shop/item")

	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
	assert.Equal(t, 999.0, product.CurrentPrice)
	require.NotNil(t, product.Rating)
	assert.Equal(t, 4.5, *product.Rating)
	assert.Equal(t, []models.PriceSample{
		{Price: 1099, Date: "2024-09-01"},
		{Price: 999, Date: "2024-10-01"},
	}, product.PriceVariations)
}

func TestFindProductByID_NullRatingAndEmptyHistory(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProductRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM products WHERE product_id = \\$1").
		WithArgs("p1").
		WillReturnRows(productRows().AddRow("p1", "u", "n", "", "", "", 1.0, 1.0, 1.0, nil, []byte(`[]`)))

	product, err := repo.FindProductByID(context.Background(), "p1")

	require.NoError(t, err)
	assert.Nil(t, product.Rating)
	assert.NotNil(t, product.PriceVariations)
	assert.Empty(t, product.PriceVariations)
}

func TestFindProductByID_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProductRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM products").WillReturnRows(productRows())

	_, err := repo.FindProductByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFindProductByID_CorruptedHistory(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProductRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM products").
		WillReturnRows(productRows().AddRow("p1", "u", "n", "", "", "", 1.0, 1.0, 1.0, nil, []byte(`{`)))

	_, err := repo.FindProductByID(context.Background(), "p1")

	assert.ErrorIs(t, err, ErrDecodingDocument)
}

func TestListProducts(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProductRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM products ORDER BY created_at, product_id LIMIT 10").
		WillReturnRows(productRows().
			AddRow("p1", "u1", "A", "", "", "", 1.0, 1.0, 1.0, nil, []byte(`[]`)).
			AddRow("p2", "u2", "B", "", "", "", 2.0, 2.0, 2.0, nil, []byte(`[]`)))

	products, err := repo.ListProducts(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p2", products[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListProducts_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProductRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM products").WillReturnError(errors.New("boom"))

	_, err := repo.ListProducts(context.Background(), 10)

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindProductsByIDs(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProductRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM products WHERE product_id IN \\(\\$1,\\$2\\)").
		WithArgs("p1", "p2").
		WillReturnRows(productRows().AddRow("p1", "u1", "A", "", "", "", 1.0, 1.0, 1.0, nil, []byte(`[]`)))

	products, err := repo.FindProductsByIDs(context.Background(), []string{"p1", "p2"})

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestFindProductsByIDs_Empty(t *testing.T) {
	db, _ := newTestDB(t)
	repo := NewProductRepository(db, logger.Nop())

	products, err := repo.FindProductsByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, products)
}
