package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Anish-A1/pricewise/models"
)

const (
	createUser = `INSERT INTO users (user_id, name, email, password)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, name, email, password, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password, created_at
    FROM users
    WHERE user_id = $1;`

	findProductByID = `SELECT product_id, url, name, image, description, website,
        current_price, lowest_price, highest_price, rating, price_variations
    FROM products
    WHERE product_id = $1;`

	findProductByURL = `SELECT product_id, url, name, image, description, website,
        current_price, lowest_price, highest_price, rating, price_variations
    FROM products
    WHERE url = $1;`

	insertTrackingRecord = `INSERT INTO tracked (user_id, email)
    VALUES ($1, $2)
    ON CONFLICT (user_id) DO NOTHING;`

	insertTrackedProduct = `INSERT INTO tracked_products (user_id, product_id, date_tracked, track_price)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (user_id, product_id) DO NOTHING;`

	findTrackingRecord = `SELECT user_id, email
    FROM tracked
    WHERE user_id = $1;`

	findTrackedProducts = `SELECT product_id, date_tracked, track_price, notified_at
    FROM tracked_products
    WHERE user_id = $1
    ORDER BY id;`

	updateTrackPrice = `UPDATE tracked_products
    SET track_price = $3, date_tracked = $4, notified_at = NULL
    WHERE user_id = $1 AND product_id = $2;`

	deleteTrackedProduct = `DELETE FROM tracked_products
    WHERE user_id = $1 AND product_id = $2;`

	trackingRecordExists = `SELECT EXISTS (SELECT 1 FROM tracked WHERE user_id = $1);`

	findDueAlerts = `SELECT tp.user_id, t.email, u.name, tp.product_id, p.name, p.url, p.current_price, tp.track_price
    FROM tracked_products tp
    JOIN tracked t ON t.user_id = tp.user_id
    JOIN users u ON u.user_id = tp.user_id
    JOIN products p ON p.product_id = tp.product_id
    WHERE tp.notified_at IS NULL AND p.current_price < tp.track_price
    ORDER BY tp.id
    LIMIT $1;`

	markNotified = `UPDATE tracked_products
    SET notified_at = $3
    WHERE user_id = $1 AND product_id = $2;`
)

var productColumns = []string{
	"product_id", "url", "name", "image", "description", "website",
	"current_price", "lowest_price", "highest_price", "rating", "price_variations",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListProductsQuery selects the first limit products in insertion order.
func buildListProductsQuery(limit int) (string, []any, error) {
	if limit <= 0 {
		return "", nil, fmt.Errorf("%w: limit must be positive", ErrBuildingSQLQuery)
	}

	query, args, err := psql.
		Select(productColumns...).
		From(models.Product{}.TableName()).
		OrderBy("created_at", "product_id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildProductsByIDsQuery selects the products whose id is in ids.
func buildProductsByIDsQuery(ids []string) (string, []any, error) {
	if len(ids) == 0 {
		return "", nil, fmt.Errorf("%w: empty id list", ErrBuildingSQLQuery)
	}

	query, args, err := psql.
		Select(productColumns...).
		From(models.Product{}.TableName()).
		Where(sq.Eq{"product_id": ids}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
