//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestPartner(t *testing.T, db DBLike, name string, approved bool) uuid.UUID {
	t.Helper()

	partnerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO partners (id, name, approved) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING",
		partnerID, name, approved)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM partners WHERE name = $1", name).Scan(&partnerID)
	}

	return partnerID
}

func CreateTestUser(t *testing.T, db DBLike, email, role string, partnerID *uuid.UUID) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, partner_id, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role, partnerID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestBrand(t *testing.T, db DBLike, slug, name string) uuid.UUID {
	t.Helper()

	brandID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO brands (id, slug, name) VALUES ($1, $2, $3) ON CONFLICT (slug) DO NOTHING",
		brandID, slug, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM brands WHERE slug = $1", slug).Scan(&brandID)
	}

	return brandID
}

func CreateTestCategory(t *testing.T, db DBLike, brandID uuid.UUID, path, name string) uuid.UUID {
	t.Helper()

	categoryID := uuid.New()
	depth := strings.Count(path, "/")
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO categories (id, brand_id, path, depth, name) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (brand_id, path) DO NOTHING",
		categoryID, brandID, path, depth, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM categories WHERE brand_id = $1 AND path = $2", brandID, path).Scan(&categoryID)
	}

	return categoryID
}

func CreateTestProduct(t *testing.T, db DBLike, brandSlug, name, sku string, priceCents *int64, categoryIDs ...uuid.UUID) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO products (id, brand_slug, name, sku, price_cents) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (sku) DO NOTHING",
		productID, brandSlug, name, sku, priceCents)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM products WHERE sku = $1", sku).Scan(&productID)
	}

	for _, categoryID := range categoryIDs {
		_, err := db.Exec(ctx, "INSERT INTO product_categories (product_id, category_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			productID, categoryID)
		require.NoError(t, err)
	}

	return productID
}

func CreateTestDiscountRule(t *testing.T, db DBLike, partnerID uuid.UUID, appliesTo string, brandSlug *string, categoryID, productID *uuid.UUID, discountType string, value float64) uuid.UUID {
	t.Helper()

	ruleID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO discount_rules
		(id, partner_id, applies_to, brand_slug, category_id, product_id, discount_type, discount_value, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true)`,
		ruleID, partnerID, appliesTo, brandSlug, categoryID, productID, discountType, value)
	require.NoError(t, err)

	return ruleID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO partners (id, name, approved) VALUES
		    (gen_random_uuid(), 'Default Partner', true)
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO brands (id, slug, name) VALUES
		    (gen_random_uuid(), 'rational', 'Rational'),
		    (gen_random_uuid(), 'winterhalter', 'Winterhalter')
		ON CONFLICT (slug) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
