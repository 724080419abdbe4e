package menu

import (
	"context"
	"fmt"
	"strings"

	"feldiserhof/internal/adapters/storage"
	domain "feldiserhof/internal/domain/menu"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new MenuStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// ListCategories retrieves all categories with their items, both in display
// order.
// POST: Returns the full menu
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, position FROM menu_category ORDER BY position, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	byID := map[string]int{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Position); err != nil {
			return nil, err
		}
		byID[c.ID] = len(categories)
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := s.db.QueryContext(ctx,
		`SELECT id, category_id, name, price, price_text, description, tags, allergens
		 FROM menu_item ORDER BY category_id, position`)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item domain.Item
		var categoryID, tags, allergens string
		if err := itemRows.Scan(&item.ID, &categoryID, &item.Name, &item.Price,
			&item.PriceText, &item.Description, &tags, &allergens); err != nil {
			return nil, err
		}
		item.Tags = splitList(tags)
		item.Allergens = splitList(allergens)
		if idx, ok := byID[categoryID]; ok {
			categories[idx].Items = append(categories[idx].Items, item)
		}
	}
	return categories, itemRows.Err()
}

// ReplaceAll swaps the entire menu in one transaction. The admin editor
// posts the whole menu at once; last write wins.
// PRE: every category has been validated
// POST: The stored menu equals the given categories
func (s *SQLiteStore) ReplaceAll(ctx context.Context, categories []domain.Category) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin menu replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM menu_item"); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM menu_category"); err != nil {
		return err
	}

	for ci, c := range categories {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO menu_category (id, name, position) VALUES (?, ?, ?)",
			c.ID, c.Name, ci,
		); err != nil {
			return err
		}
		for ii, item := range c.Items {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO menu_item (id, category_id, name, price, price_text, description, tags, allergens, position)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				item.ID, c.ID, item.Name, item.Price, item.PriceText,
				item.Description, joinList(item.Tags), joinList(item.Allergens), ii,
			); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func joinList(values []string) string {
	return strings.Join(values, ",")
}
