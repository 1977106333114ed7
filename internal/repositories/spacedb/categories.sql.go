package spacedb

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const listCategories = `
SELECT id, name, created_at
FROM outterspace.categories
ORDER BY name ASC
`

func (q *Queries) ListCategories(ctx context.Context) ([]OutterspaceCategory, error) {
	rows, err := q.db.Query(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OutterspaceCategory
	for rows.Next() {
		var i OutterspaceCategory
		if err := rows.Scan(&i.ID, &i.Name, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getCategoryByName = `
SELECT id, name, created_at
FROM outterspace.categories
WHERE name = $1
`

func (q *Queries) GetCategoryByName(ctx context.Context, name string) (OutterspaceCategory, error) {
	row := q.db.QueryRow(ctx, getCategoryByName, name)
	var i OutterspaceCategory
	err := row.Scan(&i.ID, &i.Name, &i.CreatedAt)
	return i, err
}

const upsertCategory = `
INSERT INTO outterspace.categories (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id, name, created_at, (xmax = 0) AS inserted
`

type UpsertCategoryRow struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	Inserted  bool               `json:"inserted"`
}

// UpsertCategory 按名称查找或创建分类，Inserted 表示本次是否新建。
func (q *Queries) UpsertCategory(ctx context.Context, name string) (UpsertCategoryRow, error) {
	row := q.db.QueryRow(ctx, upsertCategory, name)
	var i UpsertCategoryRow
	err := row.Scan(&i.ID, &i.Name, &i.CreatedAt, &i.Inserted)
	return i, err
}
