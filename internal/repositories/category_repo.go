package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/repositories/mappers"
	"github.com/Kermitroid/outterspace2/internal/repositories/spacedb"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrCategoryNotFound 表示分类名不存在。
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository 访问 outterspace.categories。
type CategoryRepository struct {
	db      *pgxpool.Pool
	queries *spacedb.Queries
	log     *log.Helper
}

// NewCategoryRepository 构造仓储实例。
func NewCategoryRepository(db *pgxpool.Pool, logger log.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:      db,
		queries: spacedb.New(db),
		log:     log.NewHelper(logger),
	}
}

func (r *CategoryRepository) q(sess txmanager.Session) *spacedb.Queries {
	if sess != nil {
		return r.queries.WithTx(sess.Tx())
	}
	return r.queries
}

// List 按名称升序返回全部分类。
func (r *CategoryRepository) List(ctx context.Context, sess txmanager.Session) ([]po.Category, error) {
	rows, err := r.q(sess).ListCategories(ctx)
	if err != nil {
		r.log.WithContext(ctx).Errorf("list categories failed: err=%v", err)
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]po.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, mappers.CategoryFromRow(row))
	}
	return out, nil
}

// GetByName 按名称精确查找（区分大小写）。
func (r *CategoryRepository) GetByName(ctx context.Context, sess txmanager.Session, name string) (*po.Category, error) {
	row, err := r.q(sess).GetCategoryByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		r.log.WithContext(ctx).Errorf("get category failed: name=%q err=%v", name, err)
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	category := mappers.CategoryFromRow(row)
	return &category, nil
}

// Ensure 原子地查找或创建分类，created 表示本次新建。
func (r *CategoryRepository) Ensure(ctx context.Context, sess txmanager.Session, name string) (category *po.Category, created bool, err error) {
	row, err := r.q(sess).UpsertCategory(ctx, name)
	if err != nil {
		r.log.WithContext(ctx).Errorf("ensure category failed: name=%q err=%v", name, err)
		return nil, false, fmt.Errorf("ensure category: %w", err)
	}
	return &po.Category{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt.Time.UTC(),
	}, row.Inserted, nil
}
