package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/models/vo"
	"github.com/Kermitroid/outterspace2/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
)

// CategoryRepository 抽象分类仓储。
type CategoryRepository interface {
	List(ctx context.Context, sess txmanager.Session) ([]po.Category, error)
	GetByName(ctx context.Context, sess txmanager.Session, name string) (*po.Category, error)
	Ensure(ctx context.Context, sess txmanager.Session, name string) (*po.Category, bool, error)
}

// CategoryCache 缓存完整分类列表；实现需自行吞掉后端错误。
type CategoryCache interface {
	Get(ctx context.Context) ([]po.Category, bool)
	Set(ctx context.Context, categories []po.Category)
	Invalidate(ctx context.Context)
}

// CategoryService 提供分类列表与按名查找/创建。
type CategoryService struct {
	repo  CategoryRepository
	cache CategoryCache
	log   *log.Helper
}

// NewCategoryService 构造 CategoryService，cache 可为 nil。
func NewCategoryService(repo CategoryRepository, cache CategoryCache, logger log.Logger) *CategoryService {
	return &CategoryService{
		repo:  repo,
		cache: cache,
		log:   log.NewHelper(logger),
	}
}

// ListCategories 返回以 All 开头、其余按名称排序的分类；读取失败时只返回 All。
func (s *CategoryService) ListCategories(ctx context.Context) []vo.Category {
	if s.cache != nil {
		if rows, ok := s.cache.Get(ctx); ok {
			return vo.CategoriesWithAll(rows)
		}
	}
	rows, err := s.repo.List(ctx, nil)
	if err != nil {
		s.log.WithContext(ctx).Errorf("list categories failed: err=%v", err)
		return []vo.Category{vo.AllCategory()}
	}
	if s.cache != nil {
		s.cache.Set(ctx, rows)
	}
	return vo.CategoriesWithAll(rows)
}

// FindCategory 按名称精确查找（区分大小写），不存在时返回 repositories.ErrCategoryNotFound。
func (s *CategoryService) FindCategory(ctx context.Context, sess txmanager.Session, name string) (*po.Category, error) {
	return s.repo.GetByName(ctx, sess, name)
}

// EnsureCategory 查找或创建分类，created 表示本次新建。
// 新建后调用方应在事务提交后调用 InvalidateCache。
func (s *CategoryService) EnsureCategory(ctx context.Context, sess txmanager.Session, name string) (*po.Category, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, ValidationError("category name is required")
	}
	category, created, err := s.repo.Ensure(ctx, sess, name)
	if err != nil {
		return nil, false, storeFailure("ensure category", err)
	}
	if created {
		s.log.WithContext(ctx).Infof("category created: name=%s id=%s", category.Name, category.ID)
	}
	return category, created, nil
}

// InvalidateCache 丢弃缓存的分类列表。
func (s *CategoryService) InvalidateCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func isCategoryNotFound(err error) bool {
	return errors.Is(err, repositories.ErrCategoryNotFound)
}
