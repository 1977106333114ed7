// Package cache 基于 Redis 缓存分类列表；未配置 Redis 时退化为空操作。
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Kermitroid/outterspace2/internal/models/po"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const categoriesKey = "categories:v1"

// Config 描述 Redis 连接与分类缓存策略。
type Config struct {
	URL         string
	KeyPrefix   string
	CategoryTTL time.Duration
	DialTimeout time.Duration
}

// NewClient 按 URL 建立 Redis 连接并 Ping；URL 为空时返回 nil 客户端。
func NewClient(ctx context.Context, cfg Config, logger log.Logger) (*redis.Client, func(), error) {
	helper := log.NewHelper(logger)
	if cfg.URL == "" {
		helper.Info("redis not configured; category cache disabled")
		return nil, func() {}, nil
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}
	helper.Infof("redis connected: addr=%s db=%d", opts.Addr, opts.DB)
	cleanup := func() {
		if err := client.Close(); err != nil {
			helper.Warnf("close redis failed: %v", err)
		}
	}
	return client, cleanup, nil
}

type cachedCategory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (c cachedCategory) toPO() (po.Category, error) {
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return po.Category{}, fmt.Errorf("category id %q: %w", c.ID, err)
	}
	return po.Category{ID: id, Name: c.Name, CreatedAt: c.CreatedAt}, nil
}

// CategoryCache 以 JSON 保存分类行。读写错误只记日志，调用方按未命中处理。
type CategoryCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	log    *log.Helper
}

// NewCategoryCache 构造 CategoryCache，client 为 nil 时所有操作为空操作。
func NewCategoryCache(client *redis.Client, cfg Config, logger log.Logger) *CategoryCache {
	key := categoriesKey
	if cfg.KeyPrefix != "" {
		key = cfg.KeyPrefix + ":" + categoriesKey
	}
	return &CategoryCache{
		client: client,
		key:    key,
		ttl:    cfg.CategoryTTL,
		log:    log.NewHelper(logger),
	}
}

// Get 读取缓存。
func (c *CategoryCache) Get(ctx context.Context) ([]po.Category, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WithContext(ctx).Warnf("read category cache failed: key=%s err=%v", c.key, err)
		}
		return nil, false
	}
	var items []cachedCategory
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.WithContext(ctx).Warnf("decode category cache failed: key=%s err=%v", c.key, err)
		return nil, false
	}
	out := make([]po.Category, 0, len(items))
	for _, item := range items {
		cat, err := item.toPO()
		if err != nil {
			c.log.WithContext(ctx).Warnf("decode category cache failed: key=%s err=%v", c.key, err)
			return nil, false
		}
		out = append(out, cat)
	}
	return out, true
}

// Set 写入缓存。
func (c *CategoryCache) Set(ctx context.Context, categories []po.Category) {
	if c == nil || c.client == nil {
		return
	}
	items := make([]cachedCategory, 0, len(categories))
	for _, cat := range categories {
		items = append(items, cachedCategory{ID: cat.ID.String(), Name: cat.Name, CreatedAt: cat.CreatedAt})
	}
	raw, err := json.Marshal(items)
	if err != nil {
		c.log.WithContext(ctx).Warnf("encode category cache failed: err=%v", err)
		return
	}
	if err := c.client.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		c.log.WithContext(ctx).Warnf("write category cache failed: key=%s err=%v", c.key, err)
	}
}

// Invalidate 删除缓存。
func (c *CategoryCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		c.log.WithContext(ctx).Warnf("invalidate category cache failed: key=%s err=%v", c.key, err)
	}
}
