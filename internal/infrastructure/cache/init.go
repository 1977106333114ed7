package cache

import "github.com/google/wire"

// ProviderSet 暴露 Redis 客户端与分类缓存。
var ProviderSet = wire.NewSet(NewClient, NewCategoryCache)
