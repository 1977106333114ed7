package objectstore

import "github.com/google/wire"

// ProviderSet 提供本地对象存储。
var ProviderSet = wire.NewSet(NewStore)
