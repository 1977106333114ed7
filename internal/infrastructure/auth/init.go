package auth

import "github.com/google/wire"

// ProviderSet 暴露令牌签发与 Cookie 存储。
var ProviderSet = wire.NewSet(NewIssuer, NewCookieStore)
