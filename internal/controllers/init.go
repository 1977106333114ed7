// Package controllers 提供 HTTP Handler，负责参数解析、身份提取并调用业务层。
package controllers

import "github.com/google/wire"

// ProviderSet exposes controller/handler constructors for DI.
var ProviderSet = wire.NewSet(
	NewBaseHandler,
	NewVideoHandler,
	NewCommentHandler,
	NewInteractionHandler,
	NewLibraryHandler,
	NewSessionHandler,
	NewStorageHandler,
	NewRoutes,
)
