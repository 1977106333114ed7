// Package services 编排视频目录、互动、评论、历史与会话用例。
// 该层只依赖本包声明的仓储接口与事务管理器，不感知传输层。
package services

import "github.com/google/wire"

// ProviderSet 暴露 Services 层构造函数，接口到实现的绑定在 cmd 的 wire.go 中完成。
var ProviderSet = wire.NewSet(
	NewCategoryService,
	NewVideoService,
	NewCommentService,
	NewInteractionService,
	NewHistoryService,
	NewLibraryService,
	NewSessionService,
	NewStorageService,
)
