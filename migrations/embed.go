// Package migrations 内嵌 goose 迁移脚本，供 cmd/migrate 与集成测试复用。
package migrations

import "embed"

// FS 包含全部 *.sql 迁移文件。
//
//go:embed *.sql
var FS embed.FS
