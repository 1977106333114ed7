// Package spacedb 提供 outterspace schema 的类型化查询，风格与 sqlc 生成代码保持一致：
// 每个查询对应一个 SQL 常量与一个方法，Params/Row 结构直接使用 pgtype。
package spacedb

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX 同时被 *pgxpool.Pool、*pgx.Conn 与 pgx.Tx 满足。
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// New 构造 Queries。
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries 聚合所有查询方法。
type Queries struct {
	db DBTX
}

// WithTx 返回绑定到事务的 Queries。
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{
		db: tx,
	}
}
