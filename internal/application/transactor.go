// Package application 定义应用层用例的公共依赖契约。
package application

import "context"

// Transactor 在单个数据库事务中执行fn
// fn收到的ctx携带事务句柄，仓储方法通过它参与同一事务；
// fn返回错误时整个事务回滚。mysql.TxManager是生产实现。
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
