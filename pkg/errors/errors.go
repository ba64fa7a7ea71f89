package errors

import "errors"

// ── 持久层通用错误（Repository 返回，Service 层用 errors.Is 判断）──

var (
	// ErrOptimisticLock 乐观锁冲突：记录已被其他操作修改
	ErrOptimisticLock = errors.New("数据已被其他操作修改，请刷新后重试")

	// ErrMultipleRecords 期望唯一匹配的查询命中了多条记录
	ErrMultipleRecords = errors.New("查询命中多条记录，期望至多一条")
)
