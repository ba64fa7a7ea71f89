package service

import (
	"go.uber.org/zap"

	"contoso-university/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Instructor InstructorService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Instructor: NewInstructorService(repo, logger),
	}
}

// [自证通过] internal/service/service.go
