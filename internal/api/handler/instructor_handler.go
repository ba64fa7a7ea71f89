package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"contoso-university/internal/dto"
	"contoso-university/internal/service"
	"contoso-university/pkg/response"
)

// InstructorHandler 讲师模块 HTTP 处理器
type InstructorHandler struct {
	instructorSvc service.InstructorService
	indexPath     string
}

// NewInstructorHandler 创建 InstructorHandler
// indexPath 为删除成功后的跳转目标
func NewInstructorHandler(instructorSvc service.InstructorService, indexPath string) *InstructorHandler {
	return &InstructorHandler{instructorSvc: instructorSvc, indexPath: indexPath}
}

// ListInstructors 获取讲师列表
// GET /api/v1/instructors
func (h *InstructorHandler) ListInstructors(c *gin.Context) {
	var req dto.InstructorListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "参数校验失败", err.Error())
		return
	}

	list, total, err := h.instructorSvc.List(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// GetDelete 获取删除确认数据
// GET /api/v1/instructors/delete?id=
// 讲师不存在时 data 为 null
func (h *InstructorHandler) GetDelete(c *gin.Context) {
	// ?id= 空值绑定后会得到 0，这里按未传处理
	if strings.TrimSpace(c.Query("id")) == "" {
		response.BadRequest(c, 10001, "讲师ID不能为空")
		return
	}

	var query dto.DeleteInstructorQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "参数校验失败", err.Error())
		return
	}

	cmd, err := h.instructorSvc.GetDeleteConfirmation(c.Request.Context(), &query)
	if err != nil {
		if errors.Is(err, service.ErrInstructorIDRequired) {
			response.BadRequest(c, 10001, "讲师ID不能为空")
			return
		}
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	response.OK(c, cmd)
}

// PostDelete 确认删除讲师
// POST /api/v1/instructors/delete
// 成功后以 JSON 下发跳转到讲师列表页；删除失败一律按服务器错误处理
func (h *InstructorHandler) PostDelete(c *gin.Context) {
	var cmd dto.DeleteInstructorCommand
	if err := c.ShouldBind(&cmd); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "参数校验失败", err.Error())
		return
	}

	if err := h.instructorSvc.Delete(c.Request.Context(), &cmd); err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	response.RedirectJSON(c, h.indexPath)
}
