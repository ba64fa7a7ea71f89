package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"contoso-university/internal/dto"
	"contoso-university/internal/repository"
	pkgerrors "contoso-university/pkg/errors"
)

// ── 讲师模块业务错误 ──

var (
	ErrInstructorIDRequired = errors.New("讲师ID不能为空")
	ErrInstructorNotFound   = errors.New("讲师不存在")
	ErrInstructorAmbiguous  = errors.New("讲师ID匹配到多条记录")
)

var validate = validator.New()

// InstructorService 讲师业务接口
type InstructorService interface {
	// GetDeleteConfirmation 读取删除确认页数据；讲师不存在时返回 (nil, nil)
	GetDeleteConfirmation(ctx context.Context, query *dto.DeleteInstructorQuery) (*dto.DeleteInstructorCommand, error)
	// Delete 删除讲师并解除其院系主任身份，在同一事务内完成
	Delete(ctx context.Context, cmd *dto.DeleteInstructorCommand) error
	List(ctx context.Context, req *dto.InstructorListRequest) ([]dto.InstructorResponse, int64, error)
}

// txRunner 工作单元：在同一事务内执行 fn
type txRunner func(ctx context.Context, fn func(txRepo *repository.Repository) error) error

type instructorService struct {
	repo   *repository.Repository
	inTx   txRunner
	logger *zap.Logger
}

// NewInstructorService 创建 InstructorService 实例
func NewInstructorService(repo *repository.Repository, logger *zap.Logger) InstructorService {
	return &instructorService{repo: repo, inTx: repo.Transaction, logger: logger}
}

// ────────────────────── GetDeleteConfirmation ──────────────────────

func (s *instructorService) GetDeleteConfirmation(ctx context.Context, query *dto.DeleteInstructorQuery) (*dto.DeleteInstructorCommand, error) {
	// 前置校验，未通过时不访问数据库
	if query == nil {
		return nil, ErrInstructorIDRequired
	}
	if err := validate.Struct(query); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInstructorIDRequired, err)
	}

	summary, err := s.repo.Instructor.GetSummary(ctx, *query.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("查询讲师失败", zap.Int("id", *query.ID), zap.Error(err))
		return nil, err
	}

	return toDeleteCommand(summary), nil
}

// ────────────────────── Delete ──────────────────────
//
// 执行顺序：
//   1. 读取讲师（含办公室分配），必须恰好一条
//   2. 查找其担任主任的院系（至多一个），存在则置空 instructor_id
//   3. 删除讲师，办公室分配与授课关系级联删除
//
// departments.instructor_id 的外键约束是立即检查的，因此先置空再删除。
// 任何一步失败整个事务回滚。

func (s *instructorService) Delete(ctx context.Context, cmd *dto.DeleteInstructorCommand) error {
	if cmd == nil || cmd.ID == nil {
		s.logger.Error("删除讲师失败", zap.Error(ErrInstructorNotFound))
		return fmt.Errorf("%w: 未提供ID", ErrInstructorNotFound)
	}
	id := *cmd.ID

	var detachedDeptID *int
	err := s.inTx(ctx, func(tx *repository.Repository) error {
		instructor, err := tx.Instructor.GetWithOffice(ctx, id)
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				return ErrInstructorNotFound
			case errors.Is(err, pkgerrors.ErrMultipleRecords):
				return ErrInstructorAmbiguous
			}
			return fmt.Errorf("查询讲师失败: %w", err)
		}

		dept, err := tx.Department.FindByInstructorID(ctx, id)
		switch {
		case err == nil:
			if err := tx.Department.ClearInstructor(ctx, dept); err != nil {
				return fmt.Errorf("解除院系主任失败: %w", err)
			}
			detachedDeptID = &dept.DepartmentID
		case errors.Is(err, gorm.ErrRecordNotFound):
			// 未担任任何院系主任
		default:
			return fmt.Errorf("查询讲师所在院系失败: %w", err)
		}

		if err := tx.Instructor.Delete(ctx, instructor); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInstructorNotFound
			}
			return fmt.Errorf("删除讲师失败: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("删除讲师失败", zap.Int("id", id), zap.Error(err))
		return err
	}

	fields := []zap.Field{zap.Int("id", id)}
	if detachedDeptID != nil {
		fields = append(fields, zap.Int("detached_department_id", *detachedDeptID))
	}
	s.logger.Info("讲师已删除", fields...)

	return nil
}

// ────────────────────── List ──────────────────────

func (s *instructorService) List(ctx context.Context, req *dto.InstructorListRequest) ([]dto.InstructorResponse, int64, error) {
	instructors, total, err := s.repo.Instructor.List(ctx, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("列出讲师失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.InstructorResponse, 0, len(instructors))
	for i := range instructors {
		in := &instructors[i]
		item := dto.InstructorResponse{
			ID:           in.ID,
			LastName:     in.LastName,
			FirstMidName: in.FirstMidName,
			FullName:     in.FullName(),
			HireDate:     in.HireDate.Format("2006-01-02"),
		}
		if in.OfficeAssignment != nil {
			loc := in.OfficeAssignment.Location
			item.OfficeAssignmentLocation = &loc
		}
		result = append(result, item)
	}

	return result, total, nil
}

// ── 内部辅助方法 ──

func toDeleteCommand(summary *repository.InstructorSummary) *dto.DeleteInstructorCommand {
	id := summary.ID
	return &dto.DeleteInstructorCommand{
		ID:                       &id,
		LastName:                 summary.LastName,
		FirstMidName:             summary.FirstMidName,
		HireDate:                 summary.HireDate.Format("2006-01-02"),
		OfficeAssignmentLocation: summary.OfficeAssignmentLocation,
	}
}
