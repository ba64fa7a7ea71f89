package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"contoso-university/internal/model"
)

// InstructorSummary 删除确认页所需的讲师投影（单行，LEFT JOIN 办公室）
type InstructorSummary struct {
	ID                       int
	LastName                 string
	FirstMidName             string
	HireDate                 time.Time
	OfficeAssignmentLocation *string
}

// InstructorRepository 讲师数据访问接口
type InstructorRepository interface {
	// GetSummary 按 ID 读取确认页投影；无记录返回 gorm.ErrRecordNotFound
	GetSummary(ctx context.Context, id int) (*InstructorSummary, error)
	// GetWithOffice 按 ID 读取讲师及其办公室分配，要求恰好一条
	GetWithOffice(ctx context.Context, id int) (*model.Instructor, error)
	// Delete 删除讲师，办公室分配与授课关系随之删除
	Delete(ctx context.Context, instructor *model.Instructor) error
	List(ctx context.Context, offset, limit int) ([]model.Instructor, int64, error)
}

type instructorRepo struct {
	db *gorm.DB
}

// NewInstructorRepo 创建 InstructorRepository 实例
func NewInstructorRepo(db *gorm.DB) InstructorRepository {
	return &instructorRepo{db: db}
}

func (r *instructorRepo) GetSummary(ctx context.Context, id int) (*InstructorSummary, error) {
	var rows []InstructorSummary
	err := r.db.WithContext(ctx).
		Table("instructors AS i").
		Select("i.id, i.last_name, i.first_mid_name, i.hire_date, oa.location AS office_assignment_location").
		Joins("LEFT JOIN office_assignments AS oa ON oa.instructor_id = i.id").
		Where("i.id = ?", id).
		Limit(2).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return single(rows)
}

func (r *instructorRepo) GetWithOffice(ctx context.Context, id int) (*model.Instructor, error) {
	var rows []model.Instructor
	err := r.db.WithContext(ctx).
		Preload("OfficeAssignment").
		Where("id = ?", id).
		Limit(2).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return single(rows)
}

func (r *instructorRepo) Delete(ctx context.Context, instructor *model.Instructor) error {
	res := r.db.WithContext(ctx).
		Select("OfficeAssignment", "CourseAssignments").
		Delete(instructor)
	if res.Error != nil {
		return res.Error
	}
	// 读取之后被并发删除
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *instructorRepo) List(ctx context.Context, offset, limit int) ([]model.Instructor, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Instructor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var instructors []model.Instructor
	err := r.db.WithContext(ctx).
		Preload("OfficeAssignment").
		Order("last_name ASC, first_mid_name ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&instructors).Error
	return instructors, total, err
}
