package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"contoso-university/internal/model"
	"contoso-university/internal/repository"
	pkgerrors "contoso-university/pkg/errors"
)

// ── Mock InstructorRepository ──

type mockInstructorRepo struct {
	instructors map[int]*model.Instructor
	duplicated  map[int]bool // 模拟同一 ID 命中多行
	calls       int          // 任一方法被调用的次数
	listErr     error
	deleteErr   error
}

func newMockInstructorRepo() *mockInstructorRepo {
	return &mockInstructorRepo{
		instructors: make(map[int]*model.Instructor),
		duplicated:  make(map[int]bool),
	}
}

func (m *mockInstructorRepo) lookup(id int) (*model.Instructor, error) {
	if m.duplicated[id] {
		return nil, pkgerrors.ErrMultipleRecords
	}
	if in, ok := m.instructors[id]; ok {
		return in, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInstructorRepo) GetSummary(_ context.Context, id int) (*repository.InstructorSummary, error) {
	m.calls++
	in, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	summary := &repository.InstructorSummary{
		ID:           in.ID,
		LastName:     in.LastName,
		FirstMidName: in.FirstMidName,
		HireDate:     in.HireDate,
	}
	if in.OfficeAssignment != nil {
		loc := in.OfficeAssignment.Location
		summary.OfficeAssignmentLocation = &loc
	}
	return summary, nil
}

func (m *mockInstructorRepo) GetWithOffice(_ context.Context, id int) (*model.Instructor, error) {
	m.calls++
	return m.lookup(id)
}

func (m *mockInstructorRepo) Delete(_ context.Context, instructor *model.Instructor) error {
	m.calls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.instructors[instructor.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.instructors, instructor.ID)
	return nil
}

func (m *mockInstructorRepo) List(_ context.Context, offset, limit int) ([]model.Instructor, int64, error) {
	m.calls++
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	all := make([]model.Instructor, 0, len(m.instructors))
	for _, in := range m.instructors {
		all = append(all, *in)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].LastName < all[j].LastName })

	total := int64(len(all))
	if offset >= len(all) {
		return []model.Instructor{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// ── Mock DepartmentRepository ──

type mockDeptRepo struct {
	departments map[int]*model.Department
	findErr     error
	clearErr    error
	clearCalls  int
}

func newMockDeptRepo() *mockDeptRepo {
	return &mockDeptRepo{departments: make(map[int]*model.Department)}
}

func (m *mockDeptRepo) FindByInstructorID(_ context.Context, instructorID int) (*model.Department, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var found []*model.Department
	for _, d := range m.departments {
		if d.InstructorID != nil && *d.InstructorID == instructorID {
			found = append(found, d)
		}
	}
	switch len(found) {
	case 0:
		return nil, gorm.ErrRecordNotFound
	case 1:
		return found[0], nil
	default:
		return nil, pkgerrors.ErrMultipleRecords
	}
}

func (m *mockDeptRepo) ClearInstructor(_ context.Context, dept *model.Department) error {
	m.clearCalls++
	if m.clearErr != nil {
		return m.clearErr
	}
	dept.InstructorID = nil
	dept.Version++
	return nil
}
