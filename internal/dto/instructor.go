package dto

// ── 讲师删除页 DTO ──

// DeleteInstructorQuery 删除确认页查询参数
// ID 为指针以区分"未传"与 0
type DeleteInstructorQuery struct {
	ID *int `form:"id" binding:"required" validate:"required"`
}

// DeleteInstructorCommand 删除确认数据 / 删除提交表单
// 查询时作为确认页展示数据返回；提交时仅 ID 参与删除，其余字段为回显
// 回显字段一律按字符串接收，不做格式校验，避免展示数据阻塞删除
type DeleteInstructorCommand struct {
	ID                       *int    `json:"id"                         form:"id"`
	LastName                 string  `json:"last_name"                  form:"last_name"`
	FirstMidName             string  `json:"first_mid_name"             form:"first_mid_name"`
	HireDate                 string  `json:"hire_date"                  form:"hire_date"` // yyyy-MM-dd
	OfficeAssignmentLocation *string `json:"office_assignment_location" form:"office_assignment_location"`
}

// ── 讲师列表 DTO ──

// InstructorListRequest 讲师列表查询参数
type InstructorListRequest struct {
	PaginationRequest
}

// InstructorResponse 讲师列表项
type InstructorResponse struct {
	ID                       int     `json:"id"`
	LastName                 string  `json:"last_name"`
	FirstMidName             string  `json:"first_mid_name"`
	FullName                 string  `json:"full_name"`
	HireDate                 string  `json:"hire_date"`
	OfficeAssignmentLocation *string `json:"office_assignment_location"`
}
