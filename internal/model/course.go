package model

// Course 课程表 — 对应 courses（课程编号由教务指定，不自增）
type Course struct {
	CourseID     int    `gorm:"primaryKey;autoIncrement:false" json:"course_id"`
	Title        string `gorm:"type:varchar(50);not null"      json:"title"`
	Credits      int    `gorm:"not null;default:0"             json:"credits"`
	DepartmentID int    `gorm:"not null"                       json:"department_id"`
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }

// CourseAssignment 讲师授课关系表 — 对应 course_assignments
type CourseAssignment struct {
	InstructorID int `gorm:"primaryKey;autoIncrement:false" json:"instructor_id"`
	CourseID     int `gorm:"primaryKey;autoIncrement:false" json:"course_id"`

	Course *Course `gorm:"foreignKey:CourseID;references:CourseID" json:"course,omitempty"`
}

// TableName 指定表名
func (CourseAssignment) TableName() string { return "course_assignments" }
