package employee

import "time"

// Employee represents one row of the 'employees' table.
// EmployeeCode is the business key: unique and immutable once assigned.
type Employee struct {
	ID             int64     `gorm:"column:id;primaryKey" json:"id"`
	EmployeeCode   string    `gorm:"column:employee_code;size:50;uniqueIndex;not null" json:"employee_code"`
	Name           string    `gorm:"column:name;size:255;not null" json:"name"`
	Email          string    `gorm:"column:email;size:255" json:"email"`
	Department     string    `gorm:"column:department;size:255" json:"department"`
	FacePhotoURL   string    `gorm:"column:face_photo_url;type:text" json:"face_photo_url"`
	FacePhotoKey   string    `gorm:"column:face_photo_key;type:text" json:"-"`
	FaceDescriptor string    `gorm:"column:face_descriptor;type:text" json:"face_descriptor"`
	IsActive       bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName overrides the table name.
func (Employee) TableName() string {
	return "employees"
}

// CreateInput is the payload for enrolling a new employee.
type CreateInput struct {
	EmployeeCode    string `json:"employee_code"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Department      string `json:"department"`
	FacePhotoBase64 string `json:"face_photo_base64"`
	FaceDescriptor  string `json:"face_descriptor"`
}
