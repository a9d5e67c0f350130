package recognition

import "time"

// Log represents one row of the 'recognition_logs' table: a single face
// recognition attempt on a device, independent of any session. Rows are
// written once and never mutated.
type Log struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	EmployeeID   *int64    `gorm:"column:employee_id" json:"employee_id"`
	DeviceID     string    `gorm:"column:device_id;size:255" json:"device_id"`
	Confidence   float64   `gorm:"column:confidence" json:"confidence"`
	Success      bool      `gorm:"column:success" json:"success"`
	ErrorMessage string    `gorm:"column:error_message;type:text" json:"error_message"`
	Timestamp    time.Time `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`
}

// TableName overrides the table name.
func (Log) TableName() string {
	return "recognition_logs"
}

// LogInput is the payload for recording a recognition attempt.
type LogInput struct {
	EmployeeCode string  `json:"employee_code"`
	DeviceID     string  `json:"device_id"`
	Confidence   float64 `json:"confidence"`
	Success      bool    `json:"success"`
	ErrorMessage string  `json:"error_message"`
}
