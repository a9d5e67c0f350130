package session

import (
	"time"

	"icevision/core/reconcile"
)

// Session status values. A session only ever moves open -> closed.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// FridgeSession represents one row of the 'fridge_sessions' table: a single
// open-to-close fridge access by one employee on one device.
type FridgeSession struct {
	ID              int64      `gorm:"column:id;primaryKey" json:"id"`
	EmployeeID      int64      `gorm:"column:employee_id;index;not null" json:"employee_id"`
	DeviceID        string     `gorm:"column:device_id;size:255;not null" json:"device_id"`
	OpenedAt        time.Time  `gorm:"column:opened_at;autoCreateTime" json:"opened_at"`
	ClosedAt        *time.Time `gorm:"column:closed_at" json:"closed_at"`
	CaptureBeforeID *int64     `gorm:"column:capture_before_id" json:"capture_before_id"`
	CaptureAfterID  *int64     `gorm:"column:capture_after_id" json:"capture_after_id"`
	Status          string     `gorm:"column:status;size:50;default:open" json:"status"`
	Notes           string     `gorm:"column:notes;type:text" json:"notes"`
}

// TableName overrides the table name.
func (FridgeSession) TableName() string {
	return "fridge_sessions"
}

// OpenInput is the payload for opening a session.
type OpenInput struct {
	EmployeeCode string `json:"employee_code"`
	DeviceID     string `json:"device_id"`
}

// CloseInput is the payload for closing a session. Either capture id may be
// absent; reconciliation only runs when both are present.
type CloseInput struct {
	SessionID       int64  `json:"session_id"`
	CaptureBeforeID *int64 `json:"capture_before_id"`
	CaptureAfterID  *int64 `json:"capture_after_id"`
}

// CloseResult reports the outcome of a close: the session and the computed
// consumption entries (empty when a capture was missing).
type CloseResult struct {
	SessionID int64             `json:"session_id"`
	Consumed  []reconcile.Entry `json:"consumed"`
}

// ListItem is one row of the session listing, with the owning employee's
// code and name joined in.
type ListItem struct {
	ID              int64      `gorm:"column:id" json:"id"`
	EmployeeID      int64      `gorm:"column:employee_id" json:"employee_id"`
	EmployeeCode    string     `gorm:"column:employee_code" json:"employee_code"`
	EmployeeName    string     `gorm:"column:employee_name" json:"employee_name"`
	DeviceID        string     `gorm:"column:device_id" json:"device_id"`
	OpenedAt        time.Time  `gorm:"column:opened_at" json:"opened_at"`
	ClosedAt        *time.Time `gorm:"column:closed_at" json:"closed_at"`
	CaptureBeforeID *int64     `gorm:"column:capture_before_id" json:"capture_before_id"`
	CaptureAfterID  *int64     `gorm:"column:capture_after_id" json:"capture_after_id"`
	Status          string     `gorm:"column:status" json:"status"`
	Notes           string     `gorm:"column:notes" json:"notes"`
}
