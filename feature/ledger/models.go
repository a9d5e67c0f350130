package ledger

import "time"

// Event represents one row of the 'consumption_events' table: a positive
// per-label decrease detected during a session. Events are immutable once
// created; the ledger is append-only.
type Event struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	SessionID    int64     `gorm:"column:session_id;index" json:"session_id"`
	EmployeeID   int64     `gorm:"column:employee_id;index" json:"employee_id"`
	ProductLabel string    `gorm:"column:product_label;size:255" json:"product_label"`
	Quantity     int       `gorm:"column:quantity" json:"quantity"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName overrides the table name.
func (Event) TableName() string {
	return "consumption_events"
}

// Filter narrows a ledger query. Zero values mean "no constraint".
type Filter struct {
	// SessionID restricts events to one session.
	SessionID int64
	// EmployeeID restricts events to one employee.
	EmployeeID int64
}
