package vision

// Item represents one row of the 'vision_items' table: a labeled item count
// produced by the detection pipeline for a single capture. The backend only
// ever reads these rows; the vision pipeline owns them.
type Item struct {
	ID        int64  `gorm:"column:id;primaryKey" json:"id"`
	CaptureID int64  `gorm:"column:capture_id;index" json:"capture_id"`
	Label     string `gorm:"column:label;size:255" json:"label"`
	Quantity  int    `gorm:"column:quantity" json:"quantity"`
}

// TableName overrides the table name.
func (Item) TableName() string {
	return "vision_items"
}
