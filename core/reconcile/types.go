package reconcile

import "context"

// Observation is a single labeled item count from a vision capture.
type Observation struct {
	// Label is the detected product label, unique within a capture.
	Label string `json:"label"`

	// Quantity is the total count of that label detected.
	Quantity int `json:"quantity"`
}

// Snapshot maps product labels to their detected quantities for one capture.
type Snapshot map[string]int

// Entry is one computed consumption delta: Quantity units of Label
// disappeared between the before and after snapshot.
type Entry struct {
	// Label is the product label.
	Label string `json:"label"`

	// Quantity is the consumed amount, always positive.
	Quantity int `json:"quantity"`
}

// SnapshotSource provides item observations for a capture id.
//
// An unknown capture id yields an empty slice, not an error. The engine
// treats such a capture as an empty snapshot: a missing "before" produces
// zero entries, a missing "after" produces full-quantity entries for every
// before-label. Callers relying on partial captures should be aware of this.
type SnapshotSource interface {
	GetItems(ctx context.Context, captureID int64) ([]Observation, error)
}
