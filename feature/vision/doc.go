// Package vision provides read-only access to capture snapshots.
//
// The vision detection pipeline writes labeled item counts into the
// vision_items table, one row per (capture, label). This package exposes them
// as reconcile.Observation slices; it never mutates the table.
package vision
