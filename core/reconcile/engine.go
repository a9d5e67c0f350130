package reconcile

import (
	"context"
	"fmt"
	"sort"

	"icevision/core/errs"
)

// BuildSnapshot folds a list of observations into a label -> quantity map.
// Labels are unique per capture by construction; should the source ever
// repeat one, the last observation wins, matching map-insert semantics.
// A negative quantity is rejected as a validation error.
func BuildSnapshot(items []Observation) (Snapshot, error) {
	snapshot := make(Snapshot, len(items))
	for _, item := range items {
		if item.Quantity < 0 {
			return nil, fmt.Errorf("%w: negative quantity %d for label %q", errs.ErrValidation, item.Quantity, item.Label)
		}
		snapshot[item.Label] = item.Quantity
	}
	return snapshot, nil
}

// Diff computes per-label consumption between two snapshots.
//
// For every label in before, delta = before[label] - after[label] (labels
// absent from after count as 0). Only positive deltas become entries: the
// engine is a one-directional consumption detector, not a generic diff.
// Labels present only in after are never considered, so restocking is
// invisible here.
//
// Entries are sorted by label for deterministic output.
func Diff(before, after Snapshot) []Entry {
	entries := make([]Entry, 0, len(before))
	for label, qtyBefore := range before {
		delta := qtyBefore - after[label]
		if delta > 0 {
			entries = append(entries, Entry{Label: label, Quantity: delta})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Label < entries[j].Label
	})

	return entries
}

// Preview loads both captures from the source and computes the consumption
// delta without persisting anything. It is the read-only path behind the
// reconcile CLI and the preview endpoint.
func Preview(ctx context.Context, src SnapshotSource, beforeID, afterID int64) ([]Entry, error) {
	before, err := loadSnapshot(ctx, src, beforeID)
	if err != nil {
		return nil, err
	}

	after, err := loadSnapshot(ctx, src, afterID)
	if err != nil {
		return nil, err
	}

	return Diff(before, after), nil
}

func loadSnapshot(ctx context.Context, src SnapshotSource, captureID int64) (Snapshot, error) {
	items, err := src.GetItems(ctx, captureID)
	if err != nil {
		return nil, fmt.Errorf("failed to load capture %d: %w", captureID, err)
	}
	return BuildSnapshot(items)
}
