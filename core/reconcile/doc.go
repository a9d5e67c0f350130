// Package reconcile implements the consumption-delta engine.
//
// Given two capture snapshots of detected fridge items (before and after a
// session), it computes which labels decreased and by how much. The engine is
// deliberately one-directional: it detects depletion of previously-seen
// labels only. Labels that appear or increase between captures produce no
// entries, so restocking is out of scope.
//
// # Missing captures
//
// A capture id that resolves to no observations is treated as an empty
// snapshot rather than an error. Consequently a missing "before" capture
// yields zero entries and a missing "after" capture yields full-quantity
// entries for every before-label.
//
// # Components
//
//   - BuildSnapshot / Diff: the pure computation
//   - SnapshotSource: read-only access to capture observations
//   - SnapshotCache: TTL + singleflight cache for the preview path
//   - Preview: load-and-diff without any writes
package reconcile
