// Package ledger is the append-only store of consumption events.
//
// One event is written per (session, label) with a detected positive
// decrease. The service exposes Append and Query only; there is no mutation
// or deletion API, which is what makes the event stream auditable.
package ledger
