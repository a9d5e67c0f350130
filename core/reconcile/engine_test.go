package reconcile

import (
	"context"
	"errors"
	"testing"

	"icevision/core/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSnapshot(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		snap, err := BuildSnapshot([]Observation{
			{Label: "milk", Quantity: 5},
			{Label: "soda", Quantity: 2},
		})
		require.NoError(t, err)
		assert.Equal(t, Snapshot{"milk": 5, "soda": 2}, snap)
	})

	t.Run("Empty", func(t *testing.T) {
		snap, err := BuildSnapshot(nil)
		require.NoError(t, err)
		assert.Empty(t, snap)
	})

	t.Run("Duplicate label last wins", func(t *testing.T) {
		snap, err := BuildSnapshot([]Observation{
			{Label: "milk", Quantity: 5},
			{Label: "milk", Quantity: 3},
		})
		require.NoError(t, err)
		assert.Equal(t, Snapshot{"milk": 3}, snap)
	})

	t.Run("Negative quantity rejected", func(t *testing.T) {
		_, err := BuildSnapshot([]Observation{
			{Label: "milk", Quantity: -1},
		})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name   string
		before Snapshot
		after  Snapshot
		want   []Entry
	}{
		{
			name:   "Partial and full consumption",
			before: Snapshot{"milk": 5, "soda": 2},
			after:  Snapshot{"milk": 3},
			want:   []Entry{{Label: "milk", Quantity: 2}, {Label: "soda", Quantity: 2}},
		},
		{
			name:   "Missing before yields nothing",
			before: Snapshot{},
			after:  Snapshot{"milk": 3},
			want:   []Entry{},
		},
		{
			name:   "Missing after yields full quantities",
			before: Snapshot{"milk": 5},
			after:  Snapshot{},
			want:   []Entry{{Label: "milk", Quantity: 5}},
		},
		{
			name:   "Unchanged quantities produce no entries",
			before: Snapshot{"milk": 5, "soda": 2},
			after:  Snapshot{"milk": 5, "soda": 2},
			want:   []Entry{},
		},
		{
			name:   "Increased quantity is not reported",
			before: Snapshot{"milk": 2},
			after:  Snapshot{"milk": 4},
			want:   []Entry{},
		},
		{
			name:   "After-only labels are never considered",
			before: Snapshot{"milk": 2},
			after:  Snapshot{"milk": 1, "yogurt": 10},
			want:   []Entry{{Label: "milk", Quantity: 1}},
		},
		{
			name:   "Output sorted by label",
			before: Snapshot{"soda": 3, "apple": 2, "milk": 1},
			after:  Snapshot{},
			want: []Entry{
				{Label: "apple", Quantity: 2},
				{Label: "milk", Quantity: 1},
				{Label: "soda", Quantity: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.before, tt.after)
			assert.Equal(t, tt.want, got)
		})
	}
}

// stubSource is a SnapshotSource backed by a map.
type stubSource struct {
	captures map[int64][]Observation
	err      error
}

func (s *stubSource) GetItems(_ context.Context, captureID int64) ([]Observation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.captures[captureID], nil
}

func TestPreview(t *testing.T) {
	src := &stubSource{captures: map[int64][]Observation{
		1: {{Label: "milk", Quantity: 5}, {Label: "soda", Quantity: 2}},
		2: {{Label: "milk", Quantity: 3}},
	}}

	t.Run("Both captures present", func(t *testing.T) {
		entries, err := Preview(context.Background(), src, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, []Entry{{Label: "milk", Quantity: 2}, {Label: "soda", Quantity: 2}}, entries)
	})

	t.Run("Unknown before capture", func(t *testing.T) {
		entries, err := Preview(context.Background(), src, 99, 2)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Unknown after capture", func(t *testing.T) {
		entries, err := Preview(context.Background(), src, 1, 99)
		require.NoError(t, err)
		assert.Equal(t, []Entry{{Label: "milk", Quantity: 5}, {Label: "soda", Quantity: 2}}, entries)
	})

	t.Run("Source error propagates", func(t *testing.T) {
		broken := &stubSource{err: errors.New("store down")}
		_, err := Preview(context.Background(), broken, 1, 2)
		assert.Error(t, err)
	})
}
