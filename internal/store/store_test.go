package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryGetAbsent(t *testing.T) {
	m := NewMemory()
	_, err := m.Get(context.Background(), KeyTenants)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, KeyRooms, []byte(`[{"number":5}]`)))
	got, err := m.Get(ctx, KeyRooms)
	require.NoError(t, err)
	require.JSONEq(t, `[{"number":5}]`, string(got))

	// The returned slice is a copy; mutating it must not corrupt the store.
	got[0] = 'x'
	again, err := m.Get(ctx, KeyRooms)
	require.NoError(t, err)
	require.JSONEq(t, `[{"number":5}]`, string(again))
}

func TestMemoryClear(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, KeyTenants, []byte(`[]`)))
	require.NoError(t, m.Clear(ctx, KeyTenants))
	_, err := m.Get(ctx, KeyTenants)
	require.ErrorIs(t, err, ErrNotFound)

	// Clearing an absent key is not an error.
	require.NoError(t, m.Clear(ctx, "nothing"))
}
