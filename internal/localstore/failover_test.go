package localstore

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyStore struct {
	values map[string]string
	fail   bool
	calls  int
}

func newFlakyStore() *flakyStore {
	return &flakyStore{values: make(map[string]string)}
}

func (s *flakyStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.calls++
	if s.fail {
		return "", false, errors.New("store unavailable")
	}
	val, ok := s.values[key]
	return val, ok, nil
}

func (s *flakyStore) Set(ctx context.Context, key, value string) error {
	s.calls++
	if s.fail {
		return errors.New("store unavailable")
	}
	s.values[key] = value
	return nil
}

func (s *flakyStore) Delete(ctx context.Context, key string) error {
	s.calls++
	if s.fail {
		return errors.New("store unavailable")
	}
	delete(s.values, key)
	return nil
}

func TestFailoverPrefersPrimary(t *testing.T) {
	primary := newFlakyStore()
	fallback := newFlakyStore()
	logger := zerolog.Nop()
	f := NewFailover(primary, fallback, &logger)
	ctx := context.Background()

	require.NoError(t, f.Set(ctx, "k", "v"))

	val, ok, err := f.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", val)
	assert.Empty(t, fallback.values)
}

func TestFailoverFallsBackOnError(t *testing.T) {
	primary := newFlakyStore()
	primary.fail = true
	fallback := newFlakyStore()
	logger := zerolog.Nop()
	f := NewFailover(primary, fallback, &logger)
	ctx := context.Background()

	require.NoError(t, f.Set(ctx, "k", "v"))
	assert.Equal(t, "v", fallback.values["k"])

	val, ok, err := f.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

func TestFailoverSkipsDownedPrimary(t *testing.T) {
	primary := newFlakyStore()
	primary.fail = true
	fallback := newFlakyStore()
	logger := zerolog.Nop()
	f := NewFailover(primary, fallback, &logger)
	ctx := context.Background()

	require.NoError(t, f.Set(ctx, "k", "v"))
	primaryCalls := primary.calls

	// The primary is marked down; subsequent calls go straight to the
	// fallback until the probe cooldown passes.
	require.NoError(t, f.Set(ctx, "k", "v2"))
	_, _, err := f.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, primaryCalls, primary.calls)
}
