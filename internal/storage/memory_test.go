package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetMissingKey(t *testing.T) {
	m := NewMemory()
	v, err := m.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMemory_SetGetRemove(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, KeyToken, []byte("abc")))
	v, err := m.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), v)

	require.NoError(t, m.Remove(ctx, KeyToken))
	v, err = m.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, KeyToken, []byte("abc")))
	v, err := m.Get(ctx, KeyToken)
	require.NoError(t, err)
	v[0] = 'x'

	again, err := m.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again, "callers must not be able to mutate stored values")
}

func TestMemory_UpdateCommitsAllWrites(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	err := m.Update(ctx, func(s Store) error {
		if err := s.Set(ctx, KeyToken, []byte("abc")); err != nil {
			return err
		}
		return s.Set(ctx, KeyUser, []byte(`{"id":1}`))
	})
	require.NoError(t, err)

	token, _ := m.Get(ctx, KeyToken)
	user, _ := m.Get(ctx, KeyUser)
	assert.Equal(t, []byte("abc"), token)
	assert.Equal(t, []byte(`{"id":1}`), user)
}

func TestMemory_UpdateRollsBackOnError(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Set(ctx, KeyToken, []byte("old")))

	boom := errors.New("boom")
	err := m.Update(ctx, func(s Store) error {
		if err := s.Set(ctx, KeyToken, []byte("new")); err != nil {
			return err
		}
		if err := s.Remove(ctx, KeyUser); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	token, _ := m.Get(ctx, KeyToken)
	assert.Equal(t, []byte("old"), token, "a failed batch must leave the store untouched")
}
