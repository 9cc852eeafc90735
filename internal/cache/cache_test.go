package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGet(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	_, ok := m.Get(ctx, "missing")
	assert.False(t, ok)

	m.Set(ctx, "report:alice", []byte(`{"handle":"alice"}`), time.Minute)
	got, ok := m.Get(ctx, "report:alice")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"handle":"alice"}`), got)
}

func TestMemory_Expiry(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	m.Set(ctx, "k", []byte("v"), 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)

	_, ok := m.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemory_Overwrite(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	m.Set(ctx, "k", []byte("one"), time.Minute)
	m.Set(ctx, "k", []byte("two"), time.Minute)

	got, ok := m.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("two"), got)
}

func TestMemory_CloseIdempotent(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
}

func TestRedis_HitAndMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedis(db)
	ctx := context.Background()

	mock.ExpectGet("report:alice").SetVal(`{"handle":"alice"}`)
	got, ok := c.Get(ctx, "report:alice")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"handle":"alice"}`), got)

	mock.ExpectGet("report:ghost").RedisNil()
	_, ok = c.Get(ctx, "report:ghost")
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedis(db)

	mock.ExpectSet("report:alice", []byte("payload"), 5*time.Minute).SetVal("OK")
	c.Set(context.Background(), "report:alice", []byte("payload"), 5*time.Minute)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_BackendErrorIsMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedis(db)

	mock.ExpectGet("k").SetErr(assert.AnError)
	_, ok := c.Get(context.Background(), "k")
	assert.False(t, ok)
}

func TestNewAuto(t *testing.T) {
	mem := NewAuto("")
	defer mem.Close()
	_, isMemory := mem.(*Memory)
	assert.True(t, isMemory)

	r := NewAuto("localhost:6379")
	defer r.Close()
	_, isMemory = r.(*Memory)
	assert.False(t, isMemory)
}
