package server

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridehail-admin/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGracefulServer(t *testing.T) {
	gs := NewGracefulServer(echo.New(), logger.NewNopLogger(), "127.0.0.1", 8080, 0)

	assert.Equal(t, "127.0.0.1:8080", gs.addr)
	assert.Equal(t, 30*time.Second, gs.shutdownTimeout)
	assert.NotNil(t, gs.Components())
}

func TestGracefulServer_ShutdownRunsComponents(t *testing.T) {
	gs := NewGracefulServer(echo.New(), logger.NewNopLogger(), "127.0.0.1", 0, time.Second)

	closed := false
	gs.Components().Register("mongo", func(ctx context.Context) error {
		closed = true
		return nil
	})

	require.NoError(t, gs.Shutdown())
	assert.True(t, closed)
}

func TestShutdownManager_Register(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())

	sm.Register("a", func(ctx context.Context) error { return nil })
	sm.Register("nil", nil)

	assert.Equal(t, 1, sm.Len())
}

func TestShutdownManager_Shutdown(t *testing.T) {
	t.Run("reverse order and continues past errors", func(t *testing.T) {
		sm := NewShutdownManager(logger.NewNopLogger())

		var order []string
		sm.Register("postgres", func(ctx context.Context) error {
			order = append(order, "postgres")
			return nil
		})
		sm.Register("redis", func(ctx context.Context) error {
			order = append(order, "redis")
			return errors.New("already closed")
		})
		sm.Register("nsq", func(ctx context.Context) error {
			order = append(order, "nsq")
			return nil
		})

		err := sm.Shutdown(context.Background())

		assert.Equal(t, []string{"nsq", "redis", "postgres"}, order)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis: already closed")
	})

	t.Run("no components", func(t *testing.T) {
		sm := NewShutdownManager(logger.NewNopLogger())
		assert.NoError(t, sm.Shutdown(context.Background()))
	})
}

func TestShutdownManager_ConcurrentAccess(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sm.Register("c", func(ctx context.Context) error { return nil })
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, sm.Len())
	assert.NoError(t, sm.Shutdown(context.Background()))
}
