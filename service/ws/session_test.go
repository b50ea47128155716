package ws

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSession_Send(t *testing.T) {
	t.Parallel()

	t.Run("queue full", func(t *testing.T) {
		t.Parallel()
		s := newSession("k", 1, nil, nil, clock.New(), 20*time.Millisecond, zap.NewNop())
		for range messageBufferSize {
			assert.NoError(t, s.Send([]byte("x")))
		}
		assert.ErrorIs(t, s.Send([]byte("x")), ErrSendTimeout)
	})

	t.Run("drained in time", func(t *testing.T) {
		t.Parallel()
		s := newSession("k", 1, nil, nil, clock.New(), time.Second, zap.NewNop())
		for range messageBufferSize {
			assert.NoError(t, s.Send([]byte("x")))
		}
		go func() {
			time.Sleep(10 * time.Millisecond)
			<-s.send
		}()
		assert.NoError(t, s.Send([]byte("y")))
	})

	t.Run("closed", func(t *testing.T) {
		t.Parallel()
		s := newSession("k", 1, nil, nil, clock.New(), time.Second, zap.NewNop())
		s.Close()
		s.Close()
		assert.True(t, s.closed())
		assert.ErrorIs(t, s.Send([]byte("x")), ErrAlreadyClosed)
	})

	t.Run("closed while waiting", func(t *testing.T) {
		t.Parallel()
		s := newSession("k", 1, nil, nil, clock.New(), 5*time.Second, zap.NewNop())
		for range messageBufferSize {
			assert.NoError(t, s.Send([]byte("x")))
		}
		go func() {
			time.Sleep(10 * time.Millisecond)
			s.Close()
		}()
		assert.ErrorIs(t, s.Send([]byte("y")), ErrAlreadyClosed)
	})
}

func TestSession_Key(t *testing.T) {
	t.Parallel()

	s := newSession("key", 7, nil, nil, clock.New(), time.Second, zap.NewNop())
	assert.Equal(t, "key", s.Key())
	assert.Equal(t, int64(7), s.UserID())
}
