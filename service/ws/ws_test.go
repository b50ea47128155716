package ws

import (
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang/mock/gomock"
	"github.com/leandro-lugaresi/hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jansampark/fieldwatch/repository/mock_repository"
	"github.com/jansampark/fieldwatch/service/presence"
	"github.com/jansampark/fieldwatch/service/rbac"
)

type fakeChannel struct {
	key    string
	userID int64

	mu     sync.Mutex
	msgs   [][]byte
	closed bool
	err    error
}

func newFakeChannel(key string, userID int64) *fakeChannel {
	return &fakeChannel{key: key, userID: userID}
}

func (c *fakeChannel) Key() string { return c.key }
func (c *fakeChannel) UserID() int64 { return c.userID }

func (c *fakeChannel) Send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrAlreadyClosed
	}
	if c.err != nil {
		return c.err
	}
	c.msgs = append(c.msgs, data)
	return nil
}

func (c *fakeChannel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *fakeChannel) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *fakeChannel) messages(t *testing.T) []message {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]message, 0, len(c.msgs))
	for _, b := range c.msgs {
		var m message
		require.NoError(t, json.Unmarshal(b, &m))
		result = append(result, m)
	}
	return result
}

type testEnv struct {
	streamer *Streamer
	store    *presence.Store
	users    *mock_repository.MockUserRepository
	hub      *hub.Hub
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock_repository.NewMockUserRepository(ctrl)
	h := hub.New()
	t.Cleanup(h.Close)
	store := presence.NewStore(clock.New(), presence.DefaultOnlineThreshold)
	s := NewStreamer(h, NewRegistry(), store, rbac.NewResolver(users, zap.NewNop()), clock.New(), zap.NewNop(), Config{SendTimeout: 50 * time.Millisecond})
	return &testEnv{streamer: s, store: store, users: users, hub: h}
}

func bodyMap(t *testing.T, m message) map[string]any {
	t.Helper()
	body, ok := m.Body.(map[string]any)
	require.True(t, ok)
	return body
}

func TestNewStreamer(t *testing.T) {
	t.Parallel()

	s := NewStreamer(hub.New(), NewRegistry(), nil, nil, clock.New(), zap.NewNop(), Config{})
	assert.Equal(t, DefaultSendTimeout, s.config.SendTimeout)
	assert.False(t, s.IsClosed())
	assert.NotNil(t, s.Registry())
}

