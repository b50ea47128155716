package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var _ Channel = (*session)(nil)

type session struct {
	key    string
	userID int64

	req         *http.Request
	conn        *websocket.Conn
	clock       clock.Clock
	logger      *zap.Logger
	sendTimeout time.Duration
	send        chan *rawMessage
	done        chan struct{}
	closeOnce   sync.Once
}

func newSession(key string, userID int64, req *http.Request, conn *websocket.Conn, c clock.Clock, sendTimeout time.Duration, logger *zap.Logger) *session {
	return &session{
		key:         key,
		userID:      userID,
		req:         req,
		conn:        conn,
		clock:       c,
		logger:      logger,
		sendTimeout: sendTimeout,
		send:        make(chan *rawMessage, messageBufferSize),
		done:        make(chan struct{}),
	}
}

func (s *session) readLoop() {
	s.conn.SetReadLimit(maxReadMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		t, m, err := s.conn.ReadMessage()
		if err != nil {
			break
		}

		if t == websocket.TextMessage {
			s.commandHandler(string(m))
		}

		if t == websocket.BinaryMessage {
			// unsupported
			s.closeWith(websocket.CloseUnsupportedData, "binary message is not supported.")
			break
		}
	}
}

func (s *session) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return

		case msg := <-s.send:
			if err := s.write(msg.t, msg.data); err != nil {
				return
			}

			if msg.t == websocket.CloseMessage {
				return
			}

		case <-ticker.C:
			_ = s.write(websocket.PingMessage, []byte{})
		}
	}
}

// Send implements Channel interface.
func (s *session) Send(data []byte) error {
	return s.writeMessage(&rawMessage{t: websocket.TextMessage, data: data})
}

func (s *session) writeMessage(msg *rawMessage) error {
	if s.closed() {
		return ErrAlreadyClosed
	}

	select {
	case s.send <- msg:
		return nil
	default:
	}

	timer := s.clock.Timer(s.sendTimeout)
	defer timer.Stop()
	select {
	case s.send <- msg:
		return nil
	case <-s.done:
		return ErrAlreadyClosed
	case <-timer.C:
		return ErrSendTimeout
	}
}

func (s *session) write(messageType int, data []byte) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(messageType, data)
}

// Close implements Channel interface.
func (s *session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		if s.conn != nil {
			_ = s.conn.Close()
		}
	})
}

// closeWith クローズメッセージを送ってから閉じます
func (s *session) closeWith(code int, text string) {
	if s.closed() || s.conn == nil {
		s.Close()
		return
	}
	_ = s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), time.Now().Add(writeWait))
	s.Close()
}

func (s *session) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Key implements Channel interface.
func (s *session) Key() string {
	return s.key
}

// UserID implements Channel interface.
func (s *session) UserID() int64 {
	return s.userID
}
