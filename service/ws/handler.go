package ws

import (
	"strings"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

func (s *session) commandHandler(cmd string) {
	switch strings.ToLower(strings.TrimSpace(cmd)) {
	case "ping":
		_ = s.writeMessage(&rawMessage{t: websocket.TextMessage, data: []byte("pong")})
	default:
		// 位置情報の入力としては扱わない
		s.logger.Debug("ignored ws message", zap.String("key", s.key), zap.Int64("userId", s.userID), zap.Int("length", len(cmd)))
	}
}
