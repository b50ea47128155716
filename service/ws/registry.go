package ws

import (
	"sync"

	"github.com/jansampark/fieldwatch/utils/set"
)

// Channel 監視者へのプッシュチャネル
type Channel interface {
	// Key チャネルの一意なキー
	Key() string
	// UserID チャネルを所有する監視者のID
	UserID() int64
	// Send メッセージを送信キューに積みます
	//
	// 閉じられている場合はErrAlreadyClosedを、
	// 送信タイムアウト内に積めなかった場合はErrSendTimeoutを返します
	Send(data []byte) error
	// Close チャネルを閉じます。複数回呼び出しても問題ありません
	Close()
}

type registration struct {
	ch           Channel
	subordinates set.Set[int64]
}

// Registry 監視者ごとのプッシュチャネルと配下ユーザー集合の登録簿
//
// 監視者1人につき登録は高々1つ
type Registry struct {
	mu   sync.RWMutex
	regs map[int64]*registration
}

// NewRegistry Registryを生成します
func NewRegistry() *Registry {
	return &Registry{
		regs: make(map[int64]*registration),
	}
}

// Register 監視者のチャネルを登録します
//
// 既に登録されているチャネルは置き換えられ、閉じられます。
// onRegisteredは登録処理のロック内で呼び出されるため、その間に他のブロードキャストが割り込むことはありません。
func (r *Registry) Register(supervisorID int64, ch Channel, subordinates set.Set[int64], onRegistered func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.regs[supervisorID]; ok && old.ch != ch {
		old.ch.Close()
	}
	r.regs[supervisorID] = &registration{
		ch:           ch,
		subordinates: subordinates.Clone(),
	}
	if onRegistered != nil {
		onRegistered()
	}
}

// Unregister 監視者のチャネルの登録を解除します
//
// 登録がchを指している場合のみ削除し、削除したかどうかを返します
func (r *Registry) Unregister(supervisorID int64, ch Channel) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.regs[supervisorID]
	if !ok || reg.ch != ch {
		return false
	}
	delete(r.regs, supervisorID)
	return true
}

// FindObservers 指定したユーザーを配下に持つ監視者のチャネルを返します
func (r *Registry) FindObservers(userID int64) []Channel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Channel, 0)
	for _, reg := range r.regs {
		if reg.subordinates.Contains(userID) {
			result = append(result, reg.ch)
		}
	}
	return result
}

// Get 監視者のチャネルを取得します
func (r *Registry) Get(supervisorID int64) (Channel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.regs[supervisorID]
	if !ok {
		return nil, false
	}
	return reg.ch, true
}

// Len 登録数を返します
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.regs)
}

// Clear 全ての登録を削除し、削除したチャネルを返します
func (r *Registry) Clear() []Channel {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]Channel, 0, len(r.regs))
	for _, reg := range r.regs {
		result = append(result, reg.ch)
	}
	r.regs = make(map[int64]*registration)
	return result
}
