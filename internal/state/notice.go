package state

import "sync"

// NoticeBoard buffers user-visible notices produced by background
// sync failures until the client's next state read drains them.
type NoticeBoard struct {
	mu      sync.Mutex
	notices []string
}

func NewNoticeBoard() *NoticeBoard {
	return &NoticeBoard{}
}

func (b *NoticeBoard) Post(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notices = append(b.notices, message)
}

// Drain returns the pending notices and clears the buffer.
func (b *NoticeBoard) Drain() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.notices
	b.notices = nil
	return out
}
