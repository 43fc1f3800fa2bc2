package intercept

import (
	"sync"
)

// Entry 一条导航历史记录
type Entry struct {
	State any
	Title string
	URL   any
}

// History 会话内存导航历史,生命周期与进程相同
type History struct {
	mu      sync.RWMutex
	entries []Entry
	cur     int
}

func NewHistory() *History {
	return &History{cur: -1}
}

// Push 追加一条记录,当前位置之后的前进记录被截断
func (h *History) Push(e Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.cur+1], e)
	h.cur = len(h.entries) - 1
}

// Replace 替换当前记录,历史为空时等同于 Push
func (h *History) Replace(e Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cur < 0 {
		h.entries = append(h.entries, e)
		h.cur = 0
		return
	}
	h.entries[h.cur] = e
}

// Back 后退一条记录,已在最早一条时返回 false
func (h *History) Back() (Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cur <= 0 {
		return Entry{}, false
	}
	h.cur--
	return h.entries[h.cur], true
}

// Current 当前记录
func (h *History) Current() (Entry, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.cur < 0 {
		return Entry{}, false
	}
	return h.entries[h.cur], true
}

// Len 记录总数
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Entries 全部记录的快照
func (h *History) Entries() []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}
