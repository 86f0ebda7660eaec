package metrics

import "time"

// Completion records one finished request's outcome for the "recent
// completions" debug probe.
type Completion struct {
	ClientID int32
	Filter   string
	Status   string
	Duration time.Duration
}

// RecentLog keeps the last N completions in a fixed-capacity ringBuffer,
// evicting the oldest entry once full rather than rejecting new writes.
type RecentLog struct {
	ring *ringBuffer[Completion]
}

// NewRecentLog builds a log holding at most capacity completions.
func NewRecentLog(capacity int) *RecentLog {
	return &RecentLog{ring: newRingBuffer[Completion](capacity)}
}

// Record appends c, dropping the oldest entry first if the log is full.
func (l *RecentLog) Record(c Completion) {
	if !l.ring.Enqueue(c) {
		l.ring.Dequeue()
		l.ring.Enqueue(c)
	}
}

// Snapshot returns every completion currently held, oldest first, without
// removing them.
func (l *RecentLog) Snapshot() []Completion {
	l.ring.mu.Lock()
	defer l.ring.mu.Unlock()
	out := make([]Completion, 0, l.ring.size)
	for i := 0; i < l.ring.size; i++ {
		out = append(out, l.ring.data[(l.ring.head+i)%len(l.ring.data)])
	}
	return out
}

// RegisterOn installs this log's snapshot as a probe under the given name.
func (l *RecentLog) RegisterOn(reg *Registry, name string) {
	reg.RegisterProbe(name, func() any { return l.Snapshot() })
}
