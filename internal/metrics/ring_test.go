package metrics

import "testing"

func TestRingBufferEnqueueDequeueOrder(t *testing.T) {
	r := newRingBuffer[int](3)
	for _, v := range []int{1, 2, 3} {
		if !r.Enqueue(v) {
			t.Fatalf("Enqueue(%d) should succeed, buffer not full yet", v)
		}
	}
	if r.Enqueue(4) {
		t.Fatal("Enqueue should fail once the ring is full")
	}

	for _, want := range []int{1, 2, 3} {
		got, ok := r.Dequeue()
		if !ok || got != want {
			t.Fatalf("Dequeue() = (%d, %v), want (%d, true)", got, ok, want)
		}
	}
	if _, ok := r.Dequeue(); ok {
		t.Fatal("Dequeue on empty ring should report ok=false")
	}
}

func TestRingBufferLenAndCap(t *testing.T) {
	r := newRingBuffer[string](4)
	if r.Cap() != 4 {
		t.Fatalf("Cap() = %d, want 4", r.Cap())
	}
	r.Enqueue("a")
	r.Enqueue("b")
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
}

func TestRecentLogEvictsOldestWhenFull(t *testing.T) {
	log := NewRecentLog(2)
	log.Record(Completion{ClientID: 1})
	log.Record(Completion{ClientID: 2})
	log.Record(Completion{ClientID: 3})

	snap := log.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("Snapshot() length = %d, want 2", len(snap))
	}
	if snap[0].ClientID != 2 || snap[1].ClientID != 3 {
		t.Fatalf("expected the two most recent completions (2, 3), got (%d, %d)", snap[0].ClientID, snap[1].ClientID)
	}
}
