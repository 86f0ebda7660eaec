package filter

import (
	"sort"
	"sync"
	"testing"
)

func TestPartitionRowsCoversEveryRowExactlyOnce(t *testing.T) {
	const height = 37
	for _, n := range []int{1, 2, 3, 4, 8, 16} {
		ranges := PartitionRows(height, n)
		seen := make(map[int32]bool, height)
		for _, r := range ranges {
			for row := r.Start; row < r.End; row++ {
				if seen[row] {
					t.Fatalf("n=%d: row %d covered twice", n, row)
				}
				seen[row] = true
			}
		}
		if len(seen) != height {
			t.Fatalf("n=%d: covered %d of %d rows", n, len(seen), height)
		}
	}
}

func TestPartitionRowsClampsWorkerCountToHeight(t *testing.T) {
	ranges := PartitionRows(3, 10)
	if len(ranges) != 3 {
		t.Fatalf("expected partition count clamped to height 3, got %d ranges", len(ranges))
	}
}

func TestDispatchRunsEveryRange(t *testing.T) {
	const height = 20
	var mu sync.Mutex
	var covered []int32

	err := Dispatch(4, height, func(start, end int32) {
		mu.Lock()
		defer mu.Unlock()
		for row := start; row < end; row++ {
			covered = append(covered, row)
		}
	})
	if err != nil {
		t.Fatalf("Dispatch returned error: %v", err)
	}

	sort.Slice(covered, func(i, j int) bool { return covered[i] < covered[j] })
	if len(covered) != height {
		t.Fatalf("expected %d rows covered, got %d", height, len(covered))
	}
	for i, row := range covered {
		if row != int32(i) {
			t.Fatalf("row sequence broken at index %d: got %d", i, row)
		}
	}
}

func TestRowExecutorRejectsSubmitAfterClose(t *testing.T) {
	exec := newRowExecutor(2)
	exec.Close()
	if err := exec.Submit(func() {}); err == nil {
		t.Fatal("expected Submit to fail after Close")
	}
}

func TestRowExecutorResizeGrowsWorkerCount(t *testing.T) {
	exec := newRowExecutor(1)
	defer exec.Close()
	exec.Resize(4)
	if got := exec.NumWorkers(); got != 4 {
		t.Fatalf("NumWorkers() = %d, want 4", got)
	}
}
