package listings

import (
	"reflect"
	"testing"
	"time"
)

func TestWindowSmallCollectionReturnedWhole(t *testing.T) {
	collection := []string{"a", "b", "c"}
	for _, index := range []int{0, 1, 5} {
		got := Window(collection, 4, index)
		if !reflect.DeepEqual(got, collection) {
			t.Fatalf("index %d: expected whole collection, got %v", index, got)
		}
	}
}

func TestWindowSlices(t *testing.T) {
	collection := []int{0, 1, 2, 3, 4, 5}

	got := Window(collection, 4, 1)
	if !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Fatalf("unexpected window: %v", got)
	}
}

func TestRotatorAdvanceCyclesThroughFullWindows(t *testing.T) {
	r := NewRotator(4, time.Hour)
	defer r.Stop()
	r.SetLength(6)

	// 6 items, window 4: valid offsets are 0..2, so 3 advances return to 0.
	offsets := []int{r.Index()}
	for i := 0; i < 3; i++ {
		r.Advance()
		offsets = append(offsets, r.Index())
	}
	want := []int{0, 1, 2, 0}
	if !reflect.DeepEqual(offsets, want) {
		t.Fatalf("expected offsets %v got %v", want, offsets)
	}
}

func TestRotatorInertAtOrBelowWindowSize(t *testing.T) {
	r := NewRotator(4, time.Hour)
	defer r.Stop()

	for _, n := range []int{0, 3, 4} {
		r.SetLength(n)
		r.Advance()
		if r.Index() != 0 {
			t.Fatalf("length %d: expected index to stay 0, got %d", n, r.Index())
		}
	}
}

func TestRotatorClampsWhenCollectionShrinks(t *testing.T) {
	r := NewRotator(4, time.Hour)
	defer r.Stop()

	r.SetLength(10)
	for i := 0; i < 5; i++ {
		r.Advance()
	}
	if r.Index() != 5 {
		t.Fatalf("expected index 5, got %d", r.Index())
	}

	// Shrink below the current offset: index must reset, window stays full.
	r.SetLength(6)
	if r.Index() != 0 {
		t.Fatalf("expected clamped index 0, got %d", r.Index())
	}
	window := Window([]int{0, 1, 2, 3, 4, 5}, 4, r.Index())
	if len(window) != 4 {
		t.Fatalf("expected full window, got %v", window)
	}
}

func TestRotatorTickerAdvances(t *testing.T) {
	r := NewRotator(4, 5*time.Millisecond)
	r.SetLength(6)

	deadline := time.After(2 * time.Second)
	for r.Index() == 0 {
		select {
		case <-deadline:
			t.Fatal("ticker never advanced the offset")
		case <-time.After(time.Millisecond):
		}
	}
	r.Stop()

	// After Stop no residual tick may move the offset.
	settled := r.Index()
	time.Sleep(25 * time.Millisecond)
	if r.Index() != settled {
		t.Fatalf("offset moved after Stop: %d -> %d", settled, r.Index())
	}
}

func TestRotatorStopIdempotent(t *testing.T) {
	r := NewRotator(4, time.Millisecond)
	r.SetLength(10)
	r.Stop()
	r.Stop()

	// Shrinking an already stopped rotator must not panic either.
	r.SetLength(2)
}
