package pipeline

import (
	"bytes"
	"testing"
)

func TestBroadcasterDeliversLatestFrame(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe("page-1")
	if b.Count() != 1 {
		t.Fatalf("count = %d, want 1", b.Count())
	}

	b.Publish([]byte("frame-1"))
	// A slow consumer loses the stale frame, never blocks the loop
	b.Publish([]byte("frame-2"))
	got := <-ch
	if !bytes.Equal(got, []byte("frame-2")) {
		t.Errorf("got %q, want the latest frame", got)
	}

	b.Unsubscribe("page-1")
	if b.Count() != 0 {
		t.Errorf("count = %d after unsubscribe, want 0", b.Count())
	}
	// Publishing with no subscribers is a no-op
	b.Publish([]byte("frame-3"))
}
