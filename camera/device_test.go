package camera

import (
	"io"
	"testing"
	"time"
)

func TestOpenDeviceReportsEarlyChildExit(t *testing.T) {
	// A binary that starts fine and exits without producing frames is
	// exactly what ffmpeg does on a bad or locked device.
	fatal := make(chan error, 1)
	s, err := OpenDevice("/bin/true", "/dev/video-none", func(err error) {
		fatal <- err
	})
	if err != nil {
		t.Fatalf("OpenDevice: %v", err)
	}
	defer s.Close()

	select {
	case err := <-fatal:
		if err == nil {
			t.Fatal("stream death reported with a nil error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("child exit before the first frame was never reported")
	}
	if s.Ready() {
		t.Error("dead source still reports ready")
	}
}

func TestOpenDeviceMissingBinary(t *testing.T) {
	if _, err := OpenDevice("/no/such/ffmpeg", "/dev/video0", nil); err == nil {
		t.Fatal("expected an error for a missing ffmpeg binary")
	}
}

func TestDeviceSourceCloseIsSilent(t *testing.T) {
	called := false
	s := &DeviceSource{onFatal: func(error) { called = true }}
	s.closed = true
	s.fail(io.EOF)
	if called {
		t.Error("teardown reported as a stream failure")
	}
}
