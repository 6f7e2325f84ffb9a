package camera

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"sync"
	"time"
)

// PushSource is fed by the web page: the browser grabs the webcam with
// getUserMedia and ships JPEG frames up the websocket.
type PushSource struct {
	mutex  sync.RWMutex
	frame  image.Image
	ts     int64
	closed bool
	start  time.Time
}

func NewPushSource() *PushSource {
	return &PushSource{start: time.Now()}
}

// Push decodes one incoming frame. Timestamps are stamped server-side and
// forced strictly increasing so the frame loop's dedupe guard works even
// when two frames land within the same millisecond.
func (s *PushSource) Push(data []byte) error {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.closed {
		return errors.New("push source is closed")
	}
	ts := time.Since(s.start).Milliseconds()
	if ts <= s.ts {
		ts = s.ts + 1
	}
	s.frame = img
	s.ts = ts
	return nil
}

func (s *PushSource) Ready() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.frame != nil && !s.closed
}

func (s *PushSource) Frame() (image.Image, int64) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.frame, s.ts
}

func (s *PushSource) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.closed = true
	s.frame = nil
	return nil
}
