package pipeline

import (
	"log"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/disintegration/imaging"

	"browcam/camera"
	"browcam/landmarks"
	"browcam/overlay"
	"browcam/styles"
)

// Loop drives the whole pipeline: once per tick it pulls the latest frame,
// draws it to the surface, runs landmark detection (deduplicated by frame
// timestamp) and lets the renderer paint the brows with the current style.
// All per-tick failures are silent and self-heal on the next tick.
type Loop struct {
	Source   camera.Source
	Detector func() landmarks.Detector // polled each tick; nil until the model loaded
	Selected func() styles.Style
	Renderer overlay.Renderer
	Surface  *Surface
	Frames   *Broadcaster // optional; receives the composed JPEG each tick
	Clock    clock.Clock
	Interval time.Duration
	Mirror   bool

	lastTimestamp int64
	once          sync.Once
	stop          chan struct{}
	done          chan struct{}
}

func (l *Loop) channels() (chan struct{}, chan struct{}) {
	l.once.Do(func() {
		l.stop = make(chan struct{})
		l.done = make(chan struct{})
	})
	return l.stop, l.done
}

// Run ticks until Stop is called. Meant to run on its own goroutine.
func (l *Loop) Run() {
	if l.Clock == nil {
		l.Clock = clock.New()
	}
	if l.Interval <= 0 {
		l.Interval = time.Second / 30
	}
	stop, done := l.channels()
	defer close(done)
	ticker := l.Clock.Ticker(l.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			l.tick()
		}
	}
}

// Stop halts the loop and releases the camera. Must only be called after
// Run has been started.
func (l *Loop) Stop() {
	stop, done := l.channels()
	close(stop)
	<-done
	if l.Source != nil {
		if err := l.Source.Close(); err != nil {
			log.Printf("Closing camera source: %v", err)
		}
	}
}

// tick is one frame iteration. Guard order matters: the raw frame is always
// drawn once the source is live, detection and overlay only stack on top.
func (l *Loop) tick() {
	if l.Source == nil || !l.Source.Ready() {
		return
	}
	frame, ts := l.Source.Frame()
	if frame == nil {
		return
	}
	bounds := frame.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}
	if l.Mirror {
		frame = imaging.FlipH(frame)
	}
	l.Surface.Resize(bounds.Dx(), bounds.Dy())
	l.Surface.DrawFrame(frame)
	defer l.publish()

	detector := l.Detector()
	if detector == nil {
		return
	}
	if ts == l.lastTimestamp {
		return
	}
	l.lastTimestamp = ts
	result, err := detector.DetectForVideo(frame, ts)
	if err != nil {
		log.Printf("Landmark detection failed at ts %d: %v", ts, err)
		return
	}
	if len(result.Sets) == 0 {
		return
	}
	// Multi-face results beyond the first are ignored
	l.Surface.Render(l.Renderer, result.Sets[0], l.Selected())
}

func (l *Loop) publish() {
	if l.Frames == nil || l.Frames.Count() == 0 {
		return
	}
	data, _, _, err := l.Surface.EncodeJPEG()
	if err != nil {
		return
	}
	l.Frames.Publish(data)
}
