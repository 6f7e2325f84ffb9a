package camera

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"log"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// DeviceSource reads a local capture device through an ffmpeg child process
// emitting an MJPEG pipe. Closing it kills the child, which releases the
// camera handle.
type DeviceSource struct {
	mutex    sync.RWMutex
	frame    image.Image
	ts       int64
	closed   bool
	gotFrame bool

	cmd     *exec.Cmd
	stdout  io.ReadCloser
	stderr  bytes.Buffer
	start   time.Time
	onFatal func(error)
}

// OpenDevice starts ffmpeg against the given v4l2 device. The source only
// becomes Ready once the first frame decodes. onFatal is invoked once if
// the stream dies: a bad or locked device makes ffmpeg start fine and exit
// immediately, so acquisition failures surface there, not as a start error.
func OpenDevice(ffmpegBin, device string, onFatal func(error)) (*DeviceSource, error) {
	cmd := exec.Command(ffmpegBin,
		"-hide_banner",
		"-loglevel", "error",
		"-f", "v4l2",
		"-i", device,
		"-f", "image2pipe",
		"-vcodec", "mjpeg",
		"-q:v", "5",
		"-")
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	s := &DeviceSource{cmd: cmd, stdout: stdout, start: time.Now(), onFatal: onFatal}
	cmd.Stderr = &s.stderr
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	go s.readLoop()
	return s, nil
}

// readLoop scans the MJPEG pipe for SOI/EOI marker pairs and keeps only the
// most recently decoded frame.
func (s *DeviceSource) readLoop() {
	reader := bufio.NewReaderSize(s.stdout, 256*1024)
	var buf bytes.Buffer
	inFrame := false
	prev := byte(0)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			s.fail(err)
			return
		}
		if !inFrame {
			if prev == 0xFF && b == 0xD8 {
				inFrame = true
				buf.Reset()
				buf.WriteByte(0xFF)
				buf.WriteByte(0xD8)
			}
		} else {
			buf.WriteByte(b)
			if prev == 0xFF && b == 0xD9 {
				inFrame = false
				s.storeFrame(buf.Bytes())
			}
		}
		prev = b
	}
}

// fail marks the source dead and reports the terminal error once. A pipe
// error after Close was requested is the expected teardown, not a failure.
func (s *DeviceSource) fail(err error) {
	s.mutex.Lock()
	wasClosed := s.closed
	hadFrame := s.gotFrame
	s.closed = true
	s.frame = nil
	s.mutex.Unlock()
	if wasClosed {
		return
	}
	_ = s.cmd.Wait()
	if err == io.EOF {
		if hadFrame {
			err = errors.New("camera stream ended")
		} else {
			err = errors.New("camera produced no frames")
		}
	}
	if detail := strings.TrimSpace(s.stderr.String()); detail != "" {
		err = fmt.Errorf("%v: %s", err, detail)
	}
	log.Printf("Camera stream failed: %v", err)
	if s.onFatal != nil {
		s.onFatal(err)
	}
}

func (s *DeviceSource) storeFrame(data []byte) {
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("Dropping undecodable camera frame: %v", err)
		return
	}
	ts := time.Since(s.start).Milliseconds()
	s.mutex.Lock()
	if s.closed {
		s.mutex.Unlock()
		return
	}
	if ts <= s.ts {
		ts = s.ts + 1
	}
	s.frame = img
	s.ts = ts
	s.gotFrame = true
	s.mutex.Unlock()
}

func (s *DeviceSource) Ready() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.frame != nil && !s.closed
}

func (s *DeviceSource) Frame() (image.Image, int64) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.frame, s.ts
}

func (s *DeviceSource) Close() error {
	s.mutex.Lock()
	if s.closed {
		s.mutex.Unlock()
		return nil
	}
	s.closed = true
	s.frame = nil
	s.mutex.Unlock()
	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
		_ = s.cmd.Wait()
	}
	return nil
}
