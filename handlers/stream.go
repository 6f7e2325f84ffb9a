package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"browcam/utils"
)

const mjpegBoundary = "browcamframe"

// Stream serves the composed surface as a multipart MJPEG stream: the
// fallback live view for pages without a websocket.
func Stream(c *gin.Context) {
	id := utils.Rand8BytesToBase62()
	frames := Frames.Subscribe(id)
	defer Frames.Unsubscribe(id)

	c.Header("Content-Type", "multipart/x-mixed-replace; boundary="+mjpegBoundary)
	c.Header("Cache-Control", "no-store")
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.Status(http.StatusInternalServerError)
		return
	}
	for {
		select {
		case <-c.Request.Context().Done():
			return
		case frame, more := <-frames:
			if !more {
				return
			}
			_, err := fmt.Fprintf(c.Writer,
				"--%s\r\nContent-Type: image/jpeg\r\nContent-Length: %d\r\n\r\n",
				mjpegBoundary, len(frame))
			if err != nil {
				return
			}
			if _, err = c.Writer.Write(frame); err != nil {
				return
			}
			if _, err = c.Writer.Write([]byte("\r\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
