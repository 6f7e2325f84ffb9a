package models

import (
	"bytes"
	"sync"
	"time"

	"browcam/db"
	"browcam/utils"
)

const thumbSize = 240

// Capture is one still snapshot of the composed surface. Records live in
// the in-memory session database only and are never mutated after creation.
type Capture struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt   int64  `gorm:"index" json:"created"` // unix milliseconds
	MimeType    string `gorm:"type:varchar(50)" json:"mimeType"`
	Width       uint16 `json:"width"`
	Height      uint16 `json:"height"`
	Data        []byte `gorm:"type:blob" json:"-"`
	ThumbData   []byte `gorm:"type:blob" json:"-"`
	ThumbWidth  uint16 `json:"thumbWidth"`
	ThumbHeight uint16 `json:"thumbHeight"`
}

var (
	captureMutex  sync.Mutex
	lastCaptureTs int64
)

// CreateCapture stores a new snapshot together with a thumbnail for the
// grid. Creation timestamps are forced strictly increasing so the
// most-recent-first ordering is total even for rapid triggers.
func CreateCapture(jpegData []byte, w, h int) (Capture, error) {
	capture := Capture{
		MimeType: "image/jpeg",
		Width:    uint16(w),
		Height:   uint16(h),
		Data:     jpegData,
	}
	thumbBuf := bytes.Buffer{}
	thumb, err := utils.CreateThumb(thumbSize, bytes.NewReader(jpegData), &thumbBuf)
	if err != nil {
		return capture, err
	}
	capture.ThumbData = thumbBuf.Bytes()
	capture.ThumbWidth = thumb.NewX
	capture.ThumbHeight = thumb.NewY

	captureMutex.Lock()
	ts := time.Now().UnixMilli()
	if ts <= lastCaptureTs {
		ts = lastCaptureTs + 1
	}
	lastCaptureTs = ts
	captureMutex.Unlock()
	capture.CreatedAt = ts

	err = db.Instance.Create(&capture).Error
	return capture, err
}

// ListCaptures returns all session captures, most recent first.
func ListCaptures() (result []Capture, err error) {
	err = db.Instance.
		Select("id, created_at, mime_type, width, height, thumb_width, thumb_height").
		Order("created_at DESC, id DESC").
		Find(&result).Error
	return
}

// GetCapture loads one capture with its image data.
func GetCapture(id uint64) (capture Capture, err error) {
	err = db.Instance.First(&capture, id).Error
	return
}
