package models

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"

	"browcam/db"
)

func initTestDB(t *testing.T) {
	t.Helper()
	db.Init()
	Init()
	db.Instance.Exec("DELETE FROM captures")
}

func testJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	buf := bytes.Buffer{}
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestCaptureOrderingAndTimestamps(t *testing.T) {
	initTestDB(t)
	data := testJPEG(t, 640, 480)

	first, err := CreateCapture(data, 640, 480)
	if err != nil {
		t.Fatalf("first capture: %v", err)
	}
	second, err := CreateCapture(data, 640, 480)
	if err != nil {
		t.Fatalf("second capture: %v", err)
	}
	if second.CreatedAt <= first.CreatedAt {
		t.Errorf("timestamps not strictly increasing: %d then %d", first.CreatedAt, second.CreatedAt)
	}

	list, err := ListCaptures()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d captures, want 2", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Errorf("ordering = [%d, %d], want most recent (%d) first", list[0].ID, list[1].ID, second.ID)
	}
	if list[0].ThumbWidth == 0 || list[0].ThumbHeight == 0 {
		t.Error("listed capture is missing thumbnail dimensions")
	}
}

func TestGetCaptureRoundTrip(t *testing.T) {
	initTestDB(t)
	data := testJPEG(t, 320, 240)
	created, err := CreateCapture(data, 320, 240)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	loaded, err := GetCapture(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(loaded.Data, data) {
		t.Error("stored capture bytes differ from the snapshot")
	}
	if len(loaded.ThumbData) == 0 {
		t.Error("capture has no thumbnail")
	}
	if loaded.MimeType != "image/jpeg" || loaded.Width != 320 || loaded.Height != 240 {
		t.Errorf("unexpected metadata: %s %dx%d", loaded.MimeType, loaded.Width, loaded.Height)
	}
	if _, err := GetCapture(created.ID + 999); err == nil {
		t.Error("expected an error for a missing capture")
	}
}
