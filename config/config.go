package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS  = "" // e.g. "example.com,example2.com"
	BIND_ADDRESS = "0.0.0.0:8080"
	DEBUG_MODE   = true
	// Directory with the dlib model files used by go-face. The shape predictor
	// is loaded from shape_predictor_5_face_landmarks.dat; that file must hold
	// the 68-point predictor or no eyebrow points are ever produced.
	FACE_MODELS_DIR = "models"
	CAMERA_DEVICE   = "/dev/video0" // Local capture device; ignored when CAMERA_PUSH is set
	CAMERA_PUSH     = false         // Frames are pushed by the web page instead of read from a local device
	CAMERA_MIRROR   = true          // Mirror frames horizontally (front-facing camera)
	FRAME_RATE      = 30            // Frame loop ticks per second
	FFMPEG_BIN      = "ffmpeg"
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("FACE_MODELS_DIR", &FACE_MODELS_DIR)
	readEnvString("CAMERA_DEVICE", &CAMERA_DEVICE)
	readEnvBool("CAMERA_PUSH", &CAMERA_PUSH)
	readEnvBool("CAMERA_MIRROR", &CAMERA_MIRROR)
	readEnvInt("FRAME_RATE", &FRAME_RATE)
	readEnvString("FFMPEG_BIN", &FFMPEG_BIN)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
