package handlers

import (
	"browcam/camera"
	"browcam/pipeline"
)

type Response struct {
	Error string `json:"error"`
}

var (
	// Predefined errors
	OKResponse         = Response{}
	NopeResponse       = Response{"nope"}
	NotReadyResponse   = Response{"camera not ready"}
	DBError1Response   = Response{"DB Error 1"}
	DBError2Response   = Response{"DB Error 2"}
	BadRequestResponse = Response{"bad request"}
)

// Shared pipeline state, wired once at startup.
var (
	Source  camera.Source
	Surface *pipeline.Surface
	Status  *pipeline.Status
	Frames  *pipeline.Broadcaster
	Push    *camera.PushSource // non-nil only in push mode
)

func Setup(source camera.Source, surface *pipeline.Surface, status *pipeline.Status, frames *pipeline.Broadcaster, push *camera.PushSource) {
	Source = source
	Surface = surface
	Status = status
	Frames = frames
	Push = push
}

func cameraReady() bool {
	return Source != nil && Source.Ready()
}
