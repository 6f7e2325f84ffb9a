package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"browcam/models"
)

// CaptureTrigger snapshots the composed surface. Rejected while the camera
// never became ready (the UI keeps the trigger disabled in that state too).
func CaptureTrigger(c *gin.Context) {
	if !cameraReady() {
		c.JSON(http.StatusConflict, NotReadyResponse)
		return
	}
	data, w, h, err := Surface.EncodeJPEG()
	if err != nil {
		c.JSON(http.StatusConflict, NotReadyResponse)
		return
	}
	capture, err := models.CreateCapture(data, w, h)
	if err != nil {
		log.Printf("Saving capture failed: %v", err)
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	notifyCapture(capture.ID)
	c.JSON(http.StatusOK, capture)
}

func CaptureList(c *gin.Context) {
	list, err := models.ListCaptures()
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CaptureFetch serves the capture image bytes; ?thumb=1 returns the grid
// thumbnail instead of the full snapshot.
func CaptureFetch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, BadRequestResponse)
		return
	}
	capture, err := models.GetCapture(id)
	if err != nil {
		c.JSON(http.StatusNotFound, NopeResponse)
		return
	}
	data := capture.Data
	if c.Query("thumb") == "1" {
		data = capture.ThumbData
	}
	c.Data(http.StatusOK, capture.MimeType, data)
}
