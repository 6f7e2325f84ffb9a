package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"browcam/landmarks"
	"browcam/styles"
)

// StatusView reports readiness for the page: the capture trigger stays
// disabled until cameraReady, and the overlay silently never appears while
// detectorReady is false.
func StatusView(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cameraReady":   cameraReady(),
		"detectorReady": landmarks.Ready(),
		"message":       Status.Message(),
		"selected":      styles.Selected().ID,
	})
}
