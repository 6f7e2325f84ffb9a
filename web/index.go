package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"browcam/config"
	"browcam/styles"
)

// IndexView renders the single page: live view, style buttons, capture
// trigger and the thumbnail grid.
func IndexView(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"styles":   styles.Catalog(),
		"selected": styles.Selected().ID,
		"pushMode": config.CAMERA_PUSH,
	})
}

func DisallowRobots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
}
