package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"browcam/styles"
)

func cssColor(s styles.Style) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", s.Color.R, s.Color.G, s.Color.B, float64(s.Color.A)/255)
}

type styleEntry struct {
	styles.Style
	CSSColor string `json:"color"`
	Active   bool   `json:"active"`
}

func styleList() []styleEntry {
	selected := styles.Selected()
	catalog := styles.Catalog()
	result := make([]styleEntry, len(catalog))
	for i, s := range catalog {
		result[i] = styleEntry{Style: s, CSSColor: cssColor(s), Active: s.ID == selected.ID}
	}
	return result
}

func StyleList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"styles":   styleList(),
		"selected": styles.Selected().ID,
	})
}

// StyleSelect switches the active preset. Unknown IDs silently resolve to
// the first catalog entry, so this never fails.
func StyleSelect(c *gin.Context) {
	resolved := styles.Select(c.Query("id"))
	c.JSON(http.StatusOK, gin.H{
		"selected": resolved.ID,
		"styles":   styleList(),
	})
}
