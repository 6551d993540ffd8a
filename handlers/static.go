package handlers

import (
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// SPAFallback serves the built storefront from dir. Unknown non-API paths fall
// back to index.html so client-side routing keeps working after a refresh.
func SPAFallback(dir string) gin.HandlerFunc {
	fs := http.Dir(dir)
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		p := path.Clean(c.Request.URL.Path)
		if f, err := fs.Open(p); err == nil {
			f.Close()
			c.File(filepath.Join(dir, filepath.FromSlash(p)))
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	}
}
