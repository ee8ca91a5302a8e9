package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// addStaticRoutes serves the SPA from staticDir: existing files as-is, every
// other unmatched path falls back to index.html so client-side routing works.
func addStaticRoutes(r *gin.Engine, staticDir string) {
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}

		reqPath := filepath.Clean(strings.TrimPrefix(c.Request.URL.Path, "/"))
		if reqPath == "." || strings.HasPrefix(reqPath, "..") {
			reqPath = "index.html"
		}

		full := filepath.Join(staticDir, reqPath)
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			c.File(full)
			return
		}

		c.File(filepath.Join(staticDir, "index.html"))
	})
}
