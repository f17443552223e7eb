package controllers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vishalpatil-45/Adventour/dto"
)

// StaticController serves the site files with an index.html fallback
type StaticController struct {
	root string
}

// NewStaticController creates a StaticController serving files under root
func NewStaticController(root string) *StaticController {
	return &StaticController{root: root}
}

// Serve is the catch-all route. Existing files are served as is, unknown API
// paths get a JSON 404, and everything else gets index.html so client side
// routes keep working. Dotfiles and dot directories are never served.
func (ctrl *StaticController) Serve(c *gin.Context) {
	urlPath := c.Request.URL.Path
	if urlPath == "/api" || strings.HasPrefix(urlPath, "/api/") {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
		return
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
		return
	}

	// cleaned against "/" so it cannot climb out of root
	clean := path.Clean("/" + urlPath)
	if !hasDotSegment(clean) {
		name := filepath.Join(ctrl.root, filepath.FromSlash(clean))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			c.File(name)
			return
		}
	}
	c.File(filepath.Join(ctrl.root, "index.html"))
}

// hasDotSegment reports whether any element of a cleaned URL path starts with
// a dot, as in /.env or /.git/config.
func hasDotSegment(urlPath string) bool {
	for _, part := range strings.Split(urlPath, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
