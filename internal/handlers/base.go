package handlers

import (
	"time"
	"yatube/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like 'current user'.
// The incoming map may be a cached payload shared across requests, so the
// per-request keys go into a copy: writing them in place would both leak a
// previous viewer's identity and race with concurrent renders of the same
// cached map.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	data := make(gin.H, len(obj)+3)
	for k, v := range obj {
		data[k] = v
	}

	if user, exists := c.Get(middleware.CheckUserKey); exists {
		data["CurrentUser"] = user
	} else {
		data["CurrentUser"] = nil
	}

	data["CurrentPath"] = c.Request.URL.Path
	data["Year"] = time.Now().Year()

	c.HTML(code, name, data)
}

// RenderError renders the shared error page.
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}
