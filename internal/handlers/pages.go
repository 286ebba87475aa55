package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) AboutAuthor(c *gin.Context) {
	Render(c, http.StatusOK, "about/author.html", gin.H{"Title": "About the author"})
}

func (h *PageHandler) AboutTech(c *gin.Context) {
	Render(c, http.StatusOK, "about/tech.html", gin.H{"Title": "Technologies"})
}
