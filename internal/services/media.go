package services

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"yatube/internal/utils"

	"github.com/gin-gonic/gin"
)

// Uploaded post images are capped at 10MB.
const maxImageSize = 10 << 20

var (
	ErrNotAnImage   = errors.New("uploaded file is not an image")
	ErrImageTooBig  = errors.New("uploaded image exceeds the size limit")
	ErrImageStorage = errors.New("failed to store uploaded image")
)

// MediaRoot is the directory uploaded files live under, served at /media.
func MediaRoot() string {
	if root := os.Getenv("MEDIA_ROOT"); root != "" {
		return root
	}
	return "./media"
}

// SavePostImage validates an uploaded image and stores it under
// <media root>/posts/ with a random filename. Returns the relative path to
// record on the post.
func SavePostImage(c *gin.Context, header *multipart.FileHeader) (string, error) {
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}
	if header.Size > maxImageSize {
		return "", ErrImageTooBig
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	name := utils.RandString(12) + ext
	rel := filepath.Join("posts", name)

	dir := filepath.Join(MediaRoot(), "posts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", ErrImageStorage
	}
	if err := c.SaveUploadedFile(header, filepath.Join(MediaRoot(), rel)); err != nil {
		return "", ErrImageStorage
	}

	return rel, nil
}
