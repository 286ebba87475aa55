package services

import (
	"errors"
	"strings"

	"yatube/internal/models"

	"gorm.io/gorm"
)

// ErrEmptyComment means the submitted text was empty or whitespace-only.
var ErrEmptyComment = errors.New("comment text must not be empty")

// AddComment attaches a comment to an existing post. Author and post are
// stamped here from the authenticated identity and the URL-addressed post,
// never from form fields. Returns gorm.ErrRecordNotFound when the post does
// not exist and ErrEmptyComment when the text is blank; nothing is persisted
// in either case.
func AddComment(db *gorm.DB, postID, authorID uint, text string) (*models.Comment, error) {
	var post models.Post
	if err := db.First(&post, postID).Error; err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	comment := models.Comment{
		PostID:   post.ID,
		AuthorID: authorID,
		Text:     text,
	}
	if err := db.Create(&comment).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}
