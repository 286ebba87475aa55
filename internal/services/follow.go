package services

import (
	"yatube/internal/models"

	"gorm.io/gorm"
)

// FollowAuthor ensures exactly one follow edge (userID -> authorID) exists.
// Self-follows are refused without error, and a repeated call is a no-op:
// FirstOrCreate plus the (user_id, author_id) unique index keep the edge
// single even across concurrent requests.
func FollowAuthor(db *gorm.DB, userID, authorID uint) error {
	if userID == authorID {
		return nil
	}

	follow := models.Follow{UserID: userID, AuthorID: authorID}
	return db.Where("user_id = ? AND author_id = ?", userID, authorID).
		FirstOrCreate(&follow).Error
}

// UnfollowAuthor removes the follow edge if present. An absent edge is not
// an error.
func UnfollowAuthor(db *gorm.DB, userID, authorID uint) error {
	return db.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{}).Error
}

// IsFollowing reports whether userID follows authorID. userID 0 (anonymous)
// is never following anyone.
func IsFollowing(db *gorm.DB, userID, authorID uint) bool {
	if userID == 0 {
		return false
	}

	var count int64
	db.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count)
	return count > 0
}
