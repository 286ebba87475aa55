package models

import (
	"time"
)

type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	GroupID  *uint  `gorm:"index" json:"group_id"` // Nullable, a post need not belong to a group
	Group    *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"group"`
	Text     string `gorm:"type:text;not null" json:"text"`
	Image    string `json:"image"` // Relative path under the media root, empty if none
	// Set once at creation. Edits go through column updates that never touch it.
	PubDate time.Time `gorm:"not null;index;autoCreateTime" json:"pub_date"`
}
