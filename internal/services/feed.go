package services

import (
	"yatube/internal/models"
	"yatube/internal/utils"

	"gorm.io/gorm"
)

// Feed is one page of a post listing, newest first.
type Feed struct {
	Posts []models.Post
	Page  utils.Page
}

const feedOrder = "pub_date DESC, id DESC"

func fetchFeed(query *gorm.DB, pageParam string) (*Feed, error) {
	// New session so Count and Find below each start from a clean clone
	// of the filtered query.
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	page := utils.Paginate(total, pageParam)

	var posts []models.Post
	err := query.
		Preload("Author").
		Preload("Group").
		Order(feedOrder).
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return &Feed{Posts: posts, Page: page}, nil
}

// IndexFeed lists all posts.
func IndexFeed(db *gorm.DB, pageParam string) (*Feed, error) {
	return fetchFeed(db.Model(&models.Post{}), pageParam)
}

// GroupFeed lists the posts of one group, identified by slug.
// Returns gorm.ErrRecordNotFound when the slug does not resolve.
func GroupFeed(db *gorm.DB, slug, pageParam string) (*Feed, *models.Group, error) {
	var group models.Group
	if err := db.Where("slug = ?", slug).First(&group).Error; err != nil {
		return nil, nil, err
	}

	feed, err := fetchFeed(db.Model(&models.Post{}).Where("group_id = ?", group.ID), pageParam)
	if err != nil {
		return nil, nil, err
	}
	return feed, &group, nil
}

// ProfileFeed lists one author's posts plus whether the viewer follows them.
// viewerID 0 means anonymous; anonymous viewers are never "following".
func ProfileFeed(db *gorm.DB, username string, viewerID uint, pageParam string) (*Feed, *models.User, bool, error) {
	var author models.User
	if err := db.Where("username = ?", username).First(&author).Error; err != nil {
		return nil, nil, false, err
	}

	feed, err := fetchFeed(db.Model(&models.Post{}).Where("author_id = ?", author.ID), pageParam)
	if err != nil {
		return nil, nil, false, err
	}

	following := IsFollowing(db, viewerID, author.ID)
	return feed, &author, following, nil
}

// FollowingFeed lists posts by authors the viewer follows.
func FollowingFeed(db *gorm.DB, viewerID uint, pageParam string) (*Feed, error) {
	followed := db.Model(&models.Follow{}).
		Select("author_id").
		Where("user_id = ?", viewerID)

	return fetchFeed(db.Model(&models.Post{}).Where("author_id IN (?)", followed), pageParam)
}
