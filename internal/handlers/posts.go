package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"yatube/internal/db"
	"yatube/internal/middleware"
	"yatube/internal/models"
	"yatube/internal/services"
	"yatube/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// currentUser returns the session user loaded by middleware.LoadUser, or
// nil for anonymous requests.
func currentUser(c *gin.Context) *models.User {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		return user.(*models.User)
	}
	return nil
}

func viewerID(c *gin.Context) uint {
	if user := currentUser(c); user != nil {
		return user.ID
	}
	return 0
}

// Index renders the global feed. The assembled page data is cached for the
// index TTL window; within it the listing is served stale on purpose.
func (h *PostHandler) Index(c *gin.Context) {
	pageParam := c.Query("page")

	cacheKey := "posts:index:page:" + pageParam
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if data, ok := cached.(gin.H); ok {
			Render(c, http.StatusOK, "posts/index.html", data)
			return
		}
	}

	feed, err := services.IndexFeed(db.DB, pageParam)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load posts")
		return
	}

	renderData := gin.H{
		"Title": "Latest posts",
		"Posts": feed.Posts,
		"Page":  feed.Page,
	}
	utils.GetCache().Set(cacheKey, renderData, utils.IndexTTL())

	Render(c, http.StatusOK, "posts/index.html", renderData)
}

// GroupPosts renders one group's feed, addressed by slug.
func (h *PostHandler) GroupPosts(c *gin.Context) {
	slug := c.Param("slug")

	feed, group, err := services.GroupFeed(db.DB, slug, c.Query("page"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RenderError(c, http.StatusNotFound, "Group not found")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Failed to load posts")
		return
	}

	Render(c, http.StatusOK, "posts/group_list.html", gin.H{
		"Title": group.Title,
		"Group": group,
		"Posts": feed.Posts,
		"Page":  feed.Page,
	})
}

// Profile renders one author's feed plus the viewer's follow state.
func (h *PostHandler) Profile(c *gin.Context) {
	username := c.Param("username")

	feed, author, following, err := services.ProfileFeed(db.DB, username, viewerID(c), c.Query("page"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RenderError(c, http.StatusNotFound, "User not found")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Failed to load posts")
		return
	}

	Render(c, http.StatusOK, "posts/profile.html", gin.H{
		"Title":     author.Username,
		"Author":    author,
		"Following": following,
		"Posts":     feed.Posts,
		"Page":      feed.Page,
	})
}

type renderedComment struct {
	models.Comment
	TextHTML template.HTML
}

// renderDetail builds the post detail page, optionally carrying a comment
// form error plus the rejected text so the form re-renders with them.
func (h *PostHandler) renderDetail(c *gin.Context, code int, post *models.Post, commentErr, commentText string) {
	var comments []models.Comment
	db.DB.Preload("Author").
		Where("post_id = ?", post.ID).
		Order("created ASC").
		Find(&comments)

	rendered := make([]renderedComment, len(comments))
	for i, com := range comments {
		rendered[i] = renderedComment{
			Comment:  com,
			TextHTML: utils.RenderMarkdown(com.Text),
		}
	}

	Render(c, code, "posts/detail.html", gin.H{
		"Title":       fmt.Sprintf("Post by %s", post.Author.Username),
		"Post":        post,
		"PostText":    utils.RenderMarkdown(post.Text),
		"Comments":    rendered,
		"CommentErr":  commentErr,
		"CommentText": commentText,
	})
}

// Detail renders a single post with its comments and the comment form.
func (h *PostHandler) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	var post models.Post
	if err := db.DB.Preload("Author").Preload("Group").First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	h.renderDetail(c, http.StatusOK, &post, "", "")
}

func loadGroups() []models.Group {
	var groups []models.Group
	db.DB.Order("id ASC").Find(&groups)
	return groups
}

// ShowCreate renders the new-post form.
func (h *PostHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "posts/create.html", gin.H{
		"Title":  "New post",
		"Groups": loadGroups(),
	})
}

var errUnknownGroup = errors.New("unknown group")

// parseGroupID validates an optional group choice from the form. An empty
// value means "no group"; a malformed or unknown one is a form error.
func parseGroupID(groupParam string) (*uint, error) {
	if groupParam == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(groupParam)
	if err != nil || id <= 0 {
		return nil, errUnknownGroup
	}

	var group models.Group
	if err := db.DB.First(&group, id).Error; err != nil {
		return nil, errUnknownGroup
	}
	return &group.ID, nil
}

// Create handles the new-post form. Author and publication timestamp are
// stamped server-side; on success the author lands on their profile.
func (h *PostHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	text := strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		Render(c, http.StatusBadRequest, "posts/create.html", gin.H{
			"Title":  "New post",
			"Error":  "Text must not be empty",
			"Groups": loadGroups(),
		})
		return
	}

	groupID, err := parseGroupID(c.PostForm("group"))
	if err != nil {
		Render(c, http.StatusBadRequest, "posts/create.html", gin.H{
			"Title":  "New post",
			"Error":  "Choose a valid group",
			"Groups": loadGroups(),
		})
		return
	}

	imagePath := ""
	if header, err := c.FormFile("image"); err == nil {
		path, err := services.SavePostImage(c, header)
		if err != nil {
			Render(c, http.StatusBadRequest, "posts/create.html", gin.H{
				"Title":  "New post",
				"Error":  "Could not accept the image: " + err.Error(),
				"Groups": loadGroups(),
			})
			return
		}
		imagePath = path
	}

	post := models.Post{
		AuthorID: user.ID,
		GroupID:  groupID,
		Text:     text,
		Image:    imagePath,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		Render(c, http.StatusInternalServerError, "posts/create.html", gin.H{
			"Title":  "New post",
			"Error":  "Failed to save the post",
			"Groups": loadGroups(),
		})
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}

// ShowEdit renders the edit form. A non-author is bounced to the detail
// page without an error message.
func (h *PostHandler) ShowEdit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := c.Param("id")

	var post models.Post
	if err := db.DB.First(&post, "id = ?", id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, "/posts/"+id)
		return
	}

	Render(c, http.StatusOK, "posts/create.html", gin.H{
		"Title":  "Edit post",
		"Post":   post,
		"IsEdit": true,
		"Groups": loadGroups(),
	})
}

// Edit applies the submitted fields to the author's own post. The
// publication timestamp is never touched. Non-authors are redirected to the
// detail view with no mutation and no error shown.
func (h *PostHandler) Edit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := c.Param("id")

	var post models.Post
	if err := db.DB.First(&post, "id = ?", id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, "/posts/"+id)
		return
	}

	text := strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		Render(c, http.StatusBadRequest, "posts/create.html", gin.H{
			"Title":  "Edit post",
			"Error":  "Text must not be empty",
			"Post":   post,
			"IsEdit": true,
			"Groups": loadGroups(),
		})
		return
	}

	groupID, err := parseGroupID(c.PostForm("group"))
	if err != nil {
		Render(c, http.StatusBadRequest, "posts/create.html", gin.H{
			"Title":  "Edit post",
			"Error":  "Choose a valid group",
			"Post":   post,
			"IsEdit": true,
			"Groups": loadGroups(),
		})
		return
	}

	updates := map[string]interface{}{
		"text":     text,
		"group_id": groupID,
	}
	if header, err := c.FormFile("image"); err == nil {
		path, err := services.SavePostImage(c, header)
		if err != nil {
			Render(c, http.StatusBadRequest, "posts/create.html", gin.H{
				"Title":  "Edit post",
				"Error":  "Could not accept the image: " + err.Error(),
				"Post":   post,
				"IsEdit": true,
				"Groups": loadGroups(),
			})
			return
		}
		updates["image"] = path
	}

	if err := db.DB.Model(&post).Updates(updates).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to save the post")
		return
	}

	c.Redirect(http.StatusFound, "/posts/"+id)
}

// AddComment attaches a comment to the URL-addressed post. Blank text
// re-renders the detail page with the form error; success redirects back to
// the detail view.
func (h *PostHandler) AddComment(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	text := c.PostForm("text")
	_, err = services.AddComment(db.DB, uint(id), user.ID, text)
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, "/posts/"+c.Param("id"))
	case errors.Is(err, gorm.ErrRecordNotFound):
		RenderError(c, http.StatusNotFound, "Post not found")
	case errors.Is(err, services.ErrEmptyComment):
		var post models.Post
		if err := db.DB.Preload("Author").Preload("Group").First(&post, id).Error; err != nil {
			RenderError(c, http.StatusNotFound, "Post not found")
			return
		}
		h.renderDetail(c, http.StatusBadRequest, &post, "Comment must not be empty", text)
	default:
		RenderError(c, http.StatusInternalServerError, "Failed to save the comment")
	}
}

// FollowIndex renders the viewer's personalized feed.
func (h *PostHandler) FollowIndex(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	feed, err := services.FollowingFeed(db.DB, user.ID, c.Query("page"))
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load posts")
		return
	}

	Render(c, http.StatusOK, "posts/follow.html", gin.H{
		"Title": "Your feed",
		"Posts": feed.Posts,
		"Page":  feed.Page,
	})
}

// Follow creates a follow edge towards the addressed author, then sends the
// viewer back to the profile whether or not anything changed.
func (h *PostHandler) Follow(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	username := c.Param("username")

	var author models.User
	if err := db.DB.Where("username = ?", username).First(&author).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	if err := services.FollowAuthor(db.DB, user.ID, author.ID); err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to follow")
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+username)
}

// Unfollow removes the follow edge; a missing edge is not an error.
func (h *PostHandler) Unfollow(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	username := c.Param("username")

	var author models.User
	if err := db.DB.Where("username = ?", username).First(&author).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	if err := services.UnfollowAuthor(db.DB, user.ID, author.ID); err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to unfollow")
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+username)
}
