package router

import (
	"net/http"
	"yatube/internal/handlers"
	"yatube/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	postHandler := handlers.NewPostHandler()
	authHandler := handlers.NewAuthHandler()
	pageHandler := handlers.NewPageHandler()

	// Public Routes
	r.GET("/", postHandler.Index)
	r.GET("/group/:slug", postHandler.GroupPosts)
	r.GET("/profile/:username", postHandler.Profile)
	r.GET("/posts/:id", postHandler.Detail)

	r.GET("/about/author", pageHandler.AboutAuthor)
	r.GET("/about/tech", pageHandler.AboutTech)

	r.GET("/auth/signup", authHandler.ShowRegister)
	r.POST("/auth/signup", authHandler.Register)
	r.GET("/auth/login", authHandler.ShowLogin)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/auth/logout", authHandler.Logout)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/create", postHandler.ShowCreate)
		authorized.POST("/create", postHandler.Create)
		authorized.GET("/posts/:id/edit", postHandler.ShowEdit)
		authorized.POST("/posts/:id/edit", postHandler.Edit)
		authorized.POST("/posts/:id/comment", postHandler.AddComment)
		authorized.GET("/follow", postHandler.FollowIndex)
		authorized.GET("/profile/:username/follow", postHandler.Follow)
		authorized.GET("/profile/:username/unfollow", postHandler.Unfollow)

		authorized.GET("/auth/password_change", authHandler.ShowPasswordChange)
		authorized.POST("/auth/password_change", authHandler.PasswordChange)
	}

	// Custom page for everything that does not resolve
	r.NoRoute(func(c *gin.Context) {
		handlers.RenderError(c, http.StatusNotFound, "Page not found")
	})
}
