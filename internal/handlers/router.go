package handlers

import (
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the API. Gating policy, applied uniformly: every GET is
// public, every mutation requires a bearer token, with two exceptions —
// registration (POST /api/users) and login are public since they are how a
// token is obtained in the first place.
func (h *Handler) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	if h.cfg.UploadsDir != "" {
		r.Static("/uploads", h.cfg.UploadsDir)
	}

	api := r.Group("/api")

	users := api.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.GET("/:id/include", h.GetUserInclude)
		users.POST("", h.CreateUser)
		users.POST("/login", h.Login)

		protected := users.Group("", h.AuthRequired())
		protected.PUT("/:id", h.UpdateUser)
		protected.DELETE("/:id", h.DeleteUser)
	}

	videos := api.Group("/videos")
	{
		videos.GET("", h.ListVideos)
		videos.GET("/:id", h.GetVideo)
		videos.GET("/:id/include", h.GetVideoInclude)
		videos.GET("/user/:id", h.ListVideosByUser)

		protected := videos.Group("", h.AuthRequired())
		protected.POST("", h.CreateVideo)
		protected.PUT("/:id", h.UpdateVideo)
		protected.DELETE("/:id", h.DeleteVideo)
	}

	comments := api.Group("/comments")
	{
		comments.GET("", h.ListComments)
		comments.GET("/:id", h.GetComment)
		comments.GET("/:id/include", h.GetCommentInclude)
		comments.GET("/video/:id", h.ListCommentsByVideo)
		comments.GET("/user/:id", h.ListCommentsByUser)

		protected := comments.Group("", h.AuthRequired())
		protected.POST("", h.CreateComment)
		protected.PUT("/:id", h.UpdateComment)
		protected.DELETE("/:id", h.DeleteComment)
	}

	likes := api.Group("/likes")
	{
		likes.GET("", h.ListLikes)
		likes.GET("/:id", h.GetLike)
		likes.GET("/:id/include", h.GetLikeInclude)
		likes.GET("/video/:id", h.ListLikesByVideo)
		likes.GET("/user/:id", h.ListLikesByUser)

		protected := likes.Group("", h.AuthRequired())
		protected.POST("", h.CreateLike)
		protected.PUT("/:id", h.UpdateLike)
		protected.DELETE("/:id", h.DeleteLike)
	}

	return r
}
