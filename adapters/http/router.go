package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the API surface. Route shape is fixed by existing clients:
// /api/users, /api/auth, /api/profile, /api/posts.
func NewRouter(
	authHandler *AuthHandler,
	userHandler *UserHandler,
	profileHandler *ProfileHandler,
	postHandler *PostHandler,
	authMiddleware gin.HandlerFunc,
	errorMiddleware gin.HandlerFunc,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.POST("/users", userHandler.Register)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("", authHandler.Login)
			authGroup.GET("", authMiddleware, authHandler.Me)
		}

		profileGroup := api.Group("/profile")
		{
			profileGroup.GET("", profileHandler.List)
			profileGroup.GET("/user/:user_id", profileHandler.GetByUserID)
			profileGroup.GET("/github/:username", profileHandler.GithubRepos)

			profileGroup.GET("/me", authMiddleware, profileHandler.GetMe)
			profileGroup.POST("", authMiddleware, profileHandler.Upsert)
			profileGroup.DELETE("", authMiddleware, profileHandler.DeleteAccount)
			profileGroup.PUT("/experience", authMiddleware, profileHandler.AddExperience)
			profileGroup.DELETE("/experience/:exp_id", authMiddleware, profileHandler.RemoveExperience)
			profileGroup.PUT("/education", authMiddleware, profileHandler.AddEducation)
			profileGroup.DELETE("/education/:edu_id", authMiddleware, profileHandler.RemoveEducation)
		}

		postGroup := api.Group("/posts")
		postGroup.Use(authMiddleware)
		{
			postGroup.POST("", postHandler.Create)
			postGroup.GET("", postHandler.List)
			postGroup.GET("/:id", postHandler.Get)
			postGroup.DELETE("/:id", postHandler.Delete)
			postGroup.PUT("/like/:id", postHandler.Like)
			postGroup.PUT("/unlike/:id", postHandler.Unlike)
			postGroup.POST("/comment/:id", postHandler.AddComment)
			postGroup.DELETE("/comment/:id/:comment_id", postHandler.RemoveComment)
		}
	}

	return router
}
