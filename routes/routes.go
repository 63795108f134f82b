package routes

import (
	"gyanpod-api/controllers"
	"gyanpod-api/middleware"
	"gyanpod-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)
			public.POST("/register", controllers.Register)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "GyanPod API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Notifications
			protected.GET("/notifications", controllers.GetNotifications)
			protected.PUT("/notifications/:id/read", controllers.MarkNotificationRead)

			// Reference data for the submission and browse forms
			meta := protected.Group("/meta")
			{
				meta.GET("/classes", controllers.GetClasses)
				meta.GET("/subjects", controllers.GetSubjects)
			}

			// Published content (all authenticated roles)
			content := protected.Group("/content")
			{
				content.GET("", controllers.GetContent)
				content.GET("/:id", controllers.GetContentItem)
				content.POST("/:id/view", controllers.TrackContentView)
				content.POST("/:id/like", controllers.ToggleContentLike)
			}

			// Submissions (teachers author content)
			submissions := protected.Group("/submissions")
			submissions.Use(middleware.RequireRole(models.RoleTeacher))
			{
				submissions.POST("", controllers.CreateSubmission)
				submissions.GET("", controllers.GetMySubmissions)
				submissions.GET("/:id", controllers.GetSubmission)
				submissions.PUT("/:id", controllers.UpdateSubmission)
				submissions.DELETE("/:id", controllers.DeleteSubmission)

				// Documents for paper submissions
				submissions.POST("/:id/documents", controllers.UploadSubmissionDocument)
				submissions.GET("/:id/documents", controllers.GetSubmissionDocuments)
			}

			// Documents download (owner or admin; checked in the handler)
			protected.GET("/documents/:file_id/download", controllers.DownloadDocument)

			// Moderation (admins decide)
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/submissions", controllers.AdminListSubmissions)
				admin.GET("/submissions/:id", controllers.AdminGetSubmission)
				admin.POST("/submissions/:id/approve", controllers.ApproveSubmission)
				admin.POST("/submissions/:id/reject", controllers.RejectSubmission)
				admin.POST("/submissions/:id/publish", controllers.PublishSubmission)

				admin.GET("/submissions/:id/documents", controllers.GetSubmissionDocuments)
				admin.GET("/dashboard/stats", controllers.GetDashboardStats)

				// Account management
				admin.GET("/users", controllers.AdminListUsers)
				admin.PUT("/users/:id/status", controllers.AdminUpdateUserStatus)
			}
		}
	}
}
