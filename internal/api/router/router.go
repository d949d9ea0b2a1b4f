package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/wb-go/wbf/ginext"

	"github.com/coopstead/portal/internal/api/handlers/auth"
	"github.com/coopstead/portal/internal/api/handlers/communication"
	"github.com/coopstead/portal/internal/api/handlers/document"
	"github.com/coopstead/portal/internal/api/handlers/event"
	"github.com/coopstead/portal/internal/api/handlers/forum"
	"github.com/coopstead/portal/internal/api/handlers/meeting"
	"github.com/coopstead/portal/internal/api/handlers/notification"
	"github.com/coopstead/portal/internal/api/handlers/task"
	"github.com/coopstead/portal/internal/api/handlers/upload"
	"github.com/coopstead/portal/internal/api/middleware"
	"github.com/coopstead/portal/internal/model"
	"github.com/coopstead/portal/internal/session"
)

type Handlers struct {
	Auth          *auth.Handler
	Notification  *notification.Handler
	Document      *document.Handler
	Upload        *upload.Handler
	Forum         *forum.Handler
	Communication *communication.Handler
	Task          *task.Handler
	Event         *event.Handler
	Meeting       *meeting.Handler
}

func New(h Handlers, sessions *session.Manager, corsOrigin string) *ginext.Engine {
	e := ginext.New()
	e.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")

	public := api.Group("/auth")
	{
		public.POST("/register", h.Auth.Register)
		public.POST("/login", h.Auth.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.Auth(sessions))

	authed.GET("/auth/me", h.Auth.Me)

	staff := middleware.RequireRoles(model.RoleBoard, model.RoleAdmin)

	notifications := authed.Group("/notifications")
	{
		notifications.GET("", h.Notification.List)
		notifications.GET("/unread-count", h.Notification.UnreadCount)
		notifications.GET("/ws", h.Notification.Stream)
		notifications.PUT("/:id/read", h.Notification.MarkRead)
		notifications.PUT("/read-all", h.Notification.MarkAllRead)
		notifications.DELETE("/:id", h.Notification.Delete)
		notifications.POST("", staff, h.Notification.Create)
	}

	documents := authed.Group("/documents")
	{
		documents.GET("", h.Document.List)
		documents.GET("/:id", h.Document.Get)
		documents.POST("", staff, h.Document.Create)
		documents.POST("/:id/sign", h.Document.Sign)
		documents.GET("/:id/signature", h.Document.Verify)
	}

	uploads := authed.Group("/uploads")
	{
		uploads.POST("/:bucket", h.Upload.Upload)
		uploads.DELETE("/:bucket", h.Upload.Delete)
	}

	forums := authed.Group("/forum")
	{
		forums.GET("/categories", h.Forum.ListCategories)
		forums.GET("/categories/:id/topics", h.Forum.ListTopics)
		forums.POST("/topics", h.Forum.CreateTopic)
		forums.GET("/topics/:id", h.Forum.GetTopic)
		forums.POST("/topics/:id/replies", h.Forum.CreateReply)
		forums.POST("/reports", h.Forum.Report)
	}

	announcements := authed.Group("/announcements")
	{
		announcements.GET("", h.Communication.ListAnnouncements)
		announcements.POST("", staff, h.Communication.CreateAnnouncement)
		announcements.PUT("/:id/acknowledge", h.Communication.Acknowledge)
	}

	faq := authed.Group("/faq")
	{
		faq.GET("/categories", h.Communication.ListFAQCategories)
		faq.GET("/categories/:id/items", h.Communication.ListFAQItems)
		faq.POST("/items/:id/vote", h.Communication.Vote)
		faq.POST("/suggestions", h.Communication.Suggest)
	}

	tasks := authed.Group("/tasks")
	{
		tasks.GET("", h.Task.List)
		tasks.GET("/:id", h.Task.Get)
		tasks.POST("", staff, h.Task.Create)
		tasks.PUT("/:id/complete", h.Task.Complete)
	}

	events := authed.Group("/events")
	{
		events.GET("", h.Event.List)
		events.POST("", staff, h.Event.Create)
	}

	meetings := authed.Group("/meetings")
	{
		meetings.GET("", h.Meeting.List)
		meetings.GET("/:id", h.Meeting.Get)
		meetings.POST("", staff, h.Meeting.Create)
		meetings.POST("/:id/agenda", h.Meeting.AddAgendaItem)
		meetings.PUT("/:id/rsvp", h.Meeting.RSVP)
		meetings.GET("/:id/resolutions", h.Meeting.ListResolutions)
		meetings.POST("/:id/resolutions", staff, h.Meeting.CreateResolution)
		meetings.POST("/resolutions/:id/vote", h.Meeting.Vote)
	}

	return e
}
