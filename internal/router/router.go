package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/youngicthub/CelebBooker/internal/middleware"
)

type Handler interface {
	SignUp(c *ginext.Context)
	SignIn(c *ginext.Context)
	ListCelebrities(c *ginext.Context)
	GetCelebrity(c *ginext.Context)
	GetPackages(c *ginext.Context)
	StartDraft(c *ginext.Context)
	GetDraft(c *ginext.Context)
	SetEventDetails(c *ginext.Context)
	SetContactInfo(c *ginext.Context)
	SetPayment(c *ginext.Context)
	NextStep(c *ginext.Context)
	PreviousStep(c *ginext.Context)
	SubmitDraft(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	ListAllBookings(c *ginext.Context)
	GetStats(c *ginext.Context)
	ReviewBooking(c *ginext.Context)
	CreateCelebrity(c *ginext.Context)
	UpdateCelebrity(c *ginext.Context)
	DeleteCelebrity(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/signup", h.SignUp)
		api.POST("/auth/signin", h.SignIn)

		// Catalog, readable without a session
		api.GET("/celebrities", h.ListCelebrities)
		api.GET("/celebrities/:id", h.GetCelebrity)
		api.GET("/celebrities/:id/packages", h.GetPackages)

		// Booking wizard
		authed := api.Group("", auth)
		{
			authed.POST("/bookings/drafts", h.StartDraft)
			authed.GET("/bookings/drafts/:id", h.GetDraft)
			authed.PUT("/bookings/drafts/:id/event", h.SetEventDetails)
			authed.PUT("/bookings/drafts/:id/contact", h.SetContactInfo)
			authed.PUT("/bookings/drafts/:id/payment", h.SetPayment)
			authed.POST("/bookings/drafts/:id/next", h.NextStep)
			authed.POST("/bookings/drafts/:id/previous", h.PreviousStep)
			authed.POST("/bookings/drafts/:id/submit", h.SubmitDraft)
			authed.GET("/bookings", h.ListMyBookings)
		}

		// Admin
		admin := api.Group("/admin", auth, middleware.AdminOnly())
		{
			admin.GET("/bookings", h.ListAllBookings)
			admin.GET("/bookings/stats", h.GetStats)
			admin.POST("/bookings/:id/review", h.ReviewBooking)
			admin.POST("/celebrities", h.CreateCelebrity)
			admin.PUT("/celebrities/:id", h.UpdateCelebrity)
			admin.DELETE("/celebrities/:id", h.DeleteCelebrity)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
