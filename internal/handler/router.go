package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kbryant/sendlater/internal/middleware"
)

type Handlers struct {
	Messages *MessageHandler
	Items    *ItemHandler
	Users    *UserHandler
	Sweep    *SweepHandler
}

// NewRouter builds the route table. Registration order documents dispatch
// priority: the owner-scoped GET is a distinct pattern from the generic
// messages GET, so it always wins for /messages/<owner>. Anything that
// matches no route (or a known path with an unsupported verb) gets the
// structured 400 envelope echoing what was received.
func NewRouter(h Handlers, extraMiddleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ResponseHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"POST", "GET", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))
	for _, mw := range extraMiddleware {
		r.Use(mw)
	}

	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{
			"msg": fmt.Sprintf("Unsupported endpoint: %s %s", c.Request.Method, c.Request.URL.Path),
		})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{
			"msg": fmt.Sprintf("Unsupported http method %s for path %s", c.Request.Method, c.Request.URL.Path),
		})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Messages: owner-scoped GET before the generic GET
	r.GET("/messages/:owner", h.Messages.ListByOwner)
	r.GET("/messages", h.Messages.ListAll)
	r.POST("/messages", h.Messages.Create)
	r.PUT("/messages", h.Messages.Update)
	r.DELETE("/messages", h.Messages.Delete)

	// Items
	r.GET("/items", h.Items.ListAll)
	r.GET("/items/:id", h.Items.GetByID)
	r.POST("/items", h.Items.Create)
	r.PUT("/items/:id", h.Items.Update)
	r.DELETE("/items/:id", h.Items.Delete)

	// User service stub
	r.POST("/register", h.Users.Register)
	r.POST("/login", h.Users.Login)
	r.POST("/verify", h.Users.Verify)

	// Delivery sweep control
	if h.Sweep != nil {
		r.POST("/sweep/run", h.Sweep.RunOnce)
		r.POST("/sweep/start", h.Sweep.Start)
		r.POST("/sweep/stop", h.Sweep.Stop)
	}

	return r
}
