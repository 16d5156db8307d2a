package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler is a deliberate stub. The user service owns no logic yet;
// the routes exist so the resource shape is stable for clients.
type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

func (h *UserHandler) Register(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"msg": "register is not implemented"})
}

func (h *UserHandler) Login(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"msg": "login is not implemented"})
}

func (h *UserHandler) Verify(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"msg": "verify is not implemented"})
}
