package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kbryant/sendlater/internal/service"
	"github.com/kbryant/sendlater/internal/sweeper"
)

// SweepRunner abstracts one sweep pass for the trigger endpoint.
type SweepRunner interface {
	Run(ctx context.Context) (service.SweepReport, error)
}

// SweeperController abstracts the background loop for the control endpoints.
type SweeperController interface {
	Start(ctx context.Context) error
	Stop() error
	IsRunning() bool
}

type SweepHandler struct {
	runner  SweepRunner
	sweeper SweeperController
}

func NewSweepHandler(runner SweepRunner, ctrl SweeperController) *SweepHandler {
	return &SweepHandler{runner: runner, sweeper: ctrl}
}

// POST /sweep/run triggers a single pass.
func (h *SweepHandler) RunOnce(c *gin.Context) {
	report, err := h.runner.Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Error in sending message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Message": "SUCCESS",
		"report":  report,
	})
}

// POST /sweep/start
func (h *SweepHandler) Start(c *gin.Context) {
	if err := h.sweeper.Start(context.Background()); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, sweeper.ErrAlreadyRunning) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "sweeper started"})
}

// POST /sweep/stop
func (h *SweepHandler) Stop(c *gin.Context) {
	if err := h.sweeper.Stop(); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, sweeper.ErrNotRunning) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "sweeper stopped"})
}
