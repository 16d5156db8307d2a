package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kbryant/sendlater/internal/handler"
	"github.com/kbryant/sendlater/internal/repository"
	"github.com/kbryant/sendlater/internal/service"
	"github.com/kbryant/sendlater/internal/sweeper"
	"github.com/kbryant/sendlater/internal/testutil"
	"github.com/kbryant/sendlater/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	report service.SweepReport
	err    error
}

func (f *fakeRunner) Run(_ context.Context) (service.SweepReport, error) {
	return f.report, f.err
}

func setupSweepRouter(t *testing.T, runner *fakeRunner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	require.NoError(t, logger.Init(false))

	testDB := testutil.SetupTestDatabase(t)
	t.Cleanup(func() { testDB.Teardown(t) })

	messageService := service.NewMessageService(repository.NewMessageRepository(testDB.DB))
	sw := sweeper.New(runner, 0, logger.Log)

	return handler.NewRouter(handler.Handlers{
		Messages: handler.NewMessageHandler(messageService),
		Items:    handler.NewItemHandler(repository.NewItemRepository(testDB.DB)),
		Users:    handler.NewUserHandler(),
		Sweep:    handler.NewSweepHandler(runner, sw),
	})
}

func TestSweepRunOnceSuccess(t *testing.T) {
	runner := &fakeRunner{report: service.SweepReport{Matched: 2, Sent: 2}}
	router := setupSweepRouter(t, runner)

	w := doJSON(router, http.MethodPost, "/sweep/run", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SUCCESS")
	assert.Contains(t, w.Body.String(), `"sent":2`)
}

func TestSweepRunOnceQueryFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("index unavailable")}
	router := setupSweepRouter(t, runner)

	w := doJSON(router, http.MethodPost, "/sweep/run", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error in sending message")
}

func TestSweepStartAndStopControls(t *testing.T) {
	runner := &fakeRunner{}
	router := setupSweepRouter(t, runner)

	// sweeper not started by the test harness, so stop fails first
	w := doJSON(router, http.MethodPost, "/sweep/stop", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/sweep/start", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/sweep/start", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/sweep/stop", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
