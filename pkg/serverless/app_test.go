package serverless

import (
	"context"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sh5080/ansan-chatbot-go/pkg/configs"
	middleware "github.com/sh5080/ansan-chatbot-go/pkg/middlewares"
	service "github.com/sh5080/ansan-chatbot-go/pkg/services"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	config := &configs.EnvConfig{}
	config.Server.AppName = "test"
	config.Server.AllowedOrigins = "*"
	config.Cache.Driver = configs.CacheDriverMemory

	services, err := service.NewServiceContainer(context.Background(), config)
	require.NoError(t, err)
	return NewApp(config, services, false)
}

func TestNewApp_Health(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDKey))
}

func TestNewApp_DialogRoutes(t *testing.T) {
	app := newTestApp(t)

	t.Run("validation", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/api/askByText", strings.NewReader(`{"message":"학식"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("dialogflow not configured", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/api/askByEvent", strings.NewReader(`{"postback":"welcome","languageCode":"ko-KO"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		assert.Contains(t, string(body), `"error"`)
	})

	t.Run("unknown route", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/unknown", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
