package route

import (
	"github.com/gofiber/fiber/v2"
	_interface "github.com/sh5080/ansan-chatbot-go/pkg/interfaces"
)

// SetupRoutes는 애플리케이션의 모든 라우트를 설정합니다
func SetupRoutes(app *fiber.App, services *_interface.ServiceContainer) {
	api := app.Group("/api")

	SetupDialogRoutes(api, services)
	SetupAppRoutes(app)
}
