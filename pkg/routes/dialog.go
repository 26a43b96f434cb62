package route

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/sh5080/ansan-chatbot-go/pkg/controllers"
	_interface "github.com/sh5080/ansan-chatbot-go/pkg/interfaces"
)

// SetupDialogRoutes는 챗봇 대화 라우트를 설정합니다
func SetupDialogRoutes(api fiber.Router, services *_interface.ServiceContainer) {
	api.Post("/askByText", controller.AskByText(services.DialogService))
	api.Post("/askByEvent", controller.AskByEvent(services.DialogService))
}
