package controller

import (
	"github.com/gofiber/fiber/v2"
	_interface "github.com/sh5080/ansan-chatbot-go/pkg/interfaces"
	middleware "github.com/sh5080/ansan-chatbot-go/pkg/middlewares"
	constants "github.com/sh5080/ansan-chatbot-go/pkg/types"
	requestDto "github.com/sh5080/ansan-chatbot-go/pkg/types/dtos/requests"
	responseDto "github.com/sh5080/ansan-chatbot-go/pkg/types/dtos/responses"
	model "github.com/sh5080/ansan-chatbot-go/pkg/types/models"
	"github.com/sh5080/ansan-chatbot-go/pkg/utils"
)

// AskByText는 사용자 메시지를 인텐트 감지로 넘기는 핸들러입니다
func AskByText(dialogService _interface.DialogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.AskByTextRequest
		if err := utils.ParseBodyAndValidate(c, &req); err != nil {
			return badRequest(c, err)
		}

		result, err := dialogService.DetectIntentByText(c.UserContext(), req.Message, model.LanguageCode(req.LanguageCode))
		if err != nil {
			return internalError(c, "askByText", err)
		}
		return c.JSON(result)
	}
}

// AskByEvent는 버튼 포스트백 이벤트를 처리하는 핸들러입니다
func AskByEvent(dialogService _interface.DialogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.AskByEventRequest
		if err := utils.ParseBodyAndValidate(c, &req); err != nil {
			return badRequest(c, err)
		}

		result, err := dialogService.DetectIntentByEvent(c.UserContext(), req.Postback, model.LanguageCode(req.LanguageCode))
		if err != nil {
			return internalError(c, "askByEvent", err)
		}
		return c.JSON(result)
	}
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(responseDto.ErrorResponse{
		Error: err.Error(),
	})
}

// internalError는 상세 오류를 로그에만 남기고 일반 메시지로 응답합니다
func internalError(c *fiber.Ctx, handler string, err error) error {
	utils.Error(constants.SERVICE_HTTP, "%s 처리 실패 [%s]: %v", handler, middleware.GetRequestID(c), err)
	return c.Status(fiber.StatusInternalServerError).JSON(responseDto.ErrorResponse{
		Error: "요청을 처리하는 중 오류가 발생했습니다",
	})
}
