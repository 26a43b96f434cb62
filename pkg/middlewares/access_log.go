package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	constants "github.com/sh5080/ansan-chatbot-go/pkg/types"
	"github.com/sh5080/ansan-chatbot-go/pkg/utils"
)

// AccessLog는 요청 결과를 구조화된 로그로 남깁니다.
// 사용자 메시지가 담긴 요청 본문은 기록하지 않습니다.
func AccessLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// 에러 핸들러가 상태 코드를 쓰기 전이므로 여기서 해석합니다
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		entry := utils.Logger().WithFields(logrus.Fields{
			"service":       constants.SERVICE_HTTP,
			"request_id":    GetRequestID(c),
			"method":        c.Method(),
			"path":          c.Path(),
			"status":        status,
			"latency_ms":    time.Since(start).Milliseconds(),
			"ip":            c.IP(),
			"user_agent":    c.Get(fiber.HeaderUserAgent),
			"response_size": len(c.Response().Body()),
		})

		switch {
		case status >= 500:
			entry.Error("Server error")
		case status >= 400:
			entry.Warn("Client error")
		default:
			entry.Info("Success")
		}

		return err
	}
}
