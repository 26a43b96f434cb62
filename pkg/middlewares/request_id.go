package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/ansan-chatbot-go/pkg/utils"
)

const RequestIDKey = "X-Request-ID"

// RequestID는 요청마다 ULID를 부여하고 응답 헤더에 싣습니다.
// 클라이언트가 보낸 값이 있으면 그대로 사용합니다.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDKey)

		if requestID == "" {
			requestID, _ = utils.NewULIDFromTimestamp(time.Now())
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDKey, requestID)

		return c.Next()
	}
}

// GetRequestID는 현재 요청의 ID를 반환합니다
func GetRequestID(c *fiber.Ctx) string {
	requestID, ok := c.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}
