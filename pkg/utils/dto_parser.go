package utils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	constants "github.com/sh5080/ansan-chatbot-go/pkg/types"
)

// ParseBodyAndValidate는 요청 본문을 DTO로 변환하고 검증합니다.
// 실패하면 ErrInvalidRequest를 감싼 오류를 반환합니다.
func ParseBodyAndValidate(c *fiber.Ctx, dto interface{}) error {
	if err := c.BodyParser(dto); err != nil {
		return fmt.Errorf("%w: 요청 본문 파싱 실패: %v", constants.ErrInvalidRequest, err)
	}

	if errs := ValidateStruct(dto); errs.HasErrors() {
		return fmt.Errorf("%w: %s", constants.ErrInvalidRequest, errs.Error())
	}
	return nil
}
