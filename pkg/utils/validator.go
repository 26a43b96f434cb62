package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors는 필드별 유효성 검사 오류를 저장합니다
type ValidationErrors map[string]string

// Add는 ValidationErrors에 새 오류를 추가합니다
func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// HasErrors는 ValidationErrors에 오류가 있는지 확인합니다
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// Error는 ValidationErrors를 문자열로 반환합니다
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}

	var errs []string
	for field, message := range v {
		errs = append(errs, fmt.Sprintf("%s: %s", field, message))
	}
	return strings.Join(errs, ", ")
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// 오류 메시지에 JSON 필드 이름을 사용합니다
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
	})
	return validate
}

// ValidateStruct는 validate 태그에 따라 구조체를 검사합니다
func ValidateStruct(data interface{}) ValidationErrors {
	errs := make(ValidationErrors)

	err := getValidator().Struct(data)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.Add("_error", err.Error())
		return errs
	}

	for _, fe := range fieldErrs {
		errs.Add(fe.Field(), validationMessage(fe))
	}
	return errs
}

// validationMessage는 태그별 오류 메시지를 만듭니다
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "필수 항목입니다"
	case "oneof":
		return fmt.Sprintf("허용된 값이 아닙니다: %s", fe.Param())
	case "max":
		return fmt.Sprintf("최대 %s자 이하여야 합니다", fe.Param())
	}
	return fmt.Sprintf("유효성 검사 실패: %s", fe.Tag())
}
