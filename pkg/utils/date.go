package utils

import (
	"fmt"
	"time"

	constants "github.com/sh5080/ansan-chatbot-go/pkg/types"
)

// Clock은 현재 시각을 반환하는 함수입니다. 테스트에서 고정 시각을 주입할 때 사용합니다.
type Clock func() time.Time

// SystemClock은 실제 현재 시각을 반환합니다
func SystemClock() time.Time {
	return time.Now()
}

// InKST는 시각을 한국 시간으로 변환합니다
func InKST(t time.Time) time.Time {
	return t.In(constants.KST)
}

// FormatMealDate는 식단 페이지의 날짜 표기(2025-3-7)로 변환합니다.
// 월과 일은 0으로 채우지 않습니다.
func FormatMealDate(t time.Time) string {
	k := InKST(t)
	return fmt.Sprintf("%d-%d-%d", k.Year(), int(k.Month()), k.Day())
}

// ParseMealDate는 식단 페이지의 날짜 문자열을 한국 시간 자정으로 해석합니다
func ParseMealDate(s string) (time.Time, error) {
	var year, month, day int
	if _, err := fmt.Sscanf(s, "%d-%d-%d", &year, &month, &day); err != nil {
		return time.Time{}, fmt.Errorf("식단 날짜 형식 오류 %q: %w", s, err)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, constants.KST), nil
}

// IsWeekend는 한국 시간 기준 토요일이나 일요일인지 확인합니다
func IsWeekend(t time.Time) bool {
	wd := InKST(t).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// NextMidnightKST는 한국 시간 기준 다음 자정 시각을 반환합니다
func NextMidnightKST(t time.Time) time.Time {
	k := InKST(t)
	return time.Date(k.Year(), k.Month(), k.Day()+1, 0, 0, 0, 0, constants.KST)
}
