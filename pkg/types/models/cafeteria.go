package model

import "fmt"

// Cafeteria는 식단을 제공하는 교내 식당을 나타냅니다.
// 값은 식단 페이지 경로의 식당 번호와 같습니다.
type Cafeteria int

const (
	CafeteriaFaculty   Cafeteria = 0 // 교직원 식당
	CafeteriaStudent   Cafeteria = 1 // 학생 식당
	CafeteriaDormitory Cafeteria = 2 // 기숙사 식당
)

// Cafeterias는 지원하는 모든 식당 목록입니다
var Cafeterias = []Cafeteria{CafeteriaFaculty, CafeteriaStudent, CafeteriaDormitory}

// IntentName은 버튼 포스트백으로 들어오는 인텐트 이름을 반환합니다
func (c Cafeteria) IntentName() string {
	switch c {
	case CafeteriaFaculty:
		return "faculty-cafeteria"
	case CafeteriaStudent:
		return "student-cafeteria"
	case CafeteriaDormitory:
		return "dormitory-cafeteria"
	}
	return ""
}

// DisplayName은 Dialogflow 인텐트의 표시 이름을 반환합니다
func (c Cafeteria) DisplayName() string {
	switch c {
	case CafeteriaFaculty:
		return "교직원 식당"
	case CafeteriaStudent:
		return "학생 식당"
	case CafeteriaDormitory:
		return "기숙사 식당"
	}
	return ""
}

// PathSegment는 식단 페이지 URL의 식당 번호입니다
func (c Cafeteria) PathSegment() string {
	return fmt.Sprintf("%d", int(c))
}

func (c Cafeteria) String() string {
	return c.IntentName()
}

// ParseIntentName은 인텐트 이름으로 식당을 찾습니다
func ParseIntentName(name string) (Cafeteria, bool) {
	switch name {
	case "faculty-cafeteria":
		return CafeteriaFaculty, true
	case "student-cafeteria":
		return CafeteriaStudent, true
	case "dormitory-cafeteria":
		return CafeteriaDormitory, true
	}
	return 0, false
}

// ParseDisplayName은 인텐트 표시 이름으로 식당을 찾습니다
func ParseDisplayName(name string) (Cafeteria, bool) {
	switch name {
	case "교직원 식당":
		return CafeteriaFaculty, true
	case "학생 식당":
		return CafeteriaStudent, true
	case "기숙사 식당":
		return CafeteriaDormitory, true
	}
	return 0, false
}

// ParseCafeteria는 인텐트 이름과 표시 이름을 모두 받아들입니다
func ParseCafeteria(name string) (Cafeteria, bool) {
	if c, ok := ParseIntentName(name); ok {
		return c, true
	}
	return ParseDisplayName(name)
}

// VerifyCafeteriaTables는 두 가지 주소 체계가 같은 식당 번호를 가리키는지 확인합니다.
// 서버 시작 시 한 번 호출합니다.
func VerifyCafeteriaTables() error {
	for _, c := range Cafeterias {
		byIntent, ok := ParseIntentName(c.IntentName())
		if !ok {
			return fmt.Errorf("인텐트 이름 매핑 누락: %d", int(c))
		}
		byDisplay, ok := ParseDisplayName(c.DisplayName())
		if !ok {
			return fmt.Errorf("표시 이름 매핑 누락: %d", int(c))
		}
		if byIntent != c || byDisplay != c {
			return fmt.Errorf("식당 번호 불일치: %s=%d, %s=%d",
				c.IntentName(), int(byIntent), c.DisplayName(), int(byDisplay))
		}
	}
	return nil
}
