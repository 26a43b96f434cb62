package structure

// MealRow는 식단 페이지 표의 한 행입니다
type MealRow struct {
	Date      string // 2025-3-7 형식, 월/일 0 채움 없음
	Cafeteria string
	MenuType  string // 예: [중식] 일품1, [조식]
	Price     string
	Menu      string // 공백으로 구분된 메뉴 목록
}
