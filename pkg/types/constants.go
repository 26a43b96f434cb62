package constants

import "time"

// KST는 식단 날짜와 캐시 만료 계산에 사용하는 시간대입니다.
// 한국은 서머타임이 없으므로 고정 오프셋을 사용합니다.
var KST = time.FixedZone("Asia/Seoul", 9*60*60)

// 식단 페이지 기본 주소
const (
	DEFAULT_MEAL_BASE_URL         = "https://www.ansan.ac.kr/www/meals"
	DEFAULT_MEAL_USER_AGENT       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
	DEFAULT_MEAL_ACCEPT_LANGUAGE  = "ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7"
	DEFAULT_MEAL_TIMEOUT          = 10 * time.Second
	DEFAULT_DORMITORY_MAX_PAGES   = 3
	DEFAULT_TRANSLATE_CONCURRENCY = 8
)

// 식단 블록 구성 문자열
const (
	MEAL_SEPARATOR     = " "
	MEAL_LABEL_PREFIX  = "◼ "
	MEAL_LUNCH_MARKER  = "[중식]"
	MEAL_LUNCH_LABEL   = "◼ 중식 "
	MEAL_HEADER_PREFIX = "🍴 "
	MEAL_HEADER_KO     = " 식단"
	MEAL_HEADER_EN     = " menu"
)

// 요일 이름, time.Weekday 순서(일요일 0)
var (
	WEEKDAYS_KO = [7]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}
	WEEKDAYS_EN = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
)

// 주말 휴무 식단 슬롯
var (
	HOLIDAY_SLOTS_KO           = []string{"◼ 중식 1", "◼ 중식 2"}
	HOLIDAY_SLOTS_EN           = []string{"◼ Lunch 1", "◼ Lunch 2"}
	HOLIDAY_DORMITORY_SLOTS_KO = []string{"◼ 조식", "◼ 중식 1", "◼ 중식 2", "◼ 석식"}
	HOLIDAY_DORMITORY_SLOTS_EN = []string{"◼ Breakfast", "◼ Lunch 1", "◼ Lunch 2", "◼ Dinner"}
)

const (
	HOLIDAY_TEXT_KO = "휴무"
	HOLIDAY_TEXT_EN = "Closed"
	NO_MENU_TEXT_KO = "등록된 식단이 없습니다"
	NO_MENU_TEXT_EN = "No menu has been registered"
)

// 로그 서비스 태그
const (
	SERVICE_SYSTEM     = "system"
	SERVICE_HTTP       = "http"
	SERVICE_CRAWLER    = "crawler"
	SERVICE_CACHE      = "cache"
	SERVICE_DIALOG     = "dialog"
	SERVICE_DIALOGFLOW = "dialogflow"
	SERVICE_TRANSLATE  = "translate"
)

// 외부 API 메트릭 이름
const (
	API_DIALOGFLOW = "dialogflow"
	API_MEAL_SITE  = "meal_site"
	API_TRANSLATE  = "translate"
)
