package crawler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sh5080/ansan-chatbot-go/pkg/configs"
	_interface "github.com/sh5080/ansan-chatbot-go/pkg/interfaces"
	constants "github.com/sh5080/ansan-chatbot-go/pkg/types"
	model "github.com/sh5080/ansan-chatbot-go/pkg/types/models"
	structure "github.com/sh5080/ansan-chatbot-go/pkg/types/structures"
	"github.com/sh5080/ansan-chatbot-go/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// MealCrawlerOptions는 식단 크롤러 설정입니다
type MealCrawlerOptions struct {
	BaseURL              string
	EnglishBaseURL       string
	EnglishMode          string // translate 또는 path
	Timeout              time.Duration
	DormitoryMaxPages    int
	UserAgent            string
	AcceptLanguage       string
	TranslateTarget      string
	TranslateConcurrency int
}

// OptionsFromConfig는 환경 설정에서 크롤러 설정을 만듭니다
func OptionsFromConfig(config *configs.EnvConfig) MealCrawlerOptions {
	return MealCrawlerOptions{
		BaseURL:              config.Meal.BaseURL,
		EnglishBaseURL:       config.Meal.EnglishBaseURL,
		EnglishMode:          config.Meal.EnglishMode,
		Timeout:              config.Meal.Timeout,
		DormitoryMaxPages:    config.Meal.DormitoryMaxPages,
		UserAgent:            config.Meal.UserAgent,
		AcceptLanguage:       config.Meal.AcceptLanguage,
		TranslateTarget:      config.Translate.Target,
		TranslateConcurrency: config.Translate.Concurrency,
	}
}

func (o *MealCrawlerOptions) applyDefaults() {
	if o.BaseURL == "" {
		o.BaseURL = constants.DEFAULT_MEAL_BASE_URL
	}
	if o.EnglishMode == "" {
		o.EnglishMode = configs.EnglishModeTranslate
	}
	if o.Timeout <= 0 {
		o.Timeout = constants.DEFAULT_MEAL_TIMEOUT
	}
	if o.DormitoryMaxPages < 1 {
		o.DormitoryMaxPages = constants.DEFAULT_DORMITORY_MAX_PAGES
	}
	if o.UserAgent == "" {
		o.UserAgent = constants.DEFAULT_MEAL_USER_AGENT
	}
	if o.AcceptLanguage == "" {
		o.AcceptLanguage = constants.DEFAULT_MEAL_ACCEPT_LANGUAGE
	}
	if o.TranslateTarget == "" {
		o.TranslateTarget = "en"
	}
	if o.TranslateConcurrency < 1 {
		o.TranslateConcurrency = constants.DEFAULT_TRANSLATE_CONCURRENCY
	}
}

// MealCrawler는 학교 식단 페이지에서 오늘의 식단을 가져와 카드로 정리합니다
type MealCrawler struct {
	client     *http.Client
	options    MealCrawlerOptions
	translator _interface.Translator
	clock      utils.Clock
}

// NewMealCrawler는 새 식단 크롤러를 생성합니다. translator는 nil일 수 있습니다.
func NewMealCrawler(options MealCrawlerOptions, translator _interface.Translator, clock utils.Clock) *MealCrawler {
	options.applyDefaults()
	if clock == nil {
		clock = utils.SystemClock
	}
	return &MealCrawler{
		client: &http.Client{
			Timeout: options.Timeout,
		},
		options:    options,
		translator: translator,
		clock:      clock,
	}
}

// mealSection은 식단 블록의 한 구역(라벨과 메뉴 목록)입니다
type mealSection struct {
	label string // "◼ " 접두사를 뺀 라벨
	items []string
}

// FetchMenu는 오늘 해당 식당의 식단 블록을 반환합니다.
// 주말에는 네트워크 요청 없이 휴무 블록을 반환합니다.
func (c *MealCrawler) FetchMenu(ctx context.Context, cafeteria model.Cafeteria, language model.LanguageCode) (*structure.Card, error) {
	now := utils.InKST(c.clock())

	if utils.IsWeekend(now) {
		utils.Debug(constants.SERVICE_CRAWLER, "주말 휴무 블록 반환: %s", cafeteria)
		return HolidayCard(cafeteria, language, now), nil
	}

	baseURL := c.options.BaseURL
	translate := false
	if language.IsEnglish() {
		if c.options.EnglishMode == configs.EnglishModePath {
			baseURL = c.options.EnglishBaseURL
		} else {
			translate = true
		}
	}

	today := utils.FormatMealDate(now)
	rows, err := c.fetchTodayRows(ctx, baseURL, cafeteria, today)
	if err != nil {
		return nil, err
	}

	// 페이지는 최신 순이므로 뒤집어 하루 안에서 시간 순으로 맞춥니다
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	sections := make([]mealSection, 0, len(rows))
	for _, row := range rows {
		sections = append(sections, mealSection{
			label: relabel(row.MenuType),
			items: strings.Fields(row.Menu),
		})
	}

	if translate {
		if err := c.translateSections(ctx, sections); err != nil {
			return nil, err
		}
	}

	texts := []string{mealHeader(now, language), constants.MEAL_SEPARATOR}
	if len(sections) == 0 {
		texts = append(texts, noMenuText(language), constants.MEAL_SEPARATOR)
	}
	for _, section := range sections {
		texts = append(texts, constants.MEAL_LABEL_PREFIX+section.label)
		texts = append(texts, section.items...)
		texts = append(texts, constants.MEAL_SEPARATOR)
	}

	utils.Info(constants.SERVICE_CRAWLER, "식단 조회 완료: %s %s (%d행)", cafeteria, language, len(rows))
	return structure.NewCard(texts), nil
}

// fetchTodayRows는 오늘 날짜의 행만 모아 페이지 순서대로 반환합니다.
// 기숙사 식당만 여러 페이지를 확인합니다.
func (c *MealCrawler) fetchTodayRows(ctx context.Context, baseURL string, cafeteria model.Cafeteria, today string) ([]structure.MealRow, error) {
	maxPages := 1
	if cafeteria == model.CafeteriaDormitory {
		maxPages = c.options.DormitoryMaxPages
	}

	todayDate, err := utils.ParseMealDate(today)
	if err != nil {
		return nil, err
	}

	var result []structure.MealRow
	for page := 1; page <= maxPages; page++ {
		rows, err := c.fetchPage(ctx, baseURL, cafeteria, page)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			break
		}

		reachedPast := false
		for _, row := range rows {
			if row.Date == today {
				result = append(result, row)
				continue
			}
			if d, err := utils.ParseMealDate(row.Date); err == nil && d.Before(todayDate) {
				reachedPast = true
			}
		}
		if reachedPast {
			break
		}
	}

	return result, nil
}

// fetchPage는 식단 페이지 하나를 가져와 표의 행을 파싱합니다
func (c *MealCrawler) fetchPage(ctx context.Context, baseURL string, cafeteria model.Cafeteria, page int) ([]structure.MealRow, error) {
	pageURL, err := mealPageURL(baseURL, cafeteria, page)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %w", err)
	}

	// 요청 헤더 추가 (브라우저 에뮬레이션)
	req.Header.Set("User-Agent", c.options.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", c.options.AcceptLanguage)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		utils.RecordApiCall(constants.API_MEAL_SITE, 0, time.Since(start).Seconds())
		return nil, fmt.Errorf("식단 페이지 요청 실패(%s): %w", pageURL, err)
	}
	defer resp.Body.Close()
	utils.RecordApiCall(constants.API_MEAL_SITE, resp.StatusCode, time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("식단 페이지 HTTP 오류 (%d): %s", resp.StatusCode, pageURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("식단 페이지 HTML 파싱 실패: %w", err)
	}

	return ParseMealRows(doc), nil
}

// ParseMealRows는 식단 표의 모든 행을 읽습니다
func ParseMealRows(doc *goquery.Document) []structure.MealRow {
	var rows []structure.MealRow
	doc.Find("table tbody tr").Each(func(i int, s *goquery.Selection) {
		date := strings.TrimSpace(s.Find("th").Text())
		if date == "" {
			return
		}
		rows = append(rows, structure.MealRow{
			Date:      date,
			Cafeteria: cellText(s, 2),
			MenuType:  cellText(s, 3),
			Price:     cellText(s, 4),
			Menu:      cellText(s, 5),
		})
	})
	return rows
}

// cellText는 n번째 자식 셀의 텍스트를 읽습니다. <br>은 공백으로 바꿉니다.
func cellText(row *goquery.Selection, n int) string {
	cell := row.Find("td:nth-child(" + strconv.Itoa(n) + ")").First()
	cell.Find("br").ReplaceWithHtml(" ")
	return utils.CleanText(cell.Text())
}

func mealPageURL(baseURL string, cafeteria model.Cafeteria, page int) (string, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/" + cafeteria.PathSegment())
	if err != nil {
		return "", fmt.Errorf("식단 페이지 URL 오류: %w", err)
	}
	if page > 1 {
		q := u.Query()
		q.Set("page", strconv.Itoa(page))
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// relabel은 식단 구분을 카드 라벨로 바꿉니다. "[중식] 일품1"은 "중식 1"이 됩니다.
func relabel(menuType string) string {
	if !strings.Contains(menuType, constants.MEAL_LUNCH_MARKER) {
		return menuType
	}

	rest := strings.Replace(menuType, constants.MEAL_LUNCH_MARKER, "", 1)
	rest = strings.Replace(rest, "일품1", "1", 1)
	rest = strings.Replace(rest, "일품2", "2", 1)
	rest = strings.TrimSpace(rest)

	label := strings.TrimPrefix(constants.MEAL_LUNCH_LABEL, constants.MEAL_LABEL_PREFIX)
	if rest == "" {
		return strings.TrimSpace(label)
	}
	return label + rest
}

// translateSections는 라벨과 메뉴 항목을 병렬로 번역해 제자리에 덮어씁니다
func (c *MealCrawler) translateSections(ctx context.Context, sections []mealSection) error {
	if c.translator == nil {
		utils.Warn(constants.SERVICE_CRAWLER, "번역기가 설정되지 않아 원문을 그대로 사용합니다")
		return nil
	}

	var lines []*string
	for i := range sections {
		lines = append(lines, &sections[i].label)
		for j := range sections[i].items {
			lines = append(lines, &sections[i].items[j])
		}
	}

	translated := make([]string, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.options.TranslateConcurrency)
	for i, line := range lines {
		i, text := i, *line
		g.Go(func() error {
			out, err := c.translator.Translate(gctx, text, c.options.TranslateTarget)
			if err != nil {
				return fmt.Errorf("식단 번역 실패(%q): %w", text, err)
			}
			translated[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, line := range lines {
		*line = translated[i]
	}
	return nil
}

func mealHeader(now time.Time, language model.LanguageCode) string {
	wd := int(now.Weekday())
	date := fmt.Sprintf(" (%d.%d)", int(now.Month()), now.Day())
	if language.IsEnglish() {
		return constants.MEAL_HEADER_PREFIX + constants.WEEKDAYS_EN[wd] + date + constants.MEAL_HEADER_EN
	}
	return constants.MEAL_HEADER_PREFIX + constants.WEEKDAYS_KO[wd] + date + constants.MEAL_HEADER_KO
}

func noMenuText(language model.LanguageCode) string {
	if language.IsEnglish() {
		return constants.NO_MENU_TEXT_EN
	}
	return constants.NO_MENU_TEXT_KO
}

// HolidayCard는 주말 휴무 블록을 만듭니다
func HolidayCard(cafeteria model.Cafeteria, language model.LanguageCode, now time.Time) *structure.Card {
	slots := constants.HOLIDAY_SLOTS_KO
	closed := constants.HOLIDAY_TEXT_KO
	switch {
	case cafeteria == model.CafeteriaDormitory && language.IsEnglish():
		slots, closed = constants.HOLIDAY_DORMITORY_SLOTS_EN, constants.HOLIDAY_TEXT_EN
	case cafeteria == model.CafeteriaDormitory:
		slots = constants.HOLIDAY_DORMITORY_SLOTS_KO
	case language.IsEnglish():
		slots, closed = constants.HOLIDAY_SLOTS_EN, constants.HOLIDAY_TEXT_EN
	}

	texts := []string{mealHeader(utils.InKST(now), language), constants.MEAL_SEPARATOR}
	for _, slot := range slots {
		texts = append(texts, slot, closed, constants.MEAL_SEPARATOR)
	}
	return structure.NewCard(texts)
}
