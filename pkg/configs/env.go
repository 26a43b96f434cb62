package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// 앱 버전을 저장하는 전역 변수
var AppVersion string

// 캐시 드라이버 종류
const (
	CacheDriverRedis    = "redis"
	CacheDriverDynamoDB = "dynamodb"
	CacheDriverMemory   = "memory"
)

// 영어 식단 처리 방식
const (
	EnglishModeTranslate = "translate"
	EnglishModePath      = "path"
)

type EnvConfig struct {
	Server struct {
		Port           string  `env:"PORT" envDefault:"3000"`
		AppName        string  `env:"APP_NAME" envDefault:"Ansan Chatbot"`
		AppEnv         string  `env:"APP_ENV" envDefault:"prod"`
		AllowedOrigins string  `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
		RateLimit      float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
		RateBurst      int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
		LogDir         string  `env:"LOG_DIR" envDefault:"./storage/logs"`
	}
	Dialogflow struct {
		ProjectID   string `env:"GOOGLE_DIALOG_FLOW_PROJECT_ID"`
		PrivateKey  string `env:"GOOGLE_DIALOG_FLOW_PRIVATE_KEY"`
		ClientEmail string `env:"GOOGLE_DIALOG_FLOW_CLIENT_EMAIL"`
		ClientID    string `env:"GOOGLE_DIALOG_FLOW_CLIENT_ID"`
		SessionID   string `env:"GOOGLE_DIALOG_FLOW_SESSION_ID"`
	}
	Translate struct {
		APIKey      string `env:"TRANSLATE_API_KEY"`
		Target      string `env:"TRANSLATE_TARGET" envDefault:"en"`
		Concurrency int    `env:"TRANSLATE_CONCURRENCY" envDefault:"8"`
	}
	Meal struct {
		BaseURL           string        `env:"MEAL_BASE_URL" envDefault:"https://www.ansan.ac.kr/www/meals"`
		EnglishBaseURL    string        `env:"MEAL_ENGLISH_BASE_URL"`
		EnglishMode       string        `env:"MEAL_ENGLISH_MODE" envDefault:"translate"`
		Timeout           time.Duration `env:"MEAL_TIMEOUT" envDefault:"10s"`
		DormitoryMaxPages int           `env:"MEAL_DORMITORY_MAX_PAGES" envDefault:"3"`
		UserAgent         string        `env:"MEAL_USER_AGENT"`
		AcceptLanguage    string        `env:"MEAL_ACCEPT_LANGUAGE"`
	}
	Cache struct {
		Driver string `env:"CACHE_DRIVER" envDefault:"redis"`
	}
	Redis struct {
		Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}
	AWS struct {
		AccessKeyID      string `env:"AWS_ACCESS_KEY_ID"`
		SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY"`
		Region           string `env:"AWS_REGION" envDefault:"ap-northeast-2"`
		DynamoDBEndpoint string `env:"AWS_DYNAMODB_ENDPOINT"`
		Tables           struct {
			MealCache string `env:"AWS_DYNAMODB_TABLE_MEAL_CACHE" envDefault:"meal_cache"`
		}
	}
}

var (
	configInstance *EnvConfig
	once           sync.Once
)

// init 함수에서 VERSION 환경 변수 로드
func init() {
	AppVersion = os.Getenv("VERSION")
	if AppVersion == "" {
		AppVersion = "dev"
	}

	// 개발 환경일 경우 항상 "dev"로 설정
	if os.Getenv("APP_ENV") == "dev" {
		AppVersion = "dev"
	}
}

// Load는 .env 파일과 환경 변수에서 설정을 읽어 새 인스턴스를 만듭니다.
// .env 파일이 없으면 환경 변수만 사용합니다.
func Load() (*EnvConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf(".env 파일 로드 실패: %w", err)
	}

	config := &EnvConfig{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("환경 변수 파싱 실패: %w", err)
	}

	// 환경 변수에 포함된 \n 문자열을 실제 줄바꿈으로 바꿉니다
	config.Dialogflow.PrivateKey = strings.ReplaceAll(config.Dialogflow.PrivateKey, `\n`, "\n")

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate는 활성화된 기능에 필요한 값이 있는지 확인합니다
func (c *EnvConfig) Validate() error {
	missing := []string{}

	switch c.Cache.Driver {
	case CacheDriverRedis:
		if c.Redis.Addr == "" {
			missing = append(missing, "REDIS_ADDR")
		}
	case CacheDriverDynamoDB:
		if c.AWS.Region == "" {
			missing = append(missing, "AWS_REGION")
		}
		if c.AWS.Tables.MealCache == "" {
			missing = append(missing, "AWS_DYNAMODB_TABLE_MEAL_CACHE")
		}
	case CacheDriverMemory:
	default:
		return fmt.Errorf("지원하지 않는 CACHE_DRIVER: %s", c.Cache.Driver)
	}

	switch c.Meal.EnglishMode {
	case EnglishModeTranslate:
	case EnglishModePath:
		if c.Meal.EnglishBaseURL == "" {
			missing = append(missing, "MEAL_ENGLISH_BASE_URL")
		}
	default:
		return fmt.Errorf("지원하지 않는 MEAL_ENGLISH_MODE: %s", c.Meal.EnglishMode)
	}

	if c.Meal.BaseURL == "" {
		missing = append(missing, "MEAL_BASE_URL")
	}
	if c.Meal.DormitoryMaxPages < 1 {
		return fmt.Errorf("MEAL_DORMITORY_MAX_PAGES는 1 이상이어야 합니다: %d", c.Meal.DormitoryMaxPages)
	}

	if len(missing) > 0 {
		return fmt.Errorf("필수 환경 변수가 설정되지 않았습니다: %s", strings.Join(missing, ", "))
	}
	return nil
}

// DialogflowEnabled는 Dialogflow 프로젝트가 설정되어 있는지 확인합니다
func (c *EnvConfig) DialogflowEnabled() bool {
	return c.Dialogflow.ProjectID != ""
}

// IsTest는 테스트 환경인지 확인합니다
func (c *EnvConfig) IsTest() bool {
	return c.Server.AppEnv == "test"
}

// GetConfig는 EnvConfig의 싱글톤 인스턴스를 반환합니다.
// 처음 호출 시에만 환경 변수를 로드하고 이후 호출에서는 캐시된 인스턴스를 반환합니다.
func GetConfig() *EnvConfig {
	once.Do(func() {
		config, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "환경 변수 로드 실패: %v\n", err)
			os.Exit(1)
		}
		configInstance = config
	})
	return configInstance
}
