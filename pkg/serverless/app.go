package serverless

import (
	"context"
	"os"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"
	"github.com/sh5080/ansan-chatbot-go/pkg/configs"
	_interface "github.com/sh5080/ansan-chatbot-go/pkg/interfaces"
	middleware "github.com/sh5080/ansan-chatbot-go/pkg/middlewares"
	route "github.com/sh5080/ansan-chatbot-go/pkg/routes"
	service "github.com/sh5080/ansan-chatbot-go/pkg/services"
	constants "github.com/sh5080/ansan-chatbot-go/pkg/types"
	"github.com/sh5080/ansan-chatbot-go/pkg/utils"
)

// NewApp은 미들웨어와 라우트가 설정된 Fiber 앱을 만듭니다.
// withMetrics가 true이면 요청 메트릭을 수집합니다.
func NewApp(config *configs.EnvConfig, services *_interface.ServiceContainer, withMetrics bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               config.Server.AppName,
		DisableStartupMessage: !withMetrics,
		JSONEncoder:           jsoniter.Marshal,
		JSONDecoder:           jsoniter.Unmarshal,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.Server.AllowedOrigins,
		// 와일드카드 출처에는 자격 증명을 허용할 수 없습니다
		AllowCredentials: config.Server.AllowedOrigins != "*",
	}))
	app.Use(middleware.RateLimiter(config.Server.RateLimit, config.Server.RateBurst))
	if withMetrics {
		app.Use(middleware.Prometheus(config.Server.AppName))
	}

	route.SetupRoutes(app, services)
	return app
}

var (
	app     *fiber.App
	appOnce sync.Once
)

// GetApp은 서버리스 환경에서 재사용할 앱 인스턴스를 반환합니다.
// 콜드 스타트 시 한 번만 서비스를 조립합니다.
func GetApp() *fiber.App {
	appOnce.Do(func() {
		config := configs.GetConfig()

		services, err := service.NewServiceContainer(context.Background(), config)
		if err != nil {
			utils.Fatal(constants.SERVICE_SYSTEM, "서비스 초기화 실패: %v", err)
			os.Exit(1)
		}

		app = NewApp(config, services, false)
	})
	return app
}
