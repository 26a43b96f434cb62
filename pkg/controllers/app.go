package controller

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sh5080/ansan-chatbot-go/pkg/configs"
	responseDto "github.com/sh5080/ansan-chatbot-go/pkg/types/dtos/responses"
	"github.com/sh5080/ansan-chatbot-go/pkg/utils"
)

var GoVersion = runtime.Version()
var startTime = time.Now()

func Health() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cpuUsage, memoryUsage := utils.GetSystemMetrics()
		response := responseDto.HealthResponse{
			Status:      "ok",
			Time:        time.Now(),
			Version:     configs.AppVersion,
			Uptime:      time.Since(startTime).String(),
			GoVersion:   GoVersion,
			CPUUsage:    cpuUsage,
			MemoryUsage: memoryUsage,
		}
		return c.JSON(response)
	}
}

// Metrics는 프로메테우스 메트릭을 제공하는 핸들러입니다
func Metrics() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
