package main

import (
	"context"
	"os"

	"github.com/sh5080/ansan-chatbot-go/pkg/configs"
	"github.com/sh5080/ansan-chatbot-go/pkg/serverless"
	service "github.com/sh5080/ansan-chatbot-go/pkg/services"
	constants "github.com/sh5080/ansan-chatbot-go/pkg/types"
	model "github.com/sh5080/ansan-chatbot-go/pkg/types/models"
	"github.com/sh5080/ansan-chatbot-go/pkg/utils"
)

func main() {
	// 메트릭 초기화
	utils.InitMetrics()

	if err := model.VerifyCafeteriaTables(); err != nil {
		utils.Fatal(constants.SERVICE_SYSTEM, "식당 테이블 검증 실패: %v", err)
		os.Exit(1)
	}

	config := configs.GetConfig()

	services, err := service.NewServiceContainer(context.Background(), config)
	if err != nil {
		utils.Fatal(constants.SERVICE_SYSTEM, "서비스 초기화 실패: %v", err)
		os.Exit(1)
	}

	// 온프레미스 환경에서만 Prometheus 메트릭 수집
	app := serverless.NewApp(config, services, true)

	port := config.Server.Port
	utils.Info(constants.SERVICE_SYSTEM, "서버 시작: port=%s version=%s", port, configs.AppVersion)
	if err := app.Listen(":" + port); err != nil {
		utils.Fatal(constants.SERVICE_SYSTEM, "서버 종료: %v", err)
		os.Exit(1)
	}
}
