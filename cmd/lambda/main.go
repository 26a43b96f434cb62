package main

import (
	"os"

	"github.com/sh5080/ansan-chatbot-go/pkg/serverless"
	constants "github.com/sh5080/ansan-chatbot-go/pkg/types"
	model "github.com/sh5080/ansan-chatbot-go/pkg/types/models"
	"github.com/sh5080/ansan-chatbot-go/pkg/utils"
)

func main() {
	if err := model.VerifyCafeteriaTables(); err != nil {
		utils.Fatal(constants.SERVICE_SYSTEM, "식당 테이블 검증 실패: %v", err)
		os.Exit(1)
	}

	serverless.LambdaMain()
}
