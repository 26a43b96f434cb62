package service

import (
	"context"
	"fmt"

	client "github.com/sh5080/ansan-chatbot-go/pkg/clients"
	"github.com/sh5080/ansan-chatbot-go/pkg/configs"
	"github.com/sh5080/ansan-chatbot-go/pkg/db"
	_interface "github.com/sh5080/ansan-chatbot-go/pkg/interfaces"
	repository "github.com/sh5080/ansan-chatbot-go/pkg/repositories"
	"github.com/sh5080/ansan-chatbot-go/pkg/services/api"
	"github.com/sh5080/ansan-chatbot-go/pkg/services/internal/cache"
	"github.com/sh5080/ansan-chatbot-go/pkg/services/internal/crawler"
	constants "github.com/sh5080/ansan-chatbot-go/pkg/types"
	"github.com/sh5080/ansan-chatbot-go/pkg/utils"
)

// NewServiceContainer는 설정에 따라 모든 서비스를 조립합니다
func NewServiceContainer(ctx context.Context, config *configs.EnvConfig) (*_interface.ServiceContainer, error) {
	store, err := NewCacheStore(ctx, config)
	if err != nil {
		return nil, err
	}

	var translator _interface.Translator
	if config.Translate.APIKey != "" {
		tc, err := client.NewTranslateClient(ctx, config.Translate.APIKey)
		if err != nil {
			return nil, err
		}
		translator = tc
	} else {
		utils.Warn(constants.SERVICE_SYSTEM, "TRANSLATE_API_KEY가 없어 영어 식단을 번역하지 않습니다")
	}

	var detector _interface.IntentDetector
	if config.DialogflowEnabled() {
		dc, err := client.NewDialogflowClient(ctx, config)
		if err != nil {
			return nil, err
		}
		detector = dc
	} else {
		utils.Warn(constants.SERVICE_SYSTEM, "GOOGLE_DIALOG_FLOW_PROJECT_ID가 없어 대화 API를 사용할 수 없습니다")
	}

	mealCache := cache.NewMealCache(store, utils.SystemClock)
	menuService := crawler.NewMealCrawler(crawler.OptionsFromConfig(config), translator, utils.SystemClock)

	return &_interface.ServiceContainer{
		Config:        config,
		CacheStore:    store,
		MealCache:     mealCache,
		MenuService:   menuService,
		DialogService: api.NewDialogService(detector, menuService, mealCache),
	}, nil
}

// NewCacheStore는 CACHE_DRIVER에 맞는 캐시 저장소를 생성합니다
func NewCacheStore(ctx context.Context, config *configs.EnvConfig) (_interface.CacheStore, error) {
	switch config.Cache.Driver {
	case configs.CacheDriverRedis:
		rc, err := db.NewRedisClient(ctx, config)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisCacheRepository(rc), nil

	case configs.CacheDriverDynamoDB:
		dc, err := db.NewDynamoDBClient(ctx, config)
		if err != nil {
			return nil, err
		}
		return repository.NewDynamoCacheRepository(ctx, dc, config.AWS.Tables.MealCache)

	case configs.CacheDriverMemory:
		return repository.NewInMemoryCacheRepository(), nil
	}
	return nil, fmt.Errorf("지원하지 않는 CACHE_DRIVER: %s", config.Cache.Driver)
}
