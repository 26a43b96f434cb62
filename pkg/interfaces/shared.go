package _interface

import "github.com/sh5080/ansan-chatbot-go/pkg/configs"

// ServiceContainer는 모든 서비스 인스턴스를 보관합니다
type ServiceContainer struct {
	Config        *configs.EnvConfig
	CacheStore    CacheStore
	MealCache     MealCache
	MenuService   MenuService
	DialogService DialogService
}
