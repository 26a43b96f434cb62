package _interface

import (
	"context"
	"time"

	model "github.com/sh5080/ansan-chatbot-go/pkg/types/models"
	structure "github.com/sh5080/ansan-chatbot-go/pkg/types/structures"
)

// CacheStore는 문자열 키/값 저장소입니다. ttl이 0이면 만료되지 않습니다.
type CacheStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// MealCache는 식단 블록과 전체 응답을 (이름, 언어) 단위로 캐싱합니다
type MealCache interface {
	// GetCard는 텍스트 경로에서 사용하는 식단 블록을 조회합니다
	GetCard(ctx context.Context, name string, language model.LanguageCode) (*structure.Card, bool, error)
	// SetCard는 식단 블록을 한국 시간 자정까지 저장합니다
	SetCard(ctx context.Context, name string, language model.LanguageCode, card *structure.Card) error
	// GetCardList는 이벤트 경로에서 사용하는 전체 응답을 조회합니다
	GetCardList(ctx context.Context, name string, language model.LanguageCode) (*structure.CardList, bool, error)
	// SetCardList는 전체 응답을 저장합니다. expireAtMidnight가 false면 만료되지 않습니다.
	SetCardList(ctx context.Context, name string, language model.LanguageCode, cards *structure.CardList, expireAtMidnight bool) error
}
