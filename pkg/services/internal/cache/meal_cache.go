package cache

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	_interface "github.com/sh5080/ansan-chatbot-go/pkg/interfaces"
	constants "github.com/sh5080/ansan-chatbot-go/pkg/types"
	model "github.com/sh5080/ansan-chatbot-go/pkg/types/models"
	structure "github.com/sh5080/ansan-chatbot-go/pkg/types/structures"
	"github.com/sh5080/ansan-chatbot-go/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WritePolicy는 캐시 항목의 만료 방식을 정합니다
type WritePolicy int

const (
	// ExpireAtMidnight는 저장 시점 기준 다음 한국 시간 자정에 만료됩니다
	ExpireAtMidnight WritePolicy = iota
	// NoExpiry는 만료되지 않습니다
	NoExpiry
)

// Key는 캐시 키를 만듭니다. 예: "학생 식당 ko-KO"
func Key(name string, language model.LanguageCode) string {
	return name + " " + string(language)
}

// SecondsUntilMidnight는 다음 한국 시간 자정까지 남은 초를 반환합니다. 최소 1초입니다.
func SecondsUntilMidnight(now time.Time) int64 {
	seconds := int64(utils.NextMidnightKST(now).Sub(now) / time.Second)
	if seconds < 1 {
		return 1
	}
	return seconds
}

// TTL은 정책에 따른 만료 시간을 계산합니다. 0은 만료 없음입니다.
func (p WritePolicy) TTL(now time.Time) time.Duration {
	if p == NoExpiry {
		return 0
	}
	return time.Duration(SecondsUntilMidnight(now)) * time.Second
}

// MealCacheImpl는 CacheStore 위에서 카드와 카드 목록을 JSON으로 저장합니다
type MealCacheImpl struct {
	store _interface.CacheStore
	clock utils.Clock
}

// NewMealCache는 새 식단 캐시를 생성합니다
func NewMealCache(store _interface.CacheStore, clock utils.Clock) _interface.MealCache {
	if clock == nil {
		clock = utils.SystemClock
	}
	return &MealCacheImpl{store: store, clock: clock}
}

// GetCard는 식단 블록을 조회합니다
func (m *MealCacheImpl) GetCard(ctx context.Context, name string, language model.LanguageCode) (*structure.Card, bool, error) {
	var card structure.Card
	found, err := m.get(ctx, "card", Key(name, language), &card)
	if err != nil || !found {
		return nil, found, err
	}
	if card.Buttons == nil {
		card.Buttons = []structure.Button{}
	}
	return &card, true, nil
}

// SetCard는 식단 블록을 한국 시간 자정까지 저장합니다
func (m *MealCacheImpl) SetCard(ctx context.Context, name string, language model.LanguageCode, card *structure.Card) error {
	return m.set(ctx, Key(name, language), card, ExpireAtMidnight)
}

// GetCardList는 전체 응답을 조회합니다
func (m *MealCacheImpl) GetCardList(ctx context.Context, name string, language model.LanguageCode) (*structure.CardList, bool, error) {
	cards := structure.NewCardList()
	found, err := m.get(ctx, "card_list", Key(name, language), cards)
	if err != nil || !found {
		return nil, found, err
	}
	if cards.CardList == nil {
		cards.CardList = []structure.Card{}
	}
	return cards, true, nil
}

// SetCardList는 전체 응답을 저장합니다
func (m *MealCacheImpl) SetCardList(ctx context.Context, name string, language model.LanguageCode, cards *structure.CardList, expireAtMidnight bool) error {
	policy := NoExpiry
	if expireAtMidnight {
		policy = ExpireAtMidnight
	}
	return m.set(ctx, Key(name, language), cards, policy)
}

func (m *MealCacheImpl) get(ctx context.Context, kind, key string, out interface{}) (bool, error) {
	raw, found, err := m.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("캐시 조회 실패: %w", err)
	}
	utils.RecordCacheLookup(kind, found)
	if !found {
		utils.Debug(constants.SERVICE_CACHE, "캐시 미스: %s", key)
		return false, nil
	}

	if err := json.UnmarshalFromString(raw, out); err != nil {
		return false, fmt.Errorf("캐시 값 디코딩 실패(%s): %w", key, err)
	}
	utils.Debug(constants.SERVICE_CACHE, "캐시 적중: %s", key)
	return true, nil
}

func (m *MealCacheImpl) set(ctx context.Context, key string, value interface{}, policy WritePolicy) error {
	raw, err := json.MarshalToString(value)
	if err != nil {
		return fmt.Errorf("캐시 값 인코딩 실패(%s): %w", key, err)
	}

	ttl := policy.TTL(m.clock())
	if err := m.store.Set(ctx, key, raw, ttl); err != nil {
		return fmt.Errorf("캐시 저장 실패: %w", err)
	}
	utils.Debug(constants.SERVICE_CACHE, "캐시 저장: %s (ttl=%s)", key, ttl)
	return nil
}
