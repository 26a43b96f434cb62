package api

import (
	"context"
	"fmt"

	_interface "github.com/sh5080/ansan-chatbot-go/pkg/interfaces"
	"github.com/sh5080/ansan-chatbot-go/pkg/services/internal/payload"
	constants "github.com/sh5080/ansan-chatbot-go/pkg/types"
	model "github.com/sh5080/ansan-chatbot-go/pkg/types/models"
	structure "github.com/sh5080/ansan-chatbot-go/pkg/types/structures"
	"github.com/sh5080/ansan-chatbot-go/pkg/utils"
)

// DialogServiceImpl는 인텐트 감지 결과에 식단 블록을 붙여 응답을 만듭니다
type DialogServiceImpl struct {
	detector _interface.IntentDetector
	menu     _interface.MenuService
	cache    _interface.MealCache
}

// NewDialogService는 새 대화 서비스를 생성합니다
func NewDialogService(detector _interface.IntentDetector, menu _interface.MenuService, cache _interface.MealCache) _interface.DialogService {
	return &DialogServiceImpl{
		detector: detector,
		menu:     menu,
		cache:    cache,
	}
}

// DetectIntentByText는 사용자 메시지를 처리합니다.
// 식당 인텐트면 식단 블록을 캐시에서 찾거나 새로 가져와 마지막 카드로 붙입니다.
func (s *DialogServiceImpl) DetectIntentByText(ctx context.Context, message string, language model.LanguageCode) (*structure.DialogResult, error) {
	if s.detector == nil {
		return nil, fmt.Errorf("인텐트 감지기: %w", constants.ErrUnavailable)
	}

	nlu, err := s.detector.DetectText(ctx, message, language)
	if err != nil {
		return nil, err
	}

	switch nlu.FulfillmentText {
	case structure.FulfillmentFail:
		return structure.FailResult(), nil
	case structure.FulfillmentGreeting:
		return structure.GreetingResult(), nil
	}

	var menuCard *structure.Card
	if cafeteria, ok := model.ParseDisplayName(nlu.IntentDisplayName); ok {
		menuCard, err = s.menuForText(ctx, cafeteria, nlu.IntentDisplayName, language)
		if err != nil {
			return nil, err
		}
	}

	cards := s.decodeCards(nlu)
	cards.Append(menuCard)
	return structure.CardsResult(cards), nil
}

// menuForText는 식단 블록을 캐시에서 찾고, 없으면 가져와 자정까지 저장합니다
func (s *DialogServiceImpl) menuForText(ctx context.Context, cafeteria model.Cafeteria, displayName string, language model.LanguageCode) (*structure.Card, error) {
	card, found, err := s.cache.GetCard(ctx, displayName, language)
	if err != nil {
		return nil, err
	}
	if found {
		return card, nil
	}

	card, err = s.menu.FetchMenu(ctx, cafeteria, language)
	if err != nil {
		return nil, fmt.Errorf("식단 조회 실패: %w", err)
	}

	if err := s.cache.SetCard(ctx, displayName, language, card); err != nil {
		return nil, err
	}
	return card, nil
}

// DetectIntentByEvent는 버튼 포스트백 이벤트를 처리합니다.
// 캐시에 전체 응답이 있으면 인텐트 감지 없이 그대로 반환합니다.
func (s *DialogServiceImpl) DetectIntentByEvent(ctx context.Context, postback string, language model.LanguageCode) (*structure.DialogResult, error) {
	cached, found, err := s.cache.GetCardList(ctx, postback, language)
	if err != nil {
		return nil, err
	}
	if found {
		return structure.CardsResult(cached), nil
	}

	if s.detector == nil {
		return nil, fmt.Errorf("인텐트 감지기: %w", constants.ErrUnavailable)
	}

	// fail 응답이면 식단을 가져오지 않도록 인텐트 감지를 먼저 합니다
	nlu, err := s.detector.DetectEvent(ctx, postback, language)
	if err != nil {
		return nil, err
	}
	if nlu.FulfillmentText == structure.FulfillmentFail {
		return structure.FailResult(), nil
	}

	var menuCard *structure.Card
	if cafeteria, ok := model.ParseIntentName(postback); ok {
		menuCard, err = s.menu.FetchMenu(ctx, cafeteria, language)
		if err != nil {
			return nil, fmt.Errorf("식단 조회 실패: %w", err)
		}
	}

	cards := s.decodeCards(nlu)
	cards.Append(menuCard)

	if err := s.cache.SetCardList(ctx, postback, language, cards, menuCard != nil); err != nil {
		return nil, err
	}
	return structure.CardsResult(cards), nil
}

// decodeCards는 payload를 카드 목록으로 바꿉니다. 형태가 다르면 빈 목록을 사용합니다.
func (s *DialogServiceImpl) decodeCards(nlu *structure.NLUResult) *structure.CardList {
	cards, ok := payload.DecodeCardList(nlu.Payload)
	if !ok && nlu.Payload != nil {
		utils.Warn(constants.SERVICE_DIALOG, "예상과 다른 payload 형태: intent=%q", nlu.IntentDisplayName)
	}
	return cards
}
