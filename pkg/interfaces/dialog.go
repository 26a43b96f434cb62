package _interface

import (
	"context"

	model "github.com/sh5080/ansan-chatbot-go/pkg/types/models"
	structure "github.com/sh5080/ansan-chatbot-go/pkg/types/structures"
)

// MenuService는 오늘의 식단 블록을 만드는 인터페이스입니다
type MenuService interface {
	FetchMenu(ctx context.Context, cafeteria model.Cafeteria, language model.LanguageCode) (*structure.Card, error)
}

// Translator는 텍스트를 대상 언어로 번역합니다
type Translator interface {
	Translate(ctx context.Context, text string, target string) (string, error)
}

// IntentDetector는 NLU 서비스에 텍스트나 이벤트를 보내 인텐트를 감지합니다
type IntentDetector interface {
	DetectText(ctx context.Context, text string, language model.LanguageCode) (*structure.NLUResult, error)
	DetectEvent(ctx context.Context, event string, language model.LanguageCode) (*structure.NLUResult, error)
}

// DialogService는 클라이언트 요청을 인텐트 감지와 식단 조회로 연결합니다
type DialogService interface {
	// DetectIntentByText는 사용자 메시지를 처리합니다
	DetectIntentByText(ctx context.Context, message string, language model.LanguageCode) (*structure.DialogResult, error)
	// DetectIntentByEvent는 버튼 포스트백 이벤트를 처리합니다
	DetectIntentByEvent(ctx context.Context, postback string, language model.LanguageCode) (*structure.DialogResult, error)
}
