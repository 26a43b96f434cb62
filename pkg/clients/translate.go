package client

import (
	"context"
	"fmt"
	"time"

	constants "github.com/sh5080/ansan-chatbot-go/pkg/types"
	"github.com/sh5080/ansan-chatbot-go/pkg/utils"
	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"
)

// TranslateClient는 Google Cloud Translation v2로 한국어 식단을 번역합니다
type TranslateClient struct {
	translations *translate.TranslationsService
}

// NewTranslateClient는 API 키로 번역 클라이언트를 생성합니다
func NewTranslateClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*TranslateClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("번역 API 키가 비어 있습니다")
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := translate.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("번역 서비스 생성 실패: %w", err)
	}

	return &TranslateClient{translations: svc.Translations}, nil
}

// Translate는 한국어 텍스트를 target 언어로 번역합니다
func (c *TranslateClient) Translate(ctx context.Context, text string, target string) (string, error) {
	start := time.Now()
	resp, err := c.translations.List([]string{text}, target).
		Source("ko").
		Format("text").
		Context(ctx).
		Do()
	if err != nil {
		utils.RecordApiCall(constants.API_TRANSLATE, googleStatusCode(err), time.Since(start).Seconds())
		return "", fmt.Errorf("번역 요청 실패: %w", err)
	}
	utils.RecordApiCall(constants.API_TRANSLATE, resp.HTTPStatusCode, time.Since(start).Seconds())

	if len(resp.Translations) == 0 {
		return "", fmt.Errorf("번역 결과가 비어 있습니다: %q", text)
	}

	return utils.CleanText(resp.Translations[0].TranslatedText), nil
}
