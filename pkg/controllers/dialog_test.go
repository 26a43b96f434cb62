package controller

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/sh5080/ansan-chatbot-go/pkg/types/models"
	structure "github.com/sh5080/ansan-chatbot-go/pkg/types/structures"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

type fakeDialogService struct {
	result   *structure.DialogResult
	err      error
	message  string
	postback string
	language model.LanguageCode
}

func (f *fakeDialogService) DetectIntentByText(ctx context.Context, message string, language model.LanguageCode) (*structure.DialogResult, error) {
	f.message, f.language = message, language
	return f.result, f.err
}

func (f *fakeDialogService) DetectIntentByEvent(ctx context.Context, postback string, language model.LanguageCode) (*structure.DialogResult, error) {
	f.postback, f.language = postback, language
	return f.result, f.err
}

func newDialogApp(svc *fakeDialogService) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		JSONEncoder:           jsoniter.Marshal,
		JSONDecoder:           jsoniter.Unmarshal,
	})
	app.Post("/api/askByText", AskByText(svc))
	app.Post("/api/askByEvent", AskByEvent(svc))
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func TestAskByText(t *testing.T) {
	cards := structure.NewCardList()
	cards.Append(structure.NewCard([]string{"🍴 금요일 (3.7) 식단"}))
	svc := &fakeDialogService{result: structure.CardsResult(cards)}
	app := newDialogApp(svc)

	status, body := post(t, app, "/api/askByText", `{"message":"학식 메뉴","languageCode":"ko-KO"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"cardList":[{"texts":["🍴 금요일 (3.7) 식단"],"buttons":[]}]}`, body)
	assert.Equal(t, "학식 메뉴", svc.message)
	assert.Equal(t, model.LanguageKorean, svc.language)
}

func TestAskByText_Sentinel(t *testing.T) {
	app := newDialogApp(&fakeDialogService{result: structure.GreetingResult()})

	status, body := post(t, app, "/api/askByText", `{"message":"안녕","languageCode":"en-US"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `"greeting"`, body)
}

func TestAskByEvent(t *testing.T) {
	svc := &fakeDialogService{result: structure.FailResult()}
	app := newDialogApp(svc)

	status, body := post(t, app, "/api/askByEvent", `{"postback":"student-cafeteria","languageCode":"en-US"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `"fail"`, body)
	assert.Equal(t, "student-cafeteria", svc.postback)
	assert.Equal(t, model.LanguageEnglish, svc.language)
}

func TestAsk_InvalidRequest(t *testing.T) {
	cases := []struct {
		name string
		path string
		body string
	}{
		{"missing message", "/api/askByText", `{"languageCode":"ko-KO"}`},
		{"unsupported language", "/api/askByText", `{"message":"hi","languageCode":"ja-JP"}`},
		{"malformed json", "/api/askByText", `{"message":`},
		{"missing postback", "/api/askByEvent", `{"languageCode":"ko-KO"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeDialogService{result: structure.FailResult()}
			app := newDialogApp(svc)

			status, body := post(t, app, tc.path, tc.body)

			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Contains(t, body, `"error"`)
			assert.Empty(t, svc.message)
			assert.Empty(t, svc.postback)
		})
	}
}

func TestAsk_DispatcherErrorIsHidden(t *testing.T) {
	app := newDialogApp(&fakeDialogService{err: errors.New("redis: connection refused")})

	status, body := post(t, app, "/api/askByEvent", `{"postback":"welcome","languageCode":"ko-KO"}`)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body, `"error"`)
	assert.NotContains(t, body, "redis")
}
