package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/sh5080/ansan-chatbot-go/pkg/configs"
	constants "github.com/sh5080/ansan-chatbot-go/pkg/types"
	model "github.com/sh5080/ansan-chatbot-go/pkg/types/models"
	structure "github.com/sh5080/ansan-chatbot-go/pkg/types/structures"
	"github.com/sh5080/ansan-chatbot-go/pkg/utils"
	"golang.org/x/oauth2/google"
	dialogflow "google.golang.org/api/dialogflow/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// DialogflowClient는 Dialogflow ES 세션에 인텐트 감지를 요청합니다
type DialogflowClient struct {
	sessions  *dialogflow.ProjectsAgentSessionsService
	projectID string
	sessionID string // 비어 있으면 요청마다 새 UUID
}

// serviceAccountJSON은 환경 변수로 받은 서비스 계정 키를 JSON으로 만들 때 사용합니다
type serviceAccountJSON struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	PrivateKey  string `json:"private_key"`
	ClientEmail string `json:"client_email"`
	ClientID    string `json:"client_id"`
	TokenURI    string `json:"token_uri"`
}

// DialogflowCredentials는 환경 설정으로 구글 자격증명을 만듭니다.
// 개인 키가 없으면 Application Default Credentials를 사용합니다.
func DialogflowCredentials(ctx context.Context, config *configs.EnvConfig) (*google.Credentials, error) {
	if config.Dialogflow.PrivateKey == "" {
		creds, err := google.FindDefaultCredentials(ctx, dialogflow.CloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("기본 자격증명 조회 실패: %w", err)
		}
		return creds, nil
	}

	data, err := jsoniter.Marshal(serviceAccountJSON{
		Type:        "service_account",
		ProjectID:   config.Dialogflow.ProjectID,
		PrivateKey:  config.Dialogflow.PrivateKey,
		ClientEmail: config.Dialogflow.ClientEmail,
		ClientID:    config.Dialogflow.ClientID,
		TokenURI:    google.Endpoint.TokenURL,
	})
	if err != nil {
		return nil, fmt.Errorf("서비스 계정 JSON 생성 실패: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, dialogflow.CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("서비스 계정 자격증명 생성 실패: %w", err)
	}
	return creds, nil
}

// NewDialogflowClient는 환경 설정으로 Dialogflow 클라이언트를 생성합니다
func NewDialogflowClient(ctx context.Context, config *configs.EnvConfig) (*DialogflowClient, error) {
	creds, err := DialogflowCredentials(ctx, config)
	if err != nil {
		return nil, err
	}
	return NewDialogflowClientWithOptions(ctx, config.Dialogflow.ProjectID, config.Dialogflow.SessionID, option.WithCredentials(creds))
}

// NewDialogflowClientWithOptions는 클라이언트 옵션을 직접 지정해 생성합니다
func NewDialogflowClientWithOptions(ctx context.Context, projectID, sessionID string, opts ...option.ClientOption) (*DialogflowClient, error) {
	if projectID == "" {
		return nil, fmt.Errorf("Dialogflow 프로젝트 ID가 비어 있습니다")
	}

	svc, err := dialogflow.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("Dialogflow 서비스 생성 실패: %w", err)
	}

	return &DialogflowClient{
		sessions:  svc.Projects.Agent.Sessions,
		projectID: projectID,
		sessionID: sessionID,
	}, nil
}

// DetectText는 사용자 메시지로 인텐트를 감지합니다
func (c *DialogflowClient) DetectText(ctx context.Context, text string, language model.LanguageCode) (*structure.NLUResult, error) {
	return c.detect(ctx, &dialogflow.GoogleCloudDialogflowV2QueryInput{
		Text: &dialogflow.GoogleCloudDialogflowV2TextInput{
			Text:         text,
			LanguageCode: string(language),
		},
	})
}

// DetectEvent는 이벤트 이름(버튼 포스트백)으로 인텐트를 감지합니다
func (c *DialogflowClient) DetectEvent(ctx context.Context, event string, language model.LanguageCode) (*structure.NLUResult, error) {
	return c.detect(ctx, &dialogflow.GoogleCloudDialogflowV2QueryInput{
		Event: &dialogflow.GoogleCloudDialogflowV2EventInput{
			Name:         event,
			LanguageCode: string(language),
		},
	})
}

// SessionPath는 projects/{project}/agent/sessions/{session} 형식의 세션 경로를 반환합니다
func (c *DialogflowClient) SessionPath() string {
	sessionID := c.sessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	return fmt.Sprintf("projects/%s/agent/sessions/%s", c.projectID, sessionID)
}

func (c *DialogflowClient) detect(ctx context.Context, input *dialogflow.GoogleCloudDialogflowV2QueryInput) (*structure.NLUResult, error) {
	start := time.Now()
	resp, err := c.sessions.DetectIntent(c.SessionPath(), &dialogflow.GoogleCloudDialogflowV2DetectIntentRequest{
		QueryInput: input,
	}).Context(ctx).Do()
	if err != nil {
		utils.RecordApiCall(constants.API_DIALOGFLOW, googleStatusCode(err), time.Since(start).Seconds())
		return nil, fmt.Errorf("Dialogflow 인텐트 감지 실패: %w", err)
	}
	utils.RecordApiCall(constants.API_DIALOGFLOW, resp.HTTPStatusCode, time.Since(start).Seconds())

	result := &structure.NLUResult{}
	qr := resp.QueryResult
	if qr == nil {
		return result, nil
	}

	result.FulfillmentText = qr.FulfillmentText
	if qr.Intent != nil {
		result.IntentDisplayName = qr.Intent.DisplayName
	}

	if len(qr.FulfillmentMessages) > 0 && qr.FulfillmentMessages[0] != nil {
		payload, err := decodePayload(qr.FulfillmentMessages[0].Payload)
		if err != nil {
			return nil, err
		}
		result.Payload = payload
	}

	utils.Debug(constants.SERVICE_DIALOGFLOW, "인텐트 감지: intent=%q fulfillment=%q", result.IntentDisplayName, result.FulfillmentText)
	return result, nil
}

// decodePayload는 fulfillment 메시지의 payload JSON을 Struct로 변환합니다. 비어 있으면 nil입니다.
func decodePayload(raw interface{}) (*structpb.Struct, error) {
	var data []byte
	switch v := raw.(type) {
	case googleapi.RawMessage:
		data = v
	default:
		var err error
		if data, err = jsoniter.Marshal(v); err != nil {
			return nil, fmt.Errorf("payload 직렬화 실패: %w", err)
		}
	}
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	payload := &structpb.Struct{}
	if err := protojson.Unmarshal(data, payload); err != nil {
		return nil, fmt.Errorf("payload 파싱 실패: %w", err)
	}
	return payload, nil
}

func googleStatusCode(err error) int {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	return 0
}
