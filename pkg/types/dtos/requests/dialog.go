package request

// AskByTextRequest는 사용자가 입력한 메시지 요청입니다
type AskByTextRequest struct {
	Message      string `json:"message" validate:"required,max=256"`
	LanguageCode string `json:"languageCode" validate:"required,oneof=ko-KO en-US"`
}

// AskByEventRequest는 버튼 포스트백 이벤트 요청입니다
type AskByEventRequest struct {
	Postback     string `json:"postback" validate:"required,max=128"`
	LanguageCode string `json:"languageCode" validate:"required,oneof=ko-KO en-US"`
}
