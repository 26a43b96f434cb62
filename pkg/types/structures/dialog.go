package structure

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
	"google.golang.org/protobuf/types/known/structpb"
)

// Dialogflow fulfillment 텍스트 중 특별 취급하는 값
const (
	FulfillmentFail     = "fail"
	FulfillmentGreeting = "greeting"
)

// NLUResult는 인텐트 감지 결과 중 이 서비스가 사용하는 값만 담습니다
type NLUResult struct {
	FulfillmentText   string
	IntentDisplayName string
	Payload           *structpb.Struct // 첫 번째 fulfillment 메시지의 payload, 없으면 nil
}

// DialogResult는 디스패처의 결과입니다.
// Sentinel이 설정되어 있으면 문자열로, 아니면 카드 목록으로 직렬화됩니다.
type DialogResult struct {
	Sentinel string
	Cards    *CardList
}

// FailResult는 인텐트 처리 실패 응답입니다
func FailResult() *DialogResult {
	return &DialogResult{Sentinel: FulfillmentFail}
}

// GreetingResult는 인사 인텐트 응답입니다
func GreetingResult() *DialogResult {
	return &DialogResult{Sentinel: FulfillmentGreeting}
}

// CardsResult는 카드 목록 응답을 감쌉니다
func CardsResult(cards *CardList) *DialogResult {
	if cards == nil {
		cards = NewCardList()
	}
	return &DialogResult{Cards: cards}
}

// IsSentinel은 결과가 fail/greeting 문자열인지 확인합니다
func (r *DialogResult) IsSentinel() bool {
	return r.Sentinel != ""
}

func (r DialogResult) MarshalJSON() ([]byte, error) {
	if r.Sentinel != "" {
		return jsoniter.Marshal(r.Sentinel)
	}
	if r.Cards == nil {
		return jsoniter.Marshal(NewCardList())
	}
	return jsoniter.Marshal(r.Cards)
}

func (r *DialogResult) UnmarshalJSON(data []byte) error {
	var sentinel string
	if err := jsoniter.Unmarshal(data, &sentinel); err == nil {
		if sentinel == "" {
			return errors.New("빈 응답 문자열")
		}
		r.Sentinel = sentinel
		r.Cards = nil
		return nil
	}

	cards := NewCardList()
	if err := jsoniter.Unmarshal(data, cards); err != nil {
		return err
	}
	r.Sentinel = ""
	r.Cards = cards
	return nil
}
