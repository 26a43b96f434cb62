package payload

import (
	structure "github.com/sh5080/ansan-chatbot-go/pkg/types/structures"
	"google.golang.org/protobuf/types/known/structpb"
)

// DecodeCardList는 Dialogflow 커스텀 payload의 cardList를 카드 목록으로 변환합니다.
// payload 형태가 예상과 다르면 빈 목록과 false를 반환합니다.
func DecodeCardList(payload *structpb.Struct) (*structure.CardList, bool) {
	result := structure.NewCardList()

	list := payload.GetFields()["cardList"].GetListValue()
	if list == nil {
		return result, false
	}

	for _, item := range list.GetValues() {
		fields := item.GetStructValue().GetFields()
		result.CardList = append(result.CardList, structure.Card{
			Texts:   decodeTexts(fields["texts"]),
			Buttons: decodeButtons(fields["buttons"]),
		})
	}

	return result, true
}

// decodeTexts는 비어 있지 않은 문자열 값만 남깁니다
func decodeTexts(v *structpb.Value) []string {
	texts := []string{}
	for _, t := range v.GetListValue().GetValues() {
		if s := t.GetStringValue(); s != "" {
			texts = append(texts, s)
		}
	}
	return texts
}

func decodeButtons(v *structpb.Value) []structure.Button {
	buttons := []structure.Button{}
	for _, b := range v.GetListValue().GetValues() {
		fields := b.GetStructValue().GetFields()
		buttons = append(buttons, structure.Button{
			ButtonText: fields["buttonText"].GetStringValue(),
			Link:       fields["link"].GetStringValue(),
			PostBack:   fields["postBack"].GetStringValue(),
		})
	}
	return buttons
}
