package structure

// Button은 카드 하단에 표시되는 버튼입니다
type Button struct {
	ButtonText string `json:"buttonText"`
	Link       string `json:"link"`
	PostBack   string `json:"postBack"`
}

// Card는 챗봇 화면에 한 덩어리로 표시되는 텍스트 블록입니다.
// 식단 블록도 같은 구조를 사용합니다.
type Card struct {
	Texts   []string `json:"texts"`
	Buttons []Button `json:"buttons"`
}

// NewCard는 버튼 목록이 빈 슬라이스로 초기화된 카드를 만듭니다
func NewCard(texts []string) *Card {
	if texts == nil {
		texts = []string{}
	}
	return &Card{Texts: texts, Buttons: []Button{}}
}

// CardList는 클라이언트로 전달되는 카드 목록 응답입니다
type CardList struct {
	CardList []Card `json:"cardList"`
}

// NewCardList는 비어 있는 카드 목록을 만듭니다
func NewCardList() *CardList {
	return &CardList{CardList: []Card{}}
}

// Append는 카드를 목록 끝에 추가합니다
func (l *CardList) Append(card *Card) {
	if card == nil {
		return
	}
	if l.CardList == nil {
		l.CardList = []Card{}
	}
	l.CardList = append(l.CardList, *card)
}
