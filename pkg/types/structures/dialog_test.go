package structure

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialogResult_MarshalJSON(t *testing.T) {
	data, err := jsoniter.Marshal(FailResult())
	require.NoError(t, err)
	assert.JSONEq(t, `"fail"`, string(data))

	data, err = jsoniter.Marshal(GreetingResult())
	require.NoError(t, err)
	assert.JSONEq(t, `"greeting"`, string(data))

	cards := NewCardList()
	cards.Append(NewCard([]string{"오늘의 식단"}))
	data, err = jsoniter.Marshal(CardsResult(cards))
	require.NoError(t, err)
	assert.JSONEq(t, `{"cardList":[{"texts":["오늘의 식단"],"buttons":[]}]}`, string(data))

	data, err = jsoniter.Marshal(CardsResult(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"cardList":[]}`, string(data))
}

func TestDialogResult_UnmarshalJSON(t *testing.T) {
	var r DialogResult
	require.NoError(t, jsoniter.Unmarshal([]byte(`"greeting"`), &r))
	assert.Equal(t, FulfillmentGreeting, r.Sentinel)

	require.NoError(t, jsoniter.Unmarshal([]byte(`{"cardList":[{"texts":["a"],"buttons":[]}]}`), &r))
	assert.False(t, r.IsSentinel())
	require.Len(t, r.Cards.CardList, 1)
	assert.Equal(t, []string{"a"}, r.Cards.CardList[0].Texts)
}

func TestCardList_AppendIgnoresNil(t *testing.T) {
	var cards CardList
	cards.Append(nil)
	assert.Nil(t, cards.CardList)

	cards.Append(NewCard(nil))
	require.Len(t, cards.CardList, 1)
	assert.NotNil(t, cards.CardList[0].Texts)
	assert.NotNil(t, cards.CardList[0].Buttons)
}
