package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repository "github.com/sh5080/ansan-chatbot-go/pkg/repositories"
	constants "github.com/sh5080/ansan-chatbot-go/pkg/types"
	model "github.com/sh5080/ansan-chatbot-go/pkg/types/models"
	structure "github.com/sh5080/ansan-chatbot-go/pkg/types/structures"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestKey(t *testing.T) {
	assert.Equal(t, "학생 식당 ko-KO", Key("학생 식당", model.LanguageKorean))
	assert.Equal(t, "dormitory-cafeteria en-US", Key("dormitory-cafeteria", model.LanguageEnglish))
}

func TestSecondsUntilMidnight(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		expected int64
	}{
		{"noon", time.Date(2025, 3, 7, 12, 0, 0, 0, constants.KST), 12 * 3600},
		{"one second before", time.Date(2025, 3, 7, 23, 59, 59, 0, constants.KST), 1},
		{"exactly midnight", time.Date(2025, 3, 7, 0, 0, 0, 0, constants.KST), 24 * 3600},
		{"sub-second remainder floors to minimum", time.Date(2025, 3, 7, 23, 59, 59, 900_000_000, constants.KST), 1},
		// UTC 14:00은 한국 23:00
		{"utc input", time.Date(2025, 3, 7, 14, 0, 0, 0, time.UTC), 3600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SecondsUntilMidnight(tt.now))
		})
	}
}

func TestWritePolicy_TTL(t *testing.T) {
	now := time.Date(2025, 3, 7, 22, 0, 0, 0, constants.KST)
	assert.Equal(t, 2*time.Hour, ExpireAtMidnight.TTL(now))
	assert.Equal(t, time.Duration(0), NoExpiry.TTL(now))
}

// ==========================================
// miniredis 통합 테스트
// ==========================================

func TestMealCache_CardRoundTripUntilMidnight(t *testing.T) {
	mr, client := setupMiniredis(t)
	now := time.Date(2025, 3, 7, 23, 0, 0, 0, constants.KST)
	mc := NewMealCache(repository.NewRedisCacheRepository(client), fixedClock(now))
	ctx := context.Background()

	card := structure.NewCard([]string{"🍴 금요일 (3.7) 식단", " ", "◼ 중식 1", "쌀밥", " "})
	require.NoError(t, mc.SetCard(ctx, "학생 식당", model.LanguageKorean, card))

	assert.Equal(t, time.Hour, mr.TTL("학생 식당 ko-KO"))

	got, found, err := mc.GetCard(ctx, "학생 식당", model.LanguageKorean)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, card, got)

	mr.FastForward(time.Hour)

	got, found, err = mc.GetCard(ctx, "학생 식당", model.LanguageKorean)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestMealCache_CardListPolicies(t *testing.T) {
	mr, client := setupMiniredis(t)
	now := time.Date(2025, 3, 7, 12, 0, 0, 0, constants.KST)
	mc := NewMealCache(repository.NewRedisCacheRepository(client), fixedClock(now))
	ctx := context.Background()

	menu := structure.NewCardList()
	menu.Append(structure.NewCard([]string{"오늘의 식단입니다"}))
	require.NoError(t, mc.SetCardList(ctx, "student-cafeteria", model.LanguageKorean, menu, true))

	static := structure.NewCardList()
	static.Append(&structure.Card{
		Texts:   []string{"무엇을 도와드릴까요?"},
		Buttons: []structure.Button{{ButtonText: "학생 식당", PostBack: "student-cafeteria"}},
	})
	require.NoError(t, mc.SetCardList(ctx, "welcome", model.LanguageKorean, static, false))

	assert.Equal(t, 12*time.Hour, mr.TTL("student-cafeteria ko-KO"))
	assert.Equal(t, time.Duration(0), mr.TTL("welcome ko-KO"))

	got, found, err := mc.GetCardList(ctx, "welcome", model.LanguageKorean)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, static, got)

	mr.FastForward(13 * time.Hour)

	_, found, err = mc.GetCardList(ctx, "student-cafeteria", model.LanguageKorean)
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = mc.GetCardList(ctx, "welcome", model.LanguageKorean)
	require.NoError(t, err)
	assert.True(t, found)
}

// ==========================================
// redismock 명령 검증
// ==========================================

func TestMealCache_SetCardIssuesSetWithMidnightExpiry(t *testing.T) {
	client, mock := redismock.NewClientMock()
	now := time.Date(2025, 3, 7, 18, 30, 0, 0, constants.KST)
	mc := NewMealCache(repository.NewRedisCacheRepository(client), fixedClock(now))

	card := structure.NewCard([]string{"a"})
	mock.ExpectSet("교직원 식당 en-US", `{"texts":["a"],"buttons":[]}`, 5*time.Hour+30*time.Minute).SetVal("OK")

	require.NoError(t, mc.SetCard(context.Background(), "교직원 식당", model.LanguageEnglish, card))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMealCache_CorruptValue(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mc := NewMealCache(repository.NewRedisCacheRepository(client), nil)

	mock.ExpectGet("학생 식당 ko-KO").SetVal("{not json")

	_, found, err := mc.GetCard(context.Background(), "학생 식당", model.LanguageKorean)
	assert.Error(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}
