package model

// MealCacheItem은 DynamoDB 캐시 테이블에 저장되는 항목입니다
type MealCacheItem struct {
	CacheKey  string `json:"cacheKey" dynamodbav:"CacheKey"`             // 파티션 키, 예: "학생 식당 ko-KO"
	Value     string `json:"value" dynamodbav:"Value"`                   // JSON 직렬화된 카드 또는 카드 목록
	ExpiresAt int64  `json:"expiresAt" dynamodbav:"ExpiresAt,omitempty"` // DynamoDB TTL 속성(epoch 초), 0이면 만료 없음
}

// IsExpired는 주어진 epoch 초 기준으로 만료되었는지 확인합니다
func (i *MealCacheItem) IsExpired(nowUnix int64) bool {
	return i.ExpiresAt > 0 && i.ExpiresAt <= nowUnix
}
