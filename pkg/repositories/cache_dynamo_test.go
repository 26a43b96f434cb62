package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo는 CacheKey 해시 키만 지원하는 테스트용 DynamoDB입니다
type fakeDynamo struct {
	mu          sync.Mutex
	tableExists bool
	items       map[string]map[string]types.AttributeValue
	created     int
	ttlEnabled  bool
	getErr      error
}

func newFakeDynamo(tableExists bool) *fakeDynamo {
	return &fakeDynamo{
		tableExists: tableExists,
		items:       make(map[string]map[string]types.AttributeValue),
	}
}

func (f *fakeDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	key := params.Key["CacheKey"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := params.Item["CacheKey"].(*types.AttributeValueMemberS).Value
	f.items[key] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.tableExists {
		return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{
		TableName:   params.TableName,
		TableStatus: types.TableStatusActive,
	}}, nil
}

func (f *fakeDynamo) CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created++
	f.tableExists = true
	return &dynamodb.CreateTableOutput{}, nil
}

func (f *fakeDynamo) UpdateTimeToLive(ctx context.Context, params *dynamodb.UpdateTimeToLiveInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateTimeToLiveOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ttlEnabled = aws.ToString(params.TimeToLiveSpecification.AttributeName) == "ExpiresAt"
	return &dynamodb.UpdateTimeToLiveOutput{}, nil
}

func TestDynamoCache_CreatesMissingTable(t *testing.T) {
	fake := newFakeDynamo(false)

	_, err := NewDynamoCacheRepository(context.Background(), fake, "meal_cache")
	require.NoError(t, err)

	assert.Equal(t, 1, fake.created)
	assert.True(t, fake.ttlEnabled)
}

func TestDynamoCache_ExistingTable(t *testing.T) {
	fake := newFakeDynamo(true)

	_, err := NewDynamoCacheRepository(context.Background(), fake, "meal_cache")
	require.NoError(t, err)

	assert.Equal(t, 0, fake.created)
}

func TestDynamoCache_RoundTrip(t *testing.T) {
	fake := newFakeDynamo(true)
	now := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	repo := &DynamoCacheRepository{client: fake, tableName: "meal_cache", now: func() time.Time { return now }}
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "학생 식당 ko-KO", "menu", time.Hour))
	require.NoError(t, repo.Set(ctx, "welcome ko-KO", "hello", 0))

	stored := fake.items["학생 식당 ko-KO"]
	require.Contains(t, stored, "ExpiresAt")
	assert.Equal(t, "1741352400", stored["ExpiresAt"].(*types.AttributeValueMemberN).Value)
	assert.NotContains(t, fake.items["welcome ko-KO"], "ExpiresAt")

	value, found, err := repo.Get(ctx, "학생 식당 ko-KO")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "menu", value)

	// TTL 삭제가 아직 일어나지 않았어도 만료 항목은 없는 것으로 봅니다
	now = now.Add(time.Hour)
	_, found, err = repo.Get(ctx, "학생 식당 ko-KO")
	require.NoError(t, err)
	assert.False(t, found)

	value, found, err = repo.Get(ctx, "welcome ko-KO")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "hello", value)
}

func TestDynamoCache_GetError(t *testing.T) {
	fake := newFakeDynamo(true)
	fake.getErr = errors.New("throttled")
	repo := &DynamoCacheRepository{client: fake, tableName: "meal_cache", now: time.Now}

	_, found, err := repo.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, found)
}
