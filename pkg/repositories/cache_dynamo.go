package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	_interface "github.com/sh5080/ansan-chatbot-go/pkg/interfaces"
	model "github.com/sh5080/ansan-chatbot-go/pkg/types/models"
)

// DynamoDBAPI는 캐시 저장소가 사용하는 DynamoDB 클라이언트 메서드입니다
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	UpdateTimeToLive(ctx context.Context, params *dynamodb.UpdateTimeToLiveInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateTimeToLiveOutput, error)
}

// DynamoCacheRepository는 DynamoDB 테이블에 캐시 값을 저장합니다.
// ExpiresAt 속성을 DynamoDB TTL로 사용하며, 삭제 전 만료 항목은 조회 시 없는 것으로 봅니다.
type DynamoCacheRepository struct {
	client    DynamoDBAPI
	tableName string
	now       func() time.Time
}

// NewDynamoCacheRepository는 DynamoDB 캐시 저장소를 생성하고 테이블을 준비합니다
func NewDynamoCacheRepository(ctx context.Context, client DynamoDBAPI, tableName string) (_interface.CacheStore, error) {
	repo := &DynamoCacheRepository{
		client:    client,
		tableName: tableName,
		now:       time.Now,
	}

	if err := repo.CreateTableIfNotExists(ctx); err != nil {
		return nil, fmt.Errorf("식단 캐시 테이블 생성 실패: %w", err)
	}

	return repo, nil
}

// CreateTableIfNotExists는 캐시 테이블이 없을 경우 생성하고 TTL을 활성화합니다.
func (r *DynamoCacheRepository) CreateTableIfNotExists(ctx context.Context) error {
	exists, err := r.tableExists(ctx)
	if err != nil {
		return fmt.Errorf("테이블 존재 여부 확인 실패: %w", err)
	}

	if exists {
		return nil
	}

	_, err = r.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(r.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{
				AttributeName: aws.String("CacheKey"),
				AttributeType: types.ScalarAttributeTypeS,
			},
		},
		KeySchema: []types.KeySchemaElement{
			{
				AttributeName: aws.String("CacheKey"),
				KeyType:       types.KeyTypeHash,
			},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return fmt.Errorf("테이블 생성 실패: %w", err)
	}

	// 테이블 생성 완료될 때까지 대기
	waiter := dynamodb.NewTableExistsWaiter(r.client)
	err = waiter.Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	}, 2*time.Minute)
	if err != nil {
		return fmt.Errorf("테이블 생성 완료 대기 실패: %w", err)
	}

	_, err = r.client.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
		TableName: aws.String(r.tableName),
		TimeToLiveSpecification: &types.TimeToLiveSpecification{
			AttributeName: aws.String("ExpiresAt"),
			Enabled:       aws.Bool(true),
		},
	})
	if err != nil {
		return fmt.Errorf("TTL 설정 실패: %w", err)
	}

	return nil
}

// tableExists는 테이블이 존재하는지 확인합니다.
func (r *DynamoCacheRepository) tableExists(ctx context.Context) (bool, error) {
	_, err := r.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	})

	if err != nil {
		var notFoundErr *types.ResourceNotFoundException
		if errors.As(err, &notFoundErr) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// Get은 키에 해당하는 값을 조회합니다
func (r *DynamoCacheRepository) Get(ctx context.Context, key string) (string, bool, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"CacheKey": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, fmt.Errorf("식단 캐시 조회 실패(%s): %w", key, err)
	}

	if result.Item == nil {
		return "", false, nil
	}

	var item model.MealCacheItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return "", false, fmt.Errorf("식단 캐시 언마샬 실패(%s): %w", key, err)
	}

	// TTL 삭제는 지연될 수 있으므로 직접 확인합니다
	if item.IsExpired(r.now().Unix()) {
		return "", false, nil
	}

	return item.Value, true, nil
}

// Set은 값을 저장합니다. ttl이 0이면 ExpiresAt 없이 저장합니다.
func (r *DynamoCacheRepository) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	item := model.MealCacheItem{
		CacheKey: key,
		Value:    value,
	}
	if ttl > 0 {
		item.ExpiresAt = r.now().Add(ttl).Unix()
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("식단 캐시 마샬 실패(%s): %w", key, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("식단 캐시 저장 실패(%s): %w", key, err)
	}

	return nil
}
