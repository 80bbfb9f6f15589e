package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
)

// DynamoAPI is the subset of the DynamoDB client used here.
type DynamoAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoTurnStore keeps turns in a table with partition key session_id and
// sort key timestamp.
type DynamoTurnStore struct {
	client DynamoAPI
	table  string
}

var _ TurnStore = (*DynamoTurnStore)(nil)

// NewDynamoTurnStore creates a turn store over table.
func NewDynamoTurnStore(client DynamoAPI, table string) *DynamoTurnStore {
	return &DynamoTurnStore{client: client, table: table}
}

// RecentTurns queries newest-first then reverses, so the limit keeps the
// most recent turns.
func (s *DynamoTurnStore) RecentTurns(ctx context.Context, sessionID string, limit int) ([]domain.Turn, error) {
	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String("session_id = :session_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, unavailable("query turns", err)
	}

	turns := []domain.Turn{}
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &turns); err != nil {
		return nil, fmt.Errorf("unmarshal turns: %w", err)
	}
	reverse(turns)
	return turns, nil
}

// AppendTurn puts one item.
func (s *DynamoTurnStore) AppendTurn(ctx context.Context, turn *domain.Turn) error {
	item, err := attributevalue.MarshalMap(turn)
	if err != nil {
		return fmt.Errorf("marshal turn: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	}); err != nil {
		return unavailable("put turn", err)
	}
	return nil
}
