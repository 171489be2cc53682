package repository

import (
	"context"
	"log"

	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const ordersSessionIDIndex = "session_id-index"

type orderLineItem struct {
	Name  string  `dynamodbav:"name"`
	Type  string  `dynamodbav:"type"`
	Size  string  `dynamodbav:"size,omitempty"`
	Price float64 `dynamodbav:"price"`
}

type orderItem struct {
	ID        string          `dynamodbav:"id"`
	SessionID string          `dynamodbav:"session_id"`
	Items     []orderLineItem `dynamodbav:"items"`
	Total     float64         `dynamodbav:"total"`
	Finalized bool            `dynamodbav:"finalized"`
	CreatedAt string          `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists finalized orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: session_id-index (PK: session_id)
type OrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		log.Printf("[order][repository] put failed order_id=%s err=%v", o.ID, err)
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	items, err := scanAll[orderItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return fromOrderItems(items), nil
}

func (r *OrderDynamoRepository) ListBySessionID(ctx context.Context, sessionID string) ([]entities.Order, error) {
	items, err := queryAll[orderItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersSessionIDIndex),
		KeyConditionExpression: aws.String("session_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sessionID},
		},
	})
	if err != nil {
		return nil, err
	}
	return fromOrderItems(items), nil
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, orderLineItem{Name: it.Name, Type: string(it.Category), Size: string(it.Size), Price: it.Price})
	}
	return orderItem{
		ID:        o.ID,
		SessionID: o.SessionID,
		Items:     lines,
		Total:     o.Total,
		Finalized: o.Finalized,
		CreatedAt: formatTime(o.CreatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	items := make([]entities.Item, 0, len(it.Items))
	for _, l := range it.Items {
		items = append(items, entities.Item{
			Name:     l.Name,
			Category: entities.Category(l.Type),
			Size:     entities.Size(l.Size),
			Price:    l.Price,
		})
	}
	return entities.Order{
		ID:        it.ID,
		SessionID: it.SessionID,
		Items:     items,
		Total:     it.Total,
		Finalized: it.Finalized,
		CreatedAt: parseTime(it.CreatedAt),
	}
}

func fromOrderItems(items []orderItem) []entities.Order {
	out := make([]entities.Order, 0, len(items))
	for _, it := range items {
		out = append(out, fromOrderItem(it))
	}
	return out
}
