package repository

import (
	"context"
	"errors"
	"time"

	"rocket_help/internal/domain/entities"
	"rocket_help/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const ordersOwnerIndex = "owner_id-index"

type orderItem struct {
	ID          string `dynamodbav:"id"`
	OwnerID     string `dynamodbav:"owner_id"`
	Patrimony   string `dynamodbav:"patrimony"`
	Description string `dynamodbav:"description"`
	Status      string `dynamodbav:"status"`
	Solution    string `dynamodbav:"solution,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	ClosedAt    string `dynamodbav:"closed_at,omitempty"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id, SK: created_at)
//
// created_at and closed_at are stamped here, at write time, so callers never
// supply them.

type OrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
	logger    *zap.Logger
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoDBAPI, tableName string, logger *zap.Logger) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       time.Now,
		logger:    logger,
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	o.CreatedAt = r.now().UTC()
	o.ClosedAt = nil

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

// ListByOwner returns the owner's orders, newest first. An empty status means
// every status.
func (r *OrderDynamoRepository) ListByOwner(ctx context.Context, ownerID string, status entities.OrderStatus) ([]entities.Order, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersOwnerIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	}

	items := make([]entities.Order, 0)
	pages := dynamodb.NewQueryPaginator(r.ddb, input)
	for pages.HasMorePages() {
		out, err := pages.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromOrderItem(it))
		}
	}
	return items, nil
}

// Close applies open -> closed in a single conditional write.
func (r *OrderDynamoRepository) Close(ctx context.Context, id string, solution string) (entities.Order, error) {
	closedAt := formatTime(r.now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :open"),
		UpdateExpression:    aws.String("SET #status = :closed, #solution = :solution, #closed_at = :closed_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#status":    "status",
			"#solution":  "solution",
			"#closed_at": "closed_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":open":      &types.AttributeValueMemberS{Value: string(entities.OrderStatusOpen)},
			":closed":    &types.AttributeValueMemberS{Value: string(entities.OrderStatusClosed)},
			":solution":  &types.AttributeValueMemberS{Value: solution},
			":closed_at": &types.AttributeValueMemberS{Value: closedAt},
		},
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Order{}, nil
			}
			r.logger.Info("[order][repository] close rejected, order no longer open", zap.String("order_id", id))
			return entities.Order{}, entities.ErrOrderAlreadyClosed
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:          o.ID,
		OwnerID:     o.OwnerID,
		Patrimony:   o.Patrimony,
		Description: o.Description,
		Status:      string(o.Status),
		Solution:    o.Solution,
		CreatedAt:   formatTime(o.CreatedAt),
	}
	if o.ClosedAt != nil {
		it.ClosedAt = formatTime(*o.ClosedAt)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:          it.ID,
		OwnerID:     it.OwnerID,
		Patrimony:   it.Patrimony,
		Description: it.Description,
		Status:      entities.OrderStatus(it.Status),
		Solution:    it.Solution,
		CreatedAt:   parseTime(it.CreatedAt),
		ClosedAt:    parseOptionalTime(it.ClosedAt),
	}
}
