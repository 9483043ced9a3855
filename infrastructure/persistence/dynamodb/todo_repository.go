package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"todo-backend/application/ports"
	"todo-backend/domain/todo"
	apperrors "todo-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// publicViewMarker keys the public-listing index. DynamoDB cannot key a GSI
// on a BOOL, so the attribute is present iff the item is public.
const publicViewMarker = "x"

// TodoRepository implements the TodoRepository port using DynamoDB
type TodoRepository struct {
	client         *dynamodb.Client
	tableName      string
	createdAtIndex string
	publicIndex    string
	bucketName     string
	logger         *zap.Logger
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(
	client *dynamodb.Client,
	tableName string,
	createdAtIndex string,
	publicIndex string,
	bucketName string,
	logger *zap.Logger,
) ports.TodoRepository {
	return &TodoRepository{
		client:         client,
		tableName:      tableName,
		createdAtIndex: createdAtIndex,
		publicIndex:    publicIndex,
		bucketName:     bucketName,
		logger:         logger,
	}
}

// todoItem represents the DynamoDB item structure for a todo
type todoItem struct {
	UserID        string `dynamodbav:"userId"`
	TodoID        string `dynamodbav:"todoId"`
	Name          string `dynamodbav:"name"`
	DueDate       string `dynamodbav:"dueDate"`
	Done          bool   `dynamodbav:"done"`
	CreatedAt     string `dynamodbav:"createdAt"`
	IsPublic      bool   `dynamodbav:"isPublic"`
	PublicView    string `dynamodbav:"publicView,omitempty"` // index key, never exposed
	AttachmentURL string `dynamodbav:"attachmentUrl,omitempty"`
}

func toItem(t todo.TodoItem) todoItem {
	item := todoItem{
		UserID:        t.UserID,
		TodoID:        t.TodoID,
		Name:          t.Name,
		DueDate:       t.DueDate,
		Done:          t.Done,
		CreatedAt:     t.CreatedAt,
		IsPublic:      t.IsPublic,
		AttachmentURL: t.AttachmentURL,
	}
	if t.IsPublic {
		item.PublicView = publicViewMarker
	}
	return item
}

func fromItem(item todoItem) todo.TodoItem {
	return todo.TodoItem{
		UserID:        item.UserID,
		TodoID:        item.TodoID,
		Name:          item.Name,
		DueDate:       item.DueDate,
		Done:          item.Done,
		CreatedAt:     item.CreatedAt,
		IsPublic:      item.IsPublic,
		AttachmentURL: item.AttachmentURL,
	}
}

func toPublicItem(item todoItem) todo.PublicTodoItem {
	return todo.PublicTodoItem{
		TodoID:        item.TodoID,
		Name:          item.Name,
		CreatedAt:     item.CreatedAt,
		AttachmentURL: item.AttachmentURL,
	}
}

// attachmentURL computes the deterministic public URL for an item's
// attachment from the fixed bucket and the item identifier.
func (r *TodoRepository) attachmentURL(todoID string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", r.bucketName, todoID)
}

func (r *TodoRepository) key(ownerID, todoID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: ownerID},
		"todoId": &types.AttributeValueMemberS{Value: todoID},
	}
}

// ListByOwner retrieves all todos for an owner via the creation-time index.
func (r *TodoRepository) ListByOwner(ctx context.Context, ownerID string) ([]todo.TodoItem, error) {
	keyCond := expression.Key("userId").Equal(expression.Value(ownerID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query expression: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(r.createdAtIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		r.logger.Error("Failed to query todos by owner",
			zap.Error(err),
			zap.String("userID", ownerID),
		)
		return nil, apperrors.NewDatabaseError("query", err)
	}

	items := make([]todo.TodoItem, 0, len(result.Items))
	for _, raw := range result.Items {
		var item todoItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			r.logger.Warn("Failed to unmarshal todo item", zap.Error(err))
			continue
		}
		items = append(items, fromItem(item))
	}

	return items, nil
}

// ListPublic retrieves the safe projection of all publicly visible todos.
func (r *TodoRepository) ListPublic(ctx context.Context) ([]todo.PublicTodoItem, error) {
	keyCond := expression.Key("publicView").Equal(expression.Value(publicViewMarker))
	proj := expression.NamesList(
		expression.Name("todoId"),
		expression.Name("name"),
		expression.Name("createdAt"),
		expression.Name("attachmentUrl"),
	)
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).WithProjection(proj).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query expression: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(r.publicIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ProjectionExpression:      expr.Projection(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		r.logger.Error("Failed to query public todos", zap.Error(err))
		return nil, apperrors.NewDatabaseError("query", err)
	}

	items := make([]todo.PublicTodoItem, 0, len(result.Items))
	for _, raw := range result.Items {
		var item todoItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			r.logger.Warn("Failed to unmarshal public todo item", zap.Error(err))
			continue
		}
		items = append(items, toPublicItem(item))
	}

	return items, nil
}

// GetOne performs a point lookup by the composite key. Absence is reported
// as (nil, nil), not an error.
func (r *TodoRepository) GetOne(ctx context.Context, ownerID, todoID string) (*todo.TodoItem, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.key(ownerID, todoID),
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		r.logger.Error("Failed to get todo",
			zap.Error(err),
			zap.String("todoID", todoID),
			zap.String("userID", ownerID),
		)
		return nil, apperrors.NewDatabaseError("get", err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var item todoItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal todo: %w", err)
	}

	found := fromItem(item)
	return &found, nil
}

// Create writes the item unconditionally. A duplicate key overwrites; the
// service generates identifiers so collisions do not occur in practice.
func (r *TodoRepository) Create(ctx context.Context, t todo.TodoItem) error {
	av, err := attributevalue.MarshalMap(toItem(t))
	if err != nil {
		return fmt.Errorf("failed to marshal todo: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to save todo to DynamoDB",
			zap.Error(err),
			zap.String("todoID", t.TodoID),
			zap.String("userID", t.UserID),
		)
		return apperrors.NewDatabaseError("put", err)
	}

	return nil
}

// Update replaces the mutable attributes for the key. The write is
// conditional on the key existing, so a cross-owner update targets a
// non-existent key and reports NotFound instead of silently no-oping.
func (r *TodoRepository) Update(ctx context.Context, ownerID, todoID string, upd todo.TodoUpdate) error {
	update := expression.
		Set(expression.Name("name"), expression.Value(upd.Name)).
		Set(expression.Name("dueDate"), expression.Value(upd.DueDate)).
		Set(expression.Name("done"), expression.Value(upd.Done)).
		Set(expression.Name("isPublic"), expression.Value(upd.IsPublic))
	if upd.IsPublic {
		update = update.Set(expression.Name("publicView"), expression.Value(publicViewMarker))
	} else {
		update = update.Remove(expression.Name("publicView"))
	}

	cond := expression.AttributeExists(expression.Name("userId"))
	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("failed to build update expression: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       r.key(ownerID, todoID),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	if _, err := r.client.UpdateItem(ctx, input); err != nil {
		if isConditionalCheckFailed(err) {
			return apperrors.NewNotFoundError("todo")
		}
		r.logger.Error("Failed to update todo",
			zap.Error(err),
			zap.String("todoID", todoID),
			zap.String("userID", ownerID),
		)
		return apperrors.NewDatabaseError("update", err)
	}

	return nil
}

// Delete removes the item by its owner-scoped key, reporting NotFound when
// the key was already absent.
func (r *TodoRepository) Delete(ctx context.Context, ownerID, todoID string) error {
	cond := expression.AttributeExists(expression.Name("userId"))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("failed to build condition expression: %w", err)
	}

	input := &dynamodb.DeleteItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       r.key(ownerID, todoID),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		if isConditionalCheckFailed(err) {
			return apperrors.NewNotFoundError("todo")
		}
		r.logger.Error("Failed to delete todo",
			zap.Error(err),
			zap.String("todoID", todoID),
			zap.String("userID", ownerID),
		)
		return apperrors.NewDatabaseError("delete", err)
	}

	r.logger.Debug("Todo deleted",
		zap.String("todoID", todoID),
		zap.String("userID", ownerID),
	)

	return nil
}

// AttachFile writes the deterministic attachment URL onto the item via a
// partial update conditional on the key existing.
func (r *TodoRepository) AttachFile(ctx context.Context, ownerID, todoID string) error {
	update := expression.Set(
		expression.Name("attachmentUrl"),
		expression.Value(r.attachmentURL(todoID)),
	)
	cond := expression.AttributeExists(expression.Name("userId"))
	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("failed to build update expression: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       r.key(ownerID, todoID),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	if _, err := r.client.UpdateItem(ctx, input); err != nil {
		if isConditionalCheckFailed(err) {
			return apperrors.NewNotFoundError("todo")
		}
		r.logger.Error("Failed to attach file to todo",
			zap.Error(err),
			zap.String("todoID", todoID),
			zap.String("userID", ownerID),
		)
		return apperrors.NewDatabaseError("update", err)
	}

	r.logger.Debug("Attachment URL stored",
		zap.String("todoID", todoID),
		zap.String("userID", ownerID),
	)

	return nil
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}
