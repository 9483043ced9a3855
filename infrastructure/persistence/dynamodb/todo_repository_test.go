package dynamodb

import (
	"testing"

	"todo-backend/domain/todo"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToItem_RoundTrip(t *testing.T) {
	original := todo.TodoItem{
		UserID:        "user-1",
		TodoID:        "todo-1",
		Name:          "Finish report",
		DueDate:       "2025-03-01",
		Done:          true,
		CreatedAt:     "2025-01-15T10:30:00Z",
		IsPublic:      true,
		AttachmentURL: "https://bucket.s3.amazonaws.com/todo-1",
	}

	assert.Equal(t, original, fromItem(toItem(original)))
}

func TestToItem_PublicViewMarker(t *testing.T) {
	t.Run("public items carry the index key", func(t *testing.T) {
		item := toItem(todo.TodoItem{UserID: "u", TodoID: "t", IsPublic: true})
		assert.Equal(t, publicViewMarker, item.PublicView)
	})

	t.Run("private items omit the index key", func(t *testing.T) {
		item := toItem(todo.TodoItem{UserID: "u", TodoID: "t", IsPublic: false})
		assert.Empty(t, item.PublicView)

		// omitempty must drop the attribute entirely so private items never
		// appear in the public index.
		av, err := attributevalue.MarshalMap(item)
		require.NoError(t, err)
		_, present := av["publicView"]
		assert.False(t, present)
	})
}

func TestToPublicItem_ExcludesOwnerFields(t *testing.T) {
	item := todoItem{
		UserID:        "user-1",
		TodoID:        "todo-1",
		Name:          "Finish report",
		DueDate:       "2025-03-01",
		Done:          true,
		CreatedAt:     "2025-01-15T10:30:00Z",
		IsPublic:      true,
		PublicView:    publicViewMarker,
		AttachmentURL: "https://bucket.s3.amazonaws.com/todo-1",
	}

	public := toPublicItem(item)

	assert.Equal(t, todo.PublicTodoItem{
		TodoID:        "todo-1",
		Name:          "Finish report",
		CreatedAt:     "2025-01-15T10:30:00Z",
		AttachmentURL: "https://bucket.s3.amazonaws.com/todo-1",
	}, public)
}

func TestAttachmentURL_Deterministic(t *testing.T) {
	repo := &TodoRepository{bucketName: "my-attachments"}

	assert.Equal(t, "https://my-attachments.s3.amazonaws.com/todo-42", repo.attachmentURL("todo-42"))
	assert.Equal(t, repo.attachmentURL("todo-42"), repo.attachmentURL("todo-42"))
}

func TestKey_CompositeShape(t *testing.T) {
	repo := &TodoRepository{}
	key := repo.key("user-1", "todo-1")

	require.Len(t, key, 2)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "user-1"}, key["userId"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "todo-1"}, key["todoId"])
}

func TestIsConditionalCheckFailed(t *testing.T) {
	assert.True(t, isConditionalCheckFailed(&types.ConditionalCheckFailedException{}))
	assert.False(t, isConditionalCheckFailed(assert.AnError))
	assert.False(t, isConditionalCheckFailed(nil))
}
