package notification

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/coopstead/portal/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func notificationColumns() []string {
	return []string{"id", "user_id", "type", "title", "content", "link", "read", "created_at", "expires_at", "metadata"}
}

func TestCreateNotification(t *testing.T) {
	repo, mock := setupMockDB(t)

	notificationID := uuid.New()
	createdAt := time.Now()
	n := model.Notification{
		UserID:  uuid.New(),
		Type:    model.NotificationTypeForum,
		Title:   "New reply",
		Content: "Someone replied to your topic",
		Link:    "/forum/topics/42",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO notifications (
		    user_id, type, title, content, link, expires_at, metadata
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;
    `)).
		WithArgs(n.UserID, n.Type, n.Title, n.Content, n.Link, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(notificationID, createdAt))

	created, err := repo.CreateNotification(context.Background(), n)
	assert.NoError(t, err)
	assert.Equal(t, notificationID, created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser(t *testing.T) {
	repo, mock := setupMockDB(t)

	userID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows(notificationColumns()).
		AddRow(uuid.New(), userID, "task", "Task due", "Staircase cleaning", "/tasks/1", false, now, nil, nil).
		AddRow(uuid.New(), userID, "meeting", "AG scheduled", "Annual assembly", nil, true, now.Add(-time.Hour), nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, user_id, type, title, content, link, read, created_at, expires_at, metadata
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC;
    `)).
		WithArgs(userID).
		WillReturnRows(rows)

	notifications, err := repo.ListByUser(context.Background(), userID)
	assert.NoError(t, err)
	assert.Len(t, notifications, 2)
	assert.False(t, notifications[0].Read)
	assert.True(t, notifications[1].Read)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)

	userID := uuid.New()
	mock.ExpectQuery("SELECT id, user_id").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(notificationColumns()))

	notifications, err := repo.ListByUser(context.Background(), userID)
	assert.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestMarkRead(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`
		UPDATE notifications
		SET read = TRUE
		WHERE id = $1
		RETURNING id, user_id, type, title, content, link, read, created_at, expires_at, metadata;
    `)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(notificationColumns()).
			AddRow(id, userID, "document", "Signature requested", "Please sign", nil, true, time.Now(), nil, nil))

	n, err := repo.MarkRead(context.Background(), id)
	assert.NoError(t, err)
	assert.True(t, n.Read)
	assert.Equal(t, id, n.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	mock.ExpectQuery("UPDATE notifications").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(notificationColumns()))

	_, err := repo.MarkRead(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestMarkAllRead(t *testing.T) {
	repo, mock := setupMockDB(t)

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`
		UPDATE notifications
		SET read = TRUE
		WHERE user_id = $1 AND read = FALSE
		RETURNING id, user_id, type, title, content, link, read, created_at, expires_at, metadata;
    `)).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(notificationColumns()).
			AddRow(uuid.New(), userID, "forum", "Reply", "New reply", nil, true, time.Now(), nil, nil).
			AddRow(uuid.New(), userID, "task", "Task", "New task", nil, true, time.Now(), nil, nil))

	updated, err := repo.MarkAllRead(context.Background(), userID)
	assert.NoError(t, err)
	assert.Len(t, updated, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotification(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM notifications
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteNotification(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotification_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	mock.ExpectExec("DELETE FROM notifications").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteNotification(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}
