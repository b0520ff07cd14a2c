package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestOutboxRepository_Create_DefaultsToPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewOutboxRepository(db)

	mock.ExpectExec(`INSERT INTO outbox_events`).
		WithArgs("ev-1", "req-1", "advances", "row-1", "activity",
			"finance.activity.v1", []byte(`{}`), OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(context.Background(), OutboxEvent{
		ID:            "ev-1",
		RequestID:     "req-1",
		AggregateType: "advances",
		AggregateID:   "row-1",
		EventType:     "activity",
		Topic:         "finance.activity.v1",
		Payload:       []byte(`{}`),
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_Create_RejectsIncompleteEvent(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewOutboxRepository(db)

	err = repo.Create(context.Background(), OutboxEvent{ID: "ev-1"})
	assert.Error(t, err)
}

func TestOutboxRepository_ListDue_ScansRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewOutboxRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id",
		"event_type", "topic", "payload", "status", "attempts", "coalesce",
	}).AddRow("ev-1", "req-1", "advances", "row-1",
		"activity", "finance.activity.v1", []byte(`{}`), "pending", 2, now)

	mock.ExpectQuery(`SELECT id::text, request_id`).
		WithArgs(OutboxStatusPending, OutboxStatusFailed, 50).
		WillReturnRows(rows)

	events, err := repo.ListDue(context.Background(), 50)
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "ev-1", events[0].ID)
	assert.Equal(t, "req-1", events[0].RequestID)
	assert.Equal(t, OutboxStatusPending, events[0].Status)
	assert.Equal(t, 2, events[0].Attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed_BumpsAttempts(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewOutboxRepository(db)

	mock.ExpectExec(`UPDATE outbox_events`).
		WithArgs("ev-1", OutboxStatusFailed, "broker unreachable").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.MarkFailed(context.Background(), "ev-1", "broker unreachable")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
