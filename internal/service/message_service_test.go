package service

import (
	"testing"
	"time"

	"anoa.com/redsocial/internal/model"
	"anoa.com/redsocial/internal/repository"
	"anoa.com/redsocial/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMessageService(db *gorm.DB) MessageService {
	return NewMessageService(repository.NewMessageRepository(db))
}

func seedMessage(t *testing.T, db *gorm.DB, from, to uuid.UUID, text string, createdAt int64) *model.Message {
	t.Helper()

	message := &model.Message{
		Text:       text,
		EmitterID:  from,
		ReceiverID: to,
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(message).Error)

	return message
}

func TestSendMessageValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newMessageService(db)
	ana := seedUser(t, db, "ana")
	bob := seedUser(t, db, "bob")

	_, err := svc.Send(testCtx(), ana.ID, bob.ID, "  ")
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	_, err = svc.Send(testCtx(), ana.ID, uuid.Nil, "hi")
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
}

func TestSendMessageStartsUnviewed(t *testing.T) {
	db := newTestDB(t)
	svc := newMessageService(db)
	ana := seedUser(t, db, "ana")
	bob := seedUser(t, db, "bob")

	message, err := svc.Send(testCtx(), ana.ID, bob.ID, "hello bob")
	require.NoError(t, err)
	assert.False(t, message.Viewed)

	count, err := svc.UnviewedCount(testCtx(), bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// The sender's own unviewed count is unaffected.
	count, err = svc.UnviewedCount(testCtx(), ana.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestInboxPopulatesEmitter(t *testing.T) {
	db := newTestDB(t)
	svc := newMessageService(db)
	ana := seedUser(t, db, "ana")
	bob := seedUser(t, db, "bob")

	base := time.Now().Unix()
	seedMessage(t, db, ana.ID, bob.ID, "first", base-10)
	seedMessage(t, db, ana.ID, bob.ID, "second", base)

	inbox, err := svc.Inbox(testCtx(), bob.ID, 1)
	require.NoError(t, err)

	assert.EqualValues(t, 2, inbox.Total)
	require.Len(t, inbox.Messages, 2)
	// Newest first.
	assert.Equal(t, "second", inbox.Messages[0].Text)
	require.NotNil(t, inbox.Messages[0].Emitter)
	assert.Equal(t, "ana", inbox.Messages[0].Emitter.Nickname)
}

func TestOutboxPopulatesBothEndpoints(t *testing.T) {
	db := newTestDB(t)
	svc := newMessageService(db)
	ana := seedUser(t, db, "ana")
	bob := seedUser(t, db, "bob")

	seedMessage(t, db, ana.ID, bob.ID, "hi", time.Now().Unix())

	outbox, err := svc.Outbox(testCtx(), ana.ID, 1)
	require.NoError(t, err)

	require.Len(t, outbox.Messages, 1)
	require.NotNil(t, outbox.Messages[0].Emitter)
	require.NotNil(t, outbox.Messages[0].Receiver)
	assert.Equal(t, "ana", outbox.Messages[0].Emitter.Nickname)
	assert.Equal(t, "bob", outbox.Messages[0].Receiver.Nickname)
}

func TestMarkAllViewed(t *testing.T) {
	db := newTestDB(t)
	svc := newMessageService(db)
	ana := seedUser(t, db, "ana")
	bob := seedUser(t, db, "bob")
	eve := seedUser(t, db, "eve")

	base := time.Now().Unix()
	seedMessage(t, db, ana.ID, bob.ID, "one", base-2)
	seedMessage(t, db, eve.ID, bob.ID, "two", base-1)
	// Already pointing at somebody else.
	seedMessage(t, db, bob.ID, ana.ID, "three", base)

	updated, err := svc.MarkAllViewed(testCtx(), bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated)

	count, err := svc.UnviewedCount(testCtx(), bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	// ana's inbox stays untouched.
	count, err = svc.UnviewedCount(testCtx(), ana.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// Running it again finds nothing to update.
	updated, err = svc.MarkAllViewed(testCtx(), bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, updated)
}
