package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phillymounting/internal/db"
	"phillymounting/internal/entities"
	httperrors "phillymounting/internal/errors"
)

func validContactRequest() *entities.ContactMessageRequest {
	return &entities.ContactMessageRequest{
		Name:    "Bob",
		Email:   "b@x.com",
		Subject: "Mounting above a fireplace",
		Message: "Can you mount a 65 inch TV above a brick fireplace?",
	}
}

func TestSubmitContactMessageNotifiesAdminWithReplyTo(t *testing.T) {
	store := newFakeMessageStore()
	mailer := &fakeMailSender{}
	svc := NewMessageService(store, NewSenderService(testConfig(), mailer, nil))

	message, err := svc.SubmitContactMessage(validContactRequest())
	require.NoError(t, err)
	assert.Equal(t, db.MessageStatusNew, message.Status)
	assert.NotEmpty(t, message.ID)

	require.Len(t, mailer.sent, 1)
	sent := mailer.sent[0]
	assert.Equal(t, "admin@phillymounting.com", sent.Personalizations[0].To[0].Address)
	assert.Equal(t, "New Contact Message: Mounting above a fireplace", sent.Subject)
	require.NotNil(t, sent.ReplyTo)
	assert.Equal(t, "b@x.com", sent.ReplyTo.Address)
}

func TestSubmitContactMessagePhoneIsOptional(t *testing.T) {
	store := newFakeMessageStore()
	svc := NewMessageService(store, NewSenderService(testConfig(), nil, nil))

	req := validContactRequest()
	req.Phone = ""
	_, err := svc.SubmitContactMessage(req)
	require.NoError(t, err)
}

func TestSubmitContactMessageMissingFieldFailsFast(t *testing.T) {
	store := newFakeMessageStore()
	mailer := &fakeMailSender{}
	svc := NewMessageService(store, NewSenderService(testConfig(), mailer, nil))

	req := validContactRequest()
	req.Subject = ""
	_, err := svc.SubmitContactMessage(req)

	var httpErr *httperrors.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Equal(t, "Missing required field: subject", httpErr.Message)
	assert.Empty(t, store.messages)
	assert.Empty(t, mailer.sent)
}

func TestChangeMessageStatusNeverSendsEmail(t *testing.T) {
	store := newFakeMessageStore()
	mailer := &fakeMailSender{}
	svc := NewMessageService(store, NewSenderService(testConfig(), mailer, nil))

	message, err := svc.SubmitContactMessage(validContactRequest())
	require.NoError(t, err)
	mailer.sent = nil

	for _, status := range []string{db.MessageStatusRead, db.MessageStatusResponded, db.MessageStatusNew} {
		updated, err := svc.ChangeMessageStatus(message.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
	assert.Empty(t, mailer.sent, "message status changes are silent")
}

func TestChangeMessageStatusRejectsInvalidStatus(t *testing.T) {
	store := newFakeMessageStore()
	svc := NewMessageService(store, NewSenderService(testConfig(), nil, nil))

	message, err := svc.SubmitContactMessage(validContactRequest())
	require.NoError(t, err)

	_, err = svc.ChangeMessageStatus(message.ID, "archived")

	var httpErr *httperrors.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Zero(t, store.updateCalls)
	assert.Equal(t, db.MessageStatusNew, store.messages[message.ID].Status)
}

func TestChangeMessageStatusNotFound(t *testing.T) {
	store := newFakeMessageStore()
	svc := NewMessageService(store, NewSenderService(testConfig(), nil, nil))

	_, err := svc.ChangeMessageStatus("msg_missing", db.MessageStatusRead)

	var httpErr *httperrors.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestListContactMessagesNewestFirst(t *testing.T) {
	store := newFakeMessageStore()
	svc := NewMessageService(store, NewSenderService(testConfig(), nil, nil))

	for i := 0; i < 3; i++ {
		_, err := svc.SubmitContactMessage(validContactRequest())
		require.NoError(t, err)
	}

	messages, err := svc.ListContactMessages()
	require.NoError(t, err)
	require.Len(t, messages, 3)
	for i := 1; i < len(messages); i++ {
		assert.True(t, messages[i-1].CreatedAt.After(messages[i].CreatedAt))
	}
}
