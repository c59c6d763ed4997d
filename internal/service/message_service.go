package service

import (
	"phillymounting/internal/db"
	"phillymounting/internal/entities"
	httperrors "phillymounting/internal/errors"
	"phillymounting/internal/repository"
)

// MessageService orchestrates the contact message lifecycle. Status changes
// are silent: only creation triggers a notification.
type MessageService struct {
	store  repository.MessageStore
	sender *SenderService
}

func NewMessageService(store repository.MessageStore, sender *SenderService) *MessageService {
	return &MessageService{store: store, sender: sender}
}

func (s *MessageService) SubmitContactMessage(req *entities.ContactMessageRequest) (*db.ContactMessage, error) {
	if field, missing := req.MissingField(); missing {
		return nil, httperrors.MissingField(field)
	}

	message, err := s.store.CreateContactMessage(req)
	if err != nil {
		return nil, httperrors.Storage(err)
	}

	s.sender.SendContactNotification(message)
	return message, nil
}

func (s *MessageService) ListContactMessages() ([]db.ContactMessage, error) {
	messages, err := s.store.ListContactMessages()
	if err != nil {
		return nil, httperrors.Storage(err)
	}
	return messages, nil
}

func (s *MessageService) ChangeMessageStatus(id, status string) (*db.ContactMessage, error) {
	if !db.ValidMessageStatus(status) {
		return nil, httperrors.InvalidStatus(status)
	}

	updated, err := s.store.UpdateMessageStatus(id, status)
	if err != nil {
		return nil, httperrors.Storage(err)
	}
	if updated == nil {
		return nil, httperrors.NotFound("Message not found")
	}
	return updated, nil
}
