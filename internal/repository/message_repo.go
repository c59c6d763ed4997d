package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"phillymounting/internal/db"
	"phillymounting/internal/entities"
)

// MessageStore is the durable persistence contract for contact messages.
// A nil record with a nil error means not found.
type MessageStore interface {
	CreateContactMessage(req *entities.ContactMessageRequest) (*db.ContactMessage, error)
	ListContactMessages() ([]db.ContactMessage, error)
	UpdateMessageStatus(id, status string) (*db.ContactMessage, error)
}

type messageRepository struct {
	db *sql.DB
}

func NewMessageRepository(database *sql.DB) MessageStore {
	return &messageRepository{db: database}
}

const messageColumns = `id, name, email, phone, subject, message, status, created_at, updated_at`

func (r *messageRepository) CreateContactMessage(req *entities.ContactMessageRequest) (*db.ContactMessage, error) {
	now := time.Now().UTC()
	message := &db.ContactMessage{
		ID:        NewID("msg"),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    db.MessageStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `
		INSERT INTO messages (` + messageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(query,
		message.ID, message.Name, message.Email, message.Phone,
		message.Subject, message.Message, message.Status,
		message.CreatedAt, message.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error inserting contact message: %w", err)
	}
	return message, nil
}

func (r *messageRepository) ListContactMessages() ([]db.ContactMessage, error) {
	query := `SELECT ` + messageColumns + ` FROM messages ORDER BY created_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying contact messages: %w", err)
	}
	defer rows.Close()

	messages := []db.ContactMessage{}
	for rows.Next() {
		m, err := scanMessageRow(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning contact message: %w", err)
		}
		messages = append(messages, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating contact messages: %w", err)
	}
	return messages, nil
}

func (r *messageRepository) UpdateMessageStatus(id, status string) (*db.ContactMessage, error) {
	query := `
		UPDATE messages SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + messageColumns
	message, err := scanMessageRow(r.db.QueryRow(query, id, status, time.Now().UTC()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating message status: %w", err)
	}
	return message, nil
}

func scanMessageRow(row rowScanner) (*db.ContactMessage, error) {
	var m db.ContactMessage
	err := row.Scan(
		&m.ID, &m.Name, &m.Email, &m.Phone,
		&m.Subject, &m.Message, &m.Status,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
