package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kbryant/sendlater/internal/models"
	"github.com/kbryant/sendlater/internal/repository"
)

const (
	// The one parse rule shared by create, update and the due query. The
	// due index depends on send_year_month_day always being derived from
	// send_time with this exact layout.
	SendTimeLayout = "2006-01-02T15:04:05"
	DayLayout      = "2006-01-02"
)

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrBadSendTime     = errors.New("incorrectly formatted datetime")
)

// MissingFieldError reports a required business field absent from a
// request. Required fields are never defaulted.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

type MessageService struct {
	messageRepo *repository.MessageRepository
}

func NewMessageService(messageRepo *repository.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

// CreateMessageInput carries the client-supplied fields. All are required.
type CreateMessageInput struct {
	Message       string
	Owner         string
	DisplayName   string
	OutgoingPhone string
	SendTime      string
}

// UpdateMessageInput replaces the mutable fields of an existing message.
// ID and owner are immutable after creation.
type UpdateMessageInput struct {
	ID            string
	Message       string
	DisplayName   string
	OutgoingPhone string
	SendTime      string
}

func (s *MessageService) Create(input CreateMessageInput) (*models.Message, error) {
	required := []struct{ name, value string }{
		{"message", input.Message},
		{"owner", input.Owner},
		{"display_name", input.DisplayName},
		{"outgoing_phone", input.OutgoingPhone},
		{"send_time", input.SendTime},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, &MissingFieldError{Field: f.name}
		}
	}

	ymd, err := deriveSendDay(input.SendTime)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		ID:               uuid.New().String(),
		Message:          input.Message,
		Owner:            input.Owner,
		DisplayName:      input.DisplayName,
		OutgoingPhone:    input.OutgoingPhone,
		SendTime:         input.SendTime,
		SendYearMonthDay: ymd,
		Sent:             false,
		DateAdded:        time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.messageRepo.Create(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *MessageService) Update(input UpdateMessageInput) error {
	if input.ID == "" {
		return &MissingFieldError{Field: "id"}
	}
	if input.SendTime == "" {
		return &MissingFieldError{Field: "send_time"}
	}

	ymd, err := deriveSendDay(input.SendTime)
	if err != nil {
		return err
	}

	affected, err := s.messageRepo.Update(input.ID, map[string]interface{}{
		"message":             input.Message,
		"display_name":        input.DisplayName,
		"outgoing_phone":      input.OutgoingPhone,
		"send_time":           input.SendTime,
		"send_year_month_day": ymd,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (s *MessageService) Delete(id string) error {
	if id == "" {
		return &MissingFieldError{Field: "id"}
	}

	affected, err := s.messageRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (s *MessageService) ListAll() ([]models.Message, error) {
	return s.messageRepo.ListAll()
}

func (s *MessageService) ListByOwner(owner string) ([]models.Message, error) {
	if owner == "" {
		return nil, &MissingFieldError{Field: "owner"}
	}
	return s.messageRepo.ListByOwner(owner)
}

func deriveSendDay(sendTime string) (string, error) {
	t, err := time.Parse(SendTimeLayout, sendTime)
	if err != nil {
		return "", ErrBadSendTime
	}
	return t.Format(DayLayout), nil
}
