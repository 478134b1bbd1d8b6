package chatapimodels

import (
	"ets-backend/models"
	dbmodels "ets-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type MessageView struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Text           string    `json:"text"`
	Timestamp      time.Time `json:"timestamp"`
}

func MessageConvert(rec dbmodels.ChatMessage) MessageView {
	return MessageView{
		ID:             rec.ID,
		ConversationID: rec.ConversationID,
		SenderID:       rec.SenderID,
		Text:           rec.Text,
		Timestamp:      rec.CreatedAt,
	}
}

type ConversationView struct {
	ID             string                  `json:"id"`
	Type           models.ConversationType `json:"type"`
	Name           string                  `json:"name,omitempty"`
	ParticipantIDs []string                `json:"participant_ids"`
	AdminIDs       []string                `json:"admin_ids,omitempty"`
	LastMessage    *MessageView            `json:"last_message,omitempty"`
}

func ConversationConvert(rec dbmodels.ChatConversation) ConversationView {
	view := ConversationView{
		ID:             rec.ID,
		Type:           rec.Type,
		Name:           rec.Name,
		ParticipantIDs: rec.ParticipantIDs(),
	}
	if rec.Type == models.ConversationGroup {
		view.AdminIDs = rec.AdminIDs()
	}
	if rec.LastMessageID != nil && rec.LastMessageAt != nil {
		view.LastMessage = &MessageView{
			ID:             *rec.LastMessageID,
			ConversationID: rec.ID,
			SenderID:       rec.LastMessageSenderID,
			Text:           rec.LastMessageText,
			Timestamp:      *rec.LastMessageAt,
		}
	}
	return view
}

type SendMessage struct {
	Text string `json:"text"`
}

func (r SendMessage) Validate() error {
	if r.Text == "" {
		return errors.New("message text is required")
	}
	return nil
}

type CreateGroup struct {
	Name           string   `json:"name"`
	ParticipantIDs []string `json:"participant_ids"`
}

func (r CreateGroup) Validate() error {
	if r.Name == "" {
		return errors.New("group name is required")
	}
	if len(r.ParticipantIDs) == 0 {
		return errors.New("group needs at least one participant")
	}
	return nil
}

type DirectRequest struct {
	UserID string `json:"user_id"`
}

func (r DirectRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user id is required")
	}
	return nil
}

type OnlineView struct {
	UserID   string `json:"user_id"`
	IsOnline bool   `json:"is_online"`
}
