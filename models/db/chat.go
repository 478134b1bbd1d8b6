package dbmodels

import (
	"ets-backend/models"
	"time"
)

type ChatConversation struct {
	BaseModel
	Type                models.ConversationType `gorm:"type:varchar(10)"`
	Name                string                  `gorm:"type:varchar(255)"`
	Participants        []ChatParticipant       `gorm:"foreignKey:ConversationID"`
	LastMessageID       *string                 `gorm:"type:varchar(36)"`
	LastMessageSenderID string                  `gorm:"type:varchar(36)"`
	LastMessageText     string
	LastMessageAt       *time.Time `gorm:"index"`
}

func (c ChatConversation) ParticipantIDs() []string {
	result := make([]string, 0, len(c.Participants))
	for _, p := range c.Participants {
		result = append(result, p.UserID)
	}
	return result
}

func (c ChatConversation) AdminIDs() []string {
	result := []string{}
	for _, p := range c.Participants {
		if p.IsAdmin {
			result = append(result, p.UserID)
		}
	}
	return result
}

func (c ChatConversation) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

type ChatParticipant struct {
	ConversationID string `gorm:"primaryKey;type:varchar(36)"`
	UserID         string `gorm:"primaryKey;type:varchar(36);index"`
	IsAdmin        bool
}

type ChatMessage struct {
	BaseModel
	ConversationID string `gorm:"type:varchar(36);index"`
	SenderID       string `gorm:"type:varchar(36)"`
	Text           string
}
