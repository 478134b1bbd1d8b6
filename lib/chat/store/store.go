package store

import (
	"ets-backend/models"
	dbmodels "ets-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	CreateConversation(rec dbmodels.ChatConversation) (id string, err error)
	GetByID(id string) (rec *dbmodels.ChatConversation, err error)
	// ListForUser orders by the last message, newest first, conversations without messages last.
	ListForUser(userID string) (list []dbmodels.ChatConversation, err error)
	FindDirect(userID, otherUserID string) (rec *dbmodels.ChatConversation, err error)
	Messages(conversationID string) (list []dbmodels.ChatMessage, err error)
	// AddMessage stores the message and the conversation's last message in one transaction.
	AddMessage(rec dbmodels.ChatMessage) (dbmodels.ChatMessage, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateConversation(rec dbmodels.ChatConversation) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ChatConversation, error) {
	rec := dbmodels.ChatConversation{}
	err := i.db.
		Preload("Participants").
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) participantOf(userID string) *gorm.DB {
	return i.db.
		Model(&dbmodels.ChatParticipant{}).
		Select("conversation_id").
		Where("user_id = ?", userID)
}

func (i impl) ListForUser(userID string) (list []dbmodels.ChatConversation, err error) {
	list = []dbmodels.ChatConversation{}
	err = i.db.
		Preload("Participants").
		Where("id IN (?)", i.participantOf(userID)).
		Order("CASE WHEN last_message_at IS NULL THEN 1 ELSE 0 END, last_message_at desc, created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) FindDirect(userID, otherUserID string) (*dbmodels.ChatConversation, error) {
	list := []dbmodels.ChatConversation{}
	err := i.db.
		Preload("Participants").
		Where("type = ?", models.ConversationDirect).
		Where("id IN (?)", i.participantOf(userID)).
		Where("id IN (?)", i.participantOf(otherUserID)).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	for _, rec := range list {
		if len(rec.Participants) == 2 {
			return &rec, nil
		}
	}
	return nil, nil
}

func (i impl) Messages(conversationID string) (list []dbmodels.ChatMessage, err error) {
	list = []dbmodels.ChatMessage{}
	err = i.db.
		Where("conversation_id = ?", conversationID).
		Order("created_at, id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) AddMessage(rec dbmodels.ChatMessage) (dbmodels.ChatMessage, error) {
	err := i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&rec).Error
		if err != nil {
			return err
		}
		return tx.
			Model(&dbmodels.ChatConversation{}).
			Where("id = ?", rec.ConversationID).
			Updates(map[string]interface{}{
				"last_message_id":        rec.ID,
				"last_message_sender_id": rec.SenderID,
				"last_message_text":      rec.Text,
				"last_message_at":        rec.CreatedAt,
			}).
			Error
	})
	return rec, err
}
