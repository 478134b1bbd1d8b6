package dbmodels

import "ets-backend/models"

// PendingEvent is a websocket event addressed to a user who was offline when it happened.
type PendingEvent struct {
	BaseModel
	UserID  string           `gorm:"type:varchar(36);index:idx_pending_user"`
	Code    models.EventCode `gorm:"type:varchar(50)"`
	Msg     string
	Payload string
}
