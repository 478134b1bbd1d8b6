package wsmodels

import (
	"encoding/json"
	"ets-backend/models"
)

type ServerMessage struct {
	ToUserID string           `json:"-"`
	Time     string           `json:"time"` // event time, RFC3339
	Code     models.EventCode `json:"code"`
	Msg      string           `json:"msg"`
	Data     json.RawMessage  `json:"data,omitempty"`
}
