package connectionhub

import (
	"encoding/json"
	pendingstore "ets-backend/lib/ws/pending-store"
	"ets-backend/models"
	dbmodels "ets-backend/models/db"
	wsmodels "ets-backend/models/ws"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	// DeleteClient drops the session only while conn is still the one registered for the user.
	DeleteClient(userID string, conn *websocket.Conn)
	// Notify delivers the event right away when the user is connected
	// and keeps it for the next connection otherwise.
	Notify(userID string, code models.EventCode, msg string, data any) error
	SendClose(userID string)
	IsConnected(userID string) bool
}

var Instance Provider

func Init(DB *gorm.DB) {
	Instance = NewInstance(DB)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		clients: map[string]clientSession{},
		store:   pendingstore.NewInstance(DB),
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession //map[userID]
	store   pendingstore.Provider
}

func (i *impl) DeleteClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn != conn {
		return
	}
	delete(i.clients, userID)
	sess.stop()
	close(sess.sendCh)
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	oldSess, ok := i.clients[userID]
	if ok {
		oldSess.stop()
	}
	i.clients[userID] = newSession(conn)
	i.mu.Unlock()
	go i.sendPendingEvents(userID)
}

func (i *impl) Notify(userID string, code models.EventCode, msg string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "event marshal failed")
	}
	if i.send(wsmodels.ServerMessage{
		ToUserID: userID,
		Time:     time.Now().Format(time.RFC3339),
		Code:     code,
		Msg:      msg,
		Data:     payload,
	}) {
		return nil
	}
	rec := dbmodels.PendingEvent{
		UserID:  userID,
		Code:    code,
		Msg:     msg,
		Payload: string(payload),
	}
	return errors.Wrap(i.store.Create(rec), "failed to store pending event")
}

func (i *impl) SendClose(userID string) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sess, ok := i.clients[userID]
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

func (i *impl) send(msg wsmodels.ServerMessage) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sess, ok := i.clients[msg.ToUserID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	select {
	case sess.sendCh <- msg:
		return true
	case <-time.After(sendTimeout):
		return false
	}
}

const sendTimeout = time.Second

func (i *impl) sendPendingEvents(userID string) {
	logger := log.WithField("user_id", userID)
	list, err := i.store.List(userID)
	if err != nil {
		logger.WithError(err).Error("failed to load pending events")
		return
	}
	sentIDs := []string{}
	for _, item := range list {
		msg := wsmodels.ServerMessage{
			ToUserID: userID,
			Time:     item.CreatedAt.Format(time.RFC3339),
			Code:     item.Code,
			Msg:      item.Msg,
		}
		if item.Payload != "" {
			msg.Data = json.RawMessage(item.Payload)
		}
		if !i.send(msg) {
			break
		}
		sentIDs = append(sentIDs, item.ID)
	}
	if len(sentIDs) > 0 {
		err = i.store.Delete(sentIDs)
		if err != nil {
			logger.WithError(err).Error("failed to delete delivered events")
			return
		}
	}
}
