package chathandler

import (
	"ets-backend/db"
	"ets-backend/lib/chat/store"
	userstore "ets-backend/lib/users/store"
	initchecker "ets-backend/lib/utils/init-checker"
	connectionhub "ets-backend/lib/ws/hub/connection-hub"
	"ets-backend/models"
	chatapimodels "ets-backend/models/api/chat"
	dbmodels "ets-backend/models/db"
	"slices"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	ListForUser(userID string) (list []chatapimodels.ConversationView, err error)
	Get(id, userID string) (item chatapimodels.ConversationView, err error)
	Messages(id, userID string) (list []chatapimodels.MessageView, err error)
	// Send stores the message and pushes it to the other participants.
	Send(id, userID string, request chatapimodels.SendMessage) (item chatapimodels.MessageView, err error)
	// CreateGroup always includes the creator once, as the group admin.
	CreateGroup(userID string, request chatapimodels.CreateGroup) (item chatapimodels.ConversationView, err error)
	// GetOrCreateDirect reuses an existing two-party conversation.
	GetOrCreateDirect(userID string, request chatapimodels.DirectRequest) (item chatapimodels.ConversationView, err error)
	IsOnline(userID string) chatapimodels.OnlineView
}

// Hub is the part of the websocket hub chat relies on.
type Hub interface {
	Notify(userID string, code models.EventCode, msg string, data any) error
	IsConnected(userID string) bool
}

var Instance Provider

var (
	ErrConversationNotFound = models.NotFound("conversation not found")
	ErrNotParticipant       = models.Forbidden("not a participant of this conversation")
	ErrUserNotFound         = models.BadRequest("user not found")
	ErrSelfConversation     = models.BadRequest("cannot start a conversation with yourself")
)

func NewHandler() {
	Instance = NewInstance(db.DB, connectionhub.Instance)
}

func NewInstance(DB *gorm.DB, hub Hub) Provider {
	instance := impl{
		store:     store.NewInstance(DB),
		userStore: userstore.NewInstance(DB),
		hub:       hub,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"userStore", instance.userStore,
		"hub", instance.hub,
	)
	return instance
}

type impl struct {
	store     store.Provider
	userStore userstore.Provider
	hub       Hub
}

func (i impl) ListForUser(userID string) (list []chatapimodels.ConversationView, err error) {
	recList, err := i.store.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	result := make([]chatapimodels.ConversationView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, chatapimodels.ConversationConvert(rec))
	}
	return result, nil
}

func (i impl) Get(id, userID string) (item chatapimodels.ConversationView, err error) {
	rec, err := i.getForParticipant(id, userID)
	if err != nil {
		return chatapimodels.ConversationView{}, err
	}
	return chatapimodels.ConversationConvert(*rec), nil
}

func (i impl) Messages(id, userID string) (list []chatapimodels.MessageView, err error) {
	if _, err = i.getForParticipant(id, userID); err != nil {
		return nil, err
	}
	recList, err := i.store.Messages(id)
	if err != nil {
		return nil, err
	}
	result := make([]chatapimodels.MessageView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, chatapimodels.MessageConvert(rec))
	}
	return result, nil
}

func (i impl) Send(id, userID string, request chatapimodels.SendMessage) (item chatapimodels.MessageView, err error) {
	if err = request.Validate(); err != nil {
		return chatapimodels.MessageView{}, models.BadRequest(err.Error())
	}
	conv, err := i.getForParticipant(id, userID)
	if err != nil {
		return chatapimodels.MessageView{}, err
	}
	rec, err := i.store.AddMessage(dbmodels.ChatMessage{
		ConversationID: id,
		SenderID:       userID,
		Text:           request.Text,
	})
	if err != nil {
		return chatapimodels.MessageView{}, err
	}
	item = chatapimodels.MessageConvert(rec)
	i.notifyParticipants(conv.ParticipantIDs(), userID, models.ChatMessageEvent, "new message", item)
	return item, nil
}

func (i impl) CreateGroup(userID string, request chatapimodels.CreateGroup) (item chatapimodels.ConversationView, err error) {
	if err = request.Validate(); err != nil {
		return chatapimodels.ConversationView{}, models.BadRequest(err.Error())
	}
	memberIDs := []string{userID}
	for _, memberID := range request.ParticipantIDs {
		if memberID == "" || slices.Contains(memberIDs, memberID) {
			continue
		}
		if err = i.checkUser(memberID); err != nil {
			return chatapimodels.ConversationView{}, err
		}
		memberIDs = append(memberIDs, memberID)
	}
	rec := dbmodels.ChatConversation{
		Type: models.ConversationGroup,
		Name: request.Name,
	}
	for _, memberID := range memberIDs {
		rec.Participants = append(rec.Participants, dbmodels.ChatParticipant{
			UserID:  memberID,
			IsAdmin: memberID == userID,
		})
	}
	id, err := i.store.CreateConversation(rec)
	if err != nil {
		return chatapimodels.ConversationView{}, err
	}
	log.
		WithField("conversation_id", id).
		WithField("user_id", userID).
		WithField("participants", len(memberIDs)).
		Info("chat group created")
	item, err = i.Get(id, userID)
	if err != nil {
		return chatapimodels.ConversationView{}, err
	}
	i.notifyParticipants(memberIDs, userID, models.ChatGroupCreatedEvent, "you were added to "+request.Name, item)
	return item, nil
}

func (i impl) GetOrCreateDirect(userID string, request chatapimodels.DirectRequest) (item chatapimodels.ConversationView, err error) {
	if err = request.Validate(); err != nil {
		return chatapimodels.ConversationView{}, models.BadRequest(err.Error())
	}
	if request.UserID == userID {
		return chatapimodels.ConversationView{}, ErrSelfConversation
	}
	rec, err := i.store.FindDirect(userID, request.UserID)
	if err != nil {
		return chatapimodels.ConversationView{}, err
	}
	if rec != nil {
		return chatapimodels.ConversationConvert(*rec), nil
	}
	if err = i.checkUser(request.UserID); err != nil {
		return chatapimodels.ConversationView{}, err
	}
	id, err := i.store.CreateConversation(dbmodels.ChatConversation{
		Type: models.ConversationDirect,
		Participants: []dbmodels.ChatParticipant{
			{UserID: userID},
			{UserID: request.UserID},
		},
	})
	if err != nil {
		return chatapimodels.ConversationView{}, err
	}
	log.
		WithField("conversation_id", id).
		WithField("user_id", userID).
		Info("direct conversation created")
	return i.Get(id, userID)
}

func (i impl) IsOnline(userID string) chatapimodels.OnlineView {
	return chatapimodels.OnlineView{
		UserID:   userID,
		IsOnline: i.hub.IsConnected(userID),
	}
}

func (i impl) getForParticipant(id, userID string) (*dbmodels.ChatConversation, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrConversationNotFound
	}
	if !rec.HasParticipant(userID) {
		return nil, ErrNotParticipant
	}
	return rec, nil
}

func (i impl) checkUser(userID string) error {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}

func (i impl) notifyParticipants(userIDs []string, senderID string, code models.EventCode, msg string, data any) {
	for _, userID := range userIDs {
		if userID == senderID {
			continue
		}
		err := i.hub.Notify(userID, code, msg, data)
		if err != nil {
			log.
				WithError(err).
				WithField("user_id", userID).
				Warn("chat notification failed")
		}
	}
}
