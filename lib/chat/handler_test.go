package chathandler

import (
	"ets-backend/db/dbtest"
	"ets-backend/models"
	chatapimodels "ets-backend/models/api/chat"
	"testing"

	"github.com/stretchr/testify/require"
)

type hubStub struct {
	online   map[string]bool
	notified []string
}

func (h *hubStub) Notify(userID string, code models.EventCode, msg string, data any) error {
	h.notified = append(h.notified, userID)
	return nil
}

func (h *hubStub) IsConnected(userID string) bool {
	return h.online[userID]
}

func conversationIDs(list []chatapimodels.ConversationView) []string {
	ids := make([]string, 0, len(list))
	for _, item := range list {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestChat(t *testing.T) {
	hub := &hubStub{online: map[string]bool{"3": true}}
	handler := NewInstance(dbtest.NewSeeded(t), hub)

	t.Run("list order check", func(t *testing.T) {
		list, err := handler.ListForUser("2")
		require.NoError(t, err)
		require.Equal(t, []string{"conv-4", "conv-3", "conv-1", "conv-2"}, conversationIDs(list))
		require.Nil(t, list[3].LastMessage)
		require.Equal(t, "msg-6", list[0].LastMessage.ID)
		require.Equal(t, []string{"2"}, list[2].AdminIDs)
	})
	t.Run("messages check", func(t *testing.T) {
		list, err := handler.Messages("conv-1", "3")
		require.NoError(t, err)
		require.Len(t, list, 3)
		require.Equal(t, "msg-1", list[0].ID)
		require.Equal(t, "msg-3", list[2].ID)

		_, err = handler.Messages("conv-1", "7")
		require.ErrorIs(t, err, ErrNotParticipant)
		require.ErrorIs(t, err, models.ErrForbidden)
		_, err = handler.Messages("missing", "3")
		require.ErrorIs(t, err, ErrConversationNotFound)
	})
	t.Run("send check", func(t *testing.T) {
		msg, err := handler.Send("conv-2", "6", chatapimodels.SendMessage{Text: "Release is on track."})
		require.NoError(t, err)
		require.NotEmpty(t, msg.ID)
		require.ElementsMatch(t, []string{"2", "4", "5"}, hub.notified)

		list, err := handler.ListForUser("2")
		require.NoError(t, err)
		require.Equal(t, "conv-2", list[0].ID)
		require.Equal(t, msg.ID, list[0].LastMessage.ID)
		require.Equal(t, "Release is on track.", list[0].LastMessage.Text)

		_, err = handler.Send("conv-2", "6", chatapimodels.SendMessage{})
		require.ErrorIs(t, err, models.ErrBadRequest)
		_, err = handler.Send("conv-2", "3", chatapimodels.SendMessage{Text: "hi"})
		require.ErrorIs(t, err, ErrNotParticipant)
	})
	t.Run("create group check", func(t *testing.T) {
		group, err := handler.CreateGroup("7", chatapimodels.CreateGroup{
			Name:           "DevOps",
			ParticipantIDs: []string{"5", "7", "5", "6"},
		})
		require.NoError(t, err)
		require.Equal(t, models.ConversationGroup, group.Type)
		require.ElementsMatch(t, []string{"7", "5", "6"}, group.ParticipantIDs)
		require.Equal(t, []string{"7"}, group.AdminIDs)
		require.Nil(t, group.LastMessage)

		_, err = handler.CreateGroup("7", chatapimodels.CreateGroup{Name: "Ghosts", ParticipantIDs: []string{"missing"}})
		require.ErrorIs(t, err, ErrUserNotFound)
	})
	t.Run("direct check", func(t *testing.T) {
		conv, err := handler.GetOrCreateDirect("3", chatapimodels.DirectRequest{UserID: "2"})
		require.NoError(t, err)
		require.Equal(t, "conv-4", conv.ID)

		conv, err = handler.GetOrCreateDirect("3", chatapimodels.DirectRequest{UserID: "6"})
		require.NoError(t, err)
		require.Equal(t, models.ConversationDirect, conv.Type)
		require.ElementsMatch(t, []string{"3", "6"}, conv.ParticipantIDs)
		require.Empty(t, conv.AdminIDs)

		again, err := handler.GetOrCreateDirect("6", chatapimodels.DirectRequest{UserID: "3"})
		require.NoError(t, err)
		require.Equal(t, conv.ID, again.ID)

		_, err = handler.GetOrCreateDirect("3", chatapimodels.DirectRequest{UserID: "3"})
		require.ErrorIs(t, err, ErrSelfConversation)
	})
	t.Run("online check", func(t *testing.T) {
		require.True(t, handler.IsOnline("3").IsOnline)
		require.False(t, handler.IsOnline("2").IsOnline)
	})
}
