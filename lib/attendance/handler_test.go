package attendancehandler

import (
	"ets-backend/db/dbtest"
	"ets-backend/models"
	attendanceapimodels "ets-backend/models/api/attendance"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAttendance(t *testing.T) {
	handler := NewInstance(dbtest.NewSeeded(t))
	now := time.Now()
	day := func(d int) string {
		return time.Date(now.Year(), now.Month(), d, 0, 0, 0, 0, time.UTC).Format(models.DateLayout)
	}

	t.Run("by date check", func(t *testing.T) {
		item, err := handler.ByDate(day(1))
		require.NoError(t, err)
		require.Equal(t, []string{"3", "4", "5", "6"}, item.UserIDs)

		item, err = handler.ByDate(day(6))
		require.NoError(t, err)
		require.Empty(t, item.UserIDs)

		_, err = handler.ByDate("06/01/2025")
		require.ErrorIs(t, err, models.ErrBadRequest)
	})
	t.Run("by month check", func(t *testing.T) {
		item, err := handler.ForUserByMonth("7", now.Year(), int(now.Month()))
		require.NoError(t, err)
		require.Equal(t, []string{day(2), day(3), day(5), day(9), day(10), day(12), day(16), day(17), day(19)}, item.Dates)

		prev := now.AddDate(0, -1, 0)
		item, err = handler.ForUserByMonth("7", prev.Year(), int(prev.Month()))
		require.NoError(t, err)
		require.Empty(t, item.Dates)

		_, err = handler.ForUserByMonth("7", now.Year(), 13)
		require.ErrorIs(t, err, ErrInvalidMonth)
	})
	t.Run("mark check", func(t *testing.T) {
		item, err := handler.Mark(attendanceapimodels.MarkRequest{UserID: "8", Date: day(6)})
		require.NoError(t, err)
		require.Equal(t, []string{"8"}, item.UserIDs)

		item, err = handler.Mark(attendanceapimodels.MarkRequest{UserID: "8", Date: day(6)})
		require.NoError(t, err)
		require.Equal(t, []string{"8"}, item.UserIDs)

		_, err = handler.Mark(attendanceapimodels.MarkRequest{UserID: "missing", Date: day(6)})
		require.ErrorIs(t, err, ErrUserNotFound)
		_, err = handler.Mark(attendanceapimodels.MarkRequest{UserID: "8"})
		require.ErrorIs(t, err, models.ErrBadRequest)
	})
}
