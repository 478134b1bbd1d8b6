package attendancehandler

import (
	"ets-backend/db"
	"ets-backend/lib/attendance/store"
	userstore "ets-backend/lib/users/store"
	initchecker "ets-backend/lib/utils/init-checker"
	"ets-backend/models"
	attendanceapimodels "ets-backend/models/api/attendance"
	dbmodels "ets-backend/models/db"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	ByDate(date string) (item attendanceapimodels.DayView, err error)
	ForUserByMonth(userID string, year, month int) (item attendanceapimodels.MonthView, err error)
	Mark(request attendanceapimodels.MarkRequest) (item attendanceapimodels.DayView, err error)
}

var Instance Provider

var (
	ErrInvalidMonth = models.BadRequest("month must be between 1 and 12")
	ErrUserNotFound = models.NotFound("user not found")
)

func NewHandler() {
	Instance = NewInstance(db.DB)
}

func NewInstance(DB *gorm.DB) Provider {
	instance := impl{
		store:     store.NewInstance(DB),
		userStore: userstore.NewInstance(DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"userStore", instance.userStore,
	)
	return instance
}

type impl struct {
	store     store.Provider
	userStore userstore.Provider
}

func (i impl) ByDate(date string) (item attendanceapimodels.DayView, err error) {
	if err = models.ValidateDate(date); err != nil || date == "" {
		return attendanceapimodels.DayView{}, models.BadRequest("date must be in YYYY-MM-DD format")
	}
	userIDs, err := i.store.UserIDsByDate(date)
	if err != nil {
		return attendanceapimodels.DayView{}, err
	}
	return attendanceapimodels.DayView{Date: date, UserIDs: userIDs}, nil
}

func (i impl) ForUserByMonth(userID string, year, month int) (item attendanceapimodels.MonthView, err error) {
	if month < 1 || month > 12 {
		return attendanceapimodels.MonthView{}, ErrInvalidMonth
	}
	dates, err := i.store.DatesByPrefix(userID, fmt.Sprintf("%04d-%02d-", year, month))
	if err != nil {
		return attendanceapimodels.MonthView{}, err
	}
	return attendanceapimodels.MonthView{
		UserID: userID,
		Year:   year,
		Month:  month,
		Dates:  dates,
	}, nil
}

func (i impl) Mark(request attendanceapimodels.MarkRequest) (item attendanceapimodels.DayView, err error) {
	if err = request.Validate(); err != nil {
		return attendanceapimodels.DayView{}, models.BadRequest(err.Error())
	}
	user, err := i.userStore.GetByID(request.UserID)
	if err != nil {
		return attendanceapimodels.DayView{}, err
	}
	if user == nil {
		return attendanceapimodels.DayView{}, ErrUserNotFound
	}
	err = i.store.Mark(dbmodels.Attendance{UserID: request.UserID, Date: request.Date})
	if err != nil {
		return attendanceapimodels.DayView{}, err
	}
	log.
		WithField("user_id", request.UserID).
		WithField("date", request.Date).
		Info("attendance marked")
	return i.ByDate(request.Date)
}
