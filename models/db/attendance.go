package dbmodels

type Attendance struct {
	BaseModel
	UserID string `gorm:"type:varchar(36);uniqueIndex:idx_attendance_user_date"`
	Date   string `gorm:"type:varchar(10);uniqueIndex:idx_attendance_user_date;index"`
}
