package dbmodels

import (
	"ets-backend/models"
	"time"
)

type OnboardingSubmission struct {
	BaseModel
	SubmissionDate      time.Time     `gorm:"index"`
	Email               string        `gorm:"type:varchar(255);index"`
	FullName            string        `gorm:"type:varchar(255)"`
	GuardianName        string        `gorm:"type:varchar(255)"`
	DateOfBirth         string        `gorm:"type:varchar(10)"`
	Gender              models.Gender `gorm:"type:varchar(10)"`
	Phone               string        `gorm:"type:varchar(50)"`
	AltPhone            string        `gorm:"type:varchar(50)"`
	Address             string
	AddressProof        string
	GovtID              string `gorm:"type:varchar(100)"`
	CollegeName         string `gorm:"type:varchar(255)"`
	GradYear            int
	Cgpa                string `gorm:"type:varchar(50)"`
	CollegeCertificates string
	CollegeID           string
	Photo               string
	Signature           string `gorm:"type:varchar(255)"`
	WorkTime            string `gorm:"type:varchar(5)"`
	MeetingTime         string `gorm:"type:varchar(5)"`
	Declaration         bool
	LanguagesKnown      StringList
	Status              models.OnboardingStatus `gorm:"type:varchar(20);index"`
	Steps               []OnboardingStep        `gorm:"foreignKey:SubmissionID"`
}

type OnboardingStep struct {
	BaseModel
	SubmissionID string `gorm:"type:varchar(36);index"`
	Position     int
	Name         string                      `gorm:"type:varchar(255)"`
	Status       models.OnboardingStepStatus `gorm:"type:varchar(20)"`
	CompletedBy  *string                     `gorm:"type:varchar(36)"`
	CompletedAt  *time.Time
}
