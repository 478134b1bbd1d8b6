package onboardingapimodels

import (
	"ets-backend/models"
	dbmodels "ets-backend/models/db"
	"net/mail"
	"time"

	"github.com/pkg/errors"
)

type SubmissionData struct {
	Email               string        `json:"email"`
	FullName            string        `json:"full_name"`
	GuardianName        string        `json:"guardian_name"`
	DateOfBirth         string        `json:"date_of_birth"` // YYYY-MM-DD
	Gender              models.Gender `json:"gender"`
	Phone               string        `json:"phone"`
	AltPhone            string        `json:"alt_phone"`
	Address             string        `json:"address"`
	AddressProof        string        `json:"address_proof"`
	GovtID              string        `json:"govt_id"`
	CollegeName         string        `json:"college_name"`
	GradYear            int           `json:"grad_year"`
	Cgpa                string        `json:"cgpa"`
	CollegeCertificates string        `json:"college_certificates"`
	CollegeID           string        `json:"college_id"`
	Photo               string        `json:"photo"`
	Signature           string        `json:"signature"`
	WorkTime            string        `json:"work_time"`    // HH:MM
	MeetingTime         string        `json:"meeting_time"` // HH:MM
	Declaration         bool          `json:"declaration"`
	LanguagesKnown      []string      `json:"languages_known"`
}

func (r SubmissionData) Validate() error {
	if r.FullName == "" {
		return errors.New("full name is required")
	}
	if r.Email == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("invalid email")
	}
	if !r.Gender.IsValid() {
		return errors.New("unknown gender")
	}
	if err := models.ValidateDate(r.DateOfBirth); err != nil {
		return errors.Wrap(err, "date of birth")
	}
	if err := validateClock(r.WorkTime); err != nil {
		return errors.Wrap(err, "work time")
	}
	if err := validateClock(r.MeetingTime); err != nil {
		return errors.Wrap(err, "meeting time")
	}
	if !r.Declaration {
		return errors.New("declaration must be accepted")
	}
	return nil
}

func validateClock(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse("15:04", value); err != nil {
		return errors.Errorf("invalid time %q, expected HH:MM", value)
	}
	return nil
}

func (r SubmissionData) ToDbModel() dbmodels.OnboardingSubmission {
	return dbmodels.OnboardingSubmission{
		Email:               r.Email,
		FullName:            r.FullName,
		GuardianName:        r.GuardianName,
		DateOfBirth:         r.DateOfBirth,
		Gender:              r.Gender,
		Phone:               r.Phone,
		AltPhone:            r.AltPhone,
		Address:             r.Address,
		AddressProof:        r.AddressProof,
		GovtID:              r.GovtID,
		CollegeName:         r.CollegeName,
		GradYear:            r.GradYear,
		Cgpa:                r.Cgpa,
		CollegeCertificates: r.CollegeCertificates,
		CollegeID:           r.CollegeID,
		Photo:               r.Photo,
		Signature:           r.Signature,
		WorkTime:            r.WorkTime,
		MeetingTime:         r.MeetingTime,
		Declaration:         r.Declaration,
		LanguagesKnown:      dbmodels.NewStringList(r.LanguagesKnown),
	}
}

type StepView struct {
	ID          string                      `json:"id"`
	Name        string                      `json:"name"`
	Status      models.OnboardingStepStatus `json:"status"`
	CompletedBy string                      `json:"completed_by,omitempty"`
	CompletedAt *time.Time                  `json:"completed_at,omitempty"`
}

type SubmissionView struct {
	SubmissionData
	ID             string                  `json:"id"`
	SubmissionDate time.Time               `json:"submission_date"`
	Status         models.OnboardingStatus `json:"status"`
	Steps          []StepView              `json:"steps,omitempty"`
}

func SubmissionConvert(rec dbmodels.OnboardingSubmission) SubmissionView {
	view := SubmissionView{
		SubmissionData: SubmissionData{
			Email:               rec.Email,
			FullName:            rec.FullName,
			GuardianName:        rec.GuardianName,
			DateOfBirth:         rec.DateOfBirth,
			Gender:              rec.Gender,
			Phone:               rec.Phone,
			AltPhone:            rec.AltPhone,
			Address:             rec.Address,
			AddressProof:        rec.AddressProof,
			GovtID:              rec.GovtID,
			CollegeName:         rec.CollegeName,
			GradYear:            rec.GradYear,
			Cgpa:                rec.Cgpa,
			CollegeCertificates: rec.CollegeCertificates,
			CollegeID:           rec.CollegeID,
			Photo:               rec.Photo,
			Signature:           rec.Signature,
			WorkTime:            rec.WorkTime,
			MeetingTime:         rec.MeetingTime,
			Declaration:         rec.Declaration,
			LanguagesKnown:      rec.LanguagesKnown.Data(),
		},
		ID:             rec.ID,
		SubmissionDate: rec.SubmissionDate,
		Status:         rec.Status,
	}
	for _, step := range rec.Steps {
		view.Steps = append(view.Steps, StepConvert(step))
	}
	return view
}

func StepConvert(rec dbmodels.OnboardingStep) StepView {
	view := StepView{
		ID:          rec.ID,
		Name:        rec.Name,
		Status:      rec.Status,
		CompletedAt: rec.CompletedAt,
	}
	if rec.CompletedBy != nil {
		view.CompletedBy = *rec.CompletedBy
	}
	return view
}

type SubmissionFilter struct {
	Status models.OnboardingStatus `json:"status"`
}

// DocumentKind names the submission field an uploaded file is attached to.
type DocumentKind string

const (
	DocumentAddressProof        DocumentKind = "address_proof"
	DocumentCollegeCertificates DocumentKind = "college_certificates"
	DocumentCollegeID           DocumentKind = "college_id"
	DocumentPhoto               DocumentKind = "photo"
)

func (k DocumentKind) IsValid() bool {
	switch k {
	case DocumentAddressProof, DocumentCollegeCertificates, DocumentCollegeID, DocumentPhoto:
		return true
	}
	return false
}
