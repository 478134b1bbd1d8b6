package onboardinghandler

import (
	"bytes"
	"context"
	"ets-backend/config"
	"ets-backend/db"
	pdfexport "ets-backend/lib/export/pdf"
	xlsexport "ets-backend/lib/export/xls"
	filestorage "ets-backend/lib/file-storage"
	"ets-backend/lib/mailer"
	"ets-backend/lib/onboarding/store"
	"ets-backend/lib/smtp"
	userstore "ets-backend/lib/users/store"
	initchecker "ets-backend/lib/utils/init-checker"
	connectionhub "ets-backend/lib/ws/hub/connection-hub"
	"ets-backend/models"
	onboardingapimodels "ets-backend/models/api/onboarding"
	userapimodels "ets-backend/models/api/user"
	dbmodels "ets-backend/models/db"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	// Submit stores a new application in Pending Review without steps.
	Submit(request onboardingapimodels.SubmissionData) (item onboardingapimodels.SubmissionView, err error)
	List(filter onboardingapimodels.SubmissionFilter) (list []onboardingapimodels.SubmissionView, err error)
	Get(id string) (item onboardingapimodels.SubmissionView, err error)
	Start(id, userID string) (item onboardingapimodels.SubmissionView, err error)
	CompleteStep(id, stepID, userID string) (item onboardingapimodels.SubmissionView, err error)
	UploadDocument(ctx context.Context, id string, kind onboardingapimodels.DocumentKind, fileName string, file io.Reader, fileSize int64) (item onboardingapimodels.SubmissionView, err error)
	GetDocument(ctx context.Context, id string, kind onboardingapimodels.DocumentKind) (file models.File, err error)
	Export(filter onboardingapimodels.SubmissionFilter) (*bytes.Buffer, error)
	SummaryPDF(ctx context.Context, id string) ([]byte, error)
}

// Notifier delivers an event to a user.
type Notifier interface {
	Notify(userID string, code models.EventCode, msg string, data any) error
}

type MailSettings struct {
	Sender    string
	HRAddress string
}

var Instance Provider

var (
	ErrSubmissionNotFound       = models.NotFound("onboarding submission not found")
	ErrOnboardingAlreadyStarted = models.BadRequest("onboarding has already been started")
	ErrOnboardingNotStarted     = models.BadRequest("onboarding has not been started")
	ErrStepNotFound             = models.NotFound("onboarding step not found")
	ErrUnknownDocument          = models.BadRequest("unknown document kind")
	ErrDocumentNotFound         = models.NotFound("document not uploaded")
)

func NewHandler() {
	Instance = NewInstance(db.DB, Deps{
		Storage:  filestorage.Instance,
		Notifier: connectionhub.Instance,
		Smtp:     smtp.Instance,
		Mailer:   mailer.Instance,
		Mail: MailSettings{
			Sender:    config.Conf.Smtp.Sender,
			HRAddress: config.Conf.Smtp.HRAddress,
		},
	})
}

type Deps struct {
	Storage  filestorage.Provider
	Notifier Notifier
	Smtp     smtp.Provider
	Mailer   mailer.Provider
	Mail     MailSettings
}

func NewInstance(DB *gorm.DB, deps Deps) Provider {
	instance := impl{
		store:     store.NewInstance(DB),
		userStore: userstore.NewInstance(DB),
		exporter:  xlsexport.NewInstance(),
		deps:      deps,
		now:       time.Now,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"userStore", instance.userStore,
		"storage", deps.Storage,
	)
	return instance
}

type impl struct {
	store     store.Provider
	userStore userstore.Provider
	exporter  xlsexport.Provider
	deps      Deps
	now       func() time.Time
}

func (i impl) Submit(request onboardingapimodels.SubmissionData) (item onboardingapimodels.SubmissionView, err error) {
	if err = request.Validate(); err != nil {
		return onboardingapimodels.SubmissionView{}, models.BadRequest(err.Error())
	}
	rec := request.ToDbModel()
	rec.SubmissionDate = i.now()
	rec.Status = models.OnboardingPendingReview
	id, err := i.store.Create(rec)
	if err != nil {
		return onboardingapimodels.SubmissionView{}, err
	}
	logger := log.
		WithField("submission_id", id).
		WithField("email", rec.Email)
	logger.Info("onboarding form submitted")
	item, err = i.Get(id)
	if err != nil {
		return onboardingapimodels.SubmissionView{}, err
	}
	go i.notifyHR(logger, item)
	return item, nil
}

func (i impl) List(filter onboardingapimodels.SubmissionFilter) (list []onboardingapimodels.SubmissionView, err error) {
	recList, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]onboardingapimodels.SubmissionView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, onboardingapimodels.SubmissionConvert(rec))
	}
	return result, nil
}

func (i impl) Get(id string) (item onboardingapimodels.SubmissionView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return onboardingapimodels.SubmissionView{}, err
	}
	return onboardingapimodels.SubmissionConvert(*rec), nil
}

func (i impl) Start(id, userID string) (item onboardingapimodels.SubmissionView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return onboardingapimodels.SubmissionView{}, err
	}
	steps, err := startSteps(*rec)
	if err != nil {
		return onboardingapimodels.SubmissionView{}, err
	}
	err = i.store.Start(id, steps)
	if err != nil {
		if errors.Is(err, store.ErrNotPendingReview) {
			return onboardingapimodels.SubmissionView{}, ErrOnboardingAlreadyStarted
		}
		return onboardingapimodels.SubmissionView{}, err
	}
	log.
		WithField("submission_id", id).
		WithField("user_id", userID).
		Info("onboarding started")
	return i.Get(id)
}

func (i impl) CompleteStep(id, stepID, userID string) (item onboardingapimodels.SubmissionView, err error) {
	logger := log.
		WithField("submission_id", id).
		WithField("step_id", stepID).
		WithField("user_id", userID)
	rec, err := i.getRec(id)
	if err != nil {
		return onboardingapimodels.SubmissionView{}, err
	}
	result, err := completeStep(*rec, stepID, userID, i.now())
	if err != nil {
		return onboardingapimodels.SubmissionView{}, err
	}
	if !result.changed {
		logger.Debug("onboarding step already completed")
		return onboardingapimodels.SubmissionConvert(*rec), nil
	}
	err = i.store.SaveStep(result.step, result.status)
	if err != nil {
		return onboardingapimodels.SubmissionView{}, err
	}
	logger.Info("onboarding step completed")
	item, err = i.Get(id)
	if err != nil {
		return onboardingapimodels.SubmissionView{}, err
	}
	if result.status == models.OnboardingCompleted && rec.Status != models.OnboardingCompleted {
		logger.Info("onboarding completed")
		go i.sendCompletionMail(logger, id)
	}
	return item, nil
}

func (i impl) UploadDocument(ctx context.Context, id string, kind onboardingapimodels.DocumentKind, fileName string, file io.Reader, fileSize int64) (item onboardingapimodels.SubmissionView, err error) {
	if !kind.IsValid() {
		return onboardingapimodels.SubmissionView{}, ErrUnknownDocument
	}
	if _, err = i.getRec(id); err != nil {
		return onboardingapimodels.SubmissionView{}, err
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	key := fmt.Sprintf("onboarding/%s/%s%s", id, kind, ext)
	err = i.deps.Storage.UploadFile(ctx, key, file, fileSize, mime.TypeByExtension(ext))
	if err != nil {
		return onboardingapimodels.SubmissionView{}, err
	}
	err = i.store.Update(id, map[string]interface{}{string(kind): key})
	if err != nil {
		return onboardingapimodels.SubmissionView{}, err
	}
	log.
		WithField("submission_id", id).
		WithField("document", kind).
		WithField("key", key).
		Info("onboarding document uploaded")
	return i.Get(id)
}

func (i impl) GetDocument(ctx context.Context, id string, kind onboardingapimodels.DocumentKind) (file models.File, err error) {
	if !kind.IsValid() {
		return models.File{}, ErrUnknownDocument
	}
	rec, err := i.getRec(id)
	if err != nil {
		return models.File{}, err
	}
	key := documentKey(*rec, kind)
	if key == "" {
		return models.File{}, ErrDocumentNotFound
	}
	body, err := i.deps.Storage.GetFile(ctx, key)
	if err != nil {
		return models.File{}, err
	}
	return models.File{
		FileName:    filepath.Base(key),
		ContentType: mime.TypeByExtension(filepath.Ext(key)),
		Body:        body,
	}, nil
}

func (i impl) Export(filter onboardingapimodels.SubmissionFilter) (*bytes.Buffer, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	return i.exporter.ExportSubmissionList(list)
}

func (i impl) SummaryPDF(ctx context.Context, id string) ([]byte, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return nil, err
	}
	return i.summary(ctx, *rec)
}

func (i impl) summary(ctx context.Context, rec dbmodels.OnboardingSubmission) ([]byte, error) {
	var photo *models.File
	if rec.Photo != "" {
		body, err := i.deps.Storage.GetFile(ctx, rec.Photo)
		if err != nil {
			// the summary is still useful without the picture
			log.
				WithError(err).
				WithField("submission_id", rec.ID).
				Debug("photo not available for summary")
		} else {
			photo = &models.File{FileName: rec.Photo, Body: body}
		}
	}
	pdfFile, err := pdfexport.GenerateSubmissionSummary(rec, photo)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render submission summary")
	}
	return pdfFile, nil
}

func (i impl) getRec(id string) (*dbmodels.OnboardingSubmission, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrSubmissionNotFound
	}
	return rec, nil
}

func (i impl) notifyHR(logger *log.Entry, item onboardingapimodels.SubmissionView) {
	msg := fmt.Sprintf("New onboarding submission from %s (%s)", item.FullName, item.Email)
	if i.deps.Smtp != nil && i.deps.Mail.HRAddress != "" {
		err := i.deps.Smtp.SendEMail(i.deps.Mail.Sender, i.deps.Mail.HRAddress, msg, "New onboarding submission")
		if err != nil {
			logger.WithError(err).Warn("hr email notification failed")
		}
	}
	if i.deps.Notifier == nil {
		return
	}
	hrUsers, err := i.userStore.List(userapimodels.UserFilter{Role: models.HRRole})
	if err != nil {
		logger.WithError(err).Warn("failed to load hr users for notification")
		return
	}
	for _, user := range hrUsers {
		err = i.deps.Notifier.Notify(user.ID, models.OnboardingSubmittedEvent, msg, item)
		if err != nil {
			logger.WithError(err).WithField("user_id", user.ID).Warn("hr notification failed")
		}
	}
}

func (i impl) sendCompletionMail(logger *log.Entry, id string) {
	if i.deps.Mailer == nil {
		return
	}
	rec, err := i.getRec(id)
	if err != nil {
		logger.WithError(err).Warn("completion email skipped")
		return
	}
	pdfFile, err := i.summary(context.Background(), *rec)
	if err != nil {
		logger.WithError(err).Warn("completion email skipped")
		return
	}
	body := fmt.Sprintf("Dear %s,\n\nyour onboarding is complete. Welcome aboard!\nThe summary of your application is attached.\n", rec.FullName)
	err = i.deps.Mailer.Send(rec.Email, "Onboarding completed", body, mailer.Attachment{
		FileName: "onboarding-summary.pdf",
		Body:     pdfFile,
	})
	if err != nil {
		logger.WithError(err).Warn("completion email failed")
	}
}

func documentKey(rec dbmodels.OnboardingSubmission, kind onboardingapimodels.DocumentKind) string {
	switch kind {
	case onboardingapimodels.DocumentAddressProof:
		return rec.AddressProof
	case onboardingapimodels.DocumentCollegeCertificates:
		return rec.CollegeCertificates
	case onboardingapimodels.DocumentCollegeID:
		return rec.CollegeID
	case onboardingapimodels.DocumentPhoto:
		return rec.Photo
	}
	return ""
}
