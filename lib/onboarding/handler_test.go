package onboardinghandler

import (
	"bytes"
	"context"
	"ets-backend/db/dbtest"
	"ets-backend/lib/mailer"
	"ets-backend/lib/onboarding/store"
	"ets-backend/models"
	onboardingapimodels "ets-backend/models/api/onboarding"
	dbmodels "ets-backend/models/db"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type storageStub struct {
	files map[string][]byte
}

func (s *storageStub) UploadFile(ctx context.Context, key string, fileReader io.Reader, fileSize int64, contentType string) error {
	body, err := io.ReadAll(fileReader)
	if err != nil {
		return err
	}
	s.files[key] = body
	return nil
}

func (s *storageStub) GetFile(ctx context.Context, key string) ([]byte, error) {
	body, ok := s.files[key]
	if !ok {
		return nil, errors.Errorf("no such key %s", key)
	}
	return body, nil
}

func (s *storageStub) MakeBucket(ctx context.Context) error {
	return nil
}

// notifications leave the request goroutine, so stubs signal every call on sent
type smtpStub struct {
	mu   sync.Mutex
	to   []string
	sent chan struct{}
}

func (s *smtpStub) SendEMail(from, to, message, subject string) error {
	s.mu.Lock()
	s.to = append(s.to, to)
	s.mu.Unlock()
	s.sent <- struct{}{}
	return nil
}

type mailerStub struct {
	mu          sync.Mutex
	to          []string
	attachments []mailer.Attachment
	sent        chan struct{}
}

func (m *mailerStub) Send(to, subject, body string, attachments ...mailer.Attachment) error {
	m.mu.Lock()
	m.to = append(m.to, to)
	m.attachments = append(m.attachments, attachments...)
	m.mu.Unlock()
	m.sent <- struct{}{}
	return nil
}

type notifierStub struct {
	mu      sync.Mutex
	userIDs []string
	sent    chan struct{}
}

func (n *notifierStub) Notify(userID string, code models.EventCode, msg string, data any) error {
	n.mu.Lock()
	n.userIDs = append(n.userIDs, userID)
	n.mu.Unlock()
	n.sent <- struct{}{}
	return nil
}

func waitSent(t *testing.T, sent chan struct{}) {
	select {
	case <-sent:
	case <-time.After(5 * time.Second):
		require.FailNow(t, "notification was not sent")
	}
}

// racingStore lets another HR user start the submission right before the wrapped Start runs.
type racingStore struct {
	store.Provider
	db *gorm.DB
}

func (s racingStore) Start(id string, steps []dbmodels.OnboardingStep) error {
	err := s.db.
		Model(&dbmodels.OnboardingSubmission{}).
		Where("id = ?", id).
		Update("status", models.OnboardingInProgress).
		Error
	if err != nil {
		return err
	}
	return s.Provider.Start(id, steps)
}

func newTestHandler(t *testing.T) (Provider, *smtpStub, *mailerStub, *notifierStub) {
	smtpClient := &smtpStub{sent: make(chan struct{}, 8)}
	mail := &mailerStub{sent: make(chan struct{}, 8)}
	notifier := &notifierStub{sent: make(chan struct{}, 8)}
	handler := NewInstance(dbtest.NewSeeded(t), Deps{
		Storage:  &storageStub{files: map[string][]byte{}},
		Notifier: notifier,
		Smtp:     smtpClient,
		Mailer:   mail,
		Mail:     MailSettings{Sender: "no-reply@ets.local", HRAddress: "hr@test.com"},
	})
	return handler, smtpClient, mail, notifier
}

func validSubmission() onboardingapimodels.SubmissionData {
	return onboardingapimodels.SubmissionData{
		Email:          "jane.doe@university.edu",
		FullName:       "Jane Doe",
		DateOfBirth:    "2002-11-03",
		Gender:         models.GenderFemale,
		GradYear:       2025,
		WorkTime:       "09:30",
		MeetingTime:    "15:00",
		Declaration:    true,
		LanguagesKnown: []string{"English"},
	}
}

func TestOnboardingLifecycle(t *testing.T) {
	handler, _, mail, _ := newTestHandler(t)

	t.Run("seeded submission check", func(t *testing.T) {
		sub, err := handler.Get("sub-1")
		require.NoError(t, err)
		require.Equal(t, "Alex Ray", sub.FullName)
		require.Equal(t, models.OnboardingPendingReview, sub.Status)
		require.Empty(t, sub.Steps)
	})
	t.Run("complete before start check", func(t *testing.T) {
		_, err := handler.CompleteStep("sub-1", "any", "8")
		require.ErrorIs(t, err, ErrOnboardingNotStarted)
	})
	t.Run("start check", func(t *testing.T) {
		sub, err := handler.Start("sub-1", "8")
		require.NoError(t, err)
		require.Equal(t, models.OnboardingInProgress, sub.Status)
		require.Len(t, sub.Steps, 7)
		for idx, step := range sub.Steps {
			require.Equal(t, models.DefaultOnboardingSteps[idx], step.Name)
			require.Equal(t, models.StepPending, step.Status)
			require.Empty(t, step.CompletedBy)
			require.Nil(t, step.CompletedAt)
		}

		_, err = handler.Start("sub-1", "8")
		require.ErrorIs(t, err, ErrOnboardingAlreadyStarted)
	})
	t.Run("complete steps check", func(t *testing.T) {
		sub, err := handler.Get("sub-1")
		require.NoError(t, err)
		first := sub.Steps[0].ID

		sub, err = handler.CompleteStep("sub-1", first, "8")
		require.NoError(t, err)
		require.Equal(t, models.StepCompleted, sub.Steps[0].Status)
		require.Equal(t, "8", sub.Steps[0].CompletedBy)
		require.NotNil(t, sub.Steps[0].CompletedAt)
		require.Equal(t, models.OnboardingInProgress, sub.Status)

		// repeated completion keeps the original author
		sub, err = handler.CompleteStep("sub-1", first, "1")
		require.NoError(t, err)
		require.Equal(t, "8", sub.Steps[0].CompletedBy)

		_, err = handler.CompleteStep("sub-1", "missing", "8")
		require.ErrorIs(t, err, ErrStepNotFound)

		for _, step := range sub.Steps[1:] {
			require.Equal(t, models.OnboardingInProgress, sub.Status)
			sub, err = handler.CompleteStep("sub-1", step.ID, "8")
			require.NoError(t, err)
		}
		require.Equal(t, models.OnboardingCompleted, sub.Status)
		for _, step := range sub.Steps {
			require.Equal(t, models.StepCompleted, step.Status)
		}
		waitSent(t, mail.sent)
		mail.mu.Lock()
		defer mail.mu.Unlock()
		require.Equal(t, []string{"new.intern@university.edu"}, mail.to)
		require.Len(t, mail.attachments, 1)
		require.True(t, bytes.HasPrefix(mail.attachments[0].Body, []byte("%PDF-")))
	})
	t.Run("missing submission check", func(t *testing.T) {
		_, err := handler.Start("missing", "8")
		require.ErrorIs(t, err, ErrSubmissionNotFound)
	})
}

func TestOnboardingConcurrentStart(t *testing.T) {
	tx := dbtest.NewSeeded(t)
	handler := NewInstance(tx, Deps{Storage: &storageStub{files: map[string][]byte{}}}).(impl)
	handler.store = racingStore{Provider: handler.store, db: tx}

	t.Run("lost start race check", func(t *testing.T) {
		_, err := handler.Start("sub-1", "8")
		require.ErrorIs(t, err, ErrOnboardingAlreadyStarted)
		require.ErrorIs(t, err, models.ErrBadRequest)

		sub, err := handler.Get("sub-1")
		require.NoError(t, err)
		require.Equal(t, models.OnboardingInProgress, sub.Status)
		require.Empty(t, sub.Steps)
	})
	t.Run("store guard check", func(t *testing.T) {
		err := store.NewInstance(tx).Start("sub-1", nil)
		require.ErrorIs(t, err, store.ErrNotPendingReview)
		require.ErrorIs(t, err, models.ErrBadRequest)
	})
}

func TestOnboardingSubmit(t *testing.T) {
	handler, smtpClient, _, notifier := newTestHandler(t)

	t.Run("submit check", func(t *testing.T) {
		sub, err := handler.Submit(validSubmission())
		require.NoError(t, err)
		require.NotEmpty(t, sub.ID)
		require.Equal(t, models.OnboardingPendingReview, sub.Status)
		require.Empty(t, sub.Steps)
		require.False(t, sub.SubmissionDate.IsZero())
		waitSent(t, smtpClient.sent)
		waitSent(t, notifier.sent)
		require.Equal(t, []string{"hr@test.com"}, smtpClient.to)
		require.Equal(t, []string{"8"}, notifier.userIDs)

		list, err := handler.List(onboardingapimodels.SubmissionFilter{})
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, sub.ID, list[0].ID)

		list, err = handler.List(onboardingapimodels.SubmissionFilter{Status: models.OnboardingInProgress})
		require.NoError(t, err)
		require.Empty(t, list)
	})
	t.Run("validation check", func(t *testing.T) {
		request := validSubmission()
		request.Declaration = false
		_, err := handler.Submit(request)
		require.ErrorIs(t, err, models.ErrBadRequest)

		request = validSubmission()
		request.Email = "not-an-email"
		_, err = handler.Submit(request)
		require.ErrorIs(t, err, models.ErrBadRequest)

		request = validSubmission()
		request.WorkTime = "9am"
		_, err = handler.Submit(request)
		require.ErrorIs(t, err, models.ErrBadRequest)
	})
	t.Run("document check", func(t *testing.T) {
		ctx := context.Background()
		content := "fake transcript"
		sub, err := handler.UploadDocument(ctx, "sub-1", onboardingapimodels.DocumentCollegeCertificates,
			"Transcript.PDF", strings.NewReader(content), int64(len(content)))
		require.NoError(t, err)
		require.Equal(t, "onboarding/sub-1/college_certificates.pdf", sub.CollegeCertificates)

		file, err := handler.GetDocument(ctx, "sub-1", onboardingapimodels.DocumentCollegeCertificates)
		require.NoError(t, err)
		require.Equal(t, content, string(file.Body))
		require.Equal(t, "college_certificates.pdf", file.FileName)

		_, err = handler.UploadDocument(ctx, "sub-1", "resume", "cv.pdf", strings.NewReader(content), int64(len(content)))
		require.ErrorIs(t, err, ErrUnknownDocument)
	})
	t.Run("export check", func(t *testing.T) {
		buf, err := handler.Export(onboardingapimodels.SubmissionFilter{})
		require.NoError(t, err)
		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Onboarding")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		require.Equal(t, "Full name", rows[0][1])
	})
	t.Run("summary check", func(t *testing.T) {
		pdfFile, err := handler.SummaryPDF(context.Background(), "sub-1")
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(pdfFile, []byte("%PDF-")))
	})
}
