package pdfexport

import (
	"bytes"
	"ets-backend/models"
	dbmodels "ets-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateSubmissionSummary(t *testing.T) {
	completedAt := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	completedBy := "8"
	sub := dbmodels.OnboardingSubmission{
		SubmissionDate: time.Date(2025, 7, 28, 9, 0, 0, 0, time.UTC),
		Email:          "new.intern@university.edu",
		FullName:       "Alex Ray",
		Gender:         models.GenderMale,
		GradYear:       2026,
		Signature:      "Alex Ray",
		LanguagesKnown: dbmodels.NewStringList([]string{"English", "Hindi"}),
		Status:         models.OnboardingInProgress,
		Steps: []dbmodels.OnboardingStep{
			{Name: "Review Application", Status: models.StepCompleted, CompletedBy: &completedBy, CompletedAt: &completedAt},
			{Name: "Verify Documents", Status: models.StepPending},
		},
	}

	t.Run("summary check", func(t *testing.T) {
		pdfFile, err := GenerateSubmissionSummary(sub, nil)
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(pdfFile, []byte("%PDF-")))
	})
	t.Run("image type check", func(t *testing.T) {
		imgType, err := GetImgType("profile_pic.PNG")
		require.NoError(t, err)
		require.Equal(t, "png", imgType)

		_, err = GetImgType("photo")
		require.Error(t, err)
	})
	t.Run("bad photo check", func(t *testing.T) {
		_, err := GenerateSubmissionSummary(sub, &models.File{FileName: "photo.png", Body: []byte("not a png")})
		require.Error(t, err)
	})
}
