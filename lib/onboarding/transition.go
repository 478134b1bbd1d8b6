package onboardinghandler

import (
	"ets-backend/models"
	dbmodels "ets-backend/models/db"
	"time"
)

// startSteps builds the checklist for a submission that is still waiting for review.
func startSteps(rec dbmodels.OnboardingSubmission) ([]dbmodels.OnboardingStep, error) {
	if rec.Status != models.OnboardingPendingReview {
		return nil, ErrOnboardingAlreadyStarted
	}
	steps := make([]dbmodels.OnboardingStep, 0, len(models.DefaultOnboardingSteps))
	for idx, name := range models.DefaultOnboardingSteps {
		steps = append(steps, dbmodels.OnboardingStep{
			SubmissionID: rec.ID,
			Position:     idx,
			Name:         name,
			Status:       models.StepPending,
		})
	}
	return steps, nil
}

type stepCompletion struct {
	step   dbmodels.OnboardingStep
	status models.OnboardingStatus
	// changed is false when the step had been completed before
	changed bool
}

// completeStep marks one step done and recomputes the submission status.
func completeStep(rec dbmodels.OnboardingSubmission, stepID, userID string, now time.Time) (stepCompletion, error) {
	if rec.Status == models.OnboardingPendingReview {
		return stepCompletion{}, ErrOnboardingNotStarted
	}
	result := stepCompletion{status: rec.Status}
	found := false
	completed := 0
	for _, step := range rec.Steps {
		if step.ID == stepID {
			found = true
			if step.Status != models.StepCompleted {
				step.Status = models.StepCompleted
				step.CompletedBy = &userID
				step.CompletedAt = &now
				result.changed = true
			}
			result.step = step
		}
		if step.Status == models.StepCompleted {
			completed++
		}
	}
	if !found {
		return stepCompletion{}, ErrStepNotFound
	}
	if completed == len(rec.Steps) {
		result.status = models.OnboardingCompleted
	}
	return result, nil
}
