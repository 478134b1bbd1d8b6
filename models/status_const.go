package models

type TaskStatus string

const (
	TaskTodo       TaskStatus = "To-Do"
	TaskInProgress TaskStatus = "In Progress"
	TaskOnHold     TaskStatus = "On Hold"
	TaskCompleted  TaskStatus = "Completed"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskOnHold, TaskCompleted:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// empty priority is allowed
func (p Priority) IsValid() bool {
	switch p {
	case "", PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type DependencyAction string

const (
	DependencySet     DependencyAction = "set"
	DependencyCleared DependencyAction = "cleared"
)

type MilestoneStatus string

const (
	MilestonePending    MilestoneStatus = "Pending"
	MilestoneInProgress MilestoneStatus = "In Progress"
	MilestoneCompleted  MilestoneStatus = "Completed"
)

func (s MilestoneStatus) IsValid() bool {
	switch s {
	case MilestonePending, MilestoneInProgress, MilestoneCompleted:
		return true
	}
	return false
}

type OnboardingStatus string

const (
	OnboardingPendingReview OnboardingStatus = "Pending Review"
	OnboardingInProgress    OnboardingStatus = "In Progress"
	OnboardingCompleted     OnboardingStatus = "Completed"
)

type OnboardingStepStatus string

const (
	StepPending   OnboardingStepStatus = "Pending"
	StepCompleted OnboardingStepStatus = "Completed"
)

// DefaultOnboardingSteps is the checklist created when HR starts onboarding. Order matters.
var DefaultOnboardingSteps = []string{
	"Review Application",
	"Verify Documents",
	"Background Check",
	"Send Offer Letter",
	"Prepare Welcome Kit",
	"Assign Manager & Team",
	"Setup IT Accounts",
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type ConversationType string

const (
	ConversationDirect ConversationType = "direct"
	ConversationGroup  ConversationType = "group"
)
