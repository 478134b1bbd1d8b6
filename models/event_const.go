package models

type EventCode string

const (
	ChatMessageEvent         EventCode = "CHAT_MESSAGE"
	ChatGroupCreatedEvent    EventCode = "CHAT_GROUP_CREATED"
	TaskDependencyEvent      EventCode = "TASK_DEPENDENCY"
	OnboardingSubmittedEvent EventCode = "ONBOARDING_SUBMITTED"
)
