package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationID uniquely identifies a notification.
type NotificationID uuid.UUID

// NotificationType classifies a notification.
type NotificationType string

const (
	NotificationTaskAssigned    NotificationType = "TASK_ASSIGNED"
	NotificationTaskSubmitted   NotificationType = "TASK_SUBMITTED"
	NotificationTaskReviewed    NotificationType = "TASK_REVIEWED"
	NotificationTaskReminder    NotificationType = "TASK_REMINDER"
	NotificationBonusAwarded    NotificationType = "BONUS_AWARDED"
	NotificationPenaltyApplied  NotificationType = "PENALTY_APPLIED"
	NotificationRewardRedeemed  NotificationType = "REWARD_REDEEMED"
	NotificationGroupInvitation NotificationType = "GROUP_INVITATION"
	NotificationMemberJoined    NotificationType = "MEMBER_JOINED"
	NotificationLevelUp         NotificationType = "LEVEL_UP"
	NotificationBadgeAwarded    NotificationType = "BADGE_AWARDED"
	NotificationAnnouncement    NotificationType = "SYSTEM_ANNOUNCEMENT"
)

// Notification is an in-app message for a user. Records are written in the
// same database transaction as the operation that triggered them; out-of-app
// delivery happens asynchronously via a background job.
type Notification struct {
	ID     NotificationID `json:"id"`
	UserID UserID         `json:"userId"`

	Type  NotificationType `json:"type"`
	Title string           `json:"title"`
	Body  string           `json:"body,omitempty"`

	// GroupID is set when the notification concerns a group.
	GroupID *GroupID `json:"groupId,omitempty"`

	// ReadAt marks when the user read the notification; zero means unread.
	ReadAt time.Time `json:"readAt,omitzero"`

	CreatedAt time.Time `json:"createdAt"`
}
