package notification

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
)

// DeliveryJobArgs is the payload of a notification delivery job. Delivery is
// decoupled from creation: the row is written transactionally and the job
// pushes it to out-of-app channels afterwards.
type DeliveryJobArgs struct {
	// NotificationID identifies the notification row to deliver.
	NotificationID uuid.UUID `json:"notificationId"`
}

// Kind returns the River job kind used to register and dispatch the delivery
// worker.
func (args DeliveryJobArgs) Kind() string { return "DeliverNotificationJob" }

// InsertOpts caps retries; an undeliverable notification stays readable
// in-app.
func (args DeliveryJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 5,
	}
}
