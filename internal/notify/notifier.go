package notify

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
)

// Notification is a fire-and-forget "tell user X that Y happened" message.
// Delivery mechanics live in a collaborator service; callers never wait on
// or fail because of dispatch.
type Notification struct {
	UserID common.UUID
	Kind   string
	Title  string
	Body   string
	Data   map[string]string
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// LogNotifier is the default dispatcher: it records the notification in the
// service log so the delivery pipeline can be attached later without touching
// call sites.
type LogNotifier struct {
	logger *logrus.Logger
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, notification Notification) error {
	n.logger.WithFields(logrus.Fields{
		"user_id": notification.UserID.String(),
		"kind":    notification.Kind,
		"data":    notification.Data,
	}).Info(notification.Title)
	return nil
}
