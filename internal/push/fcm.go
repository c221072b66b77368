// Package push wraps the FCM web push integration.
package push

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
)

// Notification is the payload shape rendered by the web client: the
// foreground handler and the background service worker both read
// {notification: {title, body, icon}}.
type Notification struct {
	Title string
	Body  string
	Icon  string
}

// Sender delivers one push notification to one device token.
type Sender interface {
	Send(ctx context.Context, token string, n Notification) error
}

// FCMSender implements Sender over the Firebase Cloud Messaging client.
type FCMSender struct {
	client *messaging.Client
}

// NewFCMSender creates a new FCMSender.
func NewFCMSender(client *messaging.Client) *FCMSender {
	return &FCMSender{client: client}
}

// Send delivers a web push message to a single registration token.
func (f *FCMSender) Send(ctx context.Context, token string, n Notification) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title: n.Title,
				Body:  n.Body,
				Icon:  n.Icon,
			},
		},
	}
	if _, err := f.client.Send(ctx, msg); err != nil {
		return fmt.Errorf("fcm send failed: %w", err)
	}
	return nil
}

// IsUnregistered reports whether the send error means the token is stale
// and should be dropped from the registry.
func IsUnregistered(err error) bool {
	return messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err)
}
