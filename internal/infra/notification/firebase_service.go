package notification

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messageSender is the part of the FCM client the notifier uses.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseNotifier struct {
	client      messageSender
	topicPrefix string
}

// NewFirebaseNotifier creates a notifier that mirrors toasts to FCM topics
func NewFirebaseNotifier(ctx context.Context, projectID, credentialsPath, topicPrefix string) (service.Notifier, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return newFirebaseNotifier(client, topicPrefix), nil
}

func newFirebaseNotifier(client messageSender, topicPrefix string) *firebaseNotifier {
	return &firebaseNotifier{
		client:      client,
		topicPrefix: topicPrefix,
	}
}

// Notify publishes toast to the topic of its audience, narrowed to the recipient when set
func (s *firebaseNotifier) Notify(ctx context.Context, toast *entity.Toast) error {
	message := &messaging.Message{
		Topic: s.topic(toast),
		Notification: &messaging.Notification{
			Title: toast.Title,
			Body:  toast.Description,
		},
		Data: map[string]string{
			"toast_id": toast.ID.String(),
			"event":    toast.Event,
			"order_id": toast.OrderID.String(),
		},
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// topic builds "<prefix><audience>[-<recipient>]" using only characters FCM accepts.
func (s *firebaseNotifier) topic(toast *entity.Toast) string {
	topic := s.topicPrefix + string(toast.Audience)
	if !toast.RecipientID.IsZero() {
		topic += "-" + toast.RecipientID.String()
	}

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case strings.ContainsRune("-_.~%", r):
			return r
		default:
			return '_'
		}
	}, topic)
}
