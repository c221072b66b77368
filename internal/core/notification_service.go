package core

import (
	"context"
	"fmt"
	"log"

	"github.com/warsonwoods/jobs-backend/internal/db"
	"github.com/warsonwoods/jobs-backend/internal/models"
	"github.com/warsonwoods/jobs-backend/internal/push"
	"github.com/warsonwoods/jobs-backend/pkg/mailer"
)

const notificationIcon = "/logo192.png"

// notificationService implements the NotificationService interface.
// Push goes to every device token registered for the recipient; an email
// is sent on award when a mailer is configured. Every delivery is
// best-effort: failures are logged and the triggering operation succeeds.
type notificationService struct {
	tokenRepo db.DeviceTokenRepository
	userRepo  db.UserRepository
	sender    push.Sender
	mail      mailer.Mailer
	isStale   func(error) bool
}

// NewNotificationService creates a new NotificationService instance.
// The mailer may be nil when SMTP is not configured.
func NewNotificationService(tokenRepo db.DeviceTokenRepository, userRepo db.UserRepository, sender push.Sender, mail mailer.Mailer) NotificationService {
	return &notificationService{
		tokenRepo: tokenRepo,
		userRepo:  userRepo,
		sender:    sender,
		mail:      mail,
		isStale:   push.IsUnregistered,
	}
}

// RegisterDevice stores an FCM registration token for the caller.
func (s *notificationService) RegisterDevice(ctx context.Context, userID, token string) error {
	if err := s.tokenRepo.Save(ctx, &models.DeviceToken{Token: token, UserID: userID}); err != nil {
		return fmt.Errorf("failed to register device for user '%s': %w", userID, err)
	}
	return nil
}

// NotifyJobAwarded tells the winning worker their application succeeded.
func (s *notificationService) NotifyJobAwarded(ctx context.Context, job *models.Job, workerID string) {
	title := "You got the job!"
	body := fmt.Sprintf("You have been awarded %q.", job.Title)
	s.pushToUser(ctx, workerID, title, body)

	if s.mail == nil {
		return
	}
	worker, err := s.userRepo.GetByID(ctx, workerID)
	if err != nil {
		log.Printf("NotifyJobAwarded: could not load worker '%s' for email: %v", workerID, err)
		return
	}
	if err := s.mail.Send(worker.Email, title, body); err != nil {
		log.Printf("NotifyJobAwarded: email to '%s' failed: %v", worker.Email, err)
	}
}

// NotifyNewApplicant tells the posting parent someone applied.
func (s *notificationService) NotifyNewApplicant(ctx context.Context, job *models.Job, workerID string) {
	body := fmt.Sprintf("A worker applied for %q.", job.Title)
	if worker, err := s.userRepo.GetByID(ctx, workerID); err == nil {
		body = fmt.Sprintf("%s applied for %q.", worker.Name, job.Title)
	}
	s.pushToUser(ctx, job.ParentID, "New applicant", body)
}

func (s *notificationService) pushToUser(ctx context.Context, userID, title, body string) {
	tokens, err := s.tokenRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("pushToUser: failed to list device tokens for user '%s': %v", userID, err)
		return
	}
	for _, token := range tokens {
		err := s.sender.Send(ctx, token, push.Notification{
			Title: title,
			Body:  body,
			Icon:  notificationIcon,
		})
		if err == nil {
			continue
		}
		if s.isStale(err) {
			// Stale token; drop it so we stop retrying a dead browser.
			if delErr := s.tokenRepo.Delete(ctx, token); delErr != nil {
				log.Printf("pushToUser: failed to delete stale token: %v", delErr)
			}
			continue
		}
		log.Printf("pushToUser: push to user '%s' failed: %v", userID, err)
	}
}
