package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/vishalpatil-45/Adventour/domain"
	"github.com/vishalpatil-45/Adventour/dto"
	"github.com/vishalpatil-45/Adventour/mailer"
	"github.com/vishalpatil-45/Adventour/repositories"
	"github.com/vishalpatil-45/Adventour/utils"
)

// InboxService handles the newsletter and contact forms
type InboxService interface {
	Subscribe(ctx context.Context, req dto.NewsletterRequest) error
	Contact(ctx context.Context, req dto.ContactRequest) error
}

type inboxService struct {
	repo     repositories.InboxRepository
	notifier mailer.Notifier
	mailbox  string
	now      func() time.Time
}

// NewInboxService creates an InboxService. repo may be nil when no document
// store is configured; the mails are still sent. mailbox receives the
// contact form messages.
func NewInboxService(repo repositories.InboxRepository, notifier mailer.Notifier, mailbox string) InboxService {
	return &inboxService{repo: repo, notifier: notifier, mailbox: mailbox, now: time.Now}
}

func (s *inboxService) Subscribe(ctx context.Context, req dto.NewsletterRequest) error {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return invalidf("Email is required")
	}
	if !utils.IsValidEmail(email) {
		return invalidf("Please enter a valid email address")
	}
	return s.subscribe(ctx, email)
}

func (s *inboxService) subscribe(ctx context.Context, email string) error {
	if s.repo != nil {
		sub := domain.Subscription{Email: strings.ToLower(email), SubscribedAt: s.now().UTC()}
		if err := s.repo.Subscribe(ctx, sub); err != nil {
			return err
		}
	}

	msg, err := mailer.NewsletterWelcome(email)
	if err != nil {
		return err
	}
	if err := s.notifier.Deliver(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}
	log.WithField("email", email).Info("newsletter subscription")
	return nil
}

// Contact stores the message and forwards it to the site mailbox. Ticking
// the newsletter box also subscribes the sender.
func (s *inboxService) Contact(ctx context.Context, req dto.ContactRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.TrimSpace(req.FirstName + " " + req.LastName)
	}
	email := strings.TrimSpace(req.Email)
	subject := strings.TrimSpace(req.Subject)
	message := strings.TrimSpace(req.Message)

	if name == "" || email == "" || subject == "" || message == "" {
		return invalidf("All fields are required")
	}
	if !utils.IsValidEmail(email) {
		return invalidf("Please enter a valid email address")
	}
	phone := strings.TrimSpace(req.Phone)
	if phone != "" && !utils.IsValidPhone(phone) {
		return invalidf("Please enter a valid phone number")
	}

	if s.repo != nil {
		err := s.repo.SaveContactMessage(ctx, &domain.ContactMessage{
			Name:       name,
			Email:      email,
			Phone:      phone,
			Subject:    subject,
			Message:    message,
			Newsletter: req.Newsletter,
			ReceivedAt: s.now().UTC(),
		})
		if err != nil {
			return err
		}
	}

	msg, err := mailer.ContactNotification(s.mailbox, mailer.ContactMail{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Subject: subject,
		Message: message,
	})
	if err != nil {
		return err
	}
	if err := s.notifier.Deliver(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}

	if req.Newsletter {
		if err := s.subscribe(ctx, email); err != nil {
			// the message itself went through
			log.WithError(err).WithField("email", email).Warn("newsletter opt-in from contact form failed")
		}
	}
	return nil
}
