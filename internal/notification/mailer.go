package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/mailersend/mailersend-go"
	"github.com/wb-go/wbf/logger"
	"github.com/youngicthub/CelebBooker/internal/domain"
)

const sendTimeout = 5 * time.Second

type MailNotifier struct {
	client    *mailersend.Mailersend
	fromName  string
	fromEmail string
	logger    logger.Logger
}

func NewMailNotifier(apiKey, fromName, fromEmail string, logger logger.Logger) *MailNotifier {
	if apiKey == "" {
		logger.Warn("mailersend api key is empty, email notifications disabled")
		return &MailNotifier{client: nil, logger: logger}
	}

	return &MailNotifier{
		client:    mailersend.NewMailersend(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
		logger:    logger,
	}
}

func (n *MailNotifier) NotifyActivation(ctx context.Context, to, activationURL, userName string) {
	subject := "Activate your account"
	text := fmt.Sprintf(
		"Welcome, %s!\n\nThanks for joining the celebrity booking platform. "+
			"Activate your account to start booking:\n\n%s\n",
		userName, activationURL,
	)
	n.send(ctx, to, subject, text)
}

func (n *MailNotifier) NotifyBookingSubmitted(ctx context.Context, user *domain.User, booking *domain.Booking) {
	subject := "Booking submitted"
	text := fmt.Sprintf(
		"Your booking with %s (%s) has been submitted and is pending admin approval.\n\n"+
			"Total: $%.2f\n",
		booking.CelebrityName, booking.PackageName, float64(booking.Amount)/100,
	)
	n.send(ctx, user.Email, subject, text)
}

func (n *MailNotifier) NotifyBookingReviewed(ctx context.Context, booking *domain.Booking) {
	subject := fmt.Sprintf("Booking %s", booking.Status)
	text := fmt.Sprintf(
		"Your booking with %s (%s) has been %s.",
		booking.CelebrityName, booking.PackageName, booking.Status,
	)
	if booking.AdminNotes != nil && *booking.AdminNotes != "" {
		text += fmt.Sprintf("\n\nNotes from our team: %s", *booking.AdminNotes)
	}
	n.send(ctx, booking.Contact.Email, subject, text)
}

func (n *MailNotifier) send(ctx context.Context, to, subject, text string) {
	if n.client == nil {
		n.logger.Debug("email skipped (mailer disabled)", logger.String("subject", subject))
		return
	}

	if to == "" {
		n.logger.Debug("email skipped (no recipient)", logger.String("subject", subject))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("email skipped (context cancelled)", logger.String("to", to))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	message := n.client.Email.NewMessage()
	message.SetFrom(mailersend.From{Name: n.fromName, Email: n.fromEmail})
	message.SetRecipients([]mailersend.Recipient{{Email: to}})
	message.SetSubject(subject)
	message.SetText(text)

	if _, err := n.client.Email.Send(ctx, message); err != nil {
		n.logger.Error("failed to send email",
			logger.String("to", to),
			logger.String("subject", subject),
			logger.String("error", err.Error()),
		)
	}
}
