package notification

import (
	"context"
	"fmt"

	"github.com/velikanov/walkbooker/internal/config"
	"github.com/velikanov/walkbooker/internal/domain"
	"github.com/wb-go/wbf/logger"
	gomail "gopkg.in/gomail.v2"
)

// EmailNotifier sends guest mail over SMTP. With no host configured it
// degrades to logging, same as a missing bot token disables the operator
// alerter.
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
	logger logger.Logger
}

func NewEmailNotifier(cfg config.SMTPConfig, logger logger.Logger) *EmailNotifier {
	if cfg.Host == "" {
		logger.Warn("smtp host is empty, guest notifications disabled")
		return &EmailNotifier{dialer: nil, logger: logger}
	}

	return &EmailNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

func (n *EmailNotifier) NotifyReservationConfirmed(ctx context.Context, res *domain.Reservation, walk *domain.Walk) {
	subject := fmt.Sprintf("Your seats for %s are confirmed", walk.Title)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation for %s on %s is confirmed for %d seat(s).\nMeeting point: %s\n\nSee you there!",
		res.HolderName, walk.Title, walk.WalkDate.Format("02 Jan 2006 15:04 MST"),
		res.PartySize, walk.Location,
	)
	n.send(ctx, res.HolderEmail, subject, body)
}

func (n *EmailNotifier) NotifyInvitationIssued(ctx context.Context, inv *domain.Invitation, walk *domain.Walk) {
	subject := fmt.Sprintf("You are invited: %s", walk.Title)
	body := fmt.Sprintf(
		"Hello,\n\nYou are invited to %s on %s (%d seat(s)).\n\n%s\n\nRedeem with code %s using this email address.",
		walk.Title, walk.WalkDate.Format("02 Jan 2006 15:04 MST"),
		inv.PartySize, inv.Message, inv.Code,
	)
	n.send(ctx, inv.Email, subject, body)
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, body string) {
	if n.dialer == nil {
		n.logger.Debug("email skipped (smtp disabled)", logger.String("to", to), logger.String("subject", subject))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("email skipped (context cancelled)", logger.String("to", to))
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		n.logger.Error("failed to send email",
			logger.String("to", to),
			logger.String("error", err.Error()),
		)
	}
}
