package ticket

import (
	"encoding/base64"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type ShareConfig struct {
	SendGridAPIKey   string
	FromEmail        string
	FromName         string
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
}

// Sharer delivers a rendered e-ticket on explicit user request: by email
// with the PDF attached, or by SMS with the lookup link.
type Sharer struct {
	cfg ShareConfig
	log zerolog.Logger
}

func NewSharer(cfg ShareConfig, logger zerolog.Logger) *Sharer {
	return &Sharer{
		cfg: cfg,
		log: logger.With().Str("component", "ticket-share").Logger(),
	}
}

func (s *Sharer) ShareByEmail(t Ticket, toEmail, toName string) error {
	if s.cfg.SendGridAPIKey == "" || s.cfg.FromEmail == "" {
		return fmt.Errorf("email sharing is not configured")
	}

	pdfBytes, err := t.RenderPDF()
	if err != nil {
		return err
	}

	fromName := s.cfg.FromName
	if fromName == "" {
		fromName = "ParkAccess"
	}

	subject := fmt.Sprintf("Your ParkAccess e-ticket %s", t.BookingID)
	plain := fmt.Sprintf(
		"Hello %s,\n\nYour parking e-ticket is attached.\n\n"+
			"Lot: %s (Spot #%d)\nCheck-in: %s\nCheck-out: %s\n\n"+
			"You can also open it at %s.\n\nParkAccess.",
		toName, t.LotName, t.SpotNumber, t.CheckIn, t.CheckOut, t.LookupURL,
	)
	htmlBody, err := t.RenderHTML()
	if err != nil {
		return err
	}

	message := mail.NewSingleEmail(
		mail.NewEmail(fromName, s.cfg.FromEmail),
		subject,
		mail.NewEmail(toName, toEmail),
		plain,
		string(htmlBody),
	)
	attachment := mail.NewAttachment()
	attachment.SetContent(base64.StdEncoding.EncodeToString(pdfBytes))
	attachment.SetType("application/pdf")
	attachment.SetFilename(fmt.Sprintf("parkaccess-ticket-%s.pdf", t.BookingID))
	attachment.SetDisposition("attachment")
	message.AddAttachment(attachment)

	resp, err := sendgrid.NewSendClient(s.cfg.SendGridAPIKey).Send(message)
	if err != nil {
		return fmt.Errorf("send ticket email: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}

	s.log.Info().Str("booking_id", t.BookingID).Str("to", toEmail).Msg("ticket emailed")
	return nil
}

func (s *Sharer) ShareBySMS(t Ticket, toNumber string) error {
	if s.cfg.TwilioAccountSID == "" || s.cfg.TwilioAuthToken == "" {
		return fmt.Errorf("SMS sharing is not configured")
	}

	body := fmt.Sprintf("ParkAccess: your e-ticket %s for %s (spot #%d). Check-in %s. Open: %s",
		t.BookingID, t.LotName, t.SpotNumber, t.CheckIn, t.LookupURL)

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: s.cfg.TwilioAccountSID,
		Password: s.cfg.TwilioAuthToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(s.cfg.TwilioFromNumber)
	params.SetBody(body)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("send ticket SMS: %w", err)
	}

	s.log.Info().Str("booking_id", t.BookingID).Str("to", toNumber).Msg("ticket sent by SMS")
	return nil
}
