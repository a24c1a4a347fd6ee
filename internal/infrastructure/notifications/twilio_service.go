package notifications

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/ashutosh-sx/Emergo/domain"
)

// TwilioServiceImpl implements domain.NotificationService. SMS goes out via
// Twilio when credentials are configured; email delivery has no real
// transport here, so the email path writes the message to the operational
// log. Password-reset links travel on that path.
type TwilioServiceImpl struct {
	client     *twilio.RestClient
	fromNumber string
	log        zerolog.Logger
}

// NewTwilioService creates a new Twilio notification service
func NewTwilioService(accountSID, authToken, fromNumber string, log zerolog.Logger) domain.NotificationService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioServiceImpl{
		client:     client,
		fromNumber: fromNumber,
		log:        log.With().Str("component", "notifications").Logger(),
	}
}

// SendSMS implements domain.NotificationService
func (t *TwilioServiceImpl) SendSMS(to, message string) error {
	// Without credentials, log instead of sending.
	if t.fromNumber == "" {
		t.log.Info().Str("to", to).Str("body", message).Msg("mock sms")
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.fromNumber)
	params.SetBody(message)

	_, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	return nil
}

// SendEmail implements domain.NotificationService
func (t *TwilioServiceImpl) SendEmail(to, subject, body string) error {
	t.log.Info().Str("to", to).Str("subject", subject).Str("body", body).Msg("mock email")
	return nil
}
