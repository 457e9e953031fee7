// services/reminder_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"invoice-dashboard/models"
	"invoice-dashboard/utils"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier delivers a short text message.
type Notifier interface {
	Notify(ctx context.Context, to, body string) error
}

// CardDataSource supplies the dashboard counters.
type CardDataSource interface {
	FetchCardData(ctx context.Context) (models.CardData, error)
}

// DigestService texts a summary of collected and pending invoice totals.
type DigestService struct {
	source   CardDataSource
	notifier Notifier
	to       string
	logger   *slog.Logger
}

func NewDigestService(source CardDataSource, notifier Notifier, to string, logger *slog.Logger) *DigestService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DigestService{source: source, notifier: notifier, to: to, logger: logger}
}

// BuildDigest renders the digest message body.
func BuildDigest(data models.CardData) string {
	return fmt.Sprintf("Invoice digest: %d invoices across %d customers, %s collected, %s pending.",
		data.NumberOfInvoices,
		data.NumberOfCustomers,
		utils.FormatCurrency(data.TotalPaidInvoices),
		utils.FormatCurrency(data.TotalPendingInvoices))
}

func (s *DigestService) Send(ctx context.Context) error {
	if s.to == "" {
		return errors.New("digest recipient not configured")
	}
	if !utils.ValidatePhone(s.to) {
		return fmt.Errorf("digest recipient %q is not a phone number", s.to)
	}
	data, err := s.source.FetchCardData(ctx)
	if err != nil {
		return fmt.Errorf("load card data: %w", err)
	}
	if err := s.notifier.Notify(ctx, s.to, BuildDigest(data)); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	s.logger.Info("invoice digest sent", "to", s.to, "pending_cents", data.TotalPendingInvoices)
	return nil
}

// TwilioNotifier sends SMS through the Twilio messages API.
type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioNotifier(accountSid, authToken, from string) *TwilioNotifier {
	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: from,
	}
}

func (n *TwilioNotifier) Notify(_ context.Context, to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.from)
	params.SetBody(body)

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid == nil {
		return errors.New("twilio returned no message SID")
	}
	return nil
}
