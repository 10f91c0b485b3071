package messaging

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/mclovin84/callscreen/internal/observability"
)

// Client wraps the voice platform's REST API for outbound SMS and validates
// inbound webhook signatures with the same credentials.
type Client struct {
	rest       *twilio.RestClient
	validator  twilioclient.RequestValidator
	fromNumber string
	logger     *observability.Logger
}

func New(accountSID, authToken, fromNumber string, logger *observability.Logger) *Client {
	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &Client{
		rest:       rest,
		validator:  twilioclient.NewRequestValidator(authToken),
		fromNumber: fromNumber,
		logger:     logger,
	}
}

// SendSMS sends a text message from the configured platform number.
func (c *Client) SendSMS(ctx context.Context, to, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.fromNumber)
	params.SetBody(body)

	msg, err := c.rest.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send sms: %w", err)
	}

	sid := ""
	if msg.Sid != nil {
		sid = *msg.Sid
	}
	c.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "sms_to", Value: to},
		observability.Field{Key: "message_sid", Value: sid},
	), "sms sent")
	return nil
}

// ValidateSignature reports whether the platform signature header matches
// the posted form parameters for the public request URL.
func (c *Client) ValidateSignature(url string, params map[string]string, signature string) bool {
	return c.validator.Validate(url, params, signature)
}

// ValidateBodySignature is the JSON-body variant of ValidateSignature.
func (c *Client) ValidateBodySignature(url string, body []byte, signature string) bool {
	return c.validator.ValidateBody(url, body, signature)
}
