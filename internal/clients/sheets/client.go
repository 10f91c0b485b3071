package sheets

import (
	"context"
	"fmt"
	"strings"

	sheetsapi "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"

	"github.com/mclovin84/callscreen/internal/observability"
)

// Client wraps the Google Sheets API for the two operations the screener
// needs: reading list columns and appending log rows.
type Client struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *observability.Logger
}

func New(ctx context.Context, spreadsheetID, credentialsJSON string, logger *observability.Logger) (*Client, error) {
	service, err := sheetsapi.NewService(ctx,
		option.WithCredentialsJSON([]byte(credentialsJSON)),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service:       service,
		spreadsheetID: spreadsheetID,
		logger:        logger,
	}, nil
}

// ReadColumn returns the non-empty first-cell values of every row in the
// range, trimmed.
func (c *Client) ReadColumn(ctx context.Context, readRange string) ([]string, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}

	values := make([]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		cell, ok := row[0].(string)
		if !ok {
			continue
		}
		cell = strings.TrimSpace(cell)
		if cell != "" {
			values = append(values, cell)
		}
	}
	return values, nil
}

// AppendRow appends one row after the last row of the range's table.
func (c *Client) AppendRow(ctx context.Context, appendRange string, row []interface{}) error {
	body := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	_, err := c.service.Spreadsheets.Values.Append(c.spreadsheetID, appendRange, body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append to range %s: %w", appendRange, err)
	}

	c.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "range", Value: appendRange},
	), "appended spreadsheet row")
	return nil
}
