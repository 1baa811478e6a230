package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ahmedalmoraly/clockin-system/internal/shared/apperror"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	sheetsapi "google.golang.org/api/sheets/v4"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Named ranges of the backing spreadsheet. The column layout of each is
// declared by the feature packages that own them.
const (
	EmployeesRange   = "Employees"
	TimetrackerRange = "Timetracker"
)

const valueInputOption = "USER_ENTERED"

//go:generate mockgen -source=client.go -destination=mock/client_mock.go -package=mock

// Client is the remote row store: range-addressed reads, appends and
// in-place updates against the spreadsheet, using a caller-supplied bearer
// token. Rows travel as plain string matrices.
type Client interface {
	Get(ctx context.Context, token, readRange string) ([][]string, error)
	Append(ctx context.Context, token, writeRange string, rows [][]string) error
	Update(ctx context.Context, token, writeRange string, rows [][]string) error
}

type apiClient struct {
	spreadsheetID string
	logger        *zap.Logger
}

func NewClient(spreadsheetID string, logger ...*zap.Logger) Client {
	l := zap.L().Named("sheets.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sheets.client")
	}
	return &apiClient{spreadsheetID: spreadsheetID, logger: l}
}

// service builds a per-call Sheets service bound to the session token. The
// token varies per request, so the service cannot be constructed once.
func (c *apiClient) service(ctx context.Context, token string) (*sheetsapi.Service, error) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	svc, err := sheetsapi.NewService(ctx, option.WithTokenSource(src))
	if err != nil {
		return nil, c.mapError("init", err)
	}
	return svc, nil
}

func (c *apiClient) Get(ctx context.Context, token, readRange string) ([][]string, error) {
	svc, err := c.service(ctx, token)
	if err != nil {
		return nil, err
	}

	resp, err := svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, c.mapError("get "+readRange, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			row[j] = fmt.Sprint(cell)
		}
		rows[i] = row
	}
	return rows, nil
}

func (c *apiClient) Append(ctx context.Context, token, writeRange string, rows [][]string) error {
	svc, err := c.service(ctx, token)
	if err != nil {
		return err
	}

	_, err = svc.Spreadsheets.Values.
		Append(c.spreadsheetID, writeRange, valueRange(rows)).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return c.mapError("append "+writeRange, err)
	}
	return nil
}

func (c *apiClient) Update(ctx context.Context, token, writeRange string, rows [][]string) error {
	svc, err := c.service(ctx, token)
	if err != nil {
		return err
	}

	_, err = svc.Spreadsheets.Values.
		Update(c.spreadsheetID, writeRange, valueRange(rows)).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return c.mapError("update "+writeRange, err)
	}
	return nil
}

func valueRange(rows [][]string) *sheetsapi.ValueRange {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	return &sheetsapi.ValueRange{Values: values}
}

// mapError classifies remote failures: 401/403 surface as auth errors so the
// caller can force a re-login, everything else is a remote store failure.
// Neither is retried here.
func (c *apiClient) mapError(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
			c.logger.Warn("spreadsheet token rejected", zap.String("op", op), zap.Int("status", apiErr.Code))
			return apperror.Wrap(err, apperror.CodeUnauthorized,
				"Spreadsheet access token was rejected, please sign in again", http.StatusUnauthorized)
		}
	}

	c.logger.Error("spreadsheet request failed", zap.String("op", op), zap.Error(err))
	return apperror.Wrap(err, apperror.CodeServiceUnavailable,
		"Spreadsheet request failed", http.StatusBadGateway)
}
