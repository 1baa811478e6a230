package report

import (
	"context"
	"math"
	"sort"
	"time"

	reporterrors "github.com/ahmedalmoraly/clockin-system/internal/report/errors"
	"github.com/ahmedalmoraly/clockin-system/internal/shared/contextutil"
	"github.com/ahmedalmoraly/clockin-system/internal/timeentry"
	"go.uber.org/zap"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Monthly(ctx context.Context, year, month int) (MonthlyReportResponse, error)
}

type service struct {
	entries timeentry.Repository
	logger  *zap.Logger
}

func NewService(entries timeentry.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{entries: entries, logger: l}
}

// Monthly sums worked hours per employee for one calendar month. Entries
// without a clock-out are still in progress and carry no hours, so they are
// excluded. Totals are rounded to two decimals.
func (s *service) Monthly(ctx context.Context, year, month int) (MonthlyReportResponse, error) {
	if year < 1 || month < 1 || month > 12 {
		return MonthlyReportResponse{}, reporterrors.ErrInvalidPeriod
	}

	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("monthly report requested",
		zap.String("request_id", rid),
		zap.Int("year", year),
		zap.Int("month", month),
	)

	entries, err := s.entries.ListAll(ctx)
	if err != nil {
		s.logger.Error("monthly report load failed", zap.String("request_id", rid), zap.Error(err))
		return MonthlyReportResponse{}, err
	}

	totals := map[string]float64{}
	for _, e := range entries {
		if e.Open() {
			continue
		}
		if e.Date.Year() != year || e.Date.Month() != time.Month(month) {
			continue
		}
		totals[e.UserName] += e.ClockOut.Sub(e.ClockIn).Hours()
	}

	rows := make([]MonthlyReportRow, 0, len(totals))
	for name, hours := range totals {
		rows = append(rows, MonthlyReportRow{
			UserName:   name,
			TotalHours: math.Round(hours*100) / 100,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].UserName < rows[j].UserName
	})

	s.logger.Info("monthly report built",
		zap.String("request_id", rid),
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("employees", len(rows)),
	)
	return MonthlyReportResponse{Year: year, Month: month, Rows: rows}, nil
}
