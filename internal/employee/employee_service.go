package employee

import (
	"context"
	"encoding/json"
	"time"

	employeeerrors "github.com/ahmedalmoraly/clockin-system/internal/employee/errors"
	"github.com/ahmedalmoraly/clockin-system/internal/shared/contextutil"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const directoryCacheKey = "employees:directory"

// Directory rows change rarely and every clock action needs a name lookup,
// so the listing is cached. The spreadsheet stays the source of truth; the
// cache is cold-start only.
const directoryCacheTTL = 1 * time.Hour

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, directoryCacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Collapse concurrent fills; the dashboard fetches the directory on load.
	v, err, _ := s.sf.Do(directoryCacheKey, func() (interface{}, error) {
		rid := contextutil.GetRequestID(ctx)
		s.logger.Debug("directory cache miss, reading sheet", zap.String("request_id", rid))

		employees, err := s.repo.ListAll(ctx)
		if err != nil {
			s.logger.Error("list employees failed", zap.String("request_id", rid), zap.Error(err))
			return nil, err
		}

		resp := mapToListResponse(employees)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, directoryCacheKey, jsonData, directoryCacheTTL)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if id == "" {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	employees, err := s.GetAll(ctx)
	if err != nil {
		return EmployeeResponse{}, err
	}

	for _, e := range employees {
		if e.ID == id {
			return e, nil
		}
	}
	return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
