package auth

import (
	"context"
	"os"
	"strings"
	"time"

	autherrors "github.com/ahmedalmoraly/clockin-system/internal/auth/errors"
	"github.com/ahmedalmoraly/clockin-system/internal/credentials"
	"github.com/ahmedalmoraly/clockin-system/internal/employee"
	"github.com/ahmedalmoraly/clockin-system/internal/rbac"
	"github.com/ahmedalmoraly/clockin-system/internal/shared/contextutil"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const tokenTTL = 24 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	AuthURL(state string) string

	CreateSession(ctx context.Context, code string) (SessionResponse, error)

	SignIn(ctx context.Context, sessionID, employeeID string) (SignInResponse, error)
}

type service struct {
	exchanger Exchanger
	store     credentials.Store
	directory employee.Service
	logger    *zap.Logger
}

func NewService(exchanger Exchanger, store credentials.Store, directory employee.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		exchanger: exchanger,
		store:     store,
		directory: directory,
		logger:    l,
	}
}

func (s *service) AuthURL(state string) string {
	return s.exchanger.AuthURL(state)
}

// CreateSession trades the authorization code for spreadsheet credentials,
// persists them under a fresh session id, and returns the employee directory
// so the client can ask the user which row is theirs.
func (s *service) CreateSession(ctx context.Context, code string) (SessionResponse, error) {
	bundle, err := s.exchanger.Exchange(ctx, code)
	if err != nil {
		s.logger.Warn("authorization code exchange failed", zap.Error(err))
		return SessionResponse{}, err
	}

	sessionID := uuid.NewString()
	if err := s.store.Save(ctx, sessionID, bundle); err != nil {
		s.logger.Error("persist session credentials failed", zap.Error(err))
		return SessionResponse{}, err
	}

	employees, err := s.directory.GetAll(contextutil.WithSessionID(ctx, sessionID))
	if err != nil {
		return SessionResponse{}, err
	}

	s.logger.Info("session created", zap.String("session_id", sessionID))
	return SessionResponse{SessionID: sessionID, Employees: employees}, nil
}

// SignIn binds a session to an employee row and issues the service JWT.
// Identity is chosen, not proven: anyone holding spreadsheet credentials can
// clock for any listed employee, same as editing the sheet directly.
func (s *service) SignIn(ctx context.Context, sessionID, employeeID string) (SignInResponse, error) {
	if _, err := s.store.Get(ctx, sessionID); err != nil {
		return SignInResponse{}, err
	}

	emp, err := s.directory.GetByID(contextutil.WithSessionID(ctx, sessionID), employeeID)
	if err != nil {
		return SignInResponse{}, err
	}

	role := resolveRole(emp.Email)

	token, err := s.generateToken(sessionID, emp, role)
	if err != nil {
		s.logger.Error("sign token failed", zap.Error(err))
		return SignInResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("sign-in success",
		zap.String("session_id", sessionID),
		zap.String("employee_id", emp.ID),
		zap.String("role", role),
	)
	return SignInResponse{
		AccessToken: token,
		User: AuthResponse{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Email:      emp.Email,
			Role:       role,
		},
	}, nil
}

// resolveRole maps the employee email onto a role via ADMIN_EMAILS and
// MANAGER_EMAILS, comma-separated lists in the environment.
func resolveRole(email string) string {
	if emailListed(os.Getenv("ADMIN_EMAILS"), email) {
		return rbac.RoleAdmin
	}
	if emailListed(os.Getenv("MANAGER_EMAILS"), email) {
		return rbac.RoleManager
	}
	return rbac.RoleEmployee
}

func emailListed(list, email string) bool {
	for _, entry := range strings.Split(list, ",") {
		if entry = strings.TrimSpace(entry); entry != "" && strings.EqualFold(entry, email) {
			return true
		}
	}
	return false
}

func (s *service) generateToken(sessionID string, emp employee.EmployeeResponse, role string) (string, error) {
	claims := jwt.MapClaims{
		"session_id":  sessionID,
		"employee_id": emp.ID,
		"name":        emp.Name,
		"email":       emp.Email,
		"role":        role,
		"exp":         time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
