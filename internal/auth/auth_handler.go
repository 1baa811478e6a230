package auth

import (
	"net/http"
	"os"

	"github.com/ahmedalmoraly/clockin-system/internal/shared/apperror"
	"github.com/ahmedalmoraly/clockin-system/internal/shared/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (ctrl *Handler) GetAuthURL(c *gin.Context) {
	state := c.DefaultQuery("state", "clockin")
	response.Success(c, http.StatusOK, AuthURLResponse{URL: ctrl.service.AuthURL(state)}, nil)
}

func (ctrl *Handler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := ctrl.service.CreateSession(c.Request.Context(), req.Code)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (ctrl *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := ctrl.service.SignIn(c.Request.Context(), req.SessionID, req.EmployeeID)
	if err != nil {
		writeError(c, err)
		return
	}

	isProd := os.Getenv("APP_ENV") == "production"
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    resp.AccessToken,
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, resp, nil)
}

func (ctrl *Handler) Me(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	if employeeID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	response.Success(c, http.StatusOK, AuthResponse{
		EmployeeID: employeeID,
		Name:       c.GetString("employee_name"),
		Email:      c.GetString("email"),
		Role:       c.GetString("role"),
	}, nil)
}

func (ctrl *Handler) SignOut(c *gin.Context) {
	isProd := os.Getenv("APP_ENV") == "production"
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, "Signed out.", nil)
}
