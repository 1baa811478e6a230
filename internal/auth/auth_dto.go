package auth

import "github.com/ahmedalmoraly/clockin-system/internal/employee"

type AuthURLResponse struct {
	URL string `json:"url"`
}

type CreateSessionRequest struct {
	Code string `json:"code" binding:"required"`
}

// SessionResponse carries the directory along with the new session so the
// client can let the user pick who they are before signing in.
type SessionResponse struct {
	SessionID string                      `json:"session_id"`
	Employees []employee.EmployeeResponse `json:"employees"`
}

type SignInRequest struct {
	SessionID  string `json:"session_id" binding:"required"`
	EmployeeID string `json:"employee_id" binding:"required"`
}

type AuthResponse struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

type SignInResponse struct {
	AccessToken string       `json:"access_token"`
	User        AuthResponse `json:"user"`
}
