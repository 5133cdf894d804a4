package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"authlite/internal/auth"
)

const forgotPasswordMessage = "If that email exists, a reset link has been sent."

func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Email and password required")
		return
	}

	id, err := s.engine.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Message: "OK", ID: id})
}

func (s *server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeMessage(w, http.StatusBadRequest, "Email required")
		return
	}

	err := s.engine.RequestPasswordReset(r.Context(), req.Email)
	switch {
	case err == nil, errors.Is(err, auth.ErrUserNotFound):
		// Unknown emails get the same response as successful sends so the
		// endpoint cannot be used to probe which emails are registered.
		writeMessage(w, http.StatusOK, forgotPasswordMessage)
	case errors.Is(err, auth.ErrMailUnavailable):
		writeMessage(w, http.StatusInternalServerError, "Unable to send email")
	default:
		s.internalError(w, r, err)
	}
}

func (s *server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" || req.NewPassword == "" {
		writeMessage(w, http.StatusBadRequest, "Token and newPassword required")
		return
	}

	err := s.engine.ConfirmPasswordReset(r.Context(), req.Token, req.NewPassword)
	switch {
	case err == nil:
		writeMessage(w, http.StatusOK, "Password reset successful")
	case errors.Is(err, auth.ErrResetInvalidOrUsed):
		writeMessage(w, http.StatusBadRequest, "Token invalid or used")
	case errors.Is(err, auth.ErrResetInvalidOrExpired):
		writeMessage(w, http.StatusBadRequest, "Token invalid or expired")
	case errors.Is(err, auth.ErrUserNotFound):
		writeMessage(w, http.StatusBadRequest, "User not found")
	default:
		s.internalError(w, r, err)
	}
}
