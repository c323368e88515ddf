package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

// Signup implements AuthHandler.
func (a *AuthHandlerImpl) Signup(w http.ResponseWriter, r *http.Request) {
	var signupReq auth.SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&signupReq); err != nil {
		slog.Error("Signup decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResponse, err := a.authService.Signup(r.Context(), signupReq)
	if err != nil {
		slog.Error("Signup service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Company registered successfully", tokenResponse)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User logged in successfully", tokenResponse)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	me, err := a.authService.Me(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, me)
}

// ChangePassword implements AuthHandler.
func (a *AuthHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var changeReq auth.ChangePasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&changeReq); err != nil {
		slog.Error("ChangePassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := a.authService.ChangePassword(r.Context(), changeReq); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password changed successfully", nil)
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
	}
}
