package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"compositions/pkg/claims"
	"compositions/pkg/user"
)

type SignupForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserHandler struct {
	Service   user.ServiceInterface
	Logger    *slog.Logger
	JWTSecret string
}

type FieldError struct {
	Location string `json:"location"`
	Param    string `json:"param"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
}

func NewUserHandler(service user.ServiceInterface, logger *slog.Logger, secret string) *UserHandler {
	return &UserHandler{
		Service:   service,
		Logger:    logger,
		JWTSecret: secret,
	}
}

func (f *SignupForm) validate() []FieldError {
	var errs []FieldError
	for _, field := range []struct{ name, value string }{
		{"username", f.Username},
		{"email", f.Email},
		{"password", f.Password},
	} {
		if strings.TrimSpace(field.value) == "" {
			errs = append(errs, FieldError{Location: "body", Param: field.name, Msg: "is required"})
		}
	}
	return errs
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req SignupForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if errs := req.validate(); len(errs) > 0 {
		writeJSON(w, h.Logger, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}

	u, err := h.Service.Register(r.Context(), req.Username, req.Email, req.Password)
	if errors.Is(err, user.ErrUserExists) {
		writeJSON(w, h.Logger, http.StatusUnprocessableEntity, map[string]any{
			"errors": []FieldError{{Location: "body", Param: "username", Value: req.Username, Msg: "already exists"}},
		})
		return
	}
	if err != nil {
		h.Logger.Error("register", "error", err)
		writeError(w, http.StatusInternalServerError, typeMessage, "Internal server error")
		return
	}

	if ok := writeJSON(w, h.Logger, http.StatusCreated, u.Serialize()); ok {
		h.Logger.Info("register", "user", u.ID.Hex())
	}
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	u, err := h.Service.Login(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		writeError(w, http.StatusUnauthorized, typeMessage, "user not found")
		return
	case errors.Is(err, user.ErrInvalidCreds):
		writeError(w, http.StatusUnauthorized, typeMessage, "invalid password")
		return
	case err != nil:
		h.Logger.Error("login", "error", err)
		writeError(w, http.StatusInternalServerError, typeMessage, "Internal server error")
		return
	}

	token, err := claims.New(u.Username, u.ID.Hex(), time.Now()).Sign(h.JWTSecret)
	if err != nil {
		h.Logger.Error("token signing", "error", err)
		writeError(w, http.StatusInternalServerError, typeMessage, "Internal server error")
		return
	}

	if ok := writeJSON(w, h.Logger, http.StatusOK, map[string]string{"token": token}); ok {
		h.Logger.Info("login", "user", u.ID.Hex())
	}
}
