package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"compositions/pkg/claims"
	"compositions/pkg/composition"
	"compositions/pkg/user"

	"github.com/gorilla/mux"
)

const (
	MuxVarCompositionID = "id"

	msgUserNotFound = "User not found."
)

type CompositionHandler struct {
	Service composition.ServiceComposition
	Logger  *slog.Logger
}

func NewCompositionHandler(service composition.ServiceComposition, logger *slog.Logger) *CompositionHandler {
	return &CompositionHandler{
		Service: service,
		Logger:  logger,
	}
}

type compositionList struct {
	Compositions []composition.View `json:"compositions"`
}

func (h *CompositionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.GetAll(r.Context())
	if err != nil {
		h.backendError(w, "list compositions", err, typeMessage, "Internal server error")
		return
	}

	writeJSON(w, h.Logger, http.StatusOK, compositionList{Compositions: composition.SerializeAll(list)})
}

func (h *CompositionHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	c, ok := claims.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, typeMessage, "unauthorized")
		return
	}

	list, err := h.Service.GetByOwner(r.Context(), c.User.ID)
	if errors.Is(err, composition.ErrInvalidOwnerID) {
		writeError(w, http.StatusUnauthorized, typeMessage, "unauthorized")
		return
	}
	if err != nil {
		h.backendError(w, "list user compositions", err, typeError, "something went horribly awry")
		return
	}

	writeJSON(w, h.Logger, http.StatusOK, compositionList{Compositions: composition.SerializeAll(list)})
}

func (h *CompositionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft composition.Draft
	if err := decodeJSON(r, &draft); err != nil {
		h.Logger.Info("invalid json", "error", err)
		if errors.Is(err, errContentType) {
			writeError(w, http.StatusBadRequest, typeError, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, typeError, "invalid JSON payload")
		return
	}

	created, err := h.Service.Create(r.Context(), &draft)
	if err != nil {
		var missing *composition.MissingFieldError
		switch {
		case errors.As(err, &missing):
			h.Logger.Info("create composition rejected", "error", err)
			writeText(w, http.StatusBadRequest, missing.Error())
		case errors.Is(err, user.ErrUserNotFound):
			h.Logger.Info("create composition rejected", "error", err)
			writeText(w, http.StatusBadRequest, msgUserNotFound)
		default:
			h.backendError(w, "create composition", err, typeError, "Something went wrong")
		}
		return
	}

	if ok := writeJSON(w, h.Logger, http.StatusCreated, created.Serialize()); ok {
		h.Logger.Info("new composition created", "id", created.ID.Hex(), "user", created.Owner.ID.Hex())
	}
}

func (h *CompositionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := mux.Vars(r)[MuxVarCompositionID]
	if !ok {
		writeError(w, http.StatusBadRequest, typeError, composition.ErrInvalidID.Error())
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, composition.ErrInvalidID) {
			writeError(w, http.StatusBadRequest, typeError, err.Error())
			return
		}
		h.backendError(w, "delete composition", err, typeError, "Something went wrong")
		return
	}

	h.Logger.Info("deleted composition", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// backendError logs the cause and answers 500 without exposing it. An
// unresolved owner is the one cause reported by kind.
func (h *CompositionHandler) backendError(w http.ResponseWriter, action string, err error, field, msg string) {
	h.Logger.Error(action, "error", err)
	if errors.Is(err, composition.ErrOwnerUnresolved) {
		writeError(w, http.StatusInternalServerError, typeError, composition.ErrOwnerUnresolved.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, field, msg)
}
