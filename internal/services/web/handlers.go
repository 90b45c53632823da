package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	apperrors "github.com/mergington/activities/internal/platform/errors"
)

// activityView is the wire shape of one catalog entry.
type activityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

type signupResponse struct {
	Message string `json:"message"`
}

// errorResponse mirrors the {"detail": ...} failure body the frontend expects.
type errorResponse struct {
	Detail string `json:"detail"`
}

func (h *handler) handleListActivities(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.registry.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	views := make(map[string]activityView, len(snapshot))
	for name, activity := range snapshot {
		views[name] = activityView{
			Description:     activity.Description,
			Schedule:        activity.Schedule,
			MaxParticipants: activity.MaxParticipants,
			Participants:    activity.Participants,
		}
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("activityName")
	email := r.URL.Query().Get("email")

	confirmation, err := h.registry.Signup(r.Context(), activityName, email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, signupResponse{Message: confirmation.Message})
}

// detailMessage owns the user-facing detail strings so the registry stays
// free of presentation concerns.
func detailMessage(err *apperrors.Error) string {
	switch err.Code {
	case apperrors.CodeActivityNotFound:
		return "Activity not found"
	case apperrors.CodeAlreadyRegistered:
		return "Student is already signed up for this activity"
	case apperrors.CodeEmailEmpty:
		return "Email is required"
	case apperrors.CodeActivityNameEmpty:
		return "Activity name is required"
	default:
		return "Internal server error"
	}
}

func writeError(w http.ResponseWriter, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Code.HTTPStatus(), errorResponse{Detail: detailMessage(appErr)})
		return
	}
	log.Printf("unexpected handler error: %v", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "Internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	_ = encoder.Encode(payload)
}
