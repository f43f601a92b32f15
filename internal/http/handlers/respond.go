package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"shopconsole/internal/domain/journal"
	middlewarex "shopconsole/internal/http/middleware"
	"shopconsole/internal/listing"
	"shopconsole/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// GenericError is the single user-visible message for failed actions.
const GenericError = "an error occurred"

// Recorder journals mutating actions.
type Recorder interface {
	Record(ctx context.Context, sessionID string, action journal.Action, resource journal.Resource, resourceID int64, cause error)
}

// Notice is a toast-style notification for the front end.
type Notice struct {
	Severity string `json:"severity"` // success, error
	Message  string `json:"message"`
}

// MutationResponse is returned by create/edit/delete endpoints.
type MutationResponse struct {
	Notice Notice `json:"notice"`
	Data   any    `json:"data,omitempty"`
}

// ListingResponse is returned by listing endpoints.
type ListingResponse[T any] struct {
	View    listing.View[T] `json:"view"`
	State   listing.State   `json:"state"`
	Mode    string          `json:"mode"`
	Loading bool            `json:"loading"`
	Stale   bool            `json:"stale,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func sessionID(r *http.Request) string {
	id, _ := middlewarex.SessionID(r.Context())
	return id
}

func loadSession(w http.ResponseWriter, r *http.Request, sessions *session.Manager) (*session.Session, bool) {
	sid, ok := middlewarex.SessionID(r.Context())
	if !ok {
		http.Error(w, "session not found", http.StatusUnauthorized)
		return nil, false
	}
	sess, err := sessions.Get(r.Context(), sid)
	if err != nil {
		log.Error().Err(err).Str("session_id", sid).Msg("failed to load session")
		http.Error(w, "session unavailable", http.StatusServiceUnavailable)
		return nil, false
	}
	return sess, true
}

// respondListing persists the session state and writes the listing view.
// A failed fetch leaves the previous view in place.
func respondListing[T any](w http.ResponseWriter, r *http.Request, sessions *session.Manager, sess *session.Session, ctrl *listing.Controller[T], view listing.View[T], err error) {
	if serr := sessions.Save(r.Context(), sess); serr != nil {
		log.Error().Err(serr).Str("session_id", sess.ID).Msg("failed to save session state")
	}

	st := ctrl.State()
	resp := ListingResponse[T]{
		View:    view,
		State:   st,
		Mode:    st.Mode().String(),
		Loading: ctrl.Busy().Loading(),
	}
	status := http.StatusOK
	switch {
	case errors.Is(err, listing.ErrStale):
		resp.Stale = true
		resp.View = ctrl.View()
	case err != nil:
		resp.Error = GenericError
		status = http.StatusBadGateway
	}
	writeJSON(w, status, resp)
}

// selectPage applies a ?page= event (1-based) or refreshes when absent.
func selectPage[T any](r *http.Request, ctrl *listing.Controller[T]) (listing.View[T], error) {
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return ctrl.SelectPage(r.Context(), n)
		}
	}
	return ctrl.Refresh(r.Context())
}

func mutationOK(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, MutationResponse{
		Notice: Notice{Severity: "success", Message: message},
		Data:   data,
	})
}

func mutationFailed(w http.ResponseWriter, op string, err error) {
	log.Error().Err(err).Str("op", op).Msg("console action failed")
	writeJSON(w, http.StatusBadGateway, MutationResponse{
		Notice: Notice{Severity: "error", Message: GenericError},
	})
}
