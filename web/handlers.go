package web

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"parlayPickem/metrics"
	"parlayPickem/services/authService"
	"parlayPickem/services/common"
	"parlayPickem/services/matchupService"
	"parlayPickem/services/parlayService"
	"parlayPickem/services/pickService"
)

const sessionEmailHeader = "X-Session-Email"

// sessionFromRequest builds the session the core consumes. A missing
// header yields an empty session, which the identity resolver rejects.
func sessionFromRequest(r *http.Request) *authService.Session {
	email := r.Header.Get(sessionEmailHeader)
	if email == "" {
		return nil
	}
	return &authService.Session{Email: &email}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

func (s *Server) handleSubmitPick(w http.ResponseWriter, r *http.Request) {
	var input pickService.SubmitPickInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeError(w, common.NewError(common.KindValidation, "invalid JSON body"))
		return
	}

	pick, err := pickService.SubmitPick(s.db, sessionFromRequest(r), input)
	if err != nil {
		metrics.PicksRejected.WithLabelValues(string(common.KindOf(err))).Inc()
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"selectedPick": pick,
	})
}

func (s *Server) handleActiveParlay(w http.ResponseWriter, r *http.Request) {
	user, err := authService.ResolveUser(s.db, sessionFromRequest(r))
	if err != nil {
		s.writeError(w, err)
		return
	}

	parlay, isNew, err := parlayService.ResolveActiveParlay(s.db, user.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if isNew {
		metrics.ParlaysOpened.Inc()
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"parlay": parlay,
		"isNew":  isNew,
	})
}

func (s *Server) handleCurrentWeekMatchups(w http.ResponseWriter, r *http.Request) {
	weekDates := common.CurrentWeekDates(time.Now())

	matchups, err := matchupService.CurrentWeekMatchups(s.db, weekDates)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"matchups":  matchups,
		"weekDates": weekDates,
	})
}

func (s *Server) handleToggleAdminFlag(w http.ResponseWriter, r *http.Request) {
	if !s.isAdmin(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"error": "admin authorization required",
		})
		return
	}

	matchupID := mux.Vars(r)["id"]
	if _, err := uuid.Parse(matchupID); err != nil {
		s.writeError(w, common.NewError(common.KindValidation, "matchup id must be a well-formed UUID"))
		return
	}

	updated, err := matchupService.ToggleAdminFlag(s.db, matchupID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"updated": updated,
	})
}

// isAdmin requires the configured admin token. An unset token disables
// the admin surface outright; it is never left open.
func (s *Server) isAdmin(r *http.Request) bool {
	if s.cfg.AdminToken == "" {
		return false
	}
	supplied := r.Header.Get("X-Admin-Token")
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(s.cfg.AdminToken)) == 1
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := common.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(err))
		common.LogError(s.db, "API", err)
	}

	writeJSON(w, status, map[string]interface{}{
		"error": err.Error(),
		"kind":  string(common.KindOf(err)),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
