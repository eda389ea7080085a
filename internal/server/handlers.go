package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/rephrase-master/internal/entitlement"
	"github.com/jonathan/rephrase-master/internal/history"
	"github.com/jonathan/rephrase-master/internal/rephrase"
	"github.com/jonathan/rephrase-master/internal/sharing"
	"github.com/jonathan/rephrase-master/internal/styles"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 64 << 10

// RephraseRequest represents the request body for /rephrase
type RephraseRequest struct {
	Text     string       `json:"text" validate:"required,max=2000"`
	Style    styles.Style `json:"style" validate:"required"`
	Platform string       `json:"platform,omitempty"`
}

// RephraseResponse represents the response for /rephrase. Remaining is -1
// on the Pro tier.
type RephraseResponse struct {
	Result    string            `json:"result"`
	Style     styles.Style      `json:"style"`
	Remaining int               `json:"remaining"`
	Share     *sharing.Delivery `json:"share,omitempty"`
}

// BatchRephraseRequest represents the request body for /rephrase/batch
type BatchRephraseRequest struct {
	Text   string         `json:"text" validate:"required,max=2000"`
	Styles []styles.Style `json:"styles" validate:"required,min=1,max=8,dive,required"`
}

// BatchRephraseResponse represents the response for /rephrase/batch
type BatchRephraseResponse struct {
	Results   []rephrase.Result `json:"results"`
	Remaining int               `json:"remaining"`
}

// ShareRequest represents the request body for /share
type ShareRequest struct {
	Text     string       `json:"text" validate:"required"`
	Style    styles.Style `json:"style" validate:"required"`
	Platform string       `json:"platform,omitempty"`
}

// SettingsUpdateRequest is a partial update; nil fields are left unchanged.
type SettingsUpdateRequest struct {
	IsPro              *bool `json:"is_pro,omitempty"`
	ShareTagsEnabled   *bool `json:"share_tags_enabled,omitempty"`
	LpLinkEnabled      *bool `json:"lp_link_enabled,omitempty"`
	SaveHistoryEnabled *bool `json:"save_history_enabled,omitempty"`
}

// SettingsResponse reports stored toggles alongside the values actually applied.
type SettingsResponse struct {
	entitlement.Snapshot
	EffectiveShareTags bool `json:"effective_share_tags"`
	EffectiveLpLink    bool `json:"effective_lp_link"`
	EffectiveHistory   bool `json:"effective_save_history"`
	DailyLimit         int  `json:"daily_limit"`
	Remaining          int  `json:"remaining"`
}

// HistoryResponse represents the response for GET /history
type HistoryResponse struct {
	Items []history.Item `json:"items"`
	Count int            `json:"count"`
}

func newSettingsResponse(snap entitlement.Snapshot) SettingsResponse {
	return SettingsResponse{
		Snapshot:           snap,
		EffectiveShareTags: snap.EffectiveTags(),
		EffectiveLpLink:    snap.EffectiveLink(),
		EffectiveHistory:   snap.EffectiveSaveHistory(),
		DailyLimit:         entitlement.FreeDailyLimit,
		Remaining:          snap.Remaining(),
	}
}

// decode reads a JSON body into dst and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := s.validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

// handleStyles lists the style catalog
func (s *Server) handleStyles(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"styles": styles.All()})
}

// handleGetSettings returns the entitlement state
func (s *Server) handleGetSettings(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, newSettingsResponse(s.state.Snapshot()))
}

// handleUpdateSettings applies a partial settings update
func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsUpdateRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if req.IsPro != nil {
		if *req.IsPro {
			s.state.Upgrade()
		} else {
			s.state.SetPro(false)
		}
	}
	if req.ShareTagsEnabled != nil {
		s.state.SetShareTagsEnabled(*req.ShareTagsEnabled)
	}
	if req.LpLinkEnabled != nil {
		s.state.SetLpLinkEnabled(*req.LpLinkEnabled)
	}
	if req.SaveHistoryEnabled != nil {
		s.state.SetSaveHistoryEnabled(*req.SaveHistoryEnabled)
	}

	snap := s.state.Snapshot()
	s.logger.WithFields(logrus.Fields{
		"is_pro":       snap.IsPro,
		"share_tags":   snap.ShareTagsEnabled,
		"lp_link":      snap.LpLinkEnabled,
		"save_history": snap.SaveHistoryEnabled,
	}).Info("settings updated")

	s.jsonResponse(w, http.StatusOK, newSettingsResponse(snap))
}

// handleResetDailyCount clears today's usage
func (s *Server) handleResetDailyCount(w http.ResponseWriter, _ *http.Request) {
	s.state.ResetDailyCount()
	s.jsonResponse(w, http.StatusOK, newSettingsResponse(s.state.Snapshot()))
}

// handleRephrase rewrites text in one style, optionally preparing a share
func (s *Server) handleRephrase(w http.ResponseWriter, r *http.Request) {
	var req RephraseRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if !styles.Known(req.Style) {
		s.writeError(w, r, &rephrase.InvalidStyleError{Style: string(req.Style)})
		return
	}

	var platform sharing.Platform
	if req.Platform != "" {
		p, err := sharing.ParsePlatform(req.Platform)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		platform = p
	}

	if err := s.state.ConsumeRephrase(1); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.rephraser.Rephrase(r.Context(), req.Text, req.Style)
	if err != nil {
		s.state.ReleaseRephrase(1)
		s.writeError(w, r, err)
		return
	}

	snap := s.state.Snapshot()
	s.recordHistory(r.Context(), snap, rephrase.Result{Style: req.Style, Text: result}, req.Text)

	resp := RephraseResponse{
		Result:    result,
		Style:     req.Style,
		Remaining: snap.Remaining(),
	}
	if platform != "" {
		d := sharing.Prepare(sharing.Request{Text: result, Style: req.Style, Platform: platform}, snap)
		resp.Share = &d
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleRephraseBatch rewrites text in several styles. Each style counts
// against the daily limit.
func (s *Server) handleRephraseBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRephraseRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	for _, style := range req.Styles {
		if !styles.Known(style) {
			s.writeError(w, r, &rephrase.InvalidStyleError{Style: string(style)})
			return
		}
	}

	n := len(req.Styles)
	if err := s.state.ConsumeRephrase(n); err != nil {
		s.writeError(w, r, err)
		return
	}

	results, err := s.rephraser.RephraseMany(r.Context(), req.Text, req.Styles)
	if err != nil {
		s.state.ReleaseRephrase(n)
		s.writeError(w, r, err)
		return
	}

	snap := s.state.Snapshot()
	for _, result := range results {
		s.recordHistory(r.Context(), snap, result, req.Text)
	}

	s.jsonResponse(w, http.StatusOK, BatchRephraseResponse{Results: results, Remaining: snap.Remaining()})
}

// handleShare generates platform content and its delivery route
func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	var req ShareRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	platform, err := sharing.ParsePlatform(req.Platform)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	d := sharing.Prepare(sharing.Request{Text: req.Text, Style: req.Style, Platform: platform}, s.state.Snapshot())
	s.jsonResponse(w, http.StatusOK, d)
}

// handleListHistory returns recorded rephrases, newest first
func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	limit := history.DefaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.writeError(w, r, &ErrValidation{Field: "limit", Message: "must be a positive integer"})
			return
		}
		limit = n
	}

	items, err := s.history.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if items == nil {
		items = []history.Item{}
	}
	s.jsonResponse(w, http.StatusOK, HistoryResponse{Items: items, Count: len(items)})
}

// handleClearHistory removes all history
func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := s.history.Clear(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDeleteHistory removes one history item
func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, &ErrValidation{Field: "id", Message: "invalid UUID"})
		return
	}

	if err := s.history.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// recordHistory stores a result unless a Pro user turned history off.
// Failures are logged and do not fail the request.
func (s *Server) recordHistory(ctx context.Context, snap entitlement.Snapshot, result rephrase.Result, original string) {
	if !snap.EffectiveSaveHistory() {
		return
	}
	item := history.NewItem(strings.TrimSpace(original), result.Text, result.Style)
	if _, err := s.history.Add(ctx, item); err != nil {
		s.logger.WithError(err).WithField("style", result.Style).Warn("failed to record history")
	}
}
