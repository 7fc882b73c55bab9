// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"time"

	"github.com/nouvelayiti/nouvel-go/internal/i18n"
	"github.com/nouvelayiti/nouvel-go/internal/middleware"
	"github.com/nouvelayiti/nouvel-go/internal/model"
	"github.com/nouvelayiti/nouvel-go/internal/store"
)

// defaultActivePollLimit: the site shows one current poll at a time.
const defaultActivePollLimit = 1

// PollWithOptions is a poll bundled with its answer choices.
type PollWithOptions struct {
	model.Poll
	Options []model.PollOption `json:"options"`
}

// PollResultsResponse is the tally for a poll. Options with zero votes
// are absent from the mapping; consumers default missing keys to 0.
type PollResultsResponse struct {
	PollID  int64           `json:"poll_id"`
	Results map[int64]int64 `json:"results"`
	Total   int64           `json:"total"`
}

// VoteRequest represents the request body for casting a vote.
type VoteRequest struct {
	OptionID int64 `json:"option_id"`
}

// CreatePollRequest represents the request body for creating a poll.
type CreatePollRequest struct {
	Question  i18n.Text   `json:"question"`
	Options   []i18n.Text `json:"options"`
	Active    bool        `json:"active"`
	ExpiresAt *time.Time  `json:"expires_at,omitempty"`
}

// UpdatePollRequest represents the request body for updating a poll.
// ExpiresAt distinguishes "leave unchanged" (absent) from "clear" (null is
// not representable here; send a zero expiry to clear via ClearExpiry).
type UpdatePollRequest struct {
	Question    *i18n.Text `json:"question,omitempty"`
	Active      *bool      `json:"active,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	ClearExpiry bool       `json:"clear_expiry,omitempty"`
}

// withOptions attaches options to each poll.
func (h *Handler) withOptions(r *http.Request, polls []model.Poll) ([]PollWithOptions, error) {
	out := make([]PollWithOptions, 0, len(polls))
	for _, p := range polls {
		options, err := h.store.GetPollOptions(r.Context(), p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, PollWithOptions{Poll: p, Options: options})
	}
	return out, nil
}

// ListActivePolls handles GET /api/polls/active.
func (h *Handler) ListActivePolls(w http.ResponseWriter, r *http.Request) {
	limit := ParseIntParam(r, "limit", defaultActivePollLimit, 1, maxListLimit)
	polls, err := h.store.ListActivePolls(r.Context(), limit)
	if err != nil {
		WriteInternalError(w, "Failed to list active polls")
		return
	}

	withOpts, err := h.withOptions(r, polls)
	if err != nil {
		WriteInternalError(w, "Failed to load poll options")
		return
	}
	WriteSuccess(w, withOpts, nil)
}

// GetPollResults handles GET /api/polls/{id}/results.
func (h *Handler) GetPollResults(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		WriteBadRequest(w, "Invalid poll ID", nil)
		return
	}

	results, err := h.store.PollResults(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			WriteNotFound(w, "Poll not found")
		} else {
			WriteInternalError(w, "Failed to tally poll")
		}
		return
	}

	var total int64
	for _, n := range results {
		total += n
	}
	WriteSuccess(w, PollResultsResponse{PollID: id, Results: results, Total: total}, nil)
}

// Vote handles POST /api/polls/{id}/vote. The poll's active flag and
// expiry are re-checked at vote time: a poll that expired between page
// load and submission rejects the vote.
func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		WriteBadRequest(w, "Invalid poll ID", nil)
		return
	}

	var req VoteRequest
	if err := decodeJSON(r, &req); err != nil || req.OptionID <= 0 {
		WriteValidationError(w, map[string]string{"option_id": "Option is required"})
		return
	}

	poll, err := h.store.GetPollByID(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			WriteNotFound(w, "Poll not found")
		} else {
			WriteInternalError(w, "Failed to retrieve poll")
		}
		return
	}
	if !poll.AcceptsVotesAt(time.Now()) {
		WriteError(w, http.StatusBadRequest, "poll_closed", "Poll is no longer accepting votes", nil)
		return
	}

	response, err := h.store.CreatePollResponse(r.Context(), store.CreatePollResponseParams{
		PollID:    poll.ID,
		OptionID:  req.OptionID,
		IPAddress: middleware.ClientIP(r),
	})
	if err != nil {
		if isNotFound(err) {
			WriteValidationError(w, map[string]string{"option_id": "Unknown option for this poll"})
		} else {
			WriteInternalError(w, "Failed to record vote")
		}
		return
	}

	WriteCreated(w, response)
}

// ListPolls handles GET /api/admin/polls.
func (h *Handler) ListPolls(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, store.DefaultListLimit)
	polls, err := h.store.ListPolls(r.Context(), limit, offset)
	if err != nil {
		WriteInternalError(w, "Failed to list polls")
		return
	}

	withOpts, err := h.withOptions(r, polls)
	if err != nil {
		WriteInternalError(w, "Failed to load poll options")
		return
	}
	WriteSuccess(w, withOpts, &Meta{Limit: limit, Offset: offset})
}

// CreatePoll handles POST /api/admin/polls.
func (h *Handler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req CreatePollRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	fieldErrors := make(map[string]string)
	if req.Question.IsEmpty() {
		fieldErrors["question"] = "Question is required in at least one language"
	}
	if len(req.Options) < 2 {
		fieldErrors["options"] = "At least two options are required"
	}
	for _, opt := range req.Options {
		if opt.IsEmpty() {
			fieldErrors["options"] = "Options cannot be empty"
			break
		}
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	poll, options, err := h.store.CreatePoll(r.Context(), store.CreatePollParams{
		Question:  req.Question,
		Options:   req.Options,
		Active:    req.Active,
		ExpiresAt: req.ExpiresAt,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create poll")
		return
	}

	h.logger.Info("poll created", "category", "poll", "id", poll.ID)
	WriteCreated(w, PollWithOptions{Poll: poll, Options: options})
}

// GetPoll handles GET /api/admin/polls/{id}.
func (h *Handler) GetPoll(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		WriteBadRequest(w, "Invalid poll ID", nil)
		return
	}

	poll, err := h.store.GetPollByID(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			WriteNotFound(w, "Poll not found")
		} else {
			WriteInternalError(w, "Failed to retrieve poll")
		}
		return
	}

	options, err := h.store.GetPollOptions(r.Context(), id)
	if err != nil {
		WriteInternalError(w, "Failed to load poll options")
		return
	}
	WriteSuccess(w, PollWithOptions{Poll: poll, Options: options}, nil)
}

// UpdatePoll handles PUT /api/admin/polls/{id}.
func (h *Handler) UpdatePoll(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		WriteBadRequest(w, "Invalid poll ID", nil)
		return
	}

	var req UpdatePollRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	arg := store.UpdatePollParams{
		Question: req.Question,
		Active:   req.Active,
	}
	if req.ClearExpiry {
		var none *time.Time
		arg.ExpiresAt = &none
	} else if req.ExpiresAt != nil {
		expires := req.ExpiresAt
		arg.ExpiresAt = &expires
	}

	poll, err := h.store.UpdatePoll(r.Context(), id, arg)
	if err != nil {
		if isNotFound(err) {
			WriteNotFound(w, "Poll not found")
		} else {
			WriteInternalError(w, "Failed to update poll")
		}
		return
	}

	options, err := h.store.GetPollOptions(r.Context(), id)
	if err != nil {
		WriteInternalError(w, "Failed to load poll options")
		return
	}
	WriteSuccess(w, PollWithOptions{Poll: poll, Options: options}, nil)
}

// DeletePoll handles DELETE /api/admin/polls/{id}. Options and recorded
// votes go with the poll.
func (h *Handler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		WriteBadRequest(w, "Invalid poll ID", nil)
		return
	}

	if err := h.store.DeletePoll(r.Context(), id); err != nil {
		WriteInternalError(w, "Failed to delete poll")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
