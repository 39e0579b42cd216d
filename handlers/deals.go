// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/horizon-bay/middleware"
	"github.com/danielhkuo/horizon-bay/models"
	"github.com/danielhkuo/horizon-bay/store"
)

type DealHandler struct {
	store *store.Store
}

func NewDealHandler(st *store.Store) *DealHandler {
	return &DealHandler{store: st}
}

// List handles GET /deals
func (h *DealHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.store.Deals())
}

// Get handles GET /deals/:id
func (h *DealHandler) Get(w http.ResponseWriter, r *http.Request) {
	dealID := r.PathValue("id")

	deal, ok := h.store.Deal(dealID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Deal not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, deal)
}

// UpdateStatus handles PUT /deals/:id/status
func (h *DealHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	dealID := r.PathValue("id")

	var req models.UpdateStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !models.ValidStatus(req.Status) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown status: "+req.Status)
		return
	}

	if _, ok := h.store.Deal(dealID); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Deal not found")
		return
	}

	h.store.UpdateDealStatus(dealID, req.Status)

	slog.Info("deal status updated", "deal_id", dealID, "status", req.Status)

	deal, _ := h.store.Deal(dealID)
	middleware.JSONResponse(w, http.StatusOK, deal)
}

// SetInterest handles PUT /deals/:id/interest
func (h *DealHandler) SetInterest(w http.ResponseWriter, r *http.Request) {
	dealID := r.PathValue("id")

	var req models.SetInterestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.InvestorID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "investor_id is required")
		return
	}

	// SignalNone (empty) is valid input: it clears the entry
	if !models.ValidSignal(req.Signal) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown signal: "+req.Signal)
		return
	}

	if _, ok := h.store.Deal(dealID); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Deal not found")
		return
	}

	h.store.SetInterest(dealID, req.InvestorID, req.Signal)

	slog.Info("interest signal set",
		"deal_id", dealID,
		"investor_id", req.InvestorID,
		"signal", req.Signal,
	)

	deal, _ := h.store.Deal(dealID)
	middleware.JSONResponse(w, http.StatusOK, deal)
}

// SetSoftCircle handles PUT /deals/:id/soft-circle
func (h *DealHandler) SetSoftCircle(w http.ResponseWriter, r *http.Request) {
	dealID := r.PathValue("id")

	var req models.SoftCircleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.InvestorID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "investor_id is required")
		return
	}

	if _, ok := h.store.Deal(dealID); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Deal not found")
		return
	}

	h.store.AddSoftCircle(dealID, req.InvestorID, req.Amount)

	slog.Info("soft circle pledged",
		"deal_id", dealID,
		"investor_id", req.InvestorID,
		"amount", models.FormatCurrency(req.Amount),
	)

	deal, _ := h.store.Deal(dealID)
	middleware.JSONResponse(w, http.StatusOK, deal)
}

// AddQuestion handles POST /deals/:id/questions
func (h *DealHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	dealID := r.PathValue("id")

	var req models.AddQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	authorID := req.AuthorID
	if authorID == "" {
		authorID = models.AuthorAnon
	}

	if _, ok := h.store.Deal(dealID); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Deal not found")
		return
	}

	h.store.AddQuestion(dealID, req.Text, authorID)

	deal, _ := h.store.Deal(dealID)
	question := deal.Questions[len(deal.Questions)-1]

	slog.Info("question added", "deal_id", dealID, "question_id", question.ID, "author_id", authorID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddQuestionResponse{
		Question: question,
	})
}

// UpvoteQuestion handles POST /deals/:id/questions/:questionID/upvote
func (h *DealHandler) UpvoteQuestion(w http.ResponseWriter, r *http.Request) {
	dealID := r.PathValue("id")
	questionID := r.PathValue("questionID")

	deal, ok := h.store.Deal(dealID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Deal not found")
		return
	}

	if !hasQuestion(deal, questionID) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	h.store.UpvoteQuestion(dealID, questionID)

	slog.Info("question upvoted", "deal_id", dealID, "question_id", questionID)

	deal, _ = h.store.Deal(dealID)
	for _, q := range deal.Questions {
		if q.ID == questionID {
			middleware.JSONResponse(w, http.StatusOK, q)
			return
		}
	}
}

func hasQuestion(deal models.Deal, questionID string) bool {
	for _, q := range deal.Questions {
		if q.ID == questionID {
			return true
		}
	}
	return false
}
