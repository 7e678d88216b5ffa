// internal/handler/campaign_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/brandhive/creator-journey-backend/internal/errors"
	"github.com/brandhive/creator-journey-backend/internal/repository"
	"github.com/brandhive/creator-journey-backend/internal/service"
)

// CampaignHandler holds the dependencies for the read-side HTTP handlers
type CampaignHandler struct {
	SlotRepo        repository.SlotRepositoryInterface
	CampaignService *service.CampaignService
	JourneyService  *service.JourneyService
}

// ListCampaignsHandler returns a paginated list of campaigns
func (h *CampaignHandler) ListCampaignsHandler(w http.ResponseWriter, r *http.Request) {
	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("page_size")
	page := 1
	pageSize := 10

	if pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	if pageSizeStr != "" {
		if ps, err := strconv.Atoi(pageSizeStr); err == nil && ps > 0 {
			pageSize = ps
		}
	}

	stage := r.URL.Query().Get("stage")
	month := r.URL.Query().Get("month")

	campaigns, pagination, err := h.CampaignService.ListCampaigns(page, pageSize, stage, month)
	if err != nil {
		http.Error(w, "failed to fetch campaigns: "+err.Error(), http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"data":       campaigns,
		"pagination": pagination,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetCampaignHandlerWithStats returns a campaign with slot milestone counts
func (h *CampaignHandler) GetCampaignHandlerWithStats(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}

	details, err := h.CampaignService.GetCampaignDetailsWithStats(id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(details)
}

// ListSlotsHandler returns the campaign's slots, the client's baseline for
// the next edit session.
func (h *CampaignHandler) ListSlotsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}

	slots, err := h.SlotRepo.ListSlots(id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"campaign_id": id,
		"slots":       slots,
	})
}

// FinalizationCheckHandler runs the completion validator without changing
// anything, so the UI can show errors and warnings before the user confirms.
func (h *CampaignHandler) FinalizationCheckHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}

	report, err := h.JourneyService.FinalizationCheck(id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

func campaignID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error) {
	var notFound *appErrors.ErrCampaignNotFound
	if errors.As(err, &notFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
