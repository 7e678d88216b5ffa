// internal/controller/campaign_controller.go
package controller

import (
    "encoding/json"
    "errors"
    "log"
    "net/http"
    "os"
    "strconv"

    "github.com/go-chi/chi/v5"
    "github.com/streadway/amqp"

    appErrors "github.com/brandhive/creator-journey-backend/internal/errors"
    "github.com/brandhive/creator-journey-backend/internal/model"
    "github.com/brandhive/creator-journey-backend/internal/queue"
    "github.com/brandhive/creator-journey-backend/internal/service"
)

type CampaignController struct {
    CampaignService *service.CampaignService
    SlotService     *service.SlotService
    JourneyService  *service.JourneyService
}

func (c *CampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
    var body struct {
        BusinessName string `json:"business_name"`
        TargetMonth  string `json:"target_month"`
        SlotCount    int    `json:"slot_count"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    campaign, err := c.CampaignService.CreateCampaign(body.BusinessName, body.TargetMonth, body.SlotCount)
    if err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusCreated)
    json.NewEncoder(w).Encode(campaign)
}

// SaveSlots runs one reconciliation cycle for the campaign's slots: the
// request body is the client's full edit buffer; the response carries the
// aggregated report plus the refreshed baseline.
func (c *CampaignController) SaveSlots(w http.ResponseWriter, r *http.Request) {
    idStr := chi.URLParam(r, "id")
    id, err := strconv.Atoi(idStr)
    if err != nil {
        http.Error(w, "invalid campaign id", http.StatusBadRequest)
        return
    }

    var body struct {
        Slots []model.Slot `json:"slots"`
        Actor string       `json:"actor"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    result, err := c.SlotService.SaveSlots(id, body.Slots, body.Actor)
    if err != nil {
        status := http.StatusInternalServerError
        var notFound *appErrors.ErrCampaignNotFound
        if errors.As(err, &notFound) {
            status = http.StatusNotFound
        }
        http.Error(w, err.Error(), status)
        return
    }

    publishJourneyEvent(model.JourneyEvent{
        CampaignID: id,
        Kind:       model.EventSlotsSaved,
        Actor:      body.Actor,
        Detail:     result.Report.Summary(),
        ID:         result.Report.BatchID,
    })

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(result)
}

// UpdateStatus requests a journey stage transition. Finalization must carry
// confirmed=true once the validator passes; the first call returns the
// confirmation summary instead of changing anything.
func (c *CampaignController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
    idStr := chi.URLParam(r, "id")
    id, err := strconv.Atoi(idStr)
    if err != nil {
        http.Error(w, "invalid campaign id", http.StatusBadRequest)
        return
    }

    var body struct {
        Target    model.JourneyStage `json:"target"`
        Confirmed bool               `json:"confirmed"`
        Actor     string             `json:"actor"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    result, err := c.JourneyService.RequestTransition(id, body.Target, body.Confirmed, body.Actor)
    if err != nil {
        status := http.StatusInternalServerError
        var notFound *appErrors.ErrCampaignNotFound
        if errors.As(err, &notFound) {
            status = http.StatusNotFound
        } else if appErrors.IsInvalidTransition(err) {
            status = http.StatusConflict
        }
        http.Error(w, err.Error(), status)
        return
    }

    if result.Changed && result.To == model.StageFinalized {
        publishJourneyEvent(model.JourneyEvent{
            CampaignID: id,
            Kind:       model.EventFinalized,
            Actor:      body.Actor,
            Detail:     "campaign finalized",
        })
    }

    w.Header().Set("Content-Type", "application/json")
    if result.Completion != nil && !result.Completion.IsValid {
        w.WriteHeader(http.StatusUnprocessableEntity)
    }
    json.NewEncoder(w).Encode(result)
}

// publishJourneyEvent mirrors the event onto the durable amqp queue for the
// worker. Best effort: the save itself already succeeded, so a broker
// outage only loses the mirror copy (the in-process subscriber still
// recorded it).
func publishJourneyEvent(ev model.JourneyEvent) {
    url := os.Getenv("AMQP_URL")
    if url == "" {
        return
    }

    conn, err := amqp.Dial(url)
    if err != nil {
        log.Println("⚠️ Failed to connect to queue:", err)
        return
    }
    defer conn.Close()

    ch, err := conn.Channel()
    if err != nil {
        log.Println("⚠️ Failed to open queue channel:", err)
        return
    }
    defer ch.Close()

    q, err := ch.QueueDeclare(
        queue.TopicJourneyEvents,
        true,
        false,
        false,
        false,
        nil,
    )
    if err != nil {
        log.Println("⚠️ Failed to declare queue:", err)
        return
    }

    body, _ := json.Marshal(ev)
    err = ch.Publish(
        "",
        q.Name,
        false,
        false,
        amqp.Publishing{
            ContentType: "application/json",
            Body:        body,
        },
    )
    if err != nil {
        log.Println("Failed to publish journey event:", err)
    }
}
