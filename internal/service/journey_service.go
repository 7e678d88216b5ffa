// internal/service/journey_service.go
package service

import (
    "encoding/json"
    "log"

    "github.com/google/uuid"

    appErrors "github.com/brandhive/creator-journey-backend/internal/errors"
    "github.com/brandhive/creator-journey-backend/internal/model"
    "github.com/brandhive/creator-journey-backend/internal/queue"
    "github.com/brandhive/creator-journey-backend/internal/repository"
)

// JourneyService governs campaign stage transitions. The three non-terminal
// stages move freely among each other; the finalized stage is gated by the
// completion validator plus an explicit confirmation, and terminal stages
// have no outgoing transitions. Cancellation is an out-of-band
// administrative action and is rejected as a transition target here.
type JourneyService struct {
    CampaignRepo repository.CampaignRepositoryInterface
    SlotRepo     repository.SlotRepositoryInterface
    Queue        queue.Queue
}

// TransitionResult reports what a transition request did. A request that
// passed validation but still needs the user's confirmation comes back with
// RequiresConfirmation set and Changed false; Completion carries the
// structured summary (active slot count, warnings) that drives the prompt.
type TransitionResult struct {
    CampaignID           int                `json:"campaign_id"`
    From                 model.JourneyStage `json:"from"`
    To                   model.JourneyStage `json:"to"`
    Changed              bool               `json:"changed"`
    NoOp                 bool               `json:"no_op"`
    RequiresConfirmation bool               `json:"requires_confirmation,omitempty"`
    Completion           *CompletionReport  `json:"completion,omitempty"`
}

// FinalizationCheck runs the completion validator without touching the
// campaign, for the pre-confirmation summary.
func (s *JourneyService) FinalizationCheck(campaignID int) (*CompletionReport, error) {
    if _, err := s.CampaignRepo.GetByID(campaignID); err != nil {
        return nil, err
    }
    slots, err := s.SlotRepo.ListSlots(campaignID)
    if err != nil {
        return nil, err
    }
    report := ValidateCompletion(slots)
    return &report, nil
}

// RequestTransition moves a campaign to the target stage. Rejections before
// the backend call (validation failure, pending confirmation) are purely
// local: the result describes them and no partial state exists. A backend
// failure after a passing guard is returned as an error with the stage
// unchanged; it is not retried.
func (s *JourneyService) RequestTransition(campaignID int, target model.JourneyStage, confirmed bool, actor string) (*TransitionResult, error) {
    campaign, err := s.CampaignRepo.GetByID(campaignID)
    if err != nil {
        return nil, err
    }
    current := campaign.JourneyStage

    result := &TransitionResult{
        CampaignID: campaignID,
        From:       current,
        To:         target,
    }

    if !target.Known() {
        return nil, appErrors.NewInvalidTransition(string(current), string(target))
    }

    // Requesting the stage the campaign is already in is a no-op, detected
    // before any backend call.
    if target == current {
        result.NoOp = true
        return result, nil
    }

    if current.Terminal() {
        return nil, appErrors.NewInvalidTransition(string(current), string(target))
    }
    if target == model.StageCancelled {
        return nil, appErrors.NewInvalidTransition(string(current), string(target))
    }

    if target == model.StageFinalized {
        slots, err := s.SlotRepo.ListSlots(campaignID)
        if err != nil {
            return nil, err
        }
        report := ValidateCompletion(slots)
        result.Completion = &report

        if !report.IsValid {
            log.Println("⚠️ finalization rejected for campaign", campaignID, "-", len(report.Errors), "error(s)")
            return result, nil
        }
        if !confirmed {
            result.RequiresConfirmation = true
            return result, nil
        }
    }

    if err := s.CampaignRepo.UpdateStage(campaignID, target, actor); err != nil {
        return nil, err
    }
    result.Changed = true

    kind := model.EventStageChanged
    if target == model.StageFinalized {
        kind = model.EventFinalized
    }
    s.publishEvent(campaignID, kind, actor, map[string]any{
        "from": current,
        "to":   target,
    })

    return result, nil
}

func (s *JourneyService) publishEvent(campaignID int, kind model.JourneyEventKind, actor string, detail map[string]any) {
    if s.Queue == nil {
        return
    }
    payload, _ := json.Marshal(detail)
    ev := model.JourneyEvent{
        ID:         uuid.NewString(),
        CampaignID: campaignID,
        Kind:       kind,
        Actor:      actor,
        Detail:     string(payload),
    }
    if err := s.Queue.Publish(queue.TopicJourneyEvents, ev); err != nil {
        log.Println("⚠️ failed to publish journey event:", err)
    }
}
