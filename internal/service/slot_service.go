// internal/service/slot_service.go
package service

import (
    "encoding/json"
    "log"

    "github.com/google/uuid"

    "github.com/brandhive/creator-journey-backend/internal/model"
    "github.com/brandhive/creator-journey-backend/internal/queue"
    "github.com/brandhive/creator-journey-backend/internal/repository"
)

// SlotService runs the save cycle: classify the edit buffer against the
// baseline, replay the change set through the dispatcher, aggregate the
// outcomes and re-fetch the slots as the new baseline.
type SlotService struct {
    SlotRepo    repository.SlotRepositoryInterface
    CreatorRepo repository.CreatorRepositoryInterface
    Queue       queue.Queue
}

// SaveSlotsResult pairs the aggregated report with the refreshed baseline
// the client should adopt.
type SaveSlotsResult struct {
    Report SaveReport   `json:"report"`
    Slots  []model.Slot `json:"slots"`
}

func (s *SlotService) SaveSlots(campaignID int, edited []model.Slot, actor string) (*SaveSlotsResult, error) {
    baseline, err := s.SlotRepo.ListSlots(campaignID)
    if err != nil {
        return nil, err
    }

    changeSet := ClassifySlotChanges(baseline, edited)
    if changeSet.Empty() {
        return &SaveSlotsResult{
            Report: AggregateResults(nil),
            Slots:  baseline,
        }, nil
    }

    log.Printf("Dispatching %d change(s) for campaign %d\n", changeSet.Len(), campaignID)

    dispatcher := &Dispatcher{Backend: s.SlotRepo, Directory: s.CreatorRepo}
    results := dispatcher.Dispatch(campaignID, changeSet)
    report := AggregateResults(results)

    if !report.Success {
        log.Println("⚠️ save cycle finished with failures:", report.Summary())
    }

    s.publishSaved(campaignID, actor, report)

    // Re-fetch regardless of partial failure: completed operations already
    // changed the backend and the client needs the fresh baseline.
    refreshed, err := s.SlotRepo.ListSlots(campaignID)
    if err != nil {
        return nil, err
    }

    return &SaveSlotsResult{Report: report, Slots: refreshed}, nil
}

func (s *SlotService) publishSaved(campaignID int, actor string, report SaveReport) {
    if s.Queue == nil {
        return
    }
    detail, _ := json.Marshal(map[string]any{
        "batch_id":      report.BatchID,
        "summary":       report.Summary(),
        "success_count": report.SuccessCount,
        "failures":      len(report.Failures),
        "warnings":      len(report.Warnings),
    })
    ev := model.JourneyEvent{
        ID:         uuid.NewString(),
        CampaignID: campaignID,
        Kind:       model.EventSlotsSaved,
        Actor:      actor,
        Detail:     string(detail),
    }
    if err := s.Queue.Publish(queue.TopicJourneyEvents, ev); err != nil {
        log.Println("⚠️ failed to publish journey event:", err)
    }
}
