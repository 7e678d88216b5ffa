// internal/service/completion_validator.go
package service

import (
    "fmt"

    "github.com/brandhive/creator-journey-backend/internal/model"
)

// CompletionReport is the result of evaluating a campaign's slots against
// the finalization rule set. Warnings never block validity; they are
// surfaced so the caller can show them before an irreversible transition.
type CompletionReport struct {
    IsValid         bool     `json:"is_valid"`
    Errors          []string `json:"errors"`
    Warnings        []string `json:"warnings"`
    ActiveSlotCount int      `json:"active_slot_count"`
}

// milestone pairs a status field's value with its column name so errors can
// name the exact failing field.
type milestone struct {
    name  string
    value model.TriState
}

// ValidateCompletion checks every active slot (non-empty influencer name)
// against the completeness rules gating the finalized stage:
//   - all four delivery milestones must be "yes"
//   - visit and post dates must both be set
//   - at least one of the instagram/tiktok links must be present
//   - a missing guest quantity is only a warning
//
// A campaign with zero active slots is invalid outright and no further
// rules run.
func ValidateCompletion(slots []model.Slot) CompletionReport {
    report := CompletionReport{
        Errors:   []string{},
        Warnings: []string{},
    }

    active := []model.Slot{}
    for _, s := range slots {
        if s.Assigned() {
            active = append(active, s)
        }
    }
    report.ActiveSlotCount = len(active)

    if len(active) == 0 {
        report.Errors = append(report.Errors, "campaign has no active creator slots")
        return report
    }

    for _, s := range active {
        milestones := []milestone{
            {"briefing_complete", s.BriefingComplete},
            {"visit_confirmed", s.VisitConfirmed},
            {"video_approved", s.VideoApproved},
            {"video_posted", s.VideoPosted},
        }
        for _, m := range milestones {
            if m.value != model.TriStateYes {
                report.Errors = append(report.Errors,
                    fmt.Sprintf("creator %s: %s is %s, must be yes", s.InfluencerName, m.name, m.value))
            }
        }

        if s.VisitAt == nil {
            report.Errors = append(report.Errors,
                fmt.Sprintf("creator %s: visit date not set", s.InfluencerName))
        }
        if s.PostAt == nil {
            report.Errors = append(report.Errors,
                fmt.Sprintf("creator %s: post date not set", s.InfluencerName))
        }

        if s.InstagramLink == "" && s.TikTokLink == "" {
            report.Errors = append(report.Errors,
                fmt.Sprintf("creator %s: no instagram or tiktok link", s.InfluencerName))
        }

        if s.GuestQuantity == nil {
            report.Warnings = append(report.Warnings,
                fmt.Sprintf("creator %s: guest quantity not set", s.InfluencerName))
        }
    }

    report.IsValid = len(report.Errors) == 0
    return report
}
