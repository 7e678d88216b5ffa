// internal/model/journey_event.go
package model

import "time"

// JourneyEventKind identifies what happened to a campaign.
type JourneyEventKind string

const (
    EventSlotsSaved   JourneyEventKind = "slots_saved"
    EventStageChanged JourneyEventKind = "stage_changed"
    EventFinalized    JourneyEventKind = "finalized"
)

// JourneyEvent is one audit-trail entry for a campaign. Detail holds a JSON
// payload (save report summary, from/to stages).
type JourneyEvent struct {
    ID         string           `db:"id" json:"id"`
    CampaignID int              `db:"campaign_id" json:"campaign_id"`
    Kind       JourneyEventKind `db:"kind" json:"kind"`
    Actor      string           `db:"actor" json:"actor"`
    Detail     string           `db:"detail" json:"detail"`
    CreatedAt  time.Time        `db:"created_at" json:"created_at"`
}
