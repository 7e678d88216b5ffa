// internal/model/campaign.go
package model

import "time"

// JourneyStage is a campaign's position in the delivery journey. The set is
// closed; status values are never compared as free-form strings outside this
// package.
type JourneyStage string

const (
    StageBriefingMeeting JourneyStage = "briefing_meeting"
    StageScheduling      JourneyStage = "scheduling"
    StageFinalDelivery   JourneyStage = "final_delivery"
    StageFinalized       JourneyStage = "finalized"
    StageCancelled       JourneyStage = "cancelled"
)

// Terminal reports whether no further transition is permitted from s.
func (s JourneyStage) Terminal() bool {
    return s == StageFinalized || s == StageCancelled
}

// Known reports whether s belongs to the closed stage set.
func (s JourneyStage) Known() bool {
    switch s {
    case StageBriefingMeeting, StageScheduling, StageFinalDelivery, StageFinalized, StageCancelled:
        return true
    }
    return false
}

type Campaign struct {
    ID           int          `db:"id" json:"id"`
    BusinessName string       `db:"business_name" json:"business_name"`
    TargetMonth  string       `db:"target_month" json:"target_month"`
    JourneyStage JourneyStage `db:"journey_stage" json:"journey_stage"`
    CreatedAt    time.Time    `db:"created_at" json:"created_at"`
    UpdatedAt    *time.Time   `db:"updated_at" json:"updated_at,omitempty"`
}
