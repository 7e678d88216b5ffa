// internal/model/slot.go
package model

import "time"

// TriState is the value of a per-slot delivery milestone.
type TriState string

const (
    TriStatePending TriState = "pending"
    TriStateYes     TriState = "yes"
    TriStateNo      TriState = "no"
)

// Slot is one assignable creator position within a campaign. A slot with an
// empty InfluencerName is unassigned; CreatorID is nil for slots that were
// never persisted with a creator.
type Slot struct {
    Index            int        `db:"idx" json:"index"`
    CreatorID        *int       `db:"creator_id" json:"creator_id,omitempty"`
    InfluencerName   string     `db:"influencer_name" json:"influencer_name"`
    BriefingComplete TriState   `db:"briefing_complete" json:"briefing_complete"`
    VisitConfirmed   TriState   `db:"visit_confirmed" json:"visit_confirmed"`
    VideoApproved    TriState   `db:"video_approved" json:"video_approved"`
    VideoPosted      TriState   `db:"video_posted" json:"video_posted"`
    VisitAt          *time.Time `db:"visit_at" json:"visit_at,omitempty"`
    PostAt           *time.Time `db:"post_at" json:"post_at,omitempty"`
    GuestQuantity    *int       `db:"guest_quantity" json:"guest_quantity,omitempty"`
    InstagramLink    string     `db:"instagram_link" json:"instagram_link"`
    TikTokLink       string     `db:"tiktok_link" json:"tiktok_link"`
}

// Assigned reports whether the slot currently holds a creator, going by the
// display name (the identifier can be stale on cleared slots).
func (s Slot) Assigned() bool {
    return s.InfluencerName != ""
}
