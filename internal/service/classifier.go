// internal/service/classifier.go
package service

import (
    "strings"
    "time"

    "github.com/brandhive/creator-journey-backend/internal/model"
)

// ClassifySlotChanges diffs an edit buffer against the last-synced baseline
// and classifies every creator change as exactly one of swap, addition or
// removal. Scalar edits on slots whose creator did not change come out as
// field updates. The function is pure: it never resolves names to
// identifiers (that is the dispatcher's job) and never errors.
func ClassifySlotChanges(baseline, edited []model.Slot) model.ChangeSet {
    var cs model.ChangeSet

    for i, ed := range edited {
        edName := strings.TrimSpace(ed.InfluencerName)

        if i >= len(baseline) {
            // Row appended during the edit session. Unnamed appended rows
            // have no backend slot yet; nothing to classify.
            if edName != "" {
                cs.Additions = append(cs.Additions, model.AdditionChange{SlotIndex: i, Name: edName})
            }
            continue
        }

        base := baseline[i]
        baseName := strings.TrimSpace(base.InfluencerName)

        switch {
        case baseName == "" && edName == "":
            if fields := diffSlotFields(base, ed); len(fields) > 0 {
                cs.FieldUpdates = append(cs.FieldUpdates, model.FieldUpdate{SlotIndex: i, Fields: fields})
            }

        case baseName == "" && edName != "":
            cs.Additions = append(cs.Additions, model.AdditionChange{SlotIndex: i, Name: edName})

        case baseName != "" && edName == "":
            // A removal needs a resolvable identifier. Baseline slots
            // without one were never persisted with a creator; skip them
            // rather than erroring.
            if base.CreatorID != nil {
                cs.Removals = append(cs.Removals, model.RemovalChange{
                    SlotIndex: i,
                    CreatorID: *base.CreatorID,
                    Name:      baseName,
                })
            }

        case !strings.EqualFold(baseName, edName):
            // Swap takes precedence: one logical change, never a removal
            // plus an addition for the same index.
            cs.Swaps = append(cs.Swaps, model.SwapChange{
                SlotIndex:     i,
                FromCreatorID: base.CreatorID,
                FromName:      baseName,
                ToName:        edName,
            })

        default:
            if fields := diffSlotFields(base, ed); len(fields) > 0 {
                cs.FieldUpdates = append(cs.FieldUpdates, model.FieldUpdate{SlotIndex: i, Fields: fields})
            }
        }
    }

    // Baseline rows past the end of the edit buffer were deleted in the
    // session; treat them like cleared slots.
    for i := len(edited); i < len(baseline); i++ {
        base := baseline[i]
        baseName := strings.TrimSpace(base.InfluencerName)
        if baseName == "" || base.CreatorID == nil {
            continue
        }
        cs.Removals = append(cs.Removals, model.RemovalChange{
            SlotIndex: i,
            CreatorID: *base.CreatorID,
            Name:      baseName,
        })
    }

    return cs
}

// diffSlotFields compares the scalar fields of two slots at the same index
// and returns the edited values keyed by column name.
func diffSlotFields(base, ed model.Slot) map[string]any {
    fields := map[string]any{}

    if base.BriefingComplete != ed.BriefingComplete {
        fields["briefing_complete"] = ed.BriefingComplete
    }
    if base.VisitConfirmed != ed.VisitConfirmed {
        fields["visit_confirmed"] = ed.VisitConfirmed
    }
    if base.VideoApproved != ed.VideoApproved {
        fields["video_approved"] = ed.VideoApproved
    }
    if base.VideoPosted != ed.VideoPosted {
        fields["video_posted"] = ed.VideoPosted
    }
    if !timePtrEqual(base.VisitAt, ed.VisitAt) {
        fields["visit_at"] = ed.VisitAt
    }
    if !timePtrEqual(base.PostAt, ed.PostAt) {
        fields["post_at"] = ed.PostAt
    }
    if !intPtrEqual(base.GuestQuantity, ed.GuestQuantity) {
        fields["guest_quantity"] = ed.GuestQuantity
    }
    if base.InstagramLink != ed.InstagramLink {
        fields["instagram_link"] = ed.InstagramLink
    }
    if base.TikTokLink != ed.TikTokLink {
        fields["tiktok_link"] = ed.TikTokLink
    }

    return fields
}

func timePtrEqual(a, b *time.Time) bool {
    if a == nil || b == nil {
        return a == b
    }
    return a.Equal(*b)
}

func intPtrEqual(a, b *int) bool {
    if a == nil || b == nil {
        return a == b
    }
    return *a == *b
}
