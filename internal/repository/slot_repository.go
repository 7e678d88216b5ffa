package repository

import (
    "database/sql"
    "fmt"

    "github.com/lib/pq"

    appErrors "github.com/brandhive/creator-journey-backend/internal/errors"
    "github.com/brandhive/creator-journey-backend/internal/model"
)

// SlotRepositoryInterface is the backend the reconciliation engine writes
// through. Add/remove/swap address creators, not indices: the store decides
// slot placement (first empty slot for additions, in-place for swaps).
type SlotRepositoryInterface interface {
    ListSlots(campaignID int) ([]model.Slot, error)
    AddCreator(campaignID, creatorID int) error
    RemoveCreator(campaignID, creatorID int) error
    SwapCreator(campaignID, oldCreatorID, newCreatorID int) error
    UpdateSlotFields(campaignID, slotIndex int, fields map[string]any) error
    CreateEmptySlots(campaignID, count int) error
}

type SlotRepository struct {
    DB *sql.DB
}

const pqUniqueViolation = "23505"

// slotColumns whitelists the scalar columns a field update may touch.
var slotColumns = map[string]bool{
    "briefing_complete": true,
    "visit_confirmed":   true,
    "video_approved":    true,
    "video_posted":      true,
    "visit_at":          true,
    "post_at":           true,
    "guest_quantity":    true,
    "instagram_link":    true,
    "tiktok_link":       true,
}

func (r *SlotRepository) ListSlots(campaignID int) ([]model.Slot, error) {
    query := `
        SELECT idx, creator_id, influencer_name,
               briefing_complete, visit_confirmed, video_approved, video_posted,
               visit_at, post_at, guest_quantity, instagram_link, tiktok_link
        FROM campaign_slots
        WHERE campaign_id=$1
        ORDER BY idx ASC
    `
    rows, err := r.DB.Query(query, campaignID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    slots := []model.Slot{}
    for rows.Next() {
        var s model.Slot
        var creatorID sql.NullInt64
        var guests sql.NullInt64
        if err := rows.Scan(
            &s.Index, &creatorID, &s.InfluencerName,
            &s.BriefingComplete, &s.VisitConfirmed, &s.VideoApproved, &s.VideoPosted,
            &s.VisitAt, &s.PostAt, &guests, &s.InstagramLink, &s.TikTokLink,
        ); err != nil {
            return nil, err
        }
        if creatorID.Valid {
            id := int(creatorID.Int64)
            s.CreatorID = &id
        }
        if guests.Valid {
            g := int(guests.Int64)
            s.GuestQuantity = &g
        }
        slots = append(slots, s)
    }
    return slots, rows.Err()
}

// AddCreator assigns the creator to the campaign's first empty slot,
// appending a new slot when none is free. A unique index on
// (campaign_id, creator_id) turns duplicate submissions into
// ErrDuplicateAssignment.
func (r *SlotRepository) AddCreator(campaignID, creatorID int) error {
    query := `
        UPDATE campaign_slots
        SET creator_id=$2,
            influencer_name=(SELECT name FROM creators WHERE id=$2),
            updated_at=NOW()
        WHERE campaign_id=$1
          AND idx = (
              SELECT idx FROM campaign_slots
              WHERE campaign_id=$1 AND influencer_name=''
              ORDER BY idx ASC LIMIT 1
          )
    `
    res, err := r.DB.Exec(query, campaignID, creatorID)
    if err != nil {
        return mapAssignmentError(err, creatorID)
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n > 0 {
        return nil
    }

    // No empty slot left: append one.
    appendQuery := `
        INSERT INTO campaign_slots (campaign_id, idx, creator_id, influencer_name,
            briefing_complete, visit_confirmed, video_approved, video_posted,
            instagram_link, tiktok_link, created_at)
        VALUES ($1,
            (SELECT COALESCE(MAX(idx)+1, 0) FROM campaign_slots WHERE campaign_id=$1),
            $2, (SELECT name FROM creators WHERE id=$2),
            'pending', 'pending', 'pending', 'pending', '', '', NOW())
    `
    if _, err := r.DB.Exec(appendQuery, campaignID, creatorID); err != nil {
        return mapAssignmentError(err, creatorID)
    }
    return nil
}

// RemoveCreator clears the creator's slot back to blank. The slot row stays,
// keeping slot count and ordering stable.
func (r *SlotRepository) RemoveCreator(campaignID, creatorID int) error {
    query := `
        UPDATE campaign_slots
        SET creator_id=NULL, influencer_name='',
            briefing_complete='pending', visit_confirmed='pending',
            video_approved='pending', video_posted='pending',
            visit_at=NULL, post_at=NULL, guest_quantity=NULL,
            instagram_link='', tiktok_link='',
            updated_at=NOW()
        WHERE campaign_id=$1 AND creator_id=$2
    `
    res, err := r.DB.Exec(query, campaignID, creatorID)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return fmt.Errorf("creator %d is not assigned to campaign %d", creatorID, campaignID)
    }
    return nil
}

// SwapCreator replaces one creator with another in a single UPDATE, so the
// slot is never observed empty and the slot count never moves.
func (r *SlotRepository) SwapCreator(campaignID, oldCreatorID, newCreatorID int) error {
    query := `
        UPDATE campaign_slots
        SET creator_id=$3,
            influencer_name=(SELECT name FROM creators WHERE id=$3),
            updated_at=NOW()
        WHERE campaign_id=$1 AND creator_id=$2
    `
    res, err := r.DB.Exec(query, campaignID, oldCreatorID, newCreatorID)
    if err != nil {
        return mapAssignmentError(err, newCreatorID)
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return fmt.Errorf("creator %d is not assigned to campaign %d", oldCreatorID, campaignID)
    }
    return nil
}

func (r *SlotRepository) UpdateSlotFields(campaignID, slotIndex int, fields map[string]any) error {
    if len(fields) == 0 {
        return nil
    }
    query := `UPDATE campaign_slots SET updated_at=NOW()`
    args := []interface{}{}
    argPos := 1

    for col, val := range fields {
        if !slotColumns[col] {
            return fmt.Errorf("unknown slot column %q", col)
        }
        query += fmt.Sprintf(", %s=$%d", col, argPos)
        args = append(args, val)
        argPos++
    }

    query += fmt.Sprintf(" WHERE campaign_id=$%d AND idx=$%d", argPos, argPos+1)
    args = append(args, campaignID, slotIndex)

    res, err := r.DB.Exec(query, args...)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return fmt.Errorf("slot %d not found in campaign %d", slotIndex, campaignID)
    }
    return nil
}

func (r *SlotRepository) CreateEmptySlots(campaignID, count int) error {
    query := `
        INSERT INTO campaign_slots (campaign_id, idx, influencer_name,
            briefing_complete, visit_confirmed, video_approved, video_posted,
            instagram_link, tiktok_link, created_at)
        VALUES ($1, $2, '', 'pending', 'pending', 'pending', 'pending', '', '', NOW())
    `
    for i := 0; i < count; i++ {
        if _, err := r.DB.Exec(query, campaignID, i); err != nil {
            return err
        }
    }
    return nil
}

func mapAssignmentError(err error, creatorID int) error {
    if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pqUniqueViolation {
        return appErrors.NewDuplicateAssignment(creatorID)
    }
    return err
}

var _ SlotRepositoryInterface = (*SlotRepository)(nil)
