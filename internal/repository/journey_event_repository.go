package repository

import (
	"database/sql"
	"time"

	"github.com/brandhive/creator-journey-backend/internal/model"
)

type JourneyEventRepositoryInterface interface {
	Insert(ev *model.JourneyEvent) error
	ListByCampaign(campaignID int) ([]model.JourneyEvent, error)
}

// JourneyEventRepository persists the campaign audit trail written by the
// worker and the in-process queue subscriber.
type JourneyEventRepository struct {
	DB *sql.DB
}

func (r *JourneyEventRepository) Insert(ev *model.JourneyEvent) error {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}
	query := `
        INSERT INTO journey_events (id, campaign_id, kind, actor, detail, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO NOTHING
    `
	_, err := r.DB.Exec(query, ev.ID, ev.CampaignID, ev.Kind, ev.Actor, ev.Detail, ev.CreatedAt)
	return err
}

func (r *JourneyEventRepository) ListByCampaign(campaignID int) ([]model.JourneyEvent, error) {
	query := `
        SELECT id, campaign_id, kind, actor, detail, created_at
        FROM journey_events
        WHERE campaign_id=$1
        ORDER BY created_at DESC
    `
	rows, err := r.DB.Query(query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []model.JourneyEvent{}
	for rows.Next() {
		var ev model.JourneyEvent
		if err := rows.Scan(&ev.ID, &ev.CampaignID, &ev.Kind, &ev.Actor, &ev.Detail, &ev.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

var _ JourneyEventRepositoryInterface = (*JourneyEventRepository)(nil)
