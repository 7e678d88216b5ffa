package repository

import (
    "database/sql"
    "fmt"
    "time"

    appErrors "github.com/brandhive/creator-journey-backend/internal/errors"
    "github.com/brandhive/creator-journey-backend/internal/model"
)

type CampaignRepositoryInterface interface {
    ListCampaigns(offset, limit int, stage, month string) ([]*model.Campaign, int, error)
    GetByID(id int) (*model.Campaign, error)
    Create(c *model.Campaign) error
    UpdateStage(campaignID int, stage model.JourneyStage, actor string) error
}

type CampaignRepository struct {
    DB *sql.DB
}

func (r *CampaignRepository) Create(c *model.Campaign) error {
    c.CreatedAt = time.Now()
    if c.JourneyStage == "" {
        c.JourneyStage = model.StageBriefingMeeting
    }
    query := `
        INSERT INTO campaigns (business_name, target_month, journey_stage, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
    return r.DB.QueryRow(query, c.BusinessName, c.TargetMonth, c.JourneyStage, c.CreatedAt).Scan(&c.ID)
}

func (r *CampaignRepository) UpdateStage(campaignID int, stage model.JourneyStage, actor string) error {
    query := `UPDATE campaigns SET journey_stage=$1, updated_at=$2, updated_by=$3 WHERE id=$4`
    res, err := r.DB.Exec(query, stage, time.Now(), actor, campaignID)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return appErrors.NewCampaignNotFound(campaignID)
    }
    return nil
}

func (r *CampaignRepository) GetByID(id int) (*model.Campaign, error) {
    query := `
        SELECT id, business_name, target_month, journey_stage, created_at, updated_at
        FROM campaigns WHERE id=$1
    `
    var c model.Campaign
    err := r.DB.QueryRow(query, id).Scan(&c.ID, &c.BusinessName, &c.TargetMonth, &c.JourneyStage, &c.CreatedAt, &c.UpdatedAt)
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewCampaignNotFound(id)
        }
        return nil, err
    }
    return &c, nil
}

// ListCampaigns filters by journey stage and target month; finalized and
// cancelled campaigns only show up when their stage is asked for explicitly,
// matching the active-journey views.
func (r *CampaignRepository) ListCampaigns(offset, limit int, stage, month string) ([]*model.Campaign, int, error) {
    campaigns := []*model.Campaign{}
    query := `SELECT id, business_name, target_month, journey_stage, created_at, updated_at FROM campaigns WHERE 1=1`
    args := []interface{}{}
    argPos := 1

    if stage != "" {
        query += fmt.Sprintf(" AND journey_stage=$%d", argPos)
        args = append(args, stage)
        argPos++
    } else {
        query += fmt.Sprintf(" AND journey_stage NOT IN ($%d, $%d)", argPos, argPos+1)
        args = append(args, model.StageFinalized, model.StageCancelled)
        argPos += 2
    }
    if month != "" {
        query += fmt.Sprintf(" AND target_month=$%d", argPos)
        args = append(args, month)
        argPos++
    }

    query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
    args = append(args, limit, offset)

    rows, err := r.DB.Query(query, args...)
    if err != nil {
        return nil, 0, err
    }
    defer rows.Close()

    for rows.Next() {
        c := &model.Campaign{}
        if err := rows.Scan(&c.ID, &c.BusinessName, &c.TargetMonth, &c.JourneyStage, &c.CreatedAt, &c.UpdatedAt); err != nil {
            return nil, 0, err
        }
        campaigns = append(campaigns, c)
    }

    countQuery := `SELECT COUNT(*) FROM campaigns WHERE 1=1`
    argsCount := []interface{}{}
    argPosCount := 1
    if stage != "" {
        countQuery += fmt.Sprintf(" AND journey_stage=$%d", argPosCount)
        argsCount = append(argsCount, stage)
        argPosCount++
    } else {
        countQuery += fmt.Sprintf(" AND journey_stage NOT IN ($%d, $%d)", argPosCount, argPosCount+1)
        argsCount = append(argsCount, model.StageFinalized, model.StageCancelled)
        argPosCount += 2
    }
    if month != "" {
        countQuery += fmt.Sprintf(" AND target_month=$%d", argPosCount)
        argsCount = append(argsCount, month)
    }

    var total int
    if err := r.DB.QueryRow(countQuery, argsCount...).Scan(&total); err != nil {
        return nil, 0, err
    }

    return campaigns, total, nil
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
