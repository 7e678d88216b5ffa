// internal/service/campaign_service.go
package service

import (
    "fmt"
    "strings"
    "time"

    "github.com/brandhive/creator-journey-backend/internal/model"
    "github.com/brandhive/creator-journey-backend/internal/repository"
)

type CampaignService struct {
    CampaignRepo repository.CampaignRepositoryInterface
    SlotRepo     repository.SlotRepositoryInterface
}

type CampaignDetails struct {
    ID           int                `json:"id"`
    BusinessName string             `json:"business_name"`
    TargetMonth  string             `json:"target_month"`
    JourneyStage model.JourneyStage `json:"journey_stage"`
    CreatedAt    time.Time          `json:"created_at"`
    UpdatedAt    *time.Time         `json:"updated_at"`
    Stats        map[string]int     `json:"stats"`
}

func (s *CampaignService) CreateCampaign(businessName, targetMonth string, slotCount int) (*model.Campaign, error) {
    if strings.TrimSpace(businessName) == "" {
        return nil, fmt.Errorf("business name cannot be empty")
    }
    if _, err := time.Parse("2006-01", targetMonth); err != nil {
        return nil, fmt.Errorf("target month must be YYYY-MM: %w", err)
    }
    if slotCount < 1 {
        slotCount = 1
    }

    c := &model.Campaign{
        BusinessName: strings.TrimSpace(businessName),
        TargetMonth:  targetMonth,
        JourneyStage: model.StageBriefingMeeting,
    }
    if err := s.CampaignRepo.Create(c); err != nil {
        return nil, err
    }
    if err := s.SlotRepo.CreateEmptySlots(c.ID, slotCount); err != nil {
        return nil, err
    }
    return c, nil
}

// ListCampaigns fetches campaigns with pagination
func (s *CampaignService) ListCampaigns(page, pageSize int, stage, month string) ([]model.Campaign, map[string]int, error) {
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 20
    }
    if pageSize > 100 {
        pageSize = 100
    }
    offset := (page - 1) * pageSize

    ptrs, total, err := s.CampaignRepo.ListCampaigns(offset, pageSize, stage, month)
    if err != nil {
        return nil, nil, err
    }

    campaigns := make([]model.Campaign, len(ptrs))
    for i, c := range ptrs {
        campaigns[i] = *c
    }

    totalPages := (total + pageSize - 1) / pageSize
    pagination := map[string]int{
        "page":        page,
        "page_size":   pageSize,
        "total_count": total,
        "total_pages": totalPages,
    }

    return campaigns, pagination, nil
}

// GetCampaignDetailsWithStats fetches a campaign and counts its slot
// milestones for the console's overview cards.
func (s *CampaignService) GetCampaignDetailsWithStats(campaignID int) (*CampaignDetails, error) {
    campaign, err := s.CampaignRepo.GetByID(campaignID)
    if err != nil {
        return nil, err
    }

    slots, err := s.SlotRepo.ListSlots(campaignID)
    if err != nil {
        return nil, err
    }

    stats := map[string]int{
        "slots":            len(slots),
        "active":           0,
        "briefed":          0,
        "visits_confirmed": 0,
        "videos_approved":  0,
        "videos_posted":    0,
    }
    for _, slot := range slots {
        if !slot.Assigned() {
            continue
        }
        stats["active"]++
        if slot.BriefingComplete == model.TriStateYes {
            stats["briefed"]++
        }
        if slot.VisitConfirmed == model.TriStateYes {
            stats["visits_confirmed"]++
        }
        if slot.VideoApproved == model.TriStateYes {
            stats["videos_approved"]++
        }
        if slot.VideoPosted == model.TriStateYes {
            stats["videos_posted"]++
        }
    }

    return &CampaignDetails{
        ID:           campaign.ID,
        BusinessName: campaign.BusinessName,
        TargetMonth:  campaign.TargetMonth,
        JourneyStage: campaign.JourneyStage,
        CreatedAt:    campaign.CreatedAt,
        UpdatedAt:    campaign.UpdatedAt,
        Stats:        stats,
    }, nil
}
