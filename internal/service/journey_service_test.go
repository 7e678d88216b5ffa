package service_test

import (
	"fmt"
	"testing"

	appErrors "github.com/brandhive/creator-journey-backend/internal/errors"
	"github.com/brandhive/creator-journey-backend/internal/model"
	"github.com/brandhive/creator-journey-backend/internal/service"
)

// MockCampaignRepo serves one campaign and records stage updates
type MockCampaignRepo struct {
	Campaign     *model.Campaign
	StageUpdates []model.JourneyStage
	UpdateErr    error
}

func (m *MockCampaignRepo) GetByID(id int) (*model.Campaign, error) {
	if m.Campaign == nil || m.Campaign.ID != id {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	c := *m.Campaign
	return &c, nil
}

func (m *MockCampaignRepo) UpdateStage(campaignID int, stage model.JourneyStage, actor string) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.StageUpdates = append(m.StageUpdates, stage)
	m.Campaign.JourneyStage = stage
	return nil
}

func (m *MockCampaignRepo) Create(c *model.Campaign) error { return nil }

func (m *MockCampaignRepo) ListCampaigns(offset, limit int, stage, month string) ([]*model.Campaign, int, error) {
	return []*model.Campaign{}, 0, nil
}

// MockSlotRepo serves a fixed slot list
type MockSlotRepo struct {
	Slots []model.Slot
}

func (m *MockSlotRepo) ListSlots(campaignID int) ([]model.Slot, error) { return m.Slots, nil }
func (m *MockSlotRepo) AddCreator(campaignID, creatorID int) error     { return nil }
func (m *MockSlotRepo) RemoveCreator(campaignID, creatorID int) error  { return nil }
func (m *MockSlotRepo) SwapCreator(campaignID, oldCreatorID, newCreatorID int) error {
	return nil
}
func (m *MockSlotRepo) UpdateSlotFields(campaignID, slotIndex int, fields map[string]any) error {
	return nil
}
func (m *MockSlotRepo) CreateEmptySlots(campaignID, count int) error { return nil }

func newJourneyFixture(stage model.JourneyStage, slots []model.Slot) (*service.JourneyService, *MockCampaignRepo) {
	repo := &MockCampaignRepo{
		Campaign: &model.Campaign{ID: 1, BusinessName: "Café Aurora", JourneyStage: stage},
	}
	svc := &service.JourneyService{
		CampaignRepo: repo,
		SlotRepo:     &MockSlotRepo{Slots: slots},
	}
	return svc, repo
}

func TestTransitionSameStageIsNoOp(t *testing.T) {
	svc, repo := newJourneyFixture(model.StageScheduling, nil)

	result, err := svc.RequestTransition(1, model.StageScheduling, false, "ops")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.NoOp {
		t.Error("expected a no-op result")
	}
	if result.Changed {
		t.Error("no-op must not report a change")
	}
	if len(repo.StageUpdates) != 0 {
		t.Errorf("no backend call expected, got %v", repo.StageUpdates)
	}
}

func TestTransitionBetweenNonTerminalStagesIsFree(t *testing.T) {
	// No ordering enforcement among the three non-terminal stages.
	pairs := []struct {
		from, to model.JourneyStage
	}{
		{model.StageBriefingMeeting, model.StageFinalDelivery},
		{model.StageFinalDelivery, model.StageBriefingMeeting},
		{model.StageScheduling, model.StageFinalDelivery},
	}

	for _, p := range pairs {
		svc, repo := newJourneyFixture(p.from, nil)
		result, err := svc.RequestTransition(1, p.to, false, "ops")
		if err != nil {
			t.Fatalf("%s -> %s: unexpected error: %v", p.from, p.to, err)
		}
		if !result.Changed {
			t.Errorf("%s -> %s: expected a change", p.from, p.to)
		}
		if len(repo.StageUpdates) != 1 || repo.StageUpdates[0] != p.to {
			t.Errorf("%s -> %s: expected one stage update, got %v", p.from, p.to, repo.StageUpdates)
		}
	}
}

func TestFinalizeRejectedByValidator(t *testing.T) {
	incomplete := completeSlot(0, 1, "Ana")
	incomplete.VideoPosted = model.TriStatePending
	svc, repo := newJourneyFixture(model.StageFinalDelivery, []model.Slot{incomplete})

	result, err := svc.RequestTransition(1, model.StageFinalized, true, "ops")
	if err != nil {
		t.Fatalf("validation rejection is not an error: %v", err)
	}
	if result.Changed {
		t.Error("rejected transition must not change anything")
	}
	if result.Completion == nil || result.Completion.IsValid {
		t.Fatalf("expected the completion report with errors, got %+v", result.Completion)
	}
	if len(result.Completion.Errors) == 0 {
		t.Error("caller must receive the full error list")
	}
	if len(repo.StageUpdates) != 0 {
		t.Errorf("rejection is purely local, got backend calls %v", repo.StageUpdates)
	}
}

func TestFinalizeRequiresConfirmation(t *testing.T) {
	svc, repo := newJourneyFixture(model.StageFinalDelivery, []model.Slot{completeSlot(0, 1, "Ana")})

	result, err := svc.RequestTransition(1, model.StageFinalized, false, "ops")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.RequiresConfirmation {
		t.Error("valid but unconfirmed finalize must ask for confirmation")
	}
	if result.Changed || len(repo.StageUpdates) != 0 {
		t.Error("nothing may change before confirmation")
	}
	if result.Completion == nil || result.Completion.ActiveSlotCount != 1 {
		t.Errorf("confirmation prompt needs the structured summary, got %+v", result.Completion)
	}
}

func TestFinalizeConfirmed(t *testing.T) {
	slot := completeSlot(0, 1, "Ana")
	slot.GuestQuantity = nil // warning only
	svc, repo := newJourneyFixture(model.StageFinalDelivery, []model.Slot{slot})

	result, err := svc.RequestTransition(1, model.StageFinalized, true, "ops")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Changed {
		t.Error("expected the transition to go through")
	}
	if len(repo.StageUpdates) != 1 || repo.StageUpdates[0] != model.StageFinalized {
		t.Errorf("expected one finalize update, got %v", repo.StageUpdates)
	}
	if result.Completion == nil || len(result.Completion.Warnings) != 1 {
		t.Errorf("warnings must still be surfaced, got %+v", result.Completion)
	}
}

func TestCancelledIsNotATarget(t *testing.T) {
	svc, repo := newJourneyFixture(model.StageScheduling, nil)

	_, err := svc.RequestTransition(1, model.StageCancelled, true, "ops")
	if !appErrors.IsInvalidTransition(err) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
	if len(repo.StageUpdates) != 0 {
		t.Errorf("no backend call expected, got %v", repo.StageUpdates)
	}
}

func TestTerminalStageHasNoOutgoingTransitions(t *testing.T) {
	svc, _ := newJourneyFixture(model.StageFinalized, nil)

	_, err := svc.RequestTransition(1, model.StageScheduling, true, "ops")
	if !appErrors.IsInvalidTransition(err) {
		t.Fatalf("expected invalid transition out of finalized, got %v", err)
	}
}

func TestUnknownStageRejected(t *testing.T) {
	svc, _ := newJourneyFixture(model.StageScheduling, nil)

	_, err := svc.RequestTransition(1, model.JourneyStage("archived"), true, "ops")
	if !appErrors.IsInvalidTransition(err) {
		t.Fatalf("expected invalid transition for unknown stage, got %v", err)
	}
}

func TestBackendFailureLeavesStageUnchanged(t *testing.T) {
	svc, repo := newJourneyFixture(model.StageScheduling, nil)
	repo.UpdateErr = fmt.Errorf("backend unavailable")

	_, err := svc.RequestTransition(1, model.StageFinalDelivery, false, "ops")
	if err == nil {
		t.Fatal("expected the backend failure to surface")
	}
	if repo.Campaign.JourneyStage != model.StageScheduling {
		t.Errorf("stage must stay unchanged, got %s", repo.Campaign.JourneyStage)
	}
}

func TestFinalizationCheck(t *testing.T) {
	svc, _ := newJourneyFixture(model.StageFinalDelivery, []model.Slot{completeSlot(0, 1, "Ana")})

	report, err := svc.FinalizationCheck(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.IsValid || report.ActiveSlotCount != 1 {
		t.Errorf("expected valid report with one active slot, got %+v", report)
	}
}
