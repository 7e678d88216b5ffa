package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/brandhive/creator-journey-backend/internal/model"
	"github.com/brandhive/creator-journey-backend/internal/service"
)

func completeSlot(idx int, creatorID int, name string) model.Slot {
	visit := time.Date(2026, 9, 10, 19, 0, 0, 0, time.UTC)
	post := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)
	return model.Slot{
		Index:            idx,
		CreatorID:        intPtr(creatorID),
		InfluencerName:   name,
		BriefingComplete: model.TriStateYes,
		VisitConfirmed:   model.TriStateYes,
		VideoApproved:    model.TriStateYes,
		VideoPosted:      model.TriStateYes,
		VisitAt:          timePtr(visit),
		PostAt:           timePtr(post),
		GuestQuantity:    intPtr(1),
		InstagramLink:    "https://instagram.com/p/abc",
	}
}

func TestValidateNoActiveSlots(t *testing.T) {
	report := service.ValidateCompletion([]model.Slot{})
	if report.IsValid {
		t.Error("expected invalid report for zero slots")
	}
	if len(report.Errors) != 1 {
		t.Errorf("expected exactly one error, got %v", report.Errors)
	}
	if report.ActiveSlotCount != 0 {
		t.Errorf("expected active slot count 0, got %d", report.ActiveSlotCount)
	}

	// Empty slots are not active; same outcome.
	report = service.ValidateCompletion([]model.Slot{emptySlot(0), emptySlot(1)})
	if report.IsValid || len(report.Errors) != 1 {
		t.Errorf("expected single-error invalid report, got %+v", report)
	}
}

func TestValidateFullyComplete(t *testing.T) {
	slots := []model.Slot{
		completeSlot(0, 1, "Ana"),
		completeSlot(1, 2, "Bia"),
		emptySlot(2), // empty slots are ignored
	}

	report := service.ValidateCompletion(slots)
	if !report.IsValid {
		t.Errorf("expected valid report, got errors: %v", report.Errors)
	}
	if len(report.Errors) != 0 {
		t.Errorf("expected zero errors, got %v", report.Errors)
	}
	if report.ActiveSlotCount != 2 {
		t.Errorf("expected 2 active slots, got %d", report.ActiveSlotCount)
	}
}

func TestValidateSingleFailingMilestone(t *testing.T) {
	slot := completeSlot(0, 1, "Ana")
	slot.VideoPosted = model.TriStatePending

	report := service.ValidateCompletion([]model.Slot{slot})
	if report.IsValid {
		t.Error("expected invalid report")
	}
	if len(report.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", report.Errors)
	}
	if !strings.Contains(report.Errors[0], "video_posted") {
		t.Errorf("error must name the failing field, got %q", report.Errors[0])
	}
	if !strings.Contains(report.Errors[0], "Ana") {
		t.Errorf("error must name the creator, got %q", report.Errors[0])
	}
}

func TestValidateNoMilestoneIsAcceptable(t *testing.T) {
	// "no" blocks finalization the same as "pending".
	slot := completeSlot(0, 1, "Ana")
	slot.VisitConfirmed = model.TriStateNo

	report := service.ValidateCompletion([]model.Slot{slot})
	if report.IsValid {
		t.Error("expected invalid report for visit_confirmed=no")
	}
}

func TestValidateMissingDates(t *testing.T) {
	slot := completeSlot(0, 1, "Ana")
	slot.VisitAt = nil
	slot.PostAt = nil

	report := service.ValidateCompletion([]model.Slot{slot})
	if report.IsValid {
		t.Error("expected invalid report")
	}
	if len(report.Errors) != 2 {
		t.Errorf("expected errors for both dates, got %v", report.Errors)
	}
}

func TestValidateMissingLinks(t *testing.T) {
	slot := completeSlot(0, 1, "Ana")
	slot.InstagramLink = ""
	slot.TikTokLink = ""

	report := service.ValidateCompletion([]model.Slot{slot})
	if report.IsValid {
		t.Error("expected invalid report when both links are missing")
	}

	// One link is enough.
	slot.TikTokLink = "https://tiktok.com/@ana/video/1"
	report = service.ValidateCompletion([]model.Slot{slot})
	if !report.IsValid {
		t.Errorf("one link should suffice, got errors: %v", report.Errors)
	}
}

func TestValidateGuestQuantityWarning(t *testing.T) {
	slot := completeSlot(0, 1, "Ana")
	slot.GuestQuantity = nil

	report := service.ValidateCompletion([]model.Slot{slot})
	if !report.IsValid {
		t.Errorf("missing guest quantity must not block validity, got errors: %v", report.Errors)
	}
	if len(report.Warnings) != 1 {
		t.Errorf("expected one warning, got %v", report.Warnings)
	}
}
