package service_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/brandhive/creator-journey-backend/internal/model"
	"github.com/brandhive/creator-journey-backend/internal/service"
)

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }

func emptySlot(idx int) model.Slot {
	return model.Slot{
		Index:            idx,
		BriefingComplete: model.TriStatePending,
		VisitConfirmed:   model.TriStatePending,
		VideoApproved:    model.TriStatePending,
		VideoPosted:      model.TriStatePending,
	}
}

func assignedSlot(idx int, creatorID int, name string) model.Slot {
	s := emptySlot(idx)
	s.CreatorID = intPtr(creatorID)
	s.InfluencerName = name
	return s
}

func TestClassifyNoChanges(t *testing.T) {
	baseline := []model.Slot{
		assignedSlot(0, 1, "Ana"),
		emptySlot(1),
	}
	edited := []model.Slot{
		assignedSlot(0, 1, "Ana"),
		emptySlot(1),
	}

	cs := service.ClassifySlotChanges(baseline, edited)
	if !cs.Empty() {
		t.Errorf("expected empty change set, got %+v", cs)
	}
}

func TestClassifyAddition(t *testing.T) {
	baseline := []model.Slot{emptySlot(0)}
	edited := []model.Slot{func() model.Slot {
		s := emptySlot(0)
		s.InfluencerName = "Ana"
		return s
	}()}

	cs := service.ClassifySlotChanges(baseline, edited)

	want := model.ChangeSet{
		Additions: []model.AdditionChange{{SlotIndex: 0, Name: "Ana"}},
	}
	if diff := cmp.Diff(want, cs); diff != "" {
		t.Errorf("change set mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifySwap(t *testing.T) {
	baseline := []model.Slot{assignedSlot(0, 1, "Ana")}
	edited := []model.Slot{func() model.Slot {
		s := emptySlot(0)
		s.InfluencerName = "Bia"
		return s
	}()}

	cs := service.ClassifySlotChanges(baseline, edited)

	want := model.ChangeSet{
		Swaps: []model.SwapChange{{
			SlotIndex:     0,
			FromCreatorID: intPtr(1),
			FromName:      "Ana",
			ToName:        "Bia",
		}},
	}
	if diff := cmp.Diff(want, cs); diff != "" {
		t.Errorf("change set mismatch (-want +got):\n%s", diff)
	}
	if len(cs.Additions) != 0 || len(cs.Removals) != 0 {
		t.Errorf("swap must never decompose into addition+removal: %+v", cs)
	}
}

func TestClassifyRemoval(t *testing.T) {
	baseline := []model.Slot{assignedSlot(0, 7, "Ana")}
	edited := []model.Slot{emptySlot(0)}

	cs := service.ClassifySlotChanges(baseline, edited)

	want := model.ChangeSet{
		Removals: []model.RemovalChange{{SlotIndex: 0, CreatorID: 7, Name: "Ana"}},
	}
	if diff := cmp.Diff(want, cs); diff != "" {
		t.Errorf("change set mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyRemovalWithoutIdentifierIsSkipped(t *testing.T) {
	baseline := []model.Slot{func() model.Slot {
		s := emptySlot(0)
		s.InfluencerName = "Ana" // named but never persisted with an ID
		return s
	}()}
	edited := []model.Slot{emptySlot(0)}

	cs := service.ClassifySlotChanges(baseline, edited)
	if !cs.Empty() {
		t.Errorf("removal without identifier must be skipped, got %+v", cs)
	}
}

func TestClassifyAppendedRows(t *testing.T) {
	baseline := []model.Slot{assignedSlot(0, 1, "Ana")}
	edited := []model.Slot{
		assignedSlot(0, 1, "Ana"),
		func() model.Slot {
			s := emptySlot(1)
			s.InfluencerName = "Bia"
			return s
		}(),
		emptySlot(2), // appended but never named: nothing to classify
	}

	cs := service.ClassifySlotChanges(baseline, edited)

	want := model.ChangeSet{
		Additions: []model.AdditionChange{{SlotIndex: 1, Name: "Bia"}},
	}
	if diff := cmp.Diff(want, cs); diff != "" {
		t.Errorf("change set mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyFieldUpdates(t *testing.T) {
	visit := time.Date(2026, 9, 10, 19, 0, 0, 0, time.UTC)

	base := assignedSlot(0, 1, "Ana")
	ed := assignedSlot(0, 1, "Ana")
	ed.BriefingComplete = model.TriStateYes
	ed.VisitAt = timePtr(visit)
	ed.GuestQuantity = intPtr(2)

	cs := service.ClassifySlotChanges([]model.Slot{base}, []model.Slot{ed})

	if len(cs.FieldUpdates) != 1 {
		t.Fatalf("expected 1 field update, got %+v", cs)
	}
	fields := cs.FieldUpdates[0].Fields
	if got := fields["briefing_complete"]; got != model.TriStateYes {
		t.Errorf("expected briefing_complete=yes, got %v", got)
	}
	if _, ok := fields["visit_at"]; !ok {
		t.Errorf("expected visit_at in field update, got %v", fields)
	}
	if _, ok := fields["guest_quantity"]; !ok {
		t.Errorf("expected guest_quantity in field update, got %v", fields)
	}
	if _, ok := fields["video_posted"]; ok {
		t.Errorf("unchanged field video_posted must not be captured: %v", fields)
	}
}

func TestClassifyUnknownNameStillEmitted(t *testing.T) {
	// Name resolution happens downstream in the dispatcher; the classifier
	// emits the change regardless of whether the name exists.
	baseline := []model.Slot{emptySlot(0)}
	ed := emptySlot(0)
	ed.InfluencerName = "Nobody In Particular"

	cs := service.ClassifySlotChanges(baseline, []model.Slot{ed})
	if len(cs.Additions) != 1 {
		t.Fatalf("expected addition for unknown name, got %+v", cs)
	}
}

func TestClassifyTruncatedEditBuffer(t *testing.T) {
	baseline := []model.Slot{
		assignedSlot(0, 1, "Ana"),
		assignedSlot(1, 2, "Bia"),
	}
	edited := []model.Slot{assignedSlot(0, 1, "Ana")}

	cs := service.ClassifySlotChanges(baseline, edited)

	want := model.ChangeSet{
		Removals: []model.RemovalChange{{SlotIndex: 1, CreatorID: 2, Name: "Bia"}},
	}
	if diff := cmp.Diff(want, cs); diff != "" {
		t.Errorf("change set mismatch (-want +got):\n%s", diff)
	}
}
