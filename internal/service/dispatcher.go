// internal/service/dispatcher.go
package service

import (
    "fmt"
    "log"

    appErrors "github.com/brandhive/creator-journey-backend/internal/errors"
    "github.com/brandhive/creator-journey-backend/internal/model"
)

// SlotBackend is the mutating half of the slot store the dispatcher writes
// through, satisfied by repository.SlotRepository.
type SlotBackend interface {
    AddCreator(campaignID, creatorID int) error
    RemoveCreator(campaignID, creatorID int) error
    SwapCreator(campaignID, oldCreatorID, newCreatorID int) error
    UpdateSlotFields(campaignID, slotIndex int, fields map[string]any) error
}

// CreatorDirectory resolves display names to creator records, satisfied by
// repository.CreatorRepository.
type CreatorDirectory interface {
    ResolveByName(name string) (*model.Creator, error)
}

// OperationResult is the outcome of one dispatched operation. Warning marks
// a result that counts as success despite an unusual backend condition
// (duplicate assignment).
type OperationResult struct {
    Kind      model.ChangeKind `json:"kind"`
    SlotIndex int              `json:"slot_index"`
    Detail    string           `json:"detail"`
    Success   bool             `json:"success"`
    Warning   bool             `json:"warning"`
    Error     string           `json:"error,omitempty"`
}

// Dispatcher replays a classified change set against the backend, one call
// per operation, sequentially. Operations are independent: a failure is
// recorded and the batch keeps going. The dispatcher never refreshes the
// baseline; the caller re-fetches after inspecting the aggregate.
type Dispatcher struct {
    Backend   SlotBackend
    Directory CreatorDirectory
}

// Dispatch issues swaps first, then additions, then field updates, then
// removals. Replace-in-place must win over add/remove pairs that would
// double-count slot totals.
func (d *Dispatcher) Dispatch(campaignID int, cs model.ChangeSet) []OperationResult {
    results := []OperationResult{}

    for _, sw := range cs.Swaps {
        results = append(results, d.dispatchSwap(campaignID, sw))
    }
    for _, add := range cs.Additions {
        results = append(results, d.dispatchAddition(campaignID, add))
    }
    for _, fu := range cs.FieldUpdates {
        results = append(results, d.dispatchFieldUpdate(campaignID, fu))
    }
    for _, rm := range cs.Removals {
        if rm.CreatorID == 0 {
            // Excluded before dispatch, never sent to the backend.
            log.Println("⚠️ skipping removal without identifier at slot", rm.SlotIndex)
            continue
        }
        results = append(results, d.dispatchRemoval(campaignID, rm))
    }

    return results
}

func (d *Dispatcher) dispatchSwap(campaignID int, sw model.SwapChange) OperationResult {
    res := OperationResult{
        Kind:      model.ChangeKindSwap,
        SlotIndex: sw.SlotIndex,
        Detail:    fmt.Sprintf("%s -> %s", sw.FromName, sw.ToName),
    }

    oldID := 0
    if sw.FromCreatorID != nil {
        oldID = *sw.FromCreatorID
    } else {
        from, err := d.Directory.ResolveByName(sw.FromName)
        if err != nil {
            res.Error = err.Error()
            return res
        }
        oldID = from.ID
    }

    to, err := d.Directory.ResolveByName(sw.ToName)
    if err != nil {
        res.Error = err.Error()
        return res
    }

    if err := d.Backend.SwapCreator(campaignID, oldID, to.ID); err != nil {
        res.Error = err.Error()
        return res
    }
    res.Success = true
    return res
}

func (d *Dispatcher) dispatchAddition(campaignID int, add model.AdditionChange) OperationResult {
    res := OperationResult{
        Kind:      model.ChangeKindAddition,
        SlotIndex: add.SlotIndex,
        Detail:    add.Name,
    }

    creator, err := d.Directory.ResolveByName(add.Name)
    if err != nil {
        res.Error = err.Error()
        return res
    }

    if err := d.Backend.AddCreator(campaignID, creator.ID); err != nil {
        if appErrors.IsDuplicateAssignment(err) {
            // Duplicate submission of the same addition; the backend state
            // already matches what the user asked for.
            log.Println("⚠️ creator already assigned, treating as warning:", add.Name)
            res.Success = true
            res.Warning = true
            res.Error = err.Error()
            return res
        }
        res.Error = err.Error()
        return res
    }
    res.Success = true
    return res
}

func (d *Dispatcher) dispatchFieldUpdate(campaignID int, fu model.FieldUpdate) OperationResult {
    res := OperationResult{
        Kind:      model.ChangeKindFieldUpdate,
        SlotIndex: fu.SlotIndex,
        Detail:    fmt.Sprintf("%d field(s)", len(fu.Fields)),
    }
    if err := d.Backend.UpdateSlotFields(campaignID, fu.SlotIndex, fu.Fields); err != nil {
        res.Error = err.Error()
        return res
    }
    res.Success = true
    return res
}

func (d *Dispatcher) dispatchRemoval(campaignID int, rm model.RemovalChange) OperationResult {
    res := OperationResult{
        Kind:      model.ChangeKindRemoval,
        SlotIndex: rm.SlotIndex,
        Detail:    rm.Name,
    }
    if err := d.Backend.RemoveCreator(campaignID, rm.CreatorID); err != nil {
        res.Error = err.Error()
        return res
    }
    res.Success = true
    return res
}
