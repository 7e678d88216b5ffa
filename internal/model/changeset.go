// internal/model/changeset.go
package model

// ChangeKind identifies one kind of reconciliation operation.
type ChangeKind string

const (
    ChangeKindSwap        ChangeKind = "swap"
    ChangeKindAddition    ChangeKind = "addition"
    ChangeKindRemoval     ChangeKind = "removal"
    ChangeKindFieldUpdate ChangeKind = "field_update"
)

// SwapChange replaces the creator in a slot with another one. FromCreatorID
// may be nil when the baseline slot was never persisted with an identifier;
// the dispatcher then falls back to resolving FromName.
type SwapChange struct {
    SlotIndex     int    `json:"slot_index"`
    FromCreatorID *int   `json:"from_creator_id,omitempty"`
    FromName      string `json:"from_name"`
    ToName        string `json:"to_name"`
}

// AdditionChange assigns a creator to a previously empty slot.
type AdditionChange struct {
    SlotIndex int    `json:"slot_index"`
    Name      string `json:"name"`
}

// RemovalChange clears an assigned slot. CreatorID is always set: removals
// without a resolvable identifier are never classified.
type RemovalChange struct {
    SlotIndex int    `json:"slot_index"`
    CreatorID int    `json:"creator_id"`
    Name      string `json:"name"`
}

// FieldUpdate carries scalar edits for a slot whose creator did not change.
// Keys are column names, values the edited values.
type FieldUpdate struct {
    SlotIndex int            `json:"slot_index"`
    Fields    map[string]any `json:"fields"`
}

// ChangeSet is the classified diff between the baseline slots and an edit
// buffer. It exists only for the duration of one save cycle.
type ChangeSet struct {
    Swaps        []SwapChange     `json:"swaps"`
    Additions    []AdditionChange `json:"additions"`
    Removals     []RemovalChange  `json:"removals"`
    FieldUpdates []FieldUpdate    `json:"field_updates"`
}

func (cs ChangeSet) Empty() bool {
    return len(cs.Swaps) == 0 && len(cs.Additions) == 0 &&
        len(cs.Removals) == 0 && len(cs.FieldUpdates) == 0
}

// Len is the number of operations the dispatcher will issue.
func (cs ChangeSet) Len() int {
    return len(cs.Swaps) + len(cs.Additions) + len(cs.Removals) + len(cs.FieldUpdates)
}
