// internal/errors/errors.go
package appErrors

import (
    "errors"
    "fmt"
)

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
    CampaignID int
}

func (e *ErrCampaignNotFound) Error() string {
    return fmt.Sprintf("campaign with ID %d not found", e.CampaignID)
}

func NewCampaignNotFound(id int) error {
    return &ErrCampaignNotFound{CampaignID: id}
}

// ErrCreatorNotFound: a display name could not be resolved to a creator.
type ErrCreatorNotFound struct {
    Name string
}

func (e *ErrCreatorNotFound) Error() string {
    return fmt.Sprintf("creator %q not found", e.Name)
}

func NewCreatorNotFound(name string) error {
    return &ErrCreatorNotFound{Name: name}
}

// ErrAmbiguousCreatorName: more than one creator matches a display name.
type ErrAmbiguousCreatorName struct {
    Name    string
    Matches int
}

func (e *ErrAmbiguousCreatorName) Error() string {
    return fmt.Sprintf("creator name %q is ambiguous (%d matches)", e.Name, e.Matches)
}

func NewAmbiguousCreatorName(name string, matches int) error {
    return &ErrAmbiguousCreatorName{Name: name, Matches: matches}
}

// ErrDuplicateAssignment: the creator is already assigned to a slot in the
// campaign. Additions downgrade this to a warning.
type ErrDuplicateAssignment struct {
    CreatorID int
}

func (e *ErrDuplicateAssignment) Error() string {
    return fmt.Sprintf("creator %d is already assigned to this campaign", e.CreatorID)
}

func NewDuplicateAssignment(creatorID int) error {
    return &ErrDuplicateAssignment{CreatorID: creatorID}
}

func IsDuplicateAssignment(err error) bool {
    var dup *ErrDuplicateAssignment
    return errors.As(err, &dup)
}

// ErrMissingIdentifier: a removal was requested for a slot that carries no
// resolvable creator identifier. Such operations are excluded before
// dispatch, never sent to the backend.
type ErrMissingIdentifier struct {
    SlotIndex int
}

func (e *ErrMissingIdentifier) Error() string {
    return fmt.Sprintf("slot %d has no creator identifier", e.SlotIndex)
}

func NewMissingIdentifier(slotIndex int) error {
    return &ErrMissingIdentifier{SlotIndex: slotIndex}
}

// ErrInvalidTransition: the journey state machine rejected a stage change.
type ErrInvalidTransition struct {
    From string
    To   string
}

func (e *ErrInvalidTransition) Error() string {
    return fmt.Sprintf("cannot transition campaign from %s to %s", e.From, e.To)
}

func NewInvalidTransition(from, to string) error {
    return &ErrInvalidTransition{From: from, To: to}
}

func IsInvalidTransition(err error) bool {
    var inv *ErrInvalidTransition
    return errors.As(err, &inv)
}
