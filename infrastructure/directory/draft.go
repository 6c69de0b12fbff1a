package directory

import (
	"context"
	"fmt"
)

// Draft is the form buffer of the add/edit modal. It is a closed sum:
// CreateDraft submits as a create, EditDraft as an update of an existing
// record. Keeping the two cases as distinct types keeps both submit paths
// exhaustively handled.
type Draft interface {
	Input() UserInput
	isDraft()
}

// CreateDraft is an add-modal buffer with no record identity yet.
type CreateDraft struct {
	UserInput
}

// EditDraft is an edit-modal buffer bound to an existing record.
type EditDraft struct {
	ID int64
	UserInput
}

func (d CreateDraft) Input() UserInput { return d.UserInput }
func (d CreateDraft) isDraft()         {}

func (d EditDraft) Input() UserInput { return d.UserInput }
func (d EditDraft) isDraft()         {}

// DraftFromRecord builds an edit draft carrying the record's current fields.
func DraftFromRecord(rec UserRecord) EditDraft {
	return EditDraft{
		ID: rec.ID,
		UserInput: UserInput{
			FullName: rec.FullName,
			Email:    rec.Email,
			Phone:    rec.Phone,
		},
	}
}

// Submit validates the draft and dispatches it to the directory: create for
// CreateDraft, update for EditDraft.
func Submit(ctx context.Context, dir Directory, draft Draft, requirePhone bool) (UserRecord, error) {
	in := draft.Input()
	if err := in.Validate(requirePhone); err != nil {
		return UserRecord{}, err
	}
	switch d := draft.(type) {
	case CreateDraft:
		return dir.Create(ctx, in)
	case EditDraft:
		return dir.Update(ctx, d.ID, in)
	default:
		return UserRecord{}, fmt.Errorf("unsupported draft type %T", draft)
	}
}
