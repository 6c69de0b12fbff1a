package directory

import (
	"context"
	"errors"
	"testing"
)

func TestValidate_RequiredFields(t *testing.T) {
	cases := []struct {
		name         string
		in           UserInput
		requirePhone bool
		want         error
	}{
		{"missing full name", UserInput{Email: "a@b.com"}, false, ErrFullNameRequired},
		{"blank full name", UserInput{FullName: "   ", Email: "a@b.com"}, false, ErrFullNameRequired},
		{"missing email", UserInput{FullName: "Ana"}, false, ErrEmailRequired},
		{"phone optional by default", UserInput{FullName: "Ana", Email: "a@b.com"}, false, nil},
		{"phone required by flag", UserInput{FullName: "Ana", Email: "a@b.com"}, true, ErrPhoneRequired},
		{"phone present with flag", UserInput{FullName: "Ana", Email: "a@b.com", Phone: "(11) 99999-0000"}, true, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate(tc.requirePhone)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestClampPageIndex(t *testing.T) {
	cases := []struct {
		requested, totalPages, want int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{-1, 4, 0},
		{0, 4, 0},
		{3, 4, 3},
		{4, 4, 3},
		{99, 4, 3},
	}
	for _, tc := range cases {
		if got := ClampPageIndex(tc.requested, tc.totalPages); got != tc.want {
			t.Fatalf("ClampPageIndex(%d, %d) = %d, want %d", tc.requested, tc.totalPages, got, tc.want)
		}
	}
}

func TestPageAfterDelete(t *testing.T) {
	cases := []struct {
		pageIndex, rowsOnPage, want int
	}{
		{0, 1, 0},  // only row of first page: stay
		{0, 10, 0}, // full first page: stay
		{2, 1, 1},  // last row of a later page: step back
		{2, 5, 2},  // page keeps rows: stay
		{-3, 4, 0},
	}
	for _, tc := range cases {
		if got := PageAfterDelete(tc.pageIndex, tc.rowsOnPage); got != tc.want {
			t.Fatalf("PageAfterDelete(%d, %d) = %d, want %d", tc.pageIndex, tc.rowsOnPage, got, tc.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		totalItems int64
		pageSize   int
		want       int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{20, 10, 2},
		{21, 10, 3},
		{5, 0, 0},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.totalItems, tc.pageSize); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.totalItems, tc.pageSize, got, tc.want)
		}
	}
}

// recordingDirectory captures the calls Submit dispatches.
type recordingDirectory struct {
	createdWith *UserInput
	updatedID   int64
	updatedWith *UserInput
	err         error
}

func (r *recordingDirectory) Create(_ context.Context, in UserInput) (UserRecord, error) {
	r.createdWith = &in
	return UserRecord{ID: 42, FullName: in.FullName, Email: in.Email, Phone: in.Phone}, r.err
}

func (r *recordingDirectory) Update(_ context.Context, id int64, in UserInput) (UserRecord, error) {
	r.updatedID = id
	r.updatedWith = &in
	return UserRecord{ID: id, FullName: in.FullName, Email: in.Email, Phone: in.Phone}, r.err
}

func (r *recordingDirectory) List(context.Context, int, int) (Page, error) { return Page{}, nil }
func (r *recordingDirectory) Get(context.Context, int64) (UserRecord, error) {
	return UserRecord{}, nil
}
func (r *recordingDirectory) Delete(context.Context, int64) error { return nil }

func TestSubmit_CreateDraftCallsCreate(t *testing.T) {
	dir := &recordingDirectory{}
	in := UserInput{FullName: "Maria Santos", Email: "maria@example.com"}

	rec, err := Submit(context.Background(), dir, CreateDraft{UserInput: in}, false)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if dir.createdWith == nil || *dir.createdWith != in {
		t.Fatalf("expected create with %+v, got %+v", in, dir.createdWith)
	}
	if dir.updatedWith != nil {
		t.Fatalf("unexpected update call")
	}
	if rec.ID != 42 {
		t.Fatalf("expected created record id, got %d", rec.ID)
	}
}

func TestSubmit_EditDraftRoundTripsRecordFields(t *testing.T) {
	dir := &recordingDirectory{}
	rec := UserRecord{ID: 7, FullName: "João Silva", Email: "joao@example.com", Phone: "(11) 98888-7777"}

	// Open the edit modal for the record and submit without modification:
	// the update must carry exactly the record's current field values.
	if _, err := Submit(context.Background(), dir, DraftFromRecord(rec), false); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if dir.updatedID != rec.ID {
		t.Fatalf("expected update of id %d, got %d", rec.ID, dir.updatedID)
	}
	want := UserInput{FullName: rec.FullName, Email: rec.Email, Phone: rec.Phone}
	if dir.updatedWith == nil || *dir.updatedWith != want {
		t.Fatalf("expected update with %+v, got %+v", want, dir.updatedWith)
	}
	if dir.createdWith != nil {
		t.Fatalf("unexpected create call")
	}
}

func TestSubmit_ValidationStopsBeforeAnyCall(t *testing.T) {
	dir := &recordingDirectory{}
	_, err := Submit(context.Background(), dir, CreateDraft{UserInput: UserInput{Email: "x@y.com"}}, false)
	if !errors.Is(err, ErrFullNameRequired) {
		t.Fatalf("expected ErrFullNameRequired, got %v", err)
	}
	if dir.createdWith != nil || dir.updatedWith != nil {
		t.Fatalf("expected no directory call on validation failure")
	}
}
