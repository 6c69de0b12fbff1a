// Package directory defines the user directory contract shared by the
// external backend client and the legacy local store, plus the pagination
// and draft rules the admin panel is built on.
package directory

import (
	"context"
	"errors"
	"strings"
)

// PageSize is the fixed directory page size.
const PageSize = 10

var (
	ErrFullNameRequired = errors.New("nome completo é obrigatório")
	ErrEmailRequired    = errors.New("email é obrigatório")
	ErrPhoneRequired    = errors.New("telefone é obrigatório")
)

// UserRecord is one directory entry. The backend owns the record; callers
// hold a transient copy from the last page fetch.
type UserRecord struct {
	ID       int64
	FullName string
	Email    string
	Phone    string
}

// UserInput carries the mutable fields of a record.
type UserInput struct {
	FullName string
	Email    string
	Phone    string
}

// Validate checks required fields before any network call is made.
// Phone is optional unless requirePhone is set.
func (in UserInput) Validate(requirePhone bool) error {
	if strings.TrimSpace(in.FullName) == "" {
		return ErrFullNameRequired
	}
	if strings.TrimSpace(in.Email) == "" {
		return ErrEmailRequired
	}
	if requirePhone && strings.TrimSpace(in.Phone) == "" {
		return ErrPhoneRequired
	}
	return nil
}

// Page is one fixed-size slice of the directory plus pagination metadata.
//
// Invariants: len(Items) <= PageSize; PageIndex is within [0, TotalPages)
// whenever TotalPages > 0.
type Page struct {
	Items      []UserRecord
	TotalItems int64
	TotalPages int
	PageSize   int
	PageIndex  int
	First      bool
	Last       bool
	Empty      bool
}

// Directory is the user CRUD surface. Both the REST backend and the local
// sqlite store implement it; each call is a single round trip with no
// retries or caching.
type Directory interface {
	Create(ctx context.Context, in UserInput) (UserRecord, error)
	List(ctx context.Context, pageIndex, pageSize int) (Page, error)
	Get(ctx context.Context, id int64) (UserRecord, error)
	Update(ctx context.Context, id int64, in UserInput) (UserRecord, error)
	Delete(ctx context.Context, id int64) error
}

// ClampPageIndex clamps a requested page index into the valid range for the
// given page count. An empty directory always resolves to page 0.
func ClampPageIndex(requested, totalPages int) int {
	if requested < 0 || totalPages <= 0 {
		return 0
	}
	if requested >= totalPages {
		return totalPages - 1
	}
	return requested
}

// PageAfterDelete returns the page to reload after deleting one row from the
// page at pageIndex holding rowsOnPage rows. Removing the only row of a
// non-first page steps back one page so the reload never targets a page that
// no longer exists.
func PageAfterDelete(pageIndex, rowsOnPage int) int {
	if rowsOnPage <= 1 && pageIndex > 0 {
		return pageIndex - 1
	}
	if pageIndex < 0 {
		return 0
	}
	return pageIndex
}

// TotalPages computes the page count for totalItems at the given size.
func TotalPages(totalItems int64, pageSize int) int {
	if pageSize <= 0 || totalItems <= 0 {
		return 0
	}
	return int((totalItems + int64(pageSize) - 1) / int64(pageSize))
}
