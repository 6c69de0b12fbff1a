package adminusers

import "fisiovida/infrastructure/directory"

// ModalView is the open add/edit modal. Edit carries the record id the
// draft is bound to.
type ModalView struct {
	Edit         bool
	ID           int64
	Form         directory.UserInput
	RequirePhone bool
}

// PageData drives the directory page render. Modal nil means closed;
// ConfirmID zero means no delete confirmation pending.
type PageData struct {
	Page         directory.Page
	Status       string
	ErrorMessage string
	LoadFailed   bool
	Modal        *ModalView
	ConfirmID    int64
	NavName      string
}
