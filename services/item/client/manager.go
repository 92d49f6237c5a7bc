package client

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/ghuser/itemsdemo/pkg/logger"
	"github.com/ghuser/itemsdemo/services/item/domain/models"
)

// ErrSubmitDisabled is returned by Submit and SubmitEdit when the form is
// incomplete or another submission is still in flight.
var ErrSubmitDisabled = errors.New("submit disabled")

// User-facing failure texts stored in State.
const (
	MsgLoadFailed   = "Failed to fetch items"
	MsgCreateFailed = "Failed to add item"
	MsgUpdateFailed = "Failed to update item"
	MsgDeleteFailed = "Failed to delete item"
)

// ItemsAPI is the subset of Client the Manager drives.
type ItemsAPI interface {
	List(ctx context.Context) ([]models.Item, error)
	Create(ctx context.Context, fields models.ItemFields) (models.Item, error)
	Update(ctx context.Context, id models.ItemID, fields models.ItemFields) (models.Item, error)
	Delete(ctx context.Context, id models.ItemID) (models.Item, error)
}

// Form holds the raw text of the create or edit inputs.
type Form struct {
	Name        string
	Description string
}

// Fields returns the trimmed field values.
func (f Form) Fields() models.ItemFields {
	return models.ItemFields{Name: f.Name, Description: f.Description}.Trimmed()
}

// Complete reports whether both fields are non-blank.
func (f Form) Complete() bool {
	t := f.Fields()
	return t.Name != "" && t.Description != ""
}

// State is what a view renders. EditID is zero when no item is being edited.
type State struct {
	Items       []models.Item
	Loading     bool
	Error       string
	SearchText  string
	Form        Form
	EditID      models.ItemID
	EditForm    Form
	Submitting  bool
	SubmitError string
}

// Editing reports whether an edit is in progress.
func (s State) Editing() bool {
	return s.EditID != 0
}

// Manager owns the item list view state. Network calls run outside the lock,
// so a Manager is safe to share between goroutines.
type Manager struct {
	api ItemsAPI
	log logger.Logger

	mu    sync.Mutex
	state State
}

// NewManager returns a Manager in the loading state. Call Load to populate it.
func NewManager(api ItemsAPI, log logger.Logger) *Manager {
	return &Manager{
		api:   api,
		log:   log,
		state: State{Items: []models.Item{}, Loading: true},
	}
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.state
	s.Items = slices.Clone(m.state.Items)
	return s
}

// Load fetches the item list. On failure the previous items are kept and
// Error is set. A successful load clears Error.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	m.state.Loading = true
	m.mu.Unlock()

	items, err := m.api.List(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Loading = false
	if err != nil {
		m.state.Error = fmt.Sprintf("%s: %v", MsgLoadFailed, err)
		m.log.WarnContext(ctx, "load items failed", "error", err)
		return err
	}
	m.state.Items = items
	m.state.Error = ""
	return nil
}

// SetSearch changes the filter text.
func (m *Manager) SetSearch(text string) {
	m.mu.Lock()
	m.state.SearchText = text
	m.mu.Unlock()
}

// Visible returns the items whose name contains the search text, ignoring case.
func (m *Manager) Visible() []models.Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Filter(m.state.Items, m.state.SearchText, func(it models.Item) string { return it.Name })
}

// SetForm replaces the create form inputs.
func (m *Manager) SetForm(f Form) {
	m.mu.Lock()
	m.state.Form = f
	m.mu.Unlock()
}

// CanSubmit reports whether Submit would send a request.
func (m *Manager) CanSubmit() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.state.Submitting && m.state.Form.Complete()
}

// Submit creates an item from the form and returns it. On success the form
// is cleared and the list reloaded; the returned error is then the reload
// error, if any, alongside the created item. On failure the form is kept,
// SubmitError is set and the returned item is the zero value.
func (m *Manager) Submit(ctx context.Context) (models.Item, error) {
	m.mu.Lock()
	if m.state.Submitting || !m.state.Form.Complete() {
		m.mu.Unlock()
		return models.Item{}, ErrSubmitDisabled
	}
	m.state.Submitting = true
	fields := m.state.Form.Fields()
	m.mu.Unlock()

	created, err := m.api.Create(ctx, fields)

	m.mu.Lock()
	m.state.Submitting = false
	if err != nil {
		m.state.SubmitError = fmt.Sprintf("%s: %v", MsgCreateFailed, err)
		m.mu.Unlock()
		m.log.WarnContext(ctx, "create item failed", "error", err)
		return models.Item{}, err
	}
	m.state.Form = Form{}
	m.state.SubmitError = ""
	m.mu.Unlock()

	return created, m.Load(ctx)
}

// StartEdit enters edit mode for item, prefilling the edit form.
func (m *Manager) StartEdit(item models.Item) {
	m.mu.Lock()
	m.state.EditID = item.ID
	m.state.EditForm = Form{Name: item.Name, Description: item.Description}
	m.mu.Unlock()
}

// SetEditForm replaces the edit form inputs.
func (m *Manager) SetEditForm(f Form) {
	m.mu.Lock()
	m.state.EditForm = f
	m.mu.Unlock()
}

// CancelEdit leaves edit mode and discards the edit form.
func (m *Manager) CancelEdit() {
	m.mu.Lock()
	m.state.EditID = 0
	m.state.EditForm = Form{}
	m.mu.Unlock()
}

// CanSubmitEdit reports whether SubmitEdit would send a request.
func (m *Manager) CanSubmitEdit() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.EditID != 0 && !m.state.Submitting && m.state.EditForm.Complete()
}

// SubmitEdit sends the edit form and returns the updated item. On success
// edit mode ends and the list is reloaded, as with Submit. On failure edit
// mode and the form are kept.
func (m *Manager) SubmitEdit(ctx context.Context) (models.Item, error) {
	m.mu.Lock()
	if m.state.EditID == 0 || m.state.Submitting || !m.state.EditForm.Complete() {
		m.mu.Unlock()
		return models.Item{}, ErrSubmitDisabled
	}
	m.state.Submitting = true
	id := m.state.EditID
	fields := m.state.EditForm.Fields()
	m.mu.Unlock()

	updated, err := m.api.Update(ctx, id, fields)

	m.mu.Lock()
	m.state.Submitting = false
	if err != nil {
		m.state.SubmitError = fmt.Sprintf("%s: %v", MsgUpdateFailed, err)
		m.mu.Unlock()
		m.log.WarnContext(ctx, "update item failed", "id", id.String(), "error", err)
		return models.Item{}, err
	}
	m.state.EditID = 0
	m.state.EditForm = Form{}
	m.state.SubmitError = ""
	m.mu.Unlock()

	return updated, m.Load(ctx)
}

// Delete removes the item and reloads the list. A failed delete is logged
// and returned but leaves the visible state untouched.
func (m *Manager) Delete(ctx context.Context, id models.ItemID) error {
	if _, err := m.api.Delete(ctx, id); err != nil {
		m.log.WarnContext(ctx, MsgDeleteFailed, "id", id.String(), "error", err)
		return fmt.Errorf("%s: %w", MsgDeleteFailed, err)
	}
	return m.Load(ctx)
}
