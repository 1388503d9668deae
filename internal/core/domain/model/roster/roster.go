package roster

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"giftexchange/internal/core/domain/model/kernel"
	"giftexchange/internal/pkg/errs"
	"giftexchange/internal/pkg/guard"
)

var (
	ErrRosterIsNotConstructed = errors.New("Roster must be created via NewRoster or RestoreRoster constructor")
	ErrNameIsRequired         = errs.NewValueIsRequiredError("roster name")
)

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Key turns a roster name into its storage key: characters outside
// [a-zA-Z0-9._-] become '_' and a trailing ".json" is dropped.
func Key(name string) string {
	trimmed := strings.TrimSuffix(strings.TrimSpace(name), ".json")
	return unsafeKeyChars.ReplaceAllString(trimmed, "_")
}

// Roster is a named, saved set of group entries. Saving under an existing key
// replaces the previous roster.
type Roster struct {
	id      kernel.UUID
	name    string
	groups  []GroupEntry
	savedAt time.Time
	guard   guard.ConstructorGuard
}

// NewRoster creates a roster with a fresh id. Groups only need to pass
// ValidateStructure; draw preconditions are checked when a draw runs.
func NewRoster(name string, groups []GroupEntry, now time.Time) (*Roster, error) {
	return RestoreRoster(kernel.NewUUID(), name, groups, now)
}

// RestoreRoster rebuilds a roster read from storage.
func RestoreRoster(id kernel.UUID, name string, groups []GroupEntry, savedAt time.Time) (*Roster, error) {
	var nameErr error
	if Key(name) == "" {
		nameErr = ErrNameIsRequired
	}

	if err := errors.Join(id.Validate(), nameErr, ValidateStructure(groups)); err != nil {
		return nil, err
	}

	return &Roster{
		id:      id,
		name:    strings.TrimSpace(name),
		groups:  Clone(groups),
		savedAt: savedAt.UTC(),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (r *Roster) Validate() error {
	if r == nil {
		return ErrRosterIsNotConstructed
	}
	return r.guard.Validate(ErrRosterIsNotConstructed)
}

func (r *Roster) ID() kernel.UUID {
	return r.id
}

func (r *Roster) Name() string {
	return r.name
}

// Key is the storage key derived from the name.
func (r *Roster) Key() string {
	return Key(r.name)
}

// Groups returns a copy of the stored entries.
func (r *Roster) Groups() []GroupEntry {
	return Clone(r.groups)
}

func (r *Roster) SavedAt() time.Time {
	return r.savedAt
}
