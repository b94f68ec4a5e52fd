package domain

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// CredentialHasher derives and verifies one-way credential digests computed
// over a per-user salt and a secret.
type CredentialHasher interface {
	Hash(salt, secret string) string
	Verify(salt, secret, digest string) bool
}

// KeySource produces per-user salts and one-time access codes.
// Implementations must be safe for concurrent use.
type KeySource interface {
	NewSalt() (string, error)
	NewAccessCode() (string, error)
}

// Notifier delivers a freshly issued access code to its destination.
// Delivery is fire-and-forget: failures do not roll back credential state.
type Notifier interface {
	SendAccessCode(destination, code string)
}

// User represents a registered identity in the directory.
//
// A User is immutable after construction except for its credential pair
// (password hash and last issued access code), which is replaced in place on
// password change or access-code reissue under the user's own lock. The salt
// is fixed for the user's lifetime. Instances are only produced by a Factory,
// so every reachable User is fully validated and fully initialized.
type User struct {
	id        uuid.UUID
	firstName string
	lastName  string
	email     string
	phone     string
	login     string
	meta      map[string]string
	info      string
	createdAt time.Time

	hasher   CredentialHasher
	keys     KeySource
	notifier Notifier

	mu           sync.RWMutex
	salt         string
	passwordHash string
	accessCode   string
}

// ID returns the user's random identifier.
func (u *User) ID() uuid.UUID { return u.id }

// FirstName returns the user's first name. Never blank.
func (u *User) FirstName() string { return u.firstName }

// LastName returns the user's last name, or "" if absent.
func (u *User) LastName() string { return u.lastName }

// Email returns the email supplied at construction, or "" if absent.
func (u *User) Email() string { return u.email }

// Phone returns the canonical phone number, or "" if absent.
func (u *User) Phone() string { return u.phone }

// Login returns the canonical identity key: the lowercased email, or the
// normalized phone when no email was supplied.
func (u *User) Login() string { return u.login }

// CreatedAt returns the UTC construction timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// Meta returns a copy of the provenance tags, e.g. {"auth": "sms"}.
func (u *User) Meta() map[string]string {
	meta := make(map[string]string, len(u.meta))
	for k, v := range u.meta {
		meta[k] = v
	}
	return meta
}

// FullName returns the joined first and last name with the leading
// character capitalized.
func (u *User) FullName() string {
	name := u.firstName
	if u.lastName != "" {
		name += " " + u.lastName
	}
	return capitalize(name)
}

// Initials returns the uppercased first letter of each name part,
// joined with a space.
func (u *User) Initials() string {
	parts := make([]string, 0, 2)
	for _, name := range []string{u.firstName, u.lastName} {
		if name == "" {
			continue
		}
		r := []rune(name)
		parts = append(parts, string(unicode.ToUpper(r[0])))
	}
	return strings.Join(parts, " ")
}

// Info returns the multi-line profile summary assembled at construction time.
// It reflects the validated registration fields and is not recomputed after
// credential changes.
func (u *User) Info() string { return u.info }

// Salt returns the user's salt. It never changes after construction.
func (u *User) Salt() string { return u.salt }

// PasswordHash returns the current credential digest.
func (u *User) PasswordHash() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.passwordHash
}

// AccessCode returns the most recently issued access code, or "" if none was
// ever issued. Exposed for verification; not treated as persisted state.
func (u *User) AccessCode() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.accessCode
}

// CheckPassword reports whether candidate verifies against the current
// credential digest.
func (u *User) CheckPassword(candidate string) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.hasher.Verify(u.salt, candidate, u.passwordHash)
}

// ChangePassword replaces the credential digest with a hash of newPass if
// oldPass verifies. On mismatch it returns ErrPasswordMismatch and leaves the
// credential state unchanged. The salt is reused, never regenerated.
func (u *User) ChangePassword(oldPass, newPass string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.hasher.Verify(u.salt, oldPass, u.passwordHash) {
		return ErrPasswordMismatch
	}
	u.passwordHash = u.hasher.Hash(u.salt, newPass)
	return nil
}

// IssueAccessCode generates a fresh one-time code, replaces the credential
// digest with its hash, records the code, and hands it to the notifier for
// delivery to destination. Any previously issued code stops verifying.
// Delivery happens outside the credential lock and its outcome does not
// affect issuance.
func (u *User) IssueAccessCode(destination string) (string, error) {
	code, err := u.keys.NewAccessCode()
	if err != nil {
		return "", fmt.Errorf("generating access code: %w", err)
	}

	u.mu.Lock()
	u.passwordHash = u.hasher.Hash(u.salt, code)
	u.accessCode = code
	u.mu.Unlock()

	u.notifier.SendAccessCode(destination, code)
	return code, nil
}

// capitalize uppercases the first rune of s.
func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
