package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Factory builds fully-validated User values. Every construction mode funnels
// through a single validation core (name check, contact-presence check, phone
// normalization, login assignment, profile summary assembly), so a caller can
// never observe a partially initialized user.
type Factory struct {
	hasher   CredentialHasher
	keys     KeySource
	notifier Notifier
}

// NewFactory creates a Factory. A nil notifier discards access codes.
func NewFactory(hasher CredentialHasher, keys KeySource, notifier Notifier) *Factory {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Factory{
		hasher:   hasher,
		keys:     keys,
		notifier: notifier,
	}
}

// MakeUser parses fullName and dispatches on the supplied contact info:
// a non-blank phone selects phone mode, a non-blank email and password
// select password mode, anything else fails with ErrNoContactMethod.
func (f *Factory) MakeUser(fullName, email, password, rawPhone string) (*User, error) {
	first, last, err := ParseFullName(fullName)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.TrimSpace(rawPhone) != "":
		return f.NewPhoneUser(first, last, rawPhone)
	case strings.TrimSpace(email) != "" && strings.TrimSpace(password) != "":
		return f.NewPasswordUser(first, last, email, password)
	default:
		return nil, ErrNoContactMethod
	}
}

// NewPasswordUser builds a password-authenticated user: fresh salt, credential
// digest derived from the chosen password.
func (f *Factory) NewPasswordUser(first, last, email, password string) (*User, error) {
	u, err := f.newUser(first, last, email, "", map[string]string{"auth": "password"})
	if err != nil {
		return nil, err
	}

	salt, err := f.keys.NewSalt()
	if err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}
	u.salt = salt
	u.passwordHash = f.hasher.Hash(salt, password)
	return u, nil
}

// NewPhoneUser builds a phone-authenticated user: fresh salt, then an
// immediate access-code issuance so the user has a verifiable credential and
// the code is on its way to the phone.
func (f *Factory) NewPhoneUser(first, last, rawPhone string) (*User, error) {
	u, err := f.newUser(first, last, "", rawPhone, map[string]string{"auth": "sms"})
	if err != nil {
		return nil, err
	}

	salt, err := f.keys.NewSalt()
	if err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}
	u.salt = salt

	if _, err := u.IssueAccessCode(u.phone); err != nil {
		return nil, err
	}
	return u, nil
}

// RestoreUser rebuilds a user from previously derived credential material.
// The salt and digest are taken verbatim with no regeneration or rehashing,
// so the plaintext secret is never handled.
func (f *Factory) RestoreUser(first, last, email, salt, passwordHash, phone string) (*User, error) {
	u, err := f.newUser(first, last, email, phone, map[string]string{"src": "import"})
	if err != nil {
		return nil, err
	}
	u.salt = salt
	u.passwordHash = passwordHash
	return u, nil
}

// newUser is the shared validation core.
func (f *Factory) newUser(first, last, email, rawPhone string, meta map[string]string) (*User, error) {
	if strings.TrimSpace(first) == "" {
		return nil, ErrBlankFirstName
	}

	email = strings.TrimSpace(email)
	if email == "" && strings.TrimSpace(rawPhone) == "" {
		return nil, ErrNoContactMethod
	}

	var phone string
	if strings.TrimSpace(rawPhone) != "" {
		phone = NormalizePhone(rawPhone)
		if !IsValidPhone(phone) {
			return nil, NewDomainError(ErrInvalidPhone, "not a canonical phone number", rawPhone)
		}
	}

	login := phone
	if email != "" {
		login = strings.ToLower(email)
	}

	u := &User{
		id:        uuid.New(),
		firstName: first,
		lastName:  last,
		email:     email,
		phone:     phone,
		login:     login,
		meta:      meta,
		createdAt: time.Now().UTC(),
		hasher:    f.hasher,
		keys:      f.keys,
		notifier:  f.notifier,
	}
	u.info = buildInfo(u)
	return u, nil
}

// buildInfo renders the profile summary from validated fields.
func buildInfo(u *User) string {
	return fmt.Sprintf(
		"firstName: %s\nlastName: %s\nlogin: %s\nfullName: %s\ninitials: %s\nemail: %s\nphone: %s\nmeta: %v",
		u.firstName, u.lastName, u.login, u.FullName(), u.Initials(), u.email, u.phone, u.meta,
	)
}

// nopNotifier discards codes. Used when no delivery channel is configured.
type nopNotifier struct{}

func (nopNotifier) SendAccessCode(string, string) {}
