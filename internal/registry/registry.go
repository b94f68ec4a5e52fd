// Package registry implements the in-memory user directory: a
// uniqueness-enforcing login-to-user mapping with registration, login,
// access-code, and bulk-import operations.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/prn-tf/alexander-directory/internal/domain"
	"github.com/prn-tf/alexander-directory/internal/metrics"
)

// Registry owns the login-to-user mapping. The map is guarded by an RWMutex:
// registration is a check-then-insert executed atomically under the write
// lock, lookups run concurrently under the read lock, and per-user credential
// mutation is serialized by the user's own lock. Construct one per process
// (or per test) with New; there is no package-level instance.
type Registry struct {
	factory *domain.Factory
	logger  zerolog.Logger
	metrics *metrics.Metrics

	mu    sync.RWMutex
	users map[string]*domain.User
}

// New creates an empty Registry. m may be nil to disable instrumentation.
func New(factory *domain.Factory, logger zerolog.Logger, m *metrics.Metrics) *Registry {
	return &Registry{
		factory: factory,
		logger:  logger.With().Str("service", "registry").Logger(),
		metrics: m,
		users:   make(map[string]*domain.User),
	}
}

// RegisterUser registers a password-authenticated user. The login is the
// lowercased email. Fails with domain.ErrUserAlreadyExists when the login is
// taken, leaving the registry unchanged.
func (r *Registry) RegisterUser(fullName, email, password string) (*domain.User, error) {
	user, err := r.factory.MakeUser(fullName, email, password, "")
	if err != nil {
		r.logger.Debug().Err(err).Str("email", email).Msg("registration rejected")
		return nil, err
	}

	if err := r.insert(user); err != nil {
		return nil, err
	}

	r.logger.Info().
		Str("login", user.Login()).
		Str("auth", "password").
		Msg("user registered")
	r.metrics.Registration("password")

	return user, nil
}

// RegisterUserByPhone registers a phone-authenticated user. The login is the
// normalized phone; an access code is issued and dispatched as part of
// construction.
func (r *Registry) RegisterUserByPhone(fullName, rawPhone string) (*domain.User, error) {
	user, err := r.factory.MakeUser(fullName, "", "", rawPhone)
	if err != nil {
		r.logger.Debug().Err(err).Str("phone", rawPhone).Msg("registration rejected")
		return nil, err
	}

	if err := r.insert(user); err != nil {
		return nil, err
	}

	r.logger.Info().
		Str("login", user.Login()).
		Str("auth", "sms").
		Msg("user registered")
	r.metrics.Registration("sms")
	r.metrics.AccessCodeIssued()

	return user, nil
}

// LoginUser resolves login (trimmed, then normalized as a phone) and verifies
// password. On success it returns the profile summary. A miss or a failed
// verification is a normal absent outcome, not an error.
func (r *Registry) LoginUser(login, password string) (string, bool) {
	user, ok := r.lookup(login)
	if !ok {
		r.logger.Debug().Str("login", login).Msg("login attempt for unknown user")
		r.metrics.Login(metrics.LoginUnknown)
		return "", false
	}

	if !user.CheckPassword(password) {
		r.logger.Debug().Str("login", user.Login()).Msg("login rejected")
		r.metrics.Login(metrics.LoginRejected)
		return "", false
	}

	r.logger.Info().Str("login", user.Login()).Msg("user logged in")
	r.metrics.Login(metrics.LoginOK)
	return user.Info(), true
}

// RequestAccessCode reissues the one-time code for the user behind login and
// dispatches it to the user's phone. The previous code stops verifying.
// Unknown logins are silently ignored.
func (r *Registry) RequestAccessCode(login string) {
	user, ok := r.lookup(login)
	if !ok {
		r.logger.Debug().Str("login", login).Msg("access code requested for unknown user")
		return
	}

	if _, err := user.IssueAccessCode(user.Phone()); err != nil {
		r.logger.Error().Err(err).Str("login", user.Login()).Msg("failed to issue access code")
		return
	}

	r.logger.Info().Str("login", user.Login()).Msg("access code issued")
	r.metrics.AccessCodeIssued()
}

// Len returns the number of registered users.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// Clear empties the registry. Intended for tests.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make(map[string]*domain.User)
}

// insert performs the uniqueness check and the insert as one atomic unit.
func (r *Registry) insert(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Login()]; exists {
		return fmt.Errorf("%w: login %q", domain.ErrUserAlreadyExists, user.Login())
	}
	r.users[user.Login()] = user
	return nil
}

// lookup resolves a login key: the trimmed input first, then its normalized
// phone form as a fallback.
func (r *Registry) lookup(login string) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if user, ok := r.users[strings.TrimSpace(login)]; ok {
		return user, true
	}
	user, ok := r.users[domain.NormalizePhone(login)]
	return user, ok
}

// logins returns the registered login keys in sorted order.
func (r *Registry) logins() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.users))
	for login := range r.users {
		keys = append(keys, login)
	}
	sort.Strings(keys)
	return keys
}
