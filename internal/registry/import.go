package registry

import (
	"fmt"
	"strings"

	"github.com/prn-tf/alexander-directory/internal/domain"
	"github.com/prn-tf/alexander-directory/internal/pkg/crypto"
)

// Import record format: "<FullName>;<email>;<salt><32-hex-hash>;<phone>",
// empty fields denoting absent email/phone. The third field is the salt
// immediately followed by the fixed-length hex digest, so the digest is the
// trailing 32 characters and the salt is everything before them.
const importFieldCount = 4

// ImportUsers restores users from previously exported records. Import is
// trusted input: restored users overwrite any existing entry with the same
// login instead of failing the duplicate check used for interactive
// registration. Malformed records are skipped with a warning. Returns the
// users restored, in record order.
func (r *Registry) ImportUsers(records []string) []*domain.User {
	imported := make([]*domain.User, 0, len(records))
	for _, record := range records {
		user, err := r.restoreRecord(record)
		if err != nil {
			r.logger.Warn().Err(err).Str("record", record).Msg("skipping import record")
			continue
		}

		r.mu.Lock()
		r.users[user.Login()] = user
		r.mu.Unlock()

		imported = append(imported, user)
	}

	r.logger.Info().
		Int("imported", len(imported)).
		Int("records", len(records)).
		Msg("users imported")
	r.metrics.Imported(len(imported))

	return imported
}

// ExportUsers renders every registered user in the import record format,
// ordered by login. Credential material is emitted verbatim, so an export
// can be re-imported without rehashing.
func (r *Registry) ExportUsers() []string {
	logins := r.logins()

	records := make([]string, 0, len(logins))
	for _, login := range logins {
		r.mu.RLock()
		user, ok := r.users[login]
		r.mu.RUnlock()
		if !ok {
			continue
		}
		records = append(records, fmt.Sprintf("%s;%s;%s%s;%s",
			user.FullName(), user.Email(), user.Salt(), user.PasswordHash(), user.Phone()))
	}
	return records
}

// restoreRecord parses one import record and rebuilds its user.
func (r *Registry) restoreRecord(record string) (*domain.User, error) {
	fields := strings.Split(record, ";")
	if len(fields) != importFieldCount {
		return nil, fmt.Errorf("expected %d fields, got %d", importFieldCount, len(fields))
	}

	fullName := strings.TrimSpace(fields[0])
	email := strings.TrimSpace(fields[1])
	credential := strings.TrimSpace(fields[2])
	phone := strings.TrimSpace(fields[3])

	if len(credential) < crypto.DigestHexLength {
		return nil, fmt.Errorf("credential field shorter than %d characters", crypto.DigestHexLength)
	}
	salt := credential[:len(credential)-crypto.DigestHexLength]
	passwordHash := credential[len(credential)-crypto.DigestHexLength:]
	if !crypto.ValidDigest(passwordHash) {
		return nil, fmt.Errorf("credential field does not end in a %d-character hex digest", crypto.DigestHexLength)
	}

	first, last, err := domain.ParseFullName(fullName)
	if err != nil {
		return nil, err
	}

	return r.factory.RestoreUser(first, last, email, salt, passwordHash, phone)
}
