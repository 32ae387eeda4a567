package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes account passwords for storage and verifies login
// attempts against the stored hash. It knows nothing about users, the
// network or the database.
type PasswordHasher interface {
	// Hash returns a salted, self-describing hash of password that is safe
	// to store. Two calls with the same password return different hashes.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. It returns
	// ErrPasswordMismatch for a wrong password and another error when hash
	// is malformed.
	Compare(hash, password string) error
}
