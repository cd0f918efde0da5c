// Package hash provides the password hashing capability used by the auth
// service. The concrete algorithm sits behind an interface so it can be
// swapped without touching the service.
package hash

import "golang.org/x/crypto/bcrypt"

const BcryptCost = 10

type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(hash, password string) bool
}

type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{Cost: BcryptCost}
}

func (h BcryptHasher) Hash(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

func (h BcryptHasher) Check(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
