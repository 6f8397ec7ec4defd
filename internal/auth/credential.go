package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/greentouch-site/internal/domain"
)

// AdminCredential holds the single admin identity and its password hash.
// The plaintext password is never retained.
type AdminCredential struct {
	mu   sync.RWMutex
	user domain.AdminUser
	hash []byte
	cost int
}

// NewAdminCredential hashes password with the given bcrypt cost.
func NewAdminCredential(user domain.AdminUser, password string, cost int) (*AdminCredential, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, err
	}
	return &AdminCredential{user: user, hash: hash, cost: cost}, nil
}

// User returns the admin descriptor.
func (c *AdminCredential) User() domain.AdminUser {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user
}

// Verify reports whether the pair matches the admin credential exactly.
func (c *AdminCredential) Verify(email, password string) bool {
	c.mu.RLock()
	hash := c.hash
	match := email == c.user.Email
	c.mu.RUnlock()

	// Always compare so a wrong email costs the same as a wrong password.
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	return match && err == nil
}

// SetPassword replaces the password hash.
func (c *AdminCredential) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.hash = hash
	c.mu.Unlock()
	return nil
}
