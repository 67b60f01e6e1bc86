// Package auth holds the in-memory account registry backing the simulated
// login flow. There is no durable user database; accounts and refresh tokens
// live for the process lifetime only.
package auth

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"ondoctor-server/internal/models"
)

var (
	// ErrUserExists is returned when registering an email that is taken.
	ErrUserExists = errors.New("user with this email already exists")

	// ErrUserNotFound is returned when a lookup misses.
	ErrUserNotFound = errors.New("user not found")

	// ErrTokenInvalid is returned when a refresh token is unknown, revoked,
	// or expired.
	ErrTokenInvalid = errors.New("refresh token not found, expired, or revoked")
)

// Registry is the in-memory account store. All methods are safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	byID    map[string]models.User
	byEmail map[string]string // lowercased email -> user id
	tokens  map[string]models.RefreshToken
	now     func() time.Time
}

// NewRegistry creates an empty registry. A nil now falls back to time.Now.
func NewRegistry(now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		byID:    make(map[string]models.User),
		byEmail: make(map[string]string),
		tokens:  make(map[string]models.RefreshToken),
		now:     now,
	}
}

// Register creates an account with a freshly hashed password.
func (r *Registry) Register(firstName, lastName, email, password string, role models.Role) (models.User, error) {
	emailKey := strings.ToLower(strings.TrimSpace(email))

	user := models.User{
		ID:        uuid.New().String(),
		Email:     strings.TrimSpace(email),
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
		CreatedAt: r.now(),
		UpdatedAt: r.now(),
	}
	if err := user.SetPassword(password); err != nil {
		return models.User{}, errors.Wrap(err, "hashing password")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byEmail[emailKey]; taken {
		return models.User{}, ErrUserExists
	}
	r.byID[user.ID] = user
	r.byEmail[emailKey] = user.ID
	return user, nil
}

// FindByEmail looks an account up by email (case-insensitive).
func (r *Registry) FindByEmail(email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return r.byID[id], nil
}

// FindByID looks an account up by id.
func (r *Registry) FindByID(id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile updates the mutable profile fields. Empty values leave the
// current field untouched.
func (r *Registry) UpdateProfile(id, firstName, lastName, phoneNumber string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	if firstName != "" {
		user.FirstName = firstName
	}
	if lastName != "" {
		user.LastName = lastName
	}
	if phoneNumber != "" {
		user.PhoneNumber = phoneNumber
	}
	user.UpdatedAt = r.now()
	r.byID[id] = user
	return user, nil
}

// StoreRefreshToken records an issued refresh token.
func (r *Registry) StoreRefreshToken(userID, token string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = models.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
}

// RotateRefreshToken validates and revokes the presented token in one step,
// returning the owning user id. A token can be rotated only once.
func (r *Registry) RotateRefreshToken(token string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.tokens[token]
	if !ok || rec.IsRevoked || rec.ExpiresAt.Before(r.now()) {
		return "", ErrTokenInvalid
	}
	rec.IsRevoked = true
	r.tokens[token] = rec
	return rec.UserID, nil
}

// RevokeRefreshToken invalidates a token at logout. Unknown or already
// revoked tokens are not an error.
func (r *Registry) RevokeRefreshToken(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.tokens[token]; ok {
		rec.IsRevoked = true
		r.tokens[token] = rec
	}
}
