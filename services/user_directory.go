package services

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kingofshadpow/SOS-Auto/models"
)

// UserDirectory is the seeded account store. Login is demo-grade on
// purpose: any password is accepted, only the email is checked. The
// password supplied at registration is bcrypt-hashed for storage but
// never verified afterwards.
type UserDirectory struct {
	mu      sync.RWMutex
	users   []models.User
	byEmail map[string]int
	byID    map[string]int
	now     func() time.Time
}

var userDirectory *UserDirectory

// InitUserDirectory wires the global directory used by the controllers.
func InitUserDirectory(seed []models.User) *UserDirectory {
	userDirectory = NewUserDirectory(seed)
	return userDirectory
}

// GetUserDirectory returns the initialized directory.
func GetUserDirectory() *UserDirectory {
	return userDirectory
}

func NewUserDirectory(seed []models.User) *UserDirectory {
	d := &UserDirectory{
		byEmail: make(map[string]int),
		byID:    make(map[string]int),
		now:     time.Now,
	}
	for _, u := range seed {
		d.byEmail[normalizeEmail(u.Email)] = len(d.users)
		d.byID[u.ID] = len(d.users)
		d.users = append(d.users, u)
	}
	return d
}

// Login resolves the account by email. The password is intentionally
// ignored.
func (d *UserDirectory) Login(email, _ string) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	idx, ok := d.byEmail[normalizeEmail(email)]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return d.users[idx], nil
}

// Register creates a new client account. Duplicate emails are rejected
// case-insensitively.
func (d *UserDirectory) Register(req models.RegisterRequest) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := normalizeEmail(req.Email)
	if _, exists := d.byEmail[key]; exists {
		return models.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.Must(uuid.NewV7()).String(),
		Email:        strings.TrimSpace(req.Email),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.RoleClient,
		Phone:        req.Phone,
		Address:      req.Address,
		PasswordHash: string(hash),
		CreatedAt:    d.now(),
	}

	d.byEmail[key] = len(d.users)
	d.byID[user.ID] = len(d.users)
	d.users = append(d.users, user)

	return user, nil
}

// GetByID looks an account up by id.
func (d *UserDirectory) GetByID(userID string) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	idx, ok := d.byID[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return d.users[idx], nil
}

// UpdateProfile shallow-merges the provided fields into the stored
// record. A non-nil Address replaces the stored one wholesale; nested
// address fields are never merged individually.
func (d *UserDirectory) UpdateProfile(userID string, req models.UpdateProfileRequest) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx, ok := d.byID[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	user := &d.users[idx]
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Address != nil {
		addr := *req.Address
		user.Address = &addr
	}

	return *user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
