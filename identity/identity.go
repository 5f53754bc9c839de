// Package identity is the account boundary: the rest of the application
// only ever creates, deletes and authenticates accounts through Provider,
// so the backing store can be swapped without touching business code.
package identity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"restaurant-backend/apperrors"
)

// Account is an identity-provider user. IDs are UUID strings so they can
// be referenced from tenant records without a FK into business tables.
type Account struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"size:150;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:255" json:"-"`
	Name      string    `gorm:"size:255" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Provider is the identity collaborator contract. The provisioning saga
// depends on CreateUser/DeleteUser being individually atomic.
type Provider interface {
	CreateUser(email, password, name string) (Account, error)
	DeleteUser(id string) error
	Authenticate(email, password string) (Account, error)
	Lookup(id string) (Account, error)
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) CreateUser(email, password, name string) (Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Account{}, apperrors.ErrValidation
	}

	var existing Account
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return Account{}, apperrors.ErrDuplicate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Account{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, err
	}

	account := Account{
		ID:       uuid.NewString(),
		Email:    email,
		Password: string(hash),
		Name:     name,
	}
	if err := s.db.Create(&account).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			return Account{}, apperrors.ErrDuplicate
		}
		return Account{}, err
	}
	return account, nil
}

func (s *Service) DeleteUser(id string) error {
	return s.db.Delete(&Account{}, "id = ?", id).Error
}

func (s *Service) Authenticate(email, password string) (Account, error) {
	var account Account
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Account{}, apperrors.ErrUnauthorized
		}
		return Account{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return Account{}, apperrors.ErrUnauthorized
	}
	return account, nil
}

func (s *Service) Lookup(id string) (Account, error) {
	var account Account
	err := s.db.First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Account{}, apperrors.ErrNotFound
		}
		return Account{}, err
	}
	return account, nil
}
