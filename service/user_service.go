package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"linkup/dao"
	"linkup/internal/auth"
	"linkup/model"
	"linkup/utils"
)

var (
	ErrEmailTaken = errors.New("user already exists with this email")
	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password so accounts cannot be enumerated through the login endpoint.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserService bundles the credential store, token issuance and the logout
// blacklist.
type UserService struct {
	dao    *dao.UserDAO
	tokens *auth.TokenManager
	store  auth.TokenStore
}

func NewUserService(userDAO *dao.UserDAO, tm *auth.TokenManager, store auth.TokenStore) *UserService {
	return &UserService{dao: userDAO, tokens: tm, store: store}
}

// Signup hashes the password, persists the user and issues a bearer token.
func (s *UserService) Signup(name, email, password string) (*model.User, string, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	user := &model.User{Name: name, Email: email, Password: hashed}
	if err := s.dao.Create(user); err != nil {
		if errors.Is(err, dao.ErrDuplicateEmail) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks credentials and issues a fresh token.
func (s *UserService) Login(email, password string) (*model.User, string, error) {
	user, err := s.dao.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetByID resolves the current user for /me and profile pages.
func (s *UserService) GetByID(id uint64) (*model.User, error) {
	user, err := s.dao.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile changes name and/or bio. A nil field is left untouched.
// Existing posts keep their author-name snapshot.
func (s *UserService) UpdateProfile(id uint64, name, bio *string) (*model.User, error) {
	updates := map[string]interface{}{}
	if name != nil && *name != "" {
		updates["name"] = *name
	}
	if bio != nil {
		updates["bio"] = *bio
	}
	user, err := s.dao.UpdateProfile(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Logout blacklists the presented token for whatever lifetime it has left.
func (s *UserService) Logout(ctx context.Context, token string) error {
	if s.store == nil {
		return nil
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return err
	}
	return s.store.AddBlacklist(ctx, token, claims.Remaining(time.Now()))
}
