package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/Andybrookes-dev/Space-Store/internal/apperr"
	"github.com/Andybrookes-dev/Space-Store/internal/model"

	"golang.org/x/crypto/bcrypt"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// UserStore is the persistence the auth service needs.
type UserStore interface {
	Create(ctx context.Context, u *model.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type AuthService struct {
	Users UserStore
}

func NewAuthService(u UserStore) *AuthService {
	return &AuthService{Users: u}
}

// Register creates a user account. All four fields are required.
func (s *AuthService) Register(ctx context.Context, firstName, lastName, email, password string) (int64, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)

	if firstName == "" || lastName == "" || email == "" || password == "" {
		return 0, apperr.Validation("All fields are required.")
	}
	if !emailRegex.MatchString(email) {
		return 0, apperr.Validation("Invalid email format.")
	}

	exists, err := s.Users.EmailExists(ctx, email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, apperr.Conflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, apperr.Storage(err)
	}

	return s.Users.Create(ctx, &model.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
	})
}

// Login verifies credentials. Unknown email and wrong password return the
// same generic error so callers can't probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.Users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}
	u.PasswordHash = ""
	return u, nil
}
