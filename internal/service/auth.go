package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/threadhub-dev/threadhub/internal/domain"
	"github.com/threadhub-dev/threadhub/internal/errors"
	"github.com/threadhub-dev/threadhub/internal/logger"
)

// AuthService issues identities; the thread service only ever sees the
// resolved *domain.User.
type AuthService interface {
	Register(creds domain.Credentials) (domain.User, error)
	Login(creds domain.Credentials) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.User, error)
	UserByEmail(email string) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) AuthService {
	return &Auth{storage, jwt}
}

func (a *Auth) Register(creds domain.Credentials) (domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, err
	}

	return a.storage.SaveUser(domain.User{
		Name:     creds.Name,
		Email:    email,
		PassHash: string(passHash),
	})
}

func (a *Auth) Login(creds domain.Credentials) (string, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	user, err := a.storage.UserByEmail(email)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", errors.New(errors.Forbidden, "Invalid email or password")
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)) != nil {
		return "", errors.New(errors.Forbidden, "Invalid email or password")
	}

	return a.jwt.NewToken(user)
}
