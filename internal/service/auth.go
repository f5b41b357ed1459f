package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/anonboard-dev/anonboard/internal/domain"
	internal_errors "github.com/anonboard-dev/anonboard/internal/errors"
	"github.com/anonboard-dev/anonboard/internal/logger"
)

// bcrypt silently truncates beyond 72 bytes; reject instead.
const maxPasswordBytes = 72

type AuthService interface {
	Signup(ctx context.Context, creds domain.Credentials) (domain.User, string, error)
	Signin(ctx context.Context, creds domain.Credentials) (domain.User, string, error)
	Me(ctx context.Context, id domain.UserId) (domain.User, error)
}

type AuthStorage interface {
	SaveUser(ctx context.Context, user domain.User) (domain.User, error)
	UserByUsername(ctx context.Context, username string) (domain.User, error)
	UserByEmail(ctx context.Context, email string) (domain.User, error)
	UserById(ctx context.Context, id domain.UserId) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage, jwt}
}

// Signup creates the account and signs the user in. Duplicate username or
// email surfaces as a 409 from storage.
func (a *Auth) Signup(ctx context.Context, creds domain.Credentials) (domain.User, string, error) {
	if len(creds.Password) > maxPasswordBytes {
		return domain.User{}, "", internal_errors.BadRequest("Password is too long")
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, "", err
	}

	user, err := a.storage.SaveUser(ctx, domain.User{
		Username: strings.TrimSpace(creds.Username),
		Email:    strings.ToLower(strings.TrimSpace(creds.Email)),
		PassHash: string(passHash),
	})
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return domain.User{}, "", err
	}
	return user, token, nil
}

// Me resolves the authenticated account from storage. A token for a since
// deleted account maps to a 401 rather than a 404.
func (a *Auth) Me(ctx context.Context, id domain.UserId) (domain.User, error) {
	user, err := a.storage.UserById(ctx, id)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return domain.User{}, internal_errors.Unauthorized("Account no longer exists")
		}
		return domain.User{}, err
	}
	return user, nil
}

// Signin authenticates by username or email. Unknown account and wrong
// password both return the same 401, to not leak existing users.
func (a *Auth) Signin(ctx context.Context, creds domain.Credentials) (domain.User, string, error) {
	var user domain.User
	var err error
	if creds.Username != "" {
		user, err = a.storage.UserByUsername(ctx, creds.Username)
	} else {
		user, err = a.storage.UserByEmail(ctx, strings.ToLower(creds.Email))
	}
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return domain.User{}, "", internal_errors.Unauthorized("Invalid credentials")
		}
		return domain.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		return domain.User{}, "", internal_errors.Unauthorized("Invalid credentials")
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return domain.User{}, "", err
	}
	return user, token, nil
}
