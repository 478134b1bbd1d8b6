package credentials

import (
	"context"
	"ets-backend/lib/credentials/store"
	authutils "ets-backend/lib/utils/auth-utils"
	initchecker "ets-backend/lib/utils/init-checker"
	"ets-backend/models"
	credentialsapimodels "ets-backend/models/api/credentials"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Provider interface {
	SignUp(ctx context.Context, request credentialsapimodels.SignUpRequest) (token string, err error)
	Login(ctx context.Context, request credentialsapimodels.LoginRequest) (token string, err error)
}

var (
	ErrSignUpFieldsRequired = models.BadRequest("Name, email and password are required")
	ErrUserExists           = models.BadRequest("User already exists")
	ErrLoginFieldsRequired  = models.BadRequest("Email and password are required")
	ErrUserNotExists        = models.BadRequest("User does not exist")
	ErrInvalidPassword      = models.BadRequest("Invalid password")
)

type Settings struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

func NewInstance(credentialStore store.Provider, settings Settings) Provider {
	instance := impl{
		store:    credentialStore,
		settings: settings,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store    store.Provider
	settings Settings
}

func (i impl) SignUp(ctx context.Context, request credentialsapimodels.SignUpRequest) (string, error) {
	if request.Name == "" || request.Email == "" || request.Password == "" {
		return "", ErrSignUpFieldsRequired
	}
	existing, err := i.store.Get(ctx, request.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrUserExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), i.settings.BcryptCost)
	if err != nil {
		return "", errors.Wrap(err, "password hashing failed")
	}
	created, err := i.store.Create(ctx, credentialsapimodels.Record{
		Name:     request.Name,
		Email:    request.Email,
		Password: string(hash),
	})
	if err != nil {
		return "", err
	}
	if !created {
		return "", ErrUserExists
	}
	log.WithField("email", request.Email).Info("credential user signed up")
	return i.token(request.Email)
}

func (i impl) Login(ctx context.Context, request credentialsapimodels.LoginRequest) (string, error) {
	if request.Email == "" || request.Password == "" {
		return "", ErrLoginFieldsRequired
	}
	rec, err := i.store.Get(ctx, request.Email)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", ErrUserNotExists
	}
	err = bcrypt.CompareHashAndPassword([]byte(rec.Password), []byte(request.Password))
	if err != nil {
		return "", ErrInvalidPassword
	}
	return i.token(request.Email)
}

func (i impl) token(email string) (string, error) {
	return authutils.Sign(i.settings.JWTSecret, jwt.MapClaims{"email": email}, i.settings.TokenTTL)
}
