package authhandler

import (
	usersprovider "ets-backend/lib/users"
	authutils "ets-backend/lib/utils/auth-utils"
	initchecker "ets-backend/lib/utils/init-checker"
	authapimodels "ets-backend/models/api/auth"
	userapimodels "ets-backend/models/api/user"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Provider issues sessions. A session is a short-lived access token and a refresh token;
// logout is client side.
type Provider interface {
	Login(email, password string) (authapimodels.SessionResponse, error)
	Register(request authapimodels.RegisterRequest) (authapimodels.SessionResponse, error)
	Me(userID string) (userapimodels.UserView, error)
	RefreshToken(refreshToken string) (authapimodels.JWTResponse, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(usersprovider.Instance)
}

func NewInstance(users usersprovider.Provider) Provider {
	instance := impl{
		users: users,
	}
	initchecker.CheckInit(
		"users", instance.users,
	)
	return instance
}

type impl struct {
	users usersprovider.Provider
}

func (i impl) Login(email, password string) (authapimodels.SessionResponse, error) {
	user, err := i.users.Login(email, password)
	if err != nil {
		return authapimodels.SessionResponse{}, err
	}
	return i.newSession(user)
}

func (i impl) Register(request authapimodels.RegisterRequest) (authapimodels.SessionResponse, error) {
	user, err := i.users.Register(request)
	if err != nil {
		return authapimodels.SessionResponse{}, err
	}
	return i.newSession(user)
}

func (i impl) Me(userID string) (userapimodels.UserView, error) {
	return i.users.Get(userID)
}

func (i impl) RefreshToken(refreshToken string) (authapimodels.JWTResponse, error) {
	userID, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	user, err := i.users.Get(userID)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return i.getTokens(user)
}

func (i impl) newSession(user userapimodels.UserView) (authapimodels.SessionResponse, error) {
	tokens, err := i.getTokens(user)
	if err != nil {
		return authapimodels.SessionResponse{}, err
	}
	log.
		WithField("user_id", user.ID).
		WithField("role", user.Role).
		Info("session issued")
	return authapimodels.SessionResponse{
		JWTResponse: tokens,
		User:        user,
	}, nil
}

func (i impl) getTokens(user userapimodels.UserView) (authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(user.ID, user.Name, user.CompanyID, user.Role)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "failed to sign token")
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, user.Name)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "failed to sign refresh token")
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}
