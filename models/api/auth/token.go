package authapimodels

import (
	userapimodels "ets-backend/models/api/user"
	"strings"

	"github.com/pkg/errors"
)

type JWTResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type SessionResponse struct {
	JWTResponse
	User userapimodels.UserView `json:"user"`
}

type JWTRefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r JWTRefreshRequest) Validate() error {
	if len(strings.TrimSpace(r.RefreshToken)) == 0 {
		return errors.New("refresh token must not be empty")
	}
	return nil
}
