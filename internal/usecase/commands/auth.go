package commands

import (
	"context"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/config"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/errs"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/jwt"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/password"
)

var ErrInvalidCredentials = errs.New("invalid credentials")

type LoginResult struct {
	Token string
	Role  string
}

// AuthCommands issues admin tokens for the seat-editor endpoints. There is
// a single admin identity configured through the environment.
type AuthCommands interface {
	Login(ctx context.Context, pass string) (*LoginResult, error)
}

type authCommandsImpl struct {
	cfg config.AdminConfig
	jwt *jwt.Service
}

func NewAuthCommands(cfg config.AdminConfig, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{cfg: cfg, jwt: jwtService}
}

func (c *authCommandsImpl) Login(_ context.Context, pass string) (*LoginResult, error) {
	if err := password.Compare(c.cfg.PasswordHash, pass); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := c.jwt.GenerateAdminToken()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{Token: token, Role: jwt.RoleAdmin}, nil
}
