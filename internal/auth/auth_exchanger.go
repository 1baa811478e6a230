package auth

import (
	"context"
	"os"

	autherrors "github.com/ahmedalmoraly/clockin-system/internal/auth/errors"
	"github.com/ahmedalmoraly/clockin-system/internal/credentials"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

//go:generate mockgen -source=auth_exchanger.go -destination=mock/auth_exchanger_mock.go -package=mock

// Exchanger abstracts the authorization server so the sign-in flow can be
// tested without hitting Google.
type Exchanger interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (credentials.TokenBundle, error)
}

type googleExchanger struct {
	cfg *oauth2.Config
}

// NewGoogleExchanger reads the OAuth client from the environment. The
// spreadsheet scope is the only one requested; the app never touches other
// user data.
func NewGoogleExchanger() Exchanger {
	return &googleExchanger{
		cfg: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes:       []string{"https://www.googleapis.com/auth/spreadsheets"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (g *googleExchanger) AuthURL(state string) string {
	return g.cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (g *googleExchanger) Exchange(ctx context.Context, code string) (credentials.TokenBundle, error) {
	token, err := g.cfg.Exchange(ctx, code)
	if err != nil {
		return credentials.TokenBundle{}, autherrors.ErrCodeExchangeFailed
	}

	bundle := credentials.TokenBundle{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		bundle.Expiry = &expiry
	}
	return bundle, nil
}
