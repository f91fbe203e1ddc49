package user

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/kabore-dev/prepa-concours/internal/auth"
	"github.com/kabore-dev/prepa-concours/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

type UserService interface {
	GoogleLogin(ctx context.Context, code string) (*User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type userService struct {
	repo        UserRepository
	oauthConfig *oauth2.Config
}

func NewService(repo UserRepository) UserService {
	return &userService{
		repo: repo,
		oauthConfig: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

type googleUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleLogin échange le code d'autorisation, crée ou met à jour le
// profil et émet les jetons d'accès et de rafraîchissement.
func (s *userService) GoogleLogin(ctx context.Context, code string) (*User, string, string, error) {
	log := config.WithContext(ctx)

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Error("Échec de l'échange du code Google")
		return nil, "", "", fmt.Errorf("échec de l'échange du code: %w", err)
	}

	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		log.WithError(err).Error("Échec de la récupération du profil Google")
		return nil, "", "", err
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, "", "", err
	}
	if info.Email == "" {
		return nil, "", "", fmt.Errorf("profil Google sans adresse email")
	}

	u := &User{
		Name:             info.Name,
		Email:            info.Email,
		Role:             "candidat",
		SubscriptionType: SubscriptionGratuit,
	}
	if err := s.repo.Upsert(u); err != nil {
		log.WithError(err).Error("Échec de l'enregistrement du profil")
		return nil, "", "", err
	}

	stored, err := s.repo.GetByEmail(info.Email)
	if err != nil || stored == nil {
		return nil, "", "", fmt.Errorf("profil introuvable après enregistrement: %v", err)
	}

	access, err := auth.GenerateJWT(stored.ID.String(), stored.Role, accessTokenTTL)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := auth.GenerateJWT(stored.ID.String(), stored.Role, refreshTokenTTL)
	if err != nil {
		return nil, "", "", err
	}

	log.Info("Connexion réussie", "user_id", stored.ID.String())
	return stored, access, refresh, nil
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil {
		return "", err
	}
	return auth.GenerateJWT(claims.UserID, claims.Role, accessTokenTTL)
}

func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(id)
}
