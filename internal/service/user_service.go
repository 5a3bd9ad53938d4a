package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"quizapp-service/internal/auth"
	"quizapp-service/internal/event"
	"quizapp-service/internal/models"
	"quizapp-service/internal/repository"
)

type UserService struct {
	Users     *repository.UserRepository
	Sessions  *repository.SessionStore
	JWT       *auth.JWTService
	Google    *auth.GoogleOAuthService
	Publisher *event.EventPublisher
}

func NewUserService(users *repository.UserRepository, sessions *repository.SessionStore, jwtService *auth.JWTService, google *auth.GoogleOAuthService, publisher *event.EventPublisher) *UserService {
	return &UserService{Users: users, Sessions: sessions, JWT: jwtService, Google: google, Publisher: publisher}
}

// SignInResult is what the OAuth callback hands back to the client.
type SignInResult struct {
	Token string              `json:"token"`
	User  *models.UserProfile `json:"user"`
}

// BeginGoogleSignIn issues a one-shot state nonce and returns the consent
// URL to redirect the user to.
func (s *UserService) BeginGoogleSignIn(ctx context.Context) (string, error) {
	state := uuid.NewString()
	if err := s.Sessions.SaveOAuthState(ctx, state); err != nil {
		return "", fmt.Errorf("failed to store oauth state: %w", err)
	}
	return s.Google.GetAuthURL(state), nil
}

// CompleteGoogleSignIn exchanges the callback code, overwrites the user's
// profile document and opens a session.
func (s *UserService) CompleteGoogleSignIn(ctx context.Context, state, code string) (*SignInResult, error) {
	ok, err := s.Sessions.ConsumeOAuthState(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("failed to check oauth state: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: unknown oauth state", models.ErrValidation)
	}

	token, err := s.Google.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}
	info, err := s.Google.GetUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		ID:          info.ID,
		DisplayName: info.Name,
		Email:       info.Email,
		PhotoURL:    info.Picture,
	}
	if err := s.Users.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	sessionID := uuid.NewString()
	session := &repository.Session{
		UserID:      profile.ID,
		DisplayName: profile.DisplayName,
		Email:       profile.Email,
		PhotoURL:    profile.PhotoURL,
	}
	if err := s.Sessions.Save(ctx, sessionID, session); err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	signed, err := s.JWT.IssueToken(profile.ID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.Publisher.Publish(event.UserSignedIn, map[string]string{"userId": profile.ID}); err != nil {
		log.Printf("Failed to publish %s: %v", event.UserSignedIn, err)
	}

	return &SignInResult{Token: signed, User: profile}, nil
}

// SignOut tears the session down; the bearer token is dead from then on.
func (s *UserService) SignOut(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}
