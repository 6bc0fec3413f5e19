package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"feathernote/logger"
	"feathernote/model"
	"feathernote/repository"
	"feathernote/services"
	"feathernote/utils"

	"github.com/mileusna/useragent"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type UserService struct {
	UsersRepo    *repository.UsersRepo
	SessionsRepo *repository.SessionsRepo
}

// Register creates a new account. The password is hashed before it
// ever reaches the store.
func (svc *UserService) Register(ctx context.Context, user *model.User) error {
	if !utils.ValidatePassword(user.Password) {
		return errors.New("password must be at least 6 characters and contain a number and a special character")
	}

	hash, err := services.HashSecret(user.Password)
	if err != nil {
		return err
	}

	user.UserID = utils.GenerateID()
	user.Password = hash
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.CreatedAt = time.Now().UTC()

	return svc.UsersRepo.CreateUser(ctx, user)
}

// Login verifies the credentials, issues a credential token and
// records a session for the device.
func (svc *UserService) Login(ctx context.Context, email, password, userAgent, ip string) (string, *model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := svc.UsersRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !services.CompareSecrets(user.Password, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	svc.recordSession(ctx, user.UserID, userAgent, ip)
	return token, user, nil
}

// Logout revokes the presented token until its natural expiry.
func (svc *UserService) Logout(ctx context.Context, token string) error {
	return services.BlacklistToken(ctx, token)
}

func (svc *UserService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	return svc.UsersRepo.FindByID(ctx, userID)
}

func (svc *UserService) UpdateProfile(ctx context.Context, userID, fullName, bio, avatarURL string) error {
	if strings.TrimSpace(fullName) == "" {
		return errors.New("full name is required")
	}
	return svc.UsersRepo.UpdateProfile(ctx, userID, fullName, bio, avatarURL)
}

func (svc *UserService) GetSessions(ctx context.Context, userID string) ([]*model.Session, error) {
	return svc.SessionsRepo.GetUserSessions(ctx, userID)
}

// recordSession writes the login audit entry. Best-effort: a failed
// write never fails the login.
func (svc *UserService) recordSession(ctx context.Context, userID, userAgent, ip string) {
	if svc.SessionsRepo == nil {
		return
	}

	ua := useragent.Parse(userAgent)
	device := strings.TrimSpace(ua.Name)
	if ua.OS != "" {
		device = strings.TrimSpace(device + " on " + ua.OS)
	}
	if device == "" {
		device = "unknown device"
	}

	now := time.Now().UTC()
	err := svc.SessionsRepo.CreateSession(ctx, &model.Session{
		SessionID: utils.GenerateID(),
		UserID:    userID,
		Device:    device,
		IP:        ip,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(utils.JWTExpirationTime) * time.Second),
	})
	if err != nil {
		logger.Sugar.Warnw("failed to record session", "user_id", userID, "error", err)
	}
}
