package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"noteful/internal/app/dto"
	"noteful/internal/domain/entities"
	"noteful/internal/domain/services"
	"noteful/internal/ports/repositories"
	svc "noteful/internal/ports/services"
	"noteful/pkg/logger"
)

const (
	msgStartRegistration   = "starting user registration"
	msgInvalidRegistration = "registration payload rejected"
	msgUsernameTaken       = "username already taken"
	msgUserRegistered      = "user registered successfully"
	msgLoginAttempt        = "login attempt"
	msgLoginUnknownUser    = "login attempt with unknown username"
	msgLoginBadPassword    = "login attempt with wrong password"
	msgUserAuthenticated   = "user authenticated successfully"

	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrFindingUser       = "error finding user by username"
	msgErrVerifyingPassword = "error verifying password"
)

// Registration validation messages, part of the API contract.
const (
	MsgMissingField     = "Missing field"
	MsgExpectedString   = "Incorrect field type: expected string"
	MsgUntrimmedField   = "Cannot start or end with whitespace"
	MsgPasswordTooShort = "Must be at least 8 characters long"
	MsgPasswordTooLong  = "Must be at most 72 characters long"
)

// UserUseCase implements registration and credential verification.
type UserUseCase struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
}

// NewUserUseCase creates a new user use case.
func NewUserUseCase(userRepo repositories.UserRepository, passwordSvc svc.PasswordService) *UserUseCase {
	return &UserUseCase{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
	}
}

// Register validates the raw payload and creates the account. Validation is
// strictly front-loaded: the first structural defect rejects the request
// before anything is written.
func (uc *UserUseCase) Register(ctx context.Context, payload *dto.RegisterPayload) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "Register"))
	log.Debug(ctx, msgStartRegistration)

	username, password, fullname, err := validateRegistration(payload)
	if err != nil {
		log.Debug(ctx, msgInvalidRegistration, zap.Error(err))
		return nil, err
	}

	digest, err := uc.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &entities.User{
		Username:     username,
		PasswordHash: digest,
		Fullname:     strings.TrimSpace(fullname),
	}

	created, err := uc.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			log.Debug(ctx, msgUsernameTaken, zap.String("username", username))
			return nil, services.ErrUsernameTaken
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("creating user: %w", err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", created.ID))
	return created, nil
}

// Authenticate verifies a username/password pair and returns the matching
// identity. Both failure cases carry a field classification internally but
// must be presented identically to the caller so username existence is not
// leaked.
func (uc *UserUseCase) Authenticate(ctx context.Context, username, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "Authenticate"))
	log.Debug(ctx, msgLoginAttempt)

	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginUnknownUser)
			return nil, &services.CredentialError{Field: "username"}
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("finding user: %w", err)
	}

	valid, err := uc.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err))
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !valid {
		log.Debug(ctx, msgLoginBadPassword)
		return nil, &services.CredentialError{Field: "password"}
	}

	log.Debug(ctx, msgUserAuthenticated, zap.String("userID", user.ID))
	return user, nil
}

// validateRegistration applies the registration validation pass in order:
// required fields, string types, no surrounding whitespace, length bounds.
func validateRegistration(payload *dto.RegisterPayload) (username, password, fullname string, err error) {
	required := []struct {
		name  string
		value any
	}{
		{"username", payload.Username},
		{"password", payload.Password},
	}
	for _, field := range required {
		if field.value == nil {
			return "", "", "", &services.ValidationError{Message: MsgMissingField, Location: field.name}
		}
	}

	strFields := []struct {
		name  string
		value any
		dst   *string
	}{
		{"username", payload.Username, &username},
		{"password", payload.Password, &password},
		{"fullname", payload.Fullname, &fullname},
	}
	for _, field := range strFields {
		if field.value == nil {
			continue
		}
		str, ok := field.value.(string)
		if !ok {
			return "", "", "", &services.ValidationError{Message: MsgExpectedString, Location: field.name}
		}
		*field.dst = str
	}

	for _, field := range []struct {
		name  string
		value string
	}{
		{"username", username},
		{"password", password},
	} {
		if strings.TrimSpace(field.value) != field.value {
			return "", "", "", &services.ValidationError{Message: MsgUntrimmedField, Location: field.name}
		}
	}

	if utf8.RuneCountInString(username) < 1 {
		return "", "", "", &services.ValidationError{Message: "Must be at least 1 characters long", Location: "username"}
	}
	// The minimum counts characters; the maximum counts bytes because it is
	// bcrypt's input limit.
	if utf8.RuneCountInString(password) < services.MinPasswordLength {
		return "", "", "", &services.ValidationError{Message: MsgPasswordTooShort, Location: "password"}
	}
	if len(password) > services.MaxPasswordLength {
		return "", "", "", &services.ValidationError{Message: MsgPasswordTooLong, Location: "password"}
	}

	return username, password, fullname, nil
}
