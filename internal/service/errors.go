package service

import "errors"

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already registered")
	ErrEmailDelivery = errors.New("failed to send verification email")

	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrVerificationCodeExpired = errors.New("verification code expired")
	ErrUnverifiedTeamNotFound  = errors.New("user not found or already verified")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTeamNotVerified    = errors.New("account is not verified")

	ErrTeamNotFound             = errors.New("username not found")
	ErrTeamNotFoundOrUnverified = errors.New("user not found or not verified")
)
