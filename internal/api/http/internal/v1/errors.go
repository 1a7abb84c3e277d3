package v1

import (
	"errors"
	"net/http"

	"github.com/csv-challenge/backend/internal/service"
)

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "internal server error"

	InvalidRequestCode    = 1000
	InvalidRequestMessage = "invalid request body"

	UsernameTakenCode    = 1001
	UsernameTakenMessage = "username already exists"
	EmailTakenCode       = 1002
	EmailTakenMessage    = "email already registered"
	EmailDeliveryCode    = 1003
	EmailDeliveryMessage = "failed to send verification email"

	InvalidVerificationCodeCode    = 1101
	InvalidVerificationCodeMessage = "invalid verification code"
	VerificationCodeExpiredCode    = 1102
	VerificationCodeExpiredMessage = "verification code expired"
	UnverifiedTeamNotFoundCode     = 1103
	UnverifiedTeamNotFoundMessage  = "user not found or already verified"

	InvalidCredentialsCode    = 1201
	InvalidCredentialsMessage = "invalid username or password"
	TeamNotVerifiedCode       = 1202
	TeamNotVerifiedMessage    = "account is not verified"

	TeamNotFoundCode                = 1301
	TeamNotFoundMessage             = "username not found"
	TeamNotFoundOrUnverifiedCode    = 1302
	TeamNotFoundOrUnverifiedMessage = "user not found or not verified"

	ValidationErrorCode    = 6000
	ValidationErrorMessage = "validation error"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

var errorMessages = map[ErrorCode]ErrorMessage{
	InvalidRequestCode:           InvalidRequestMessage,
	UsernameTakenCode:            UsernameTakenMessage,
	EmailTakenCode:               EmailTakenMessage,
	EmailDeliveryCode:            EmailDeliveryMessage,
	InvalidVerificationCodeCode:  InvalidVerificationCodeMessage,
	VerificationCodeExpiredCode:  VerificationCodeExpiredMessage,
	UnverifiedTeamNotFoundCode:   UnverifiedTeamNotFoundMessage,
	InvalidCredentialsCode:       InvalidCredentialsMessage,
	TeamNotVerifiedCode:          TeamNotVerifiedMessage,
	TeamNotFoundCode:             TeamNotFoundMessage,
	TeamNotFoundOrUnverifiedCode: TeamNotFoundOrUnverifiedMessage,
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	message, ok := errorMessages[code]
	if !ok {
		return &ErrorStruct{
			ErrorCode:    UnknownErrorCode,
			ErrorMessage: UnknownErrorMessage,
		}
	}

	return &ErrorStruct{
		ErrorCode:    code,
		ErrorMessage: message,
	}
}

// serviceErrors maps service sentinels to the response they produce.
var serviceErrors = []struct {
	err    error
	status int
	code   ErrorCode
}{
	{service.ErrUsernameTaken, http.StatusBadRequest, UsernameTakenCode},
	{service.ErrEmailTaken, http.StatusBadRequest, EmailTakenCode},
	{service.ErrEmailDelivery, http.StatusInternalServerError, EmailDeliveryCode},
	{service.ErrInvalidVerificationCode, http.StatusBadRequest, InvalidVerificationCodeCode},
	{service.ErrVerificationCodeExpired, http.StatusBadRequest, VerificationCodeExpiredCode},
	{service.ErrUnverifiedTeamNotFound, http.StatusNotFound, UnverifiedTeamNotFoundCode},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, InvalidCredentialsCode},
	{service.ErrTeamNotVerified, http.StatusForbidden, TeamNotVerifiedCode},
	{service.ErrTeamNotFound, http.StatusNotFound, TeamNotFoundCode},
	{service.ErrTeamNotFoundOrUnverified, http.StatusNotFound, TeamNotFoundOrUnverifiedCode},
}

func classify(err error) (int, ErrorCode) {
	for _, e := range serviceErrors {
		if errors.Is(err, e.err) {
			return e.status, e.code
		}
	}

	return http.StatusInternalServerError, UnknownErrorCode
}
