package utils

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/labstack/gommon/log"

	"compliancehub/cmd/internal/utils/apierror"
)

const DateLayout = "2006-01-02"

func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(time.RFC3339)
}

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

// Today returns the current calendar date as YYYY-MM-DD in UTC.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

func IsDate(value string) bool {
	_, err := time.Parse(DateLayout, value)
	return err == nil
}

func MapCognitoError(err error) apierror.ErrorResponse {
	// Targets are locals: this runs on every request goroutine that sees a
	// Cognito failure, and errors.As writes into them.
	var (
		invalidPwd    *types.InvalidPasswordException
		userExists    *types.UsernameExistsException
		userNotFound  *types.UserNotFoundException
		notConfirmed  *types.UserNotConfirmedException
		notAuthorized *types.NotAuthorizedException
		codeMismatch  *types.CodeMismatchException
		expiredCode   *types.ExpiredCodeException
		invalidParam  *types.InvalidParameterException
	)

	switch {
	case errors.As(err, &invalidPwd):
		return apierror.IDPInvalidPasswordError
	case errors.As(err, &userExists):
		return apierror.IDPExistingEmailError
	case errors.As(err, &userNotFound):
		return apierror.IDPUserNotFoundError
	case errors.As(err, &notConfirmed):
		return apierror.IDPUserNotConfirmedError
	case errors.As(err, &notAuthorized):
		return apierror.IDPCredentialsMismatchError
	case errors.As(err, &codeMismatch):
		return apierror.IDPConfirmCodeMismatchError
	case errors.As(err, &expiredCode):
		return apierror.IDPConfirmCodeExpiredError
	case errors.As(err, &invalidParam):
		return apierror.IDPInvalidParameterError
	default:
		// Log the original underlying error for debugging purposes
		log.Errorf("unmapped cognito error: %v", err)
		return apierror.InternalServerError
	}
}

func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
