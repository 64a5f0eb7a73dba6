package utils

import (
	"errors"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"compliancehub/cmd/internal/utils/apierror"
)

func TestMapCognitoError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want apierror.ErrorResponse
	}{
		{"invalid password", &types.InvalidPasswordException{}, apierror.IDPInvalidPasswordError},
		{"existing email", &types.UsernameExistsException{}, apierror.IDPExistingEmailError},
		{"user not found", &types.UserNotFoundException{}, apierror.IDPUserNotFoundError},
		{"not confirmed", &types.UserNotConfirmedException{}, apierror.IDPUserNotConfirmedError},
		{"credentials mismatch", &types.NotAuthorizedException{}, apierror.IDPCredentialsMismatchError},
		{"code mismatch", &types.CodeMismatchException{}, apierror.IDPConfirmCodeMismatchError},
		{"expired code", &types.ExpiredCodeException{}, apierror.IDPConfirmCodeExpiredError},
		{"invalid parameter", &types.InvalidParameterException{}, apierror.IDPInvalidParameterError},
		{"unmapped", errors.New("boom"), apierror.InternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MapCognitoError(tc.err); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

// Every request goroutine that sees a Cognito failure maps it; the mapping
// must hold under concurrency (run with -race).
func TestMapCognitoErrorConcurrent(t *testing.T) {
	inputs := []struct {
		err  error
		want apierror.ErrorResponse
	}{
		{&types.InvalidPasswordException{}, apierror.IDPInvalidPasswordError},
		{&types.UsernameExistsException{}, apierror.IDPExistingEmailError},
		{&types.UserNotFoundException{}, apierror.IDPUserNotFoundError},
		{&types.NotAuthorizedException{}, apierror.IDPCredentialsMismatchError},
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		for _, in := range inputs {
			wg.Add(1)
			go func(err error, want apierror.ErrorResponse) {
				defer wg.Done()
				if got := MapCognitoError(err); got != want {
					t.Errorf("got %v, want %v", got, want)
				}
			}(in.err, in.want)
		}
	}
	wg.Wait()
}
