package cognitoclient

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	cognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// SignupRequest carries the credentials plus arbitrary attribute metadata
// attached to the new account. Onboarding stores the full company snapshot
// here so the record is recoverable even if local staging is lost.
type SignupRequest struct {
	Email    string
	Password string
	Metadata map[string]string
}

// UserConfirmation is the default structure for approving e-mail verification.
type UserConfirmation struct {
	Email string
	Code  string
}

// UserLogin defines the standard structure for logging in to the application.
type UserLogin struct {
	Email    string
	Password string
}

// AuthCreate represents the response of Cognito sign in approval.
type AuthCreate struct {
	IDToken     string `json:"id_token"`
	AccessToken string `json:"access_token"`
}

type CognitoInterface interface {
	SignUp(req *SignupRequest) (string, error)
	SignIn(user *UserLogin) (*AuthCreate, error)
	GlobalSignOut(accessToken string) error
	ConfirmAccount(user *UserConfirmation) error
	ResendConfirmation(email string) error
	AdminDeleteUser(email string) error
}

type cognitoClient struct {
	client      *cognito.Client
	appClientId string
	userPoolId  string
}

func InitCognitoClient() (CognitoInterface, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(os.Getenv("AWS_COGNITO_REGION")))
	if err != nil {
		return nil, err
	}

	return &cognitoClient{
		client:      cognito.NewFromConfig(cfg),
		appClientId: os.Getenv("AWS_COGNITO_CLIENT_ID"),
		userPoolId:  os.Getenv("AWS_COGNITO_POOL_ID"),
	}, nil
}

// SignUp creates a new user row on Cognito and returns its "sub" (the UUID).
// Metadata entries become user attributes; keys outside the standard schema
// must be declared as custom attributes on the pool.
func (c *cognitoClient) SignUp(req *SignupRequest) (string, error) {
	attrs := []types.AttributeType{
		{Name: aws.String("email"), Value: aws.String(req.Email)},
	}
	for key, value := range req.Metadata {
		attrs = append(attrs, types.AttributeType{
			Name:  aws.String(key),
			Value: aws.String(value),
		})
	}

	out, err := c.client.SignUp(context.Background(), &cognito.SignUpInput{
		ClientId:       aws.String(c.appClientId),
		Username:       aws.String(req.Email),
		Password:       aws.String(req.Password),
		UserAttributes: attrs,
	})
	if err != nil {
		return "", err
	}
	return *out.UserSub, nil
}

// SignIn exchanges credentials for tokens... pretty straightforward
func (c *cognitoClient) SignIn(user *UserLogin) (*AuthCreate, error) {
	result, err := c.client.InitiateAuth(context.Background(), &cognito.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		AuthParameters: map[string]string{
			"USERNAME": user.Email,
			"PASSWORD": user.Password,
		},
		ClientId: aws.String(c.appClientId),
	})
	if err != nil {
		return nil, err
	}
	return &AuthCreate{
		IDToken:     *result.AuthenticationResult.IdToken,
		AccessToken: *result.AuthenticationResult.AccessToken,
	}, nil
}

// GlobalSignOut signs out all the user sessions in all devices.
// In other words, it invalidates all the existing JWT tokens
func (c *cognitoClient) GlobalSignOut(accessToken string) error {
	_, err := c.client.GlobalSignOut(context.Background(), &cognito.GlobalSignOutInput{
		AccessToken: aws.String(accessToken),
	})
	return err
}

// ConfirmAccount is used to verify the user's e-mail address
func (c *cognitoClient) ConfirmAccount(user *UserConfirmation) error {
	_, err := c.client.ConfirmSignUp(context.Background(), &cognito.ConfirmSignUpInput{
		Username:         aws.String(user.Email),
		ConfirmationCode: aws.String(user.Code),
		ClientId:         aws.String(c.appClientId),
	})
	return err
}

// ResendConfirmation resends the verification code to the provided e-mail
func (c *cognitoClient) ResendConfirmation(email string) error {
	_, err := c.client.ResendConfirmationCode(context.Background(), &cognito.ResendConfirmationCodeInput{
		Username: aws.String(email),
		ClientId: aws.String(c.appClientId),
	})
	return err
}

// AdminDeleteUser reverts a sign-up whose local bookkeeping failed.
func (c *cognitoClient) AdminDeleteUser(email string) error {
	_, err := c.client.AdminDeleteUser(context.Background(), &cognito.AdminDeleteUserInput{
		UserPoolId: aws.String(c.userPoolId),
		Username:   aws.String(email),
	})
	return err
}
