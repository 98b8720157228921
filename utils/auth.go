package utils

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"regexp"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
)

// ExtractNameFromEmail extracts the username before '@'
func ExtractNameFromEmail(email string) string {
	re := regexp.MustCompile(`^([^@]+)`)
	match := re.FindStringSubmatch(email)
	if len(match) < 2 {
		return email
	}
	return match[1]
}

// GenerateSecretHash computes the Cognito client secret hash for a username.
func GenerateSecretHash(username, clientID, clientSecret string) string {
	key := []byte(clientSecret)
	message := username + clientID

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// ValidateTokenAndFetchEmail verifies a Cognito access token by looking the
// user up, and returns the account's email attribute.
func ValidateTokenAndFetchEmail(ctx context.Context, region, token string) (bool, string, error) {
	cfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(region))
	if err != nil {
		return false, "", fmt.Errorf("failed to load AWS config: %w", err)
	}

	cognitoClient := cognitoidentityprovider.NewFromConfig(cfg)

	user, err := cognitoClient.GetUser(ctx, &cognitoidentityprovider.GetUserInput{
		AccessToken: aws.String(token),
	})
	if err != nil {
		return false, "", fmt.Errorf("token validation failed: %w", err)
	}

	for _, attr := range user.UserAttributes {
		if attr.Name != nil && *attr.Name == "email" && attr.Value != nil {
			return true, *attr.Value, nil
		}
	}

	// Username is the fallback identity when the email attribute is absent.
	if user.Username != nil {
		return true, *user.Username, nil
	}
	return false, "", fmt.Errorf("no identity attribute on token")
}
