// Package credentials resolves the Google credentials shared by the Sheets and Storage
// clients.
package credentials

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// Find returns credentials for the requested scopes, read from a service account JSON file
// when one is given and from the application default credentials otherwise.
func Find(ctx context.Context, file string, scopes ...string) (*google.Credentials, error) {
	if strings.TrimSpace(file) == "" {
		credentials, err := google.FindDefaultCredentials(ctx, scopes...)
		if err != nil {
			return nil, fmt.Errorf("unable to find default credentials (%w)", err)
		}

		return credentials, nil
	}

	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file (%w)", err)
	}

	credentials, err := google.CredentialsFromJSON(ctx, b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials file %s (%w)", file, err)
	}

	return credentials, nil
}

// Options returns the client options for a Google API service built with the resolved
// credentials.
func Options(ctx context.Context, file string, scopes ...string) ([]option.ClientOption, error) {
	credentials, err := Find(ctx, file, scopes...)
	if err != nil {
		return nil, err
	}

	return []option.ClientOption{option.WithCredentials(credentials)}, nil
}

// Token fetches an access token, which verifies the credentials without calling an API.
func Token(ctx context.Context, file string, scopes ...string) (*oauth2.Token, error) {
	credentials, err := Find(ctx, file, scopes...)
	if err != nil {
		return nil, err
	}

	token, err := credentials.TokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%w)", err)
	}

	return token, nil
}
