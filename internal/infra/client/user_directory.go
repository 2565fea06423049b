package client

import (
	"context"
	"net/http"

	"contacts/config"
	"contacts/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

type userDetails struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// userDirectoryClient implements service.UserDirectory over the manage-users API.
type userDirectoryClient struct {
	httpClient *resty.Client
}

// NewUserDirectory creates the manage-users client from configuration.
func NewUserDirectory(cfg *config.Config) (service.UserDirectory, error) {
	httpClient, err := newRestyClient("manageUsers", cfg.ManageUsers)
	if err != nil {
		return nil, err
	}

	return &userDirectoryClient{httpClient: httpClient}, nil
}

// DisplayName returns the user's full name, or "" when the user is unknown.
func (c *userDirectoryClient) DisplayName(ctx context.Context, username string) (string, error) {
	var details userDetails
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("username", username).
		SetResult(&details).
		Get("/users/{username}")
	if err != nil {
		return "", errors.Wrap(err, "failed to call manage users")
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return details.Name, nil
	case http.StatusNotFound:
		return "", nil
	default:
		return "", errors.Errorf("manage users returned status %d", resp.StatusCode())
	}
}
