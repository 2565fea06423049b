package client

import (
	"context"
	"log/slog"
	"net/http"

	"contacts/config"
	"contacts/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// prisonerSearchClient implements service.PrisonerSearch over the prisoner search API.
type prisonerSearchClient struct {
	httpClient *resty.Client
	logger     *slog.Logger
}

// NewPrisonerSearch creates the prisoner search client from configuration.
func NewPrisonerSearch(cfg *config.Config, logger *slog.Logger) (service.PrisonerSearch, error) {
	httpClient, err := newRestyClient("prisonerSearch", cfg.PrisonerSearch)
	if err != nil {
		return nil, err
	}

	return &prisonerSearchClient{httpClient: httpClient, logger: logger}, nil
}

// PrisonerExists looks the prisoner number up. Only a 404 means the prisoner is unknown.
func (c *prisonerSearchClient) PrisonerExists(ctx context.Context, prisonerNumber string) (bool, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("prisonerNumber", prisonerNumber).
		Get("/prisoner/{prisonerNumber}")
	if err != nil {
		return false, errors.Wrap(err, "failed to call prisoner search")
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		c.logger.Warn("Prisoner search returned unexpected status",
			slog.String("prisoner_number", prisonerNumber),
			slog.Int("status_code", resp.StatusCode()),
		)

		return false, errors.Errorf("prisoner search returned status %d", resp.StatusCode())
	}
}
