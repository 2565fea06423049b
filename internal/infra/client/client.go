// Package client holds HTTP clients for the downstream services the contacts service calls.
package client

import (
	"time"

	"contacts/config"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	retryWaitTime    = 200 * time.Millisecond
	retryMaxWaitTime = 2 * time.Second
)

func newRestyClient(name string, cfg *config.ClientConfig) (*resty.Client, error) {
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.Errorf("%s.baseUrl is required", name)
	}

	return resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(retryWaitTime).
		SetRetryMaxWaitTime(retryMaxWaitTime).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= 500
		}).
		SetHeader("Accept", "application/json"), nil
}
