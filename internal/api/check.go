package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/phishdirectory/dashboard/internal/model"
)

// CheckDomain looks up a domain's phishing verdict via GET /domain/check.
func (c *Client) CheckDomain(ctx context.Context, domain string) (*model.DomainCheck, error) {
	endpoint := "/domain/check?domain=" + url.QueryEscape(domain)

	var result model.DomainCheck
	if err := c.call(ctx, http.MethodGet, endpoint, nil, true, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CheckEmail looks up an email address's validity and reputation via
// GET /email/check.
func (c *Client) CheckEmail(ctx context.Context, email string) (*model.EmailCheck, error) {
	endpoint := "/email/check?email=" + url.QueryEscape(email)

	var result model.EmailCheck
	if err := c.call(ctx, http.MethodGet, endpoint, nil, true, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
