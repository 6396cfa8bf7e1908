package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"customerlist/internal/config"
	"customerlist/internal/model"
	"customerlist/internal/repository"
)

// APIVersion is the Admin API version pinned in the endpoint path.
const APIVersion = "2024-01"

const (
	accessTokenHeader = "X-Shopify-Access-Token"
	maxResponseBytes  = 1 << 20
	maxErrorBodyBytes = 512
)

// CustomerShopify is a repository.CustomerRepository backed by the Shopify
// GraphQL Admin API. It holds no per-call state and is safe for concurrent use.
type CustomerShopify struct {
	endpoint string
	token    string
	cfgErr   error
	client   *http.Client
	metrics  *Metrics
}

// Option customises a CustomerShopify.
type Option func(*CustomerShopify)

// WithHTTPClient overrides the default instrumented HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(s *CustomerShopify) {
		if h != nil {
			s.client = h
		}
	}
}

// WithMetrics records every call in m.
func WithMetrics(m *Metrics) Option {
	return func(s *CustomerShopify) {
		s.metrics = m
	}
}

// NewCustomerShopify validates cfg once. An invalid config is kept, not
// returned: every List call then fails without touching the network.
func NewCustomerShopify(cfg config.ShopifyConfig, opts ...Option) *CustomerShopify {
	s := &CustomerShopify{
		token:  cfg.AccessToken,
		cfgErr: cfg.Validate(),
		client: &http.Client{
			Timeout:   cfg.Timeout(),
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	if s.cfgErr == nil {
		s.endpoint = EndpointURL(cfg.ShopName)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ repository.CustomerRepository = (*CustomerShopify)(nil)

// EndpointURL builds the GraphQL endpoint for a shop host name.
func EndpointURL(shopName string) string {
	host := strings.TrimSuffix(strings.TrimSpace(shopName), "/")
	host = strings.TrimPrefix(host, "https://")
	return fmt.Sprintf("https://%s/admin/api/%s/graphql.json", host, APIVersion)
}

// ConfigErr returns the validation error captured at construction, if any.
func (s *CustomerShopify) ConfigErr() error {
	return s.cfgErr
}

// List fetches the first PageSize customers. Any failure is an *UpstreamError.
func (s *CustomerShopify) List(ctx context.Context) ([]model.Customer, error) {
	if s.cfgErr != nil {
		s.metrics.observe(kindConfig, time.Time{})
		return nil, upstreamErr(kindConfig, s.cfgErr)
	}

	body, err := json.Marshal(graphQLRequest{Query: customersQuery})
	if err != nil {
		return nil, upstreamErr(kindTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		s.metrics.observe(kindTransport, time.Time{})
		return nil, upstreamErr(kindTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(accessTokenHeader, s.token)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		s.metrics.observe(kindTransport, start)
		return nil, upstreamErr(kindTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		s.metrics.observe(kindStatus, start)
		return nil, upstreamErrf(kindStatus, "unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	customers, err := decodeCustomers(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		var ue *UpstreamError
		if errors.As(err, &ue) {
			s.metrics.observe(ue.kind, start)
		}
		return nil, err
	}

	s.metrics.observe("success", start)
	return customers, nil
}
