package amadeus

import (
	"context"
	"net/http"
	"sync"
	"time"

	"lounge-advisor-service/internal/domain/apperr"
	"lounge-advisor-service/internal/domain/repository"
	"lounge-advisor-service/pkg/logger"
	"lounge-advisor-service/pkg/metrics"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// tokenProvider exchanges cached API credentials for an OAuth2 access
// token and caches it. Amadeus tokens expire in 1799 seconds; the cache
// TTL (25 minutes by default) keeps a safety margin. The mutex is held
// across the exchange so a cold cache triggers exactly one refresh.
type tokenProvider struct {
	mu         sync.Mutex
	creds      repository.CredentialStore
	secretName string
	tokenURL   string
	ttl        time.Duration
	httpClient *http.Client
	logger     logger.Logger
	metrics    *metrics.Metrics

	token  string
	expiry time.Time
	now    func() time.Time
}

func newTokenProvider(creds repository.CredentialStore, secretName, tokenURL string, ttl time.Duration, httpClient *http.Client, log logger.Logger, m *metrics.Metrics) *tokenProvider {
	return &tokenProvider{
		creds:      creds,
		secretName: secretName,
		tokenURL:   tokenURL,
		ttl:        ttl,
		httpClient: httpClient,
		logger:     log,
		metrics:    m,
		now:        time.Now,
	}
}

// Token returns a valid bearer token, refreshing it when expired.
func (p *tokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && p.now().Before(p.expiry) {
		p.countLookup("hit")
		return p.token, nil
	}
	p.countLookup("miss")

	creds, err := p.creds.GetCredentials(ctx, p.secretName)
	if err != nil {
		return "", err
	}

	cfg := &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     p.tokenURL,
	}

	// Bound the exchange with the gateway's HTTP client.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	tok, err := cfg.Token(ctx)
	if err != nil {
		return "", apperr.Wrap(apperr.Authentication, "amadeus.Token",
			"upstream token exchange failed", err)
	}

	p.token = tok.AccessToken
	p.expiry = p.now().Add(p.ttl)
	if !tok.Expiry.IsZero() && tok.Expiry.Before(p.expiry) {
		p.expiry = tok.Expiry
	}

	p.logger.Info("Obtained upstream access token", "expiresAt", p.expiry.Format(time.RFC3339))
	return p.token, nil
}

func (p *tokenProvider) countLookup(outcome string) {
	if p.metrics != nil {
		p.metrics.CacheLookups.WithLabelValues("token", outcome).Inc()
	}
}
