package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"lounge-advisor-service/internal/domain/apperr"
	"lounge-advisor-service/internal/domain/entity"
	"lounge-advisor-service/internal/domain/repository"
	"lounge-advisor-service/pkg/logger"
	"lounge-advisor-service/pkg/metrics"
)

const (
	tokenPath    = "/v1/security/oauth2/token"
	schedulePath = "/v2/schedule/flights"
	offersPath   = "/v2/shopping/flight-offers"

	retryBackoff = 500 * time.Millisecond
	maxOffers    = 10
)

var (
	carrierPattern      = regexp.MustCompile(`^[A-Z]{2}$`)
	flightNumberPattern = regexp.MustCompile(`^[0-9]+$`)
)

// Client is the flight status gateway against the Amadeus API. It owns
// semantic input validation, token handling and the single-retry policy
// for transient upstream failures.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *tokenProvider
	logger     logger.Logger
	metrics    *metrics.Metrics
}

var _ repository.FlightGateway = (*Client)(nil)

// NewClient creates a flight gateway. The timeout bounds every upstream
// call including the token exchange; the engine never hangs on upstream.
func NewClient(baseURL string, creds repository.CredentialStore, secretName string, tokenTTL, timeout time.Duration, log logger.Logger, m *metrics.Metrics) *Client {
	httpClient := &http.Client{Timeout: timeout}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		tokens:     newTokenProvider(creds, secretName, baseURL+tokenPath, tokenTTL, httpClient, log, m),
		logger:     log,
		metrics:    m,
	}
}

// GetSchedule looks up one flight leg and returns its normalized snapshot.
func (c *Client) GetSchedule(ctx context.Context, q repository.ScheduleQuery) (*entity.FlightSchedule, error) {
	const op = "amadeus.GetSchedule"

	if err := validateScheduleQuery(op, q); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("carrierCode", q.Carrier)
	params.Set("flightNumber", q.FlightNumber)
	params.Set("scheduledDepartureDate", q.DepartureDate)
	if q.OperationalSuffix != "" {
		params.Set("operationalSuffix", q.OperationalSuffix)
	}

	var resp scheduleResponse
	if err := c.getJSON(ctx, op, "schedule", schedulePath, params, &resp); err != nil {
		return nil, err
	}

	if len(resp.Data) == 0 {
		return nil, apperr.New(apperr.NotFound, op,
			fmt.Sprintf("no flight found for %s%s on %s", q.Carrier, q.FlightNumber, q.DepartureDate))
	}

	schedule := resp.Data[0].toEntity(q)
	c.logger.Info("Fetched flight schedule",
		"flight", schedule.Designator(),
		"status", string(schedule.Status),
		"delayMinutes", schedule.DelayMinutes())
	return schedule, nil
}

// SearchOffers returns priced origin->destination flight options.
func (c *Client) SearchOffers(ctx context.Context, q repository.OfferQuery) ([]entity.FlightOffer, error) {
	const op = "amadeus.SearchOffers"

	if err := validateOfferQuery(op, q); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("originLocationCode", q.Origin)
	params.Set("destinationLocationCode", q.Destination)
	params.Set("departureDate", q.DepartureDate)
	params.Set("adults", "1")
	params.Set("max", fmt.Sprintf("%d", maxOffers))
	params.Set("currencyCode", "USD")
	if q.ReturnDate != "" {
		params.Set("returnDate", q.ReturnDate)
	}

	var resp offersResponse
	if err := c.getJSON(ctx, op, "offers", offersPath, params, &resp); err != nil {
		return nil, err
	}

	offers := make([]entity.FlightOffer, 0, len(resp.Data))
	for _, o := range resp.Data {
		if offer, ok := o.toEntity(); ok {
			offers = append(offers, offer)
		}
	}
	c.logger.Info("Fetched flight offers", "origin", q.Origin, "destination", q.Destination, "count", len(offers))
	return offers, nil
}

// getJSON performs an authenticated GET with one retry on transient
// upstream failure, then decodes the body.
func (c *Client) getJSON(ctx context.Context, op, endpoint, path string, params url.Values, out interface{}) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.countError(op)
		return err
	}

	reqURL := c.baseURL + path + "?" + params.Encode()

	body, err := c.doWithRetry(ctx, op, endpoint, reqURL, token)
	if err != nil {
		c.countError(op)
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.countError(op)
		return apperr.Wrap(apperr.Upstream, op, "malformed upstream response", err)
	}
	return nil
}

func (c *Client) doWithRetry(ctx context.Context, op, endpoint, reqURL, token string) ([]byte, error) {
	body, err := c.doOnce(ctx, op, endpoint, reqURL, token)
	if !apperr.Retriable(err) {
		return body, err
	}

	c.logger.Warn("Upstream call failed, retrying once", "endpoint", endpoint, "error", err)
	select {
	case <-ctx.Done():
		return nil, apperr.Wrap(apperr.Upstream, op, "upstream request cancelled", ctx.Err())
	case <-time.After(retryBackoff):
	}
	return c.doOnce(ctx, op, endpoint, reqURL, token)
}

func (c *Client) doOnce(ctx context.Context, op, endpoint, reqURL, token string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, op, "failed to build upstream request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metrics != nil {
		c.metrics.UpstreamLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, op, "upstream request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var buf []byte
		buf, err = readAll(resp)
		if err != nil {
			return nil, apperr.Wrap(apperr.Upstream, op, "failed to read upstream response", err)
		}
		return buf, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, apperr.New(apperr.Authentication, op, "upstream rejected credentials")
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperr.New(apperr.NotFound, op, "upstream resource not found")
	case resp.StatusCode >= 500:
		return nil, apperr.New(apperr.Upstream, op,
			fmt.Sprintf("upstream returned status %d", resp.StatusCode))
	default:
		return nil, apperr.New(apperr.Validation, op,
			fmt.Sprintf("upstream rejected request with status %d", resp.StatusCode))
	}
}

func (c *Client) countError(op string) {
	if c.metrics != nil {
		c.metrics.ErrorsCount.WithLabelValues(op).Inc()
	}
}

func validateScheduleQuery(op string, q repository.ScheduleQuery) error {
	if !carrierPattern.MatchString(q.Carrier) {
		return apperr.New(apperr.Validation, op, "carrier code must be exactly 2 letters")
	}
	if !flightNumberPattern.MatchString(q.FlightNumber) {
		return apperr.New(apperr.Validation, op, "flight number must contain only digits")
	}
	if _, err := time.Parse("2006-01-02", q.DepartureDate); err != nil {
		return apperr.New(apperr.Validation, op, "departure date must be in YYYY-MM-DD format")
	}
	return nil
}

func validateOfferQuery(op string, q repository.OfferQuery) error {
	if len(q.Origin) != 3 || len(q.Destination) != 3 {
		return apperr.New(apperr.Validation, op, "origin and destination must be 3-letter airport codes")
	}
	if _, err := time.Parse("2006-01-02", q.DepartureDate); err != nil {
		return apperr.New(apperr.Validation, op, "departure date must be in YYYY-MM-DD format")
	}
	if q.ReturnDate != "" {
		if _, err := time.Parse("2006-01-02", q.ReturnDate); err != nil {
			return apperr.New(apperr.Validation, op, "return date must be in YYYY-MM-DD format")
		}
	}
	return nil
}
