package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/usercards/internal/client/models"
	"github.com/dmitrijs2005/usercards/internal/logging"
	"github.com/dmitrijs2005/usercards/internal/netx"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// HTTPSource fetches records from the random-data API.
type HTTPSource struct {
	baseURL    string
	batchSize  int
	httpClient *http.Client
	log        logging.Logger
}

func NewHTTPSource(baseURL string, batchSize int, timeout time.Duration, log logging.Logger) *HTTPSource {
	return &HTTPSource{
		baseURL:    baseURL,
		batchSize:  batchSize,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With("component", "source"),
	}
}

// Fetch performs one GET <baseURL>?size=<batchSize>. It does not retry.
func (s *HTTPSource) Fetch(ctx context.Context) ([]models.User, error) {
	requestID := uuid.NewString()
	log := s.log.With("request_id", requestID)

	reqURL, err := s.requestURL()
	if err != nil {
		return nil, fmt.Errorf("%w: build url: %w", ErrFetchFailed, err)
	}

	header := http.Header{}
	header.Set("Accept", "application/json")
	header.Set(requestIDHeader, requestID)

	log.Debug(ctx, "fetching records", slog.String("url", reqURL))

	body, err := netx.GetBody(ctx, s.httpClient, reqURL, header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	users, err := decodeUsers(body)
	if err != nil {
		return nil, fmt.Errorf("%w: decode json: %w", ErrFetchFailed, err)
	}

	log.Debug(ctx, "records fetched", slog.Int("count", len(users)))
	return users, nil
}

func (s *HTTPSource) requestURL() (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("size", strconv.Itoa(s.batchSize))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// decodeUsers accepts an array of users, or a single object (the API
// answers size=1 with an object).
func decodeUsers(body []byte) ([]models.User, error) {
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '{' {
		var u models.User
		if err := json.Unmarshal(body, &u); err != nil {
			return nil, err
		}
		return []models.User{u}, nil
	}

	var users []models.User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, err
	}
	if users == nil {
		return nil, fmt.Errorf("empty payload")
	}
	return users, nil
}
