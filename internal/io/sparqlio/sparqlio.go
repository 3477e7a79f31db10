package sparqlio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/antonomaz/imprimeurs/internal/ent/lookup"
	"github.com/antonomaz/imprimeurs/pkg/config"
	"github.com/antonomaz/imprimeurs/pkg/ent/entity"
	"github.com/gnames/gnfmt"
)

// ErrStatus is returned when the endpoint answers with a non-200 status.
var ErrStatus = errors.New("unexpected response status")

const resultsMIME = "application/sparql-results+json"

// response is a SPARQL 1.1 JSON result set.
type response struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []entity.Binding `json:"bindings"`
	} `json:"results"`
}

type sparqlio struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
	enc      gnfmt.Encoder
}

// New creates a Lookuper that queries the SPARQL endpoint of the
// configuration.
func New(cfg config.Config) lookup.Lookuper {
	return NewWithClient(cfg, &http.Client{})
}

// NewWithClient creates a Lookuper that uses the given HTTP client.
func NewWithClient(cfg config.Config, client *http.Client) lookup.Lookuper {
	res := sparqlio{
		endpoint: cfg.Endpoint,
		timeout:  cfg.RequestTimeout,
		client:   client,
		enc:      gnfmt.GNjson{},
	}
	return &res
}

// Lookup sends one query for the identifier. Every failure is returned as
// *lookup.Error.
func (s *sparqlio) Lookup(
	ctx context.Context,
	uri string,
) ([]entity.Binding, error) {
	q, err := Query(uri, entity.Vars)
	if err != nil {
		return nil, lookup.NewError(uri, err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	form := url.Values{}
	form.Set("query", q)
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, lookup.NewError(uri, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", resultsMIME)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, lookup.NewError(uri, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		err = fmt.Errorf("%w: %s", ErrStatus, resp.Status)
		return nil, lookup.NewError(uri, err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, lookup.NewError(uri, err)
	}

	var res response
	if err = s.enc.Decode(body, &res); err != nil {
		err = fmt.Errorf("cannot decode results: %w", err)
		return nil, lookup.NewError(uri, err)
	}
	return res.Results.Bindings, nil
}
