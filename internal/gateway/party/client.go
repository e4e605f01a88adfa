package party

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"route-service-fleetsync/internal/domain"
	"route-service-fleetsync/internal/logx"
)

const errBodyLimit = 4 << 10

// Party names used in logs and metrics.
const (
	Drivers  = "drivers"
	Vehicles = "vehicles"
)

// Config describes one collaborator endpoint.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

type httpDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client talks to one collaborator resource, e.g. {base}/api/drivers/{id}.
// GET returns {"data": {...}}; PUT accepts the flat record.
type Client[T any] struct {
	base     string
	resource string
	hc       httpDoer
	logger   logx.Logger
	requests *prometheus.CounterVec
}

// DriverClient fetches and updates driver records.
type DriverClient = Client[domain.Driver]

// VehicleClient fetches and updates vehicle records.
type VehicleClient = Client[domain.Vehicle]

// NewDriverClient returns a client for the driver service.
func NewDriverClient(cfg Config, logger logx.Logger, requests *prometheus.CounterVec) *DriverClient {
	return newClient[domain.Driver](Drivers, cfg, logger, requests)
}

// NewVehicleClient returns a client for the vehicle service.
func NewVehicleClient(cfg Config, logger logx.Logger, requests *prometheus.CounterVec) *VehicleClient {
	return newClient[domain.Vehicle](Vehicles, cfg, logger, requests)
}

func newClient[T any](resource string, cfg Config, logger logx.Logger, requests *prometheus.CounterVec) *Client[T] {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Client[T]{
		base:     strings.TrimRight(cfg.BaseURL, "/"),
		resource: resource,
		hc:       &http.Client{Timeout: cfg.Timeout},
		logger:   logger.With(logx.String("party", resource)),
		requests: requests,
	}
}

type envelope[T any] struct {
	Data *T `json:"data"`
}

// GetByID fetches a record. A response without data yields (nil, nil).
func (c *Client[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	resp, err := c.do(ctx, http.MethodGet, id, nil)
	if err != nil {
		c.observe("get", err)
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		err = fmt.Errorf("decode %s %d: %w", c.resource, id, err)
		c.observe("get", err)
		return nil, err
	}
	c.observe("get", nil)
	return env.Data, nil
}

// Update replaces the record with rec.
func (c *Client[T]) Update(ctx context.Context, id int64, rec T) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal %s %d: %w", c.resource, id, err)
	}
	resp, err := c.do(ctx, http.MethodPut, id, payload)
	if err != nil {
		c.observe("update", err)
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	c.observe("update", nil)
	return nil
}

func (c *Client[T]) url(id int64) string {
	return c.base + "/api/" + c.resource + "/" + strconv.FormatInt(id, 10)
}

func (c *Client[T]) do(ctx context.Context, method string, id int64, payload []byte) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url(id), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, req.URL.Path, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyLimit))
		resp.Body.Close()
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	return resp, nil
}

func (c *Client[T]) observe(method string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		var se *StatusError
		if errors.As(err, &se) {
			outcome = strconv.Itoa(se.Code)
		}
		c.logger.Debug("party request failed", logx.String("method", method), logx.Err(err))
	}
	if c.requests != nil {
		c.requests.WithLabelValues(c.resource, method, outcome).Inc()
	}
}
