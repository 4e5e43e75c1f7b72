package fleet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API defines the full gateway surface consumed by the sync controller
// and the UI. This interface is implemented by *Client and can be used
// for testing.
type API interface {
	ListOwners(ctx context.Context) ([]Owner, error)
	CreateOwner(ctx context.Context, payload OwnerPayload) (Owner, error)
	UpdateOwner(ctx context.Context, id int64, payload OwnerPayload) (Owner, error)
	DeleteOwner(ctx context.Context, id int64) (string, error)

	ListVehicles(ctx context.Context) ([]Vehicle, error)
	CreateVehicle(ctx context.Context, payload VehiclePayload) (Vehicle, error)
	UpdateVehicle(ctx context.Context, id int64, payload VehiclePayload) (Vehicle, error)
	DeleteVehicle(ctx context.Context, id int64) (string, error)

	ListMaintenance(ctx context.Context) ([]MaintenanceRecord, error)
	CreateMaintenance(ctx context.Context, payload MaintenancePayload) (MaintenanceRecord, error)
	UpdateMaintenance(ctx context.Context, id int64, payload MaintenancePayload) (MaintenanceRecord, error)
	DeleteMaintenance(ctx context.Context, id int64) (string, error)

	FetchStats(ctx context.Context) (Stats, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the fleet backend HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBind   = "127.0.0.1:5000"
	defaultUserAgent = "fleetdeck/0.1"
	requestTimeout   = 10 * time.Second

	ownersPath      = "/api/owners"
	vehiclesPath    = "/api/vehicles"
	maintenancePath = "/api/maintenance"
	statsPath       = "/api/stats"
)

// envelope is the response wrapper used by every backend endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// NewClient builds a Client using the provided apiBind host:port value.
func NewClient(apiBind string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// SetTimeout overrides the per-request timeout. Non-positive durations
// keep the default.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.http.Timeout = d
	}
}

// ListOwners retrieves the full owners collection.
func (c *Client) ListOwners(ctx context.Context) ([]Owner, error) {
	var owners []Owner
	if err := c.do(ctx, http.MethodGet, ownersPath, nil, &owners); err != nil {
		return nil, err
	}
	return owners, nil
}

// CreateOwner creates an owner and returns the stored record.
func (c *Client) CreateOwner(ctx context.Context, payload OwnerPayload) (Owner, error) {
	var owner Owner
	if err := c.do(ctx, http.MethodPost, ownersPath, payload, &owner); err != nil {
		return Owner{}, err
	}
	return owner, nil
}

// UpdateOwner replaces an owner's fields and returns the updated record.
func (c *Client) UpdateOwner(ctx context.Context, id int64, payload OwnerPayload) (Owner, error) {
	var owner Owner
	if err := c.do(ctx, http.MethodPut, itemPath(ownersPath, id), payload, &owner); err != nil {
		return Owner{}, err
	}
	return owner, nil
}

// DeleteOwner deletes an owner. The backend cascades the delete through
// the owner's vehicles and their maintenance records.
func (c *Client) DeleteOwner(ctx context.Context, id int64) (string, error) {
	return c.deleteResource(ctx, itemPath(ownersPath, id))
}

// ListVehicles retrieves the full vehicles collection.
func (c *Client) ListVehicles(ctx context.Context) ([]Vehicle, error) {
	var vehicles []Vehicle
	if err := c.do(ctx, http.MethodGet, vehiclesPath, nil, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// CreateVehicle creates a vehicle and returns the stored record.
func (c *Client) CreateVehicle(ctx context.Context, payload VehiclePayload) (Vehicle, error) {
	var vehicle Vehicle
	if err := c.do(ctx, http.MethodPost, vehiclesPath, payload, &vehicle); err != nil {
		return Vehicle{}, err
	}
	return vehicle, nil
}

// UpdateVehicle replaces a vehicle's fields and returns the updated record.
func (c *Client) UpdateVehicle(ctx context.Context, id int64, payload VehiclePayload) (Vehicle, error) {
	var vehicle Vehicle
	if err := c.do(ctx, http.MethodPut, itemPath(vehiclesPath, id), payload, &vehicle); err != nil {
		return Vehicle{}, err
	}
	return vehicle, nil
}

// DeleteVehicle deletes a vehicle. The backend cascades the delete
// through the vehicle's maintenance records.
func (c *Client) DeleteVehicle(ctx context.Context, id int64) (string, error) {
	return c.deleteResource(ctx, itemPath(vehiclesPath, id))
}

// ListMaintenance retrieves the full maintenance collection.
func (c *Client) ListMaintenance(ctx context.Context) ([]MaintenanceRecord, error) {
	var records []MaintenanceRecord
	if err := c.do(ctx, http.MethodGet, maintenancePath, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateMaintenance creates a maintenance record and returns the stored record.
func (c *Client) CreateMaintenance(ctx context.Context, payload MaintenancePayload) (MaintenanceRecord, error) {
	var record MaintenanceRecord
	if err := c.do(ctx, http.MethodPost, maintenancePath, payload, &record); err != nil {
		return MaintenanceRecord{}, err
	}
	return record, nil
}

// UpdateMaintenance replaces a maintenance record's fields and returns
// the updated record.
func (c *Client) UpdateMaintenance(ctx context.Context, id int64, payload MaintenancePayload) (MaintenanceRecord, error) {
	var record MaintenanceRecord
	if err := c.do(ctx, http.MethodPut, itemPath(maintenancePath, id), payload, &record); err != nil {
		return MaintenanceRecord{}, err
	}
	return record, nil
}

// DeleteMaintenance deletes a maintenance record.
func (c *Client) DeleteMaintenance(ctx context.Context, id int64) (string, error) {
	return c.deleteResource(ctx, itemPath(maintenancePath, id))
}

// FetchStats retrieves the aggregate counters. The backend derives them;
// the client never recomputes totals locally.
func (c *Client) FetchStats(ctx context.Context) (Stats, error) {
	var stats Stats
	if err := c.do(ctx, http.MethodGet, statsPath, nil, &stats); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

func (c *Client) deleteResource(ctx context.Context, path string) (string, error) {
	env, err := c.roundTrip(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// do performs a request and decodes the envelope's data field into dest.
func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	env, err := c.roundTrip(ctx, method, path, body)
	if err != nil {
		return err
	}
	if dest == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		return &DecodeError{Op: opName(method, path), Err: err}
	}
	return nil
}

// roundTrip executes one request and normalizes the outcome: a decoded
// success envelope, or exactly one of the gateway error types.
func (c *Client) roundTrip(ctx context.Context, method, path string, body any) (envelope, error) {
	op := opName(method, path)

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return envelope{}, &TransportError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reqBody = bytes.NewReader(encoded)
	}

	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reqBody)
	if err != nil {
		return envelope{}, &TransportError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return envelope{}, &TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope{}, &TransportError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// A failing endpoint may answer with a plain-text body; that
		// still has to surface as a diagnostic rather than a crash.
		if resp.StatusCode >= 400 {
			return envelope{}, &BackendError{Op: op, StatusCode: resp.StatusCode}
		}
		return envelope{}, &DecodeError{Op: op, Err: err}
	}

	if !env.Success {
		message := env.Error
		if message == "" {
			message = env.Message
		}
		return envelope{}, &BackendError{Op: op, StatusCode: resp.StatusCode, Message: message}
	}
	if resp.StatusCode >= 400 {
		return envelope{}, &BackendError{Op: op, StatusCode: resp.StatusCode, Message: env.Error}
	}
	return env, nil
}

func opName(method, path string) string {
	return method + " " + path
}

func itemPath(base string, id int64) string {
	return fmt.Sprintf("%s/%d", base, id)
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
