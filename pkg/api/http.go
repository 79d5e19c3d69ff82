package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config holds the settings needed to reach a manager endpoint.
type Config struct {
	Endpoint  string
	AccessKey string
	Timeout   time.Duration
}

// Client is the HTTP implementation of Transport, speaking the manager
// admin REST API.
type Client struct {
	cfg     Config
	hc      *http.Client
	version Version
}

// NewClient connects to the manager endpoint and reads its advertised
// version. The returned client is ready for queries.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("no manager endpoint configured")
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	c := &Client{
		cfg: cfg,
		hc:  &http.Client{Timeout: cfg.Timeout},
	}

	version, err := c.fetchVersion()
	if err != nil {
		return nil, fmt.Errorf("failed to reach manager at %s: %w", cfg.Endpoint, err)
	}
	c.version = version
	return c, nil
}

// ServerVersion returns the manager version reported at connection time.
func (c *Client) ServerVersion() Version {
	return c.version
}

// FetchPage requests one page of records:
// GET {endpoint}/admin/{kind}?offset=N&limit=M&fields=a,b,c&...filters
func (c *Client) FetchPage(ctx context.Context, kind string, filters map[string]string, fields []string, offset, limit int) (*Page, error) {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))
	if len(fields) > 0 {
		q.Set("fields", strings.Join(fields, ","))
	}
	for k, v := range filters {
		q.Set(k, v)
	}

	var body struct {
		Items      []Record `json:"items"`
		TotalCount *int     `json:"total_count"`
		HasMore    bool     `json:"has_more"`
	}
	u := fmt.Sprintf("%s/admin/%s?%s", c.cfg.Endpoint, url.PathEscape(kind), q.Encode())
	if err := c.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}

	page := &Page{
		Records: body.Items,
		Offset:  offset,
		Limit:   limit,
		HasMore: body.HasMore,
	}
	if body.TotalCount != nil {
		page.TotalCount = *body.TotalCount
		page.HasTotal = true
	}
	return page, nil
}

// FetchOne requests a single record:
// GET {endpoint}/admin/{kind}/{id}?fields=a,b,c
func (c *Client) FetchOne(ctx context.Context, kind, id string, fields []string) (Record, error) {
	q := url.Values{}
	if len(fields) > 0 {
		q.Set("fields", strings.Join(fields, ","))
	}
	u := fmt.Sprintf("%s/admin/%s/%s", c.cfg.Endpoint, url.PathEscape(kind), url.PathEscape(id))
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}

	var rec Record
	if err := c.getJSON(ctx, u, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes a single resource:
// DELETE {endpoint}/admin/{kind}/{id}
func (c *Client) Delete(ctx context.Context, kind, id string) error {
	u := fmt.Sprintf("%s/admin/%s/%s", c.cfg.Endpoint, url.PathEscape(kind), url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.checkStatus(resp)
}

// Close releases client resources.
func (c *Client) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

func (c *Client) fetchVersion() (Version, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.Timeout)
	defer cancel()

	var body struct {
		Manager string `json:"manager"`
	}
	if err := c.getJSON(ctx, c.cfg.Endpoint+"/version", &body); err != nil {
		return Version{}, err
	}
	if body.Manager == "" {
		// Old servers answer the endpoint without a manager field.
		return Version{}, nil
	}
	return ParseVersion(body.Manager)
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("malformed response from manager: %w", err)
	}
	return nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/json")
	if c.cfg.AccessKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.AccessKey)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to manager failed: %w", err)
	}
	return resp, nil
}

func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	msg := resp.Status
	var body struct {
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if json.Unmarshal(data, &body) == nil && body.Message != "" {
		msg = body.Message
	}
	return fmt.Errorf("manager returned %d: %s", resp.StatusCode, msg)
}

var _ Transport = (*Client)(nil)
