// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

// Package airtable is a minimal read-only client for the Airtable Records
// API. It covers exactly what the content gateway needs: list records from
// a table with an optional filter formula, sort directive and record cap.
package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.airtable.com/v0"

// Airtable allows 5 requests per second per base; stay under it client-side
// so a burst of cold page loads cannot trip the server-side limiter.
const requestsPerSecond = 5

// Record is one row returned by the Records API. Fields are loosely typed
// as delivered; use the typed accessors to read them.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// Str returns a string field, or "" when absent or not a string.
func (r Record) Str(name string) string {
	s, _ := r.Fields[name].(string)
	return s
}

// Num returns a numeric field, or 0 when absent or not numeric.
func (r Record) Num(name string) float64 {
	n, _ := r.Fields[name].(float64)
	return n
}

// Bool returns a checkbox field and whether it was present at all.
// Airtable omits unchecked checkboxes from the payload, so absence and
// false must stay distinguishable for settings merging.
func (r Record) Bool(name string) (value, present bool) {
	v, ok := r.Fields[name]
	if !ok {
		return false, false
	}
	b, _ := v.(bool)
	return b, true
}

// StrList returns a multi-select field as a string slice, or nil.
func (r Record) StrList(name string) []string {
	items, ok := r.Fields[name].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Sort is a single sort directive.
type Sort struct {
	Field     string
	Direction string // "asc" or "desc"
}

// SelectOptions narrows a ListRecords call.
type SelectOptions struct {
	FilterByFormula string
	Sort            []Sort
	MaxRecords      int
}

// Client talks to one Airtable base.
type Client struct {
	apiKey  string
	baseID  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used in tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a client for the given base.
func New(apiKey, baseID string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseID:  baseID,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// listResponse is one page of the Records API response.
type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

// ListRecords fetches all records from a table, following pagination until
// the API stops returning an offset or MaxRecords is reached.
func (c *Client) ListRecords(ctx context.Context, table string, opts SelectOptions) ([]Record, error) {
	var records []Record
	offset := ""

	for {
		page, err := c.listPage(ctx, table, opts, offset)
		if err != nil {
			return nil, err
		}
		records = append(records, page.Records...)

		if opts.MaxRecords > 0 && len(records) >= opts.MaxRecords {
			return records[:opts.MaxRecords], nil
		}
		if page.Offset == "" {
			return records, nil
		}
		offset = page.Offset
	}
}

func (c *Client) listPage(ctx context.Context, table string, opts SelectOptions, offset string) (*listResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	if opts.FilterByFormula != "" {
		q.Set("filterByFormula", opts.FilterByFormula)
	}
	for i, s := range opts.Sort {
		q.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
		q.Set(fmt.Sprintf("sort[%d][direction]", i), s.Direction)
	}
	if opts.MaxRecords > 0 {
		q.Set("maxRecords", strconv.Itoa(opts.MaxRecords))
	}
	if offset != "" {
		q.Set("offset", offset)
	}

	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(c.baseID), url.PathEscape(table))
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", table, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("listing %q: status %d: %s", table, resp.StatusCode, body)
	}

	var page listResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decoding %q response: %w", table, err)
	}
	return &page, nil
}
