// Package csc fetches the franchise and player graph from the league's
// GraphQL API.
package csc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ethsmith/csc-manager/internal/model"
)

// DefaultEndpoint is the league's GraphQL endpoint.
const DefaultEndpoint = "https://core.csconfederation.com/graphql"

// Source supplies the roster graph. Implementations either return the whole
// payload or fail.
type Source interface {
	Franchises(ctx context.Context) ([]model.Franchise, error)
	Players(ctx context.Context) ([]model.CscPlayer, error)
}

const franchisesQuery = `query {
  franchises(active: true) {
    name
    prefix
    logo { name }
    gm { name }
    agms { name }
    teams {
      id
      name
      captain { steam64Id }
      tier { name mmrCap }
      players { id name discordId steam64Id mmr }
    }
  }
}`

const playersQuery = `query {
  players {
    id
    steam64Id
    name
    discordId
    faceitName
    mmr
    avatarUrl
    contractDuration
    tier { name }
    team { name franchise { name prefix } }
    type
  }
}`

// Client is a minimal GraphQL client for the league API. It needs no
// authentication.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient returns a client for endpoint with the given request timeout.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// query POSTs one GraphQL query and JSON-decodes its data object into out.
func (c *Client) query(ctx context.Context, q string, out interface{}) error {
	body, err := json.Marshal(graphQLRequest{Query: q})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return fmt.Errorf("csc API HTTP %d: %s", resp.StatusCode, msg)
	}

	var gr graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(gr.Errors) > 0 {
		return fmt.Errorf("csc API: %s", gr.Errors[0].Message)
	}
	if len(gr.Data) == 0 || string(gr.Data) == "null" {
		return fmt.Errorf("csc API: empty data")
	}
	return json.Unmarshal(gr.Data, out)
}

// Franchises returns every active franchise with its teams and rosters.
func (c *Client) Franchises(ctx context.Context) ([]model.Franchise, error) {
	var data struct {
		Franchises []model.Franchise `json:"franchises"`
	}
	if err := c.query(ctx, franchisesQuery, &data); err != nil {
		return nil, fmt.Errorf("fetch franchises: %w", err)
	}
	return data.Franchises, nil
}

// Players returns every registered player with status, tier and team.
func (c *Client) Players(ctx context.Context) ([]model.CscPlayer, error) {
	var data struct {
		Players []model.CscPlayer `json:"players"`
	}
	if err := c.query(ctx, playersQuery, &data); err != nil {
		return nil, fmt.Errorf("fetch players: %w", err)
	}
	return data.Players, nil
}
