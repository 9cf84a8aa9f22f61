// Package shopify retrieves live orders from the Shopify Admin API,
// trying the REST surface first and falling back to GraphQL when REST
// errors or comes back empty.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/orderdesk/supplier-orders/internal/entities"
)

// GraphQLClient is a minimal Shopify Admin GraphQL client. Credentials
// are per store, so they travel with each call rather than the client.
type GraphQLClient struct {
	apiVersion string
	httpClient *http.Client
}

func NewGraphQLClient(apiVersion string) *GraphQLClient {
	return &GraphQLClient{
		apiVersion: apiVersion,
		httpClient: http.DefaultClient,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// Execute posts one query against the store's Admin GraphQL endpoint
// and returns the raw data object.
func (c *GraphQLClient) Execute(ctx context.Context, store entities.Store, query string, variables map[string]any) (json.RawMessage, error) {
	url := c.endpoint(store.ShopDomain)

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", store.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shopify API error: status %d, body: %s", resp.StatusCode, data)
	}

	var gqlResp graphQLResponse
	if err := json.Unmarshal(data, &gqlResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		messages := make([]string, len(gqlResp.Errors))
		for i, e := range gqlResp.Errors {
			messages[i] = e.Message
		}
		return nil, fmt.Errorf("graphql errors: %s", strings.Join(messages, "; "))
	}

	return gqlResp.Data, nil
}

// endpoint builds the store's Admin GraphQL URL. A bare shop domain
// gets https; a domain configured with an explicit scheme keeps it.
func (c *GraphQLClient) endpoint(domain string) string {
	d := strings.TrimSuffix(domain, "/")
	if !strings.HasPrefix(d, "http://") && !strings.HasPrefix(d, "https://") {
		d = "https://" + d
	}
	return fmt.Sprintf("%s/admin/api/%s/graphql.json", d, c.apiVersion)
}

// normalizeDomain strips scheme and trailing slashes from a configured
// shop domain.
func normalizeDomain(domain string) string {
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	return strings.TrimSuffix(domain, "/")
}
