package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	goshopify "github.com/bold-commerce/go-shopify/v3"

	"github.com/orderdesk/supplier-orders/internal/config"
	"github.com/orderdesk/supplier-orders/internal/entities"
	"github.com/orderdesk/supplier-orders/internal/normalize"
)

const graphqlPageSize = 100

// Fetcher pulls a store's current orders and hands them back in the
// canonical shape. REST is the primary path; an error or an empty
// result falls back to GraphQL exactly once.
type Fetcher struct {
	logger     *slog.Logger
	gql        *GraphQLClient
	apiVersion string
	limit      int
}

func NewFetcher(logger *slog.Logger, cfg config.Shopify) *Fetcher {
	return &Fetcher{
		logger:     logger.With(slog.String("component", "shopify")),
		gql:        NewGraphQLClient(cfg.APIVersion),
		apiVersion: cfg.APIVersion,
		limit:      cfg.FetchLimit,
	}
}

func (f *Fetcher) FetchOrders(ctx context.Context, store entities.Store) ([]entities.Order, error) {
	orders, err := f.fetchREST(store)
	if err != nil {
		f.logger.WarnContext(ctx, "rest fetch failed, falling back to graphql",
			slog.String("store", store.Name), slog.Any("error", err))
	} else if len(orders) > 0 {
		return orders, nil
	}

	return f.fetchGraphQL(ctx, store)
}

func (f *Fetcher) fetchREST(store entities.Store) ([]entities.Order, error) {
	client := goshopify.NewClient(
		goshopify.App{},
		normalizeDomain(store.ShopDomain),
		store.AccessToken,
		goshopify.WithVersion(f.apiVersion),
	)

	raw, err := client.Order.List(goshopify.OrderListOptions{
		Status:      "any",
		ListOptions: goshopify.ListOptions{Limit: f.limit},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return normalize.FromRESTList(store.Name, raw), nil
}

func (f *Fetcher) fetchGraphQL(ctx context.Context, store entities.Store) ([]entities.Order, error) {
	var (
		orders []entities.Order
		cursor string
	)

	for {
		variables := map[string]any{"first": graphqlPageSize}
		if cursor != "" {
			variables["after"] = cursor
		}

		data, err := f.gql.Execute(ctx, store, ordersQuery, variables)
		if err != nil {
			return nil, fmt.Errorf("failed to query orders: %w", err)
		}

		var page struct {
			Orders struct {
				PageInfo struct {
					HasNextPage bool   `json:"hasNextPage"`
					EndCursor   string `json:"endCursor"`
				} `json:"pageInfo"`
				Edges []struct {
					Node normalize.GraphQLOrder `json:"node"`
				} `json:"edges"`
			} `json:"orders"`
		}
		if err := json.Unmarshal(data, &page); err != nil {
			return nil, fmt.Errorf("failed to parse orders response: %w", err)
		}

		raw := make([]normalize.GraphQLOrder, 0, len(page.Orders.Edges))
		for _, edge := range page.Orders.Edges {
			raw = append(raw, edge.Node)
		}
		orders = append(orders, normalize.FromGraphQLList(store.Name, raw)...)

		if !page.Orders.PageInfo.HasNextPage || len(orders) >= f.limit {
			break
		}
		cursor = page.Orders.PageInfo.EndCursor
	}

	if len(orders) > f.limit {
		orders = orders[:f.limit]
	}
	return orders, nil
}
