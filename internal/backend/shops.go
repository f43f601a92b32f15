package backend

import (
	"context"
	"net/http"
	"strconv"

	"shopconsole/internal/domain/page"
	"shopconsole/internal/domain/shop"
	"shopconsole/internal/listing"
)

// ListShops fetches an unsorted, unfiltered page of shops.
func (c *Client) ListShops(ctx context.Context, pageIndex, size int) (*page.Page[shop.Shop], error) {
	return c.Fetch(ctx, listing.Request{Page: pageIndex, Size: size, Mode: listing.ModePlain})
}

// ListShopsSorted fetches a page of shops ordered by field.
func (c *Client) ListShopsSorted(ctx context.Context, pageIndex, size int, field string) (*page.Page[shop.Shop], error) {
	return c.Fetch(ctx, listing.Request{Page: pageIndex, Size: size, Mode: listing.ModeSorted, Sort: field})
}

// ListShopsFiltered fetches a page of shops with the raw filter string appended.
func (c *Client) ListShopsFiltered(ctx context.Context, pageIndex, size int, filters string) (*page.Page[shop.Shop], error) {
	return c.Fetch(ctx, listing.Request{Page: pageIndex, Size: size, Mode: listing.ModeFiltered, Filters: filters})
}

// SearchShops runs a text/criteria search.
func (c *Client) SearchShops(ctx context.Context, params listing.SearchParams) (*page.Page[shop.Shop], error) {
	return c.Fetch(ctx, listing.Request{Page: params.Page, Size: params.Size, Mode: listing.ModeSearched, Search: params})
}

// Fetch issues the single GET described by req. It satisfies
// listing.Source for shops.
func (c *Client) Fetch(ctx context.Context, req listing.Request) (*page.Page[shop.Shop], error) {
	return getJSON[page.Page[shop.Shop]](ctx, c, "list_shops_"+req.Mode.String(), req.URL())
}

// GetShop fetches one shop.
func (c *Client) GetShop(ctx context.Context, id int64) (*shop.Shop, error) {
	return getJSON[shop.Shop](ctx, c, "get_shop", shopPath(id))
}

// CreateShop posts a new shop.
func (c *Client) CreateShop(ctx context.Context, s shop.MinimalShop) (*shop.Shop, error) {
	return sendJSON[shop.Shop](ctx, c, "create_shop", http.MethodPost, listing.ShopsPath, s)
}

// EditShop replaces an existing shop; the id travels in the payload.
func (c *Client) EditShop(ctx context.Context, s shop.MinimalShop) (*shop.Shop, error) {
	return sendJSON[shop.Shop](ctx, c, "edit_shop", http.MethodPut, listing.ShopsPath, s)
}

// DeleteShop deletes a shop.
func (c *Client) DeleteShop(ctx context.Context, id int64) error {
	return c.delete(ctx, "delete_shop", shopPath(id))
}

func shopPath(id int64) string {
	return listing.ShopsPath + "/" + strconv.FormatInt(id, 10)
}
