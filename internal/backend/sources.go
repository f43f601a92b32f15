package backend

import (
	"context"

	"shopconsole/internal/domain/category"
	"shopconsole/internal/domain/page"
	"shopconsole/internal/domain/product"
	"shopconsole/internal/listing"
)

// ProductSource adapts ListProducts to a listing source. Only the page and
// size of the request are used; products have no sort or search mode.
func (c *Client) ProductSource(f ProductFilter) listing.Source[product.Product] {
	return listing.SourceFunc[product.Product](func(ctx context.Context, req listing.Request) (*page.Page[product.Product], error) {
		return c.ListProducts(ctx, req.Page, req.Size, f)
	})
}

// CategorySource adapts ListCategories to a listing source.
func (c *Client) CategorySource() listing.Source[category.Category] {
	return listing.SourceFunc[category.Category](func(ctx context.Context, req listing.Request) (*page.Page[category.Category], error) {
		return c.ListCategories(ctx, req.Page, req.Size)
	})
}
