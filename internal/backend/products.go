package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"shopconsole/internal/domain/page"
	"shopconsole/internal/domain/product"
)

const productsPath = "/products"

// ProductFilter narrows a product listing to one shop and/or category.
type ProductFilter struct {
	ShopID     *int64
	CategoryID *int64
}

// ListProducts fetches a page of products.
func (c *Client) ListProducts(ctx context.Context, pageIndex, size int, f ProductFilter) (*page.Page[product.Product], error) {
	q := url.Values{}
	if f.ShopID != nil {
		q.Set("shopId", strconv.FormatInt(*f.ShopID, 10))
	}
	if f.CategoryID != nil {
		q.Set("categoryId", strconv.FormatInt(*f.CategoryID, 10))
	}
	endpoint := productsPath + "?page=" + strconv.Itoa(pageIndex) + "&size=" + strconv.Itoa(size)
	if len(q) > 0 {
		endpoint += "&" + q.Encode()
	}
	return getJSON[page.Page[product.Product]](ctx, c, "list_products", endpoint)
}

// GetProduct fetches one product.
func (c *Client) GetProduct(ctx context.Context, id int64) (*product.Product, error) {
	return getJSON[product.Product](ctx, c, "get_product", productPath(id))
}

// CreateProduct posts a new product.
func (c *Client) CreateProduct(ctx context.Context, p product.MinimalProduct) (*product.Product, error) {
	return sendJSON[product.Product](ctx, c, "create_product", http.MethodPost, productsPath, p)
}

// EditProduct replaces an existing product.
func (c *Client) EditProduct(ctx context.Context, p product.MinimalProduct) (*product.Product, error) {
	return sendJSON[product.Product](ctx, c, "edit_product", http.MethodPut, productsPath, p)
}

// DeleteProduct deletes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.delete(ctx, "delete_product", productPath(id))
}

// SetProductShop attaches a product to a shop. The backend exposes this as a GET.
func (c *Client) SetProductShop(ctx context.Context, productID, shopID int64) (*product.Product, error) {
	endpoint := productPath(productID) + "/shop/" + strconv.FormatInt(shopID, 10)
	return getJSON[product.Product](ctx, c, "set_product_shop", endpoint)
}

func productPath(id int64) string {
	return productsPath + "/" + strconv.FormatInt(id, 10)
}
