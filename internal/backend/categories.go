package backend

import (
	"context"
	"net/http"
	"strconv"

	"shopconsole/internal/domain/category"
	"shopconsole/internal/domain/page"
)

const categoriesPath = "/categories"

func (c *Client) ListCategories(ctx context.Context, pageIndex, size int) (*page.Page[category.Category], error) {
	endpoint := categoriesPath + "?page=" + strconv.Itoa(pageIndex) + "&size=" + strconv.Itoa(size)
	return getJSON[page.Page[category.Category]](ctx, c, "list_categories", endpoint)
}

func (c *Client) GetCategory(ctx context.Context, id int64) (*category.Category, error) {
	return getJSON[category.Category](ctx, c, "get_category", categoryPath(id))
}

func (c *Client) CreateCategory(ctx context.Context, cat category.MinimalCategory) (*category.Category, error) {
	return sendJSON[category.Category](ctx, c, "create_category", http.MethodPost, categoriesPath, cat)
}

func (c *Client) EditCategory(ctx context.Context, cat category.MinimalCategory) (*category.Category, error) {
	return sendJSON[category.Category](ctx, c, "edit_category", http.MethodPut, categoriesPath, cat)
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, "delete_category", categoryPath(id))
}

func categoryPath(id int64) string {
	return categoriesPath + "/" + strconv.FormatInt(id, 10)
}
