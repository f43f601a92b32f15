package product

import (
	"strings"

	"shopconsole/internal/domain/category"
	"shopconsole/internal/domain/shop"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Product mirrors the backend product record. Price is stored in cents.
type Product struct {
	ID                int64               `json:"id"`
	Price             int64               `json:"price"`
	LocalizedProducts []LocalizedProduct  `json:"localizedProducts"`
	Shop              *shop.Shop          `json:"shop,omitempty"`
	Categories        []category.Category `json:"categories"`
}

// LocalizedProduct holds the name and description for one locale.
type LocalizedProduct struct {
	ID          int64  `json:"id,omitempty"`
	Locale      string `json:"locale"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// MinimalProduct is the create/edit payload.
type MinimalProduct struct {
	ID                int64               `json:"id,omitempty"`
	Price             int64               `json:"price"`
	LocalizedProducts []LocalizedProduct  `json:"localizedProducts"`
	Shop              *ShopRef            `json:"shop,omitempty"`
	Categories        []category.Category `json:"categories"`
}

// ShopRef references a shop by id in product payloads.
type ShopRef struct {
	ID int64 `json:"id"`
}

// Formatted is a product projected onto one locale.
type Formatted struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Price       int64               `json:"price"`
	PriceLabel  string              `json:"priceLabel"`
	Shop        *shop.Shop          `json:"shop,omitempty"`
	Categories  []category.Category `json:"categories"`
}

// CategoryNames joins category names the way detail pages list them.
func (f *Formatted) CategoryNames() string {
	names := make([]string, 0, len(f.Categories))
	for _, c := range f.Categories {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

// Localized returns the entry matching locale, falling back to the first one.
// The second result is false when the product has no localized entries.
func (p *Product) Localized(locale string) (LocalizedProduct, bool) {
	if len(p.LocalizedProducts) == 0 {
		return LocalizedProduct{}, false
	}
	want := baseOf(locale)
	for _, lp := range p.LocalizedProducts {
		if strings.EqualFold(lp.Locale, locale) {
			return lp, true
		}
	}
	if want != "" {
		for _, lp := range p.LocalizedProducts {
			if baseOf(lp.Locale) == want {
				return lp, true
			}
		}
	}
	return p.LocalizedProducts[0], true
}

// Format projects p onto locale.
func Format(p *Product, locale string) *Formatted {
	lp, _ := p.Localized(locale)
	categories := p.Categories
	if categories == nil {
		categories = []category.Category{}
	}
	return &Formatted{
		ID:          p.ID,
		Name:        lp.Name,
		Description: lp.Description,
		Price:       p.Price,
		PriceLabel:  FormatPrice(p.Price, locale),
		Shop:        p.Shop,
		Categories:  categories,
	}
}

// FormatPrice renders a price in cents with two decimals and locale-aware
// separators, followed by the euro sign.
func FormatPrice(cents int64, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.French
	}
	return message.NewPrinter(tag).Sprintf("%.2f €", float64(cents)/100)
}

func baseOf(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}
