package domain

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrBrandNotFound    = errors.New("brand not found")
)

// Currency is an ISO currency code supported by the storefront
type Currency string

const (
	CurrencyTRY Currency = "TRY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// Valid reports whether the currency is one of the supported codes
func (c Currency) Valid() bool {
	switch c {
	case CurrencyTRY, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

// Price is a monetary amount in a specific currency
type Price struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

// DiscountType distinguishes percentage and fixed-amount discounts
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount describes a promotion applied to a product
type Discount struct {
	Type  DiscountType `json:"type"`
	Value float64      `json:"value"`
	Label string       `json:"label,omitempty"`
}

// Image is a displayable product or brand asset
type Image struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Brand is a product manufacturer or label
type Brand struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Logo        *Image `json:"logo,omitempty"`
	Description string `json:"description,omitempty"`
}

// Category is a node of the catalog taxonomy
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	Image        *Image `json:"image,omitempty"`
	ParentID     string `json:"parentId,omitempty"`
	ProductCount int    `json:"productCount"`
}

// Rating aggregates customer reviews for a product
type Rating struct {
	Average      float64     `json:"average"`
	Count        int         `json:"count"`
	Distribution map[int]int `json:"distribution,omitempty"`
}

// StockStatus is the availability state of a product
type StockStatus string

const (
	StockInStock    StockStatus = "in-stock"
	StockLowStock   StockStatus = "low-stock"
	StockOutOfStock StockStatus = "out-of-stock"
	StockPreOrder   StockStatus = "pre-order"
)

// Valid reports whether the status is one of the known states
func (s StockStatus) Valid() bool {
	switch s {
	case StockInStock, StockLowStock, StockOutOfStock, StockPreOrder:
		return true
	}
	return false
}

// Stock describes product availability
type Stock struct {
	Available   int         `json:"available"`
	Status      StockStatus `json:"status"`
	RestockDate *time.Time  `json:"restockDate,omitempty"`
}

// Attribute is a free-form name/value product property
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Product is a catalog entry. Products are loaded once from the catalog
// source and treated as immutable by the storefront.
type Product struct {
	ID               string      `json:"id"`
	Slug             string      `json:"slug"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	ShortDescription string      `json:"shortDescription,omitempty"`
	Images           []Image     `json:"images"`
	Price            Price       `json:"price"`
	OriginalPrice    *Price      `json:"originalPrice,omitempty"`
	Discount         *Discount   `json:"discount,omitempty"`
	Brand            Brand       `json:"brand"`
	Category         Category    `json:"category"`
	Rating           Rating      `json:"rating"`
	Stock            Stock       `json:"stock"`
	Attributes       []Attribute `json:"attributes,omitempty"`
	Tags             []string    `json:"tags,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
	IsFeatured       bool        `json:"isFeatured"`
	IsNew            bool        `json:"isNew"`
}

// InStock reports whether the product is immediately purchasable
func (p Product) InStock() bool {
	return p.Stock.Status == StockInStock
}

// DiscountPercent returns the rounded discount percentage implied by the
// original price, or 0 when there is no meaningful original price.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice == nil || p.OriginalPrice.Amount <= 0 {
		return 0
	}
	ratio := (p.OriginalPrice.Amount - p.Price.Amount) / p.OriginalPrice.Amount
	return int(ratio*100 + 0.5)
}
