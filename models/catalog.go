package models

import "fmt"

// Size represents the selectable sizes on a product card.
type Size string

const (
	SizeSmall  Size = "SMALL"
	SizeMedium Size = "MEDIUM"
	SizeLarge  Size = "LARGE"
)

// ParseSize validates a fixture value against the known size set.
func ParseSize(s string) (Size, error) {
	switch Size(s) {
	case SizeSmall, SizeMedium, SizeLarge:
		return Size(s), nil
	}
	return "", fmt.Errorf("unknown product size %q", s)
}

type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Product embeds its category rather than referencing it by ID; the client
// renders the card from a single payload.
type Product struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Sizes    []Size   `json:"sizes"`
	Price    float64  `json:"price"`
	ImageURL string   `json:"imageUrl"`
	Category Category `json:"category"`
	Discount *float64 `json:"discount,omitempty"`
}
