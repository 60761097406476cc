package store

import (
	"fmt"
	"strings"

	"github.com/diozenio/ecommerce-app-backend/models"
)

// rewriteImageURL points a raw product image URL at this server's image
// endpoint. The image id is the segment after the first "/images/" marker,
// minus any query string. URLs without the marker (or with nothing after
// it) pass through unchanged.
func rewriteImageURL(raw, base string) string {
	parts := strings.Split(raw, "/images/")
	if len(parts) < 2 {
		return raw
	}
	id, _, _ := strings.Cut(parts[1], "?")
	if id == "" {
		return raw
	}
	return base + "/images/" + id
}

// deriveProducts returns a copy of the product collection with image URLs
// rewritten against base. The input is left untouched.
func deriveProducts(src []models.Product, base string) []models.Product {
	out := make([]models.Product, len(src))
	for i, p := range src {
		p.ImageURL = rewriteImageURL(p.ImageURL, base)
		out[i] = p
	}
	return out
}

// deriveOrders joins each raw order to its product, producing the order
// view served to clients. A dangling product reference is an error: the
// dataset is assumed internally consistent and a broken join means the
// fixture itself is wrong.
func deriveOrders(raw []models.RawOrder, products []models.Product) ([]models.Order, error) {
	orders := make([]models.Order, 0, len(raw))
	for _, r := range raw {
		var product *models.Product
		for i := range products {
			if products[i].ID == r.ProductID {
				product = &products[i]
				break
			}
		}
		if product == nil {
			return nil, fmt.Errorf("product %s not found for order %s", r.ProductID, r.ID)
		}

		status, err := models.ParseOrderStatus(r.Status)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", r.ID, err)
		}

		var size models.Size
		if len(product.Sizes) > 0 {
			size = product.Sizes[0]
		}

		orders = append(orders, models.Order{
			ID:       r.ID,
			Title:    product.Title,
			Size:     size,
			Price:    product.Price,
			ImageURL: product.ImageURL,
			Status:   status,
			Rating:   r.Rating,
		})
	}
	return orders, nil
}
