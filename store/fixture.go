package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/diozenio/ecommerce-app-backend/models"
)

// fixture mirrors the top-level shape of the dataset file.
type fixture struct {
	Users             []models.User          `json:"users"`
	Categories        []models.Category      `json:"categories"`
	Products          []models.Product       `json:"products"`
	Orders            []models.RawOrder      `json:"orders"`
	Images            []models.Image         `json:"images"`
	OrderTrackHistory []models.OrderDelivery `json:"orderTrackHistory"`
}

// Load reads the fixture at path, validates it, derives the product and
// order views against baseURL and returns a ready Store. Any inconsistency
// in the dataset is an error: the caller is expected to abort startup.
func Load(path, baseURL string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	if err := validate(&fx); err != nil {
		return nil, fmt.Errorf("validate dataset: %w", err)
	}

	products := deriveProducts(fx.Products, baseURL)
	orders, err := deriveOrders(fx.Orders, products)
	if err != nil {
		return nil, fmt.Errorf("derive orders: %w", err)
	}

	return &Store{
		users:      fx.Users,
		categories: fx.Categories,
		products:   products,
		orders:     orders,
		deliveries: fx.OrderTrackHistory,
		images:     fx.Images,
	}, nil
}

// validate checks the loosely-typed fixture values against the enums they
// are about to be coerced into, so a typo in the dataset fails at startup
// instead of leaking to a client.
func validate(fx *fixture) error {
	for _, p := range fx.Products {
		for _, s := range p.Sizes {
			if _, err := models.ParseSize(string(s)); err != nil {
				return fmt.Errorf("product %s: %w", p.ID, err)
			}
		}
	}
	for _, o := range fx.Orders {
		if _, err := models.ParseOrderStatus(o.Status); err != nil {
			return fmt.Errorf("order %s: %w", o.ID, err)
		}
	}
	for _, d := range fx.OrderTrackHistory {
		for _, h := range d.StatusHistory {
			if _, err := models.ParseOrderStatus(string(h.Status)); err != nil {
				return fmt.Errorf("tracking for order %s: %w", d.OrderID, err)
			}
		}
	}
	return nil
}
