package store

import (
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/diozenio/ecommerce-app-backend/models"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)

// Store holds every collection for the process lifetime. All collections
// except users are immutable after Load; users grows by appends from
// Register, guarded by mu.
type Store struct {
	mu    sync.Mutex
	users []models.User

	categories []models.Category
	products   []models.Product
	orders     []models.Order
	deliveries []models.OrderDelivery
	images     []models.Image
}

func (s *Store) Categories() []models.Category {
	return s.categories
}

func (s *Store) CategoryByID(id string) (models.Category, error) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, ErrNotFound
}

func (s *Store) Products() []models.Product {
	return s.products
}

func (s *Store) ProductByID(id string) (models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (s *Store) Orders() []models.Order {
	return s.orders
}

func (s *Store) OrderByID(id string) (models.Order, error) {
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (s *Store) Deliveries() []models.OrderDelivery {
	return s.deliveries
}

// DeliveryByOrderID returns the tracking record for an order. Tracking is
// keyed by the order's id, not an id of its own.
func (s *Store) DeliveryByOrderID(orderID string) (models.OrderDelivery, error) {
	for _, d := range s.deliveries {
		if d.OrderID == orderID {
			return d, nil
		}
	}
	return models.OrderDelivery{}, ErrNotFound
}

func (s *Store) Images() []models.Image {
	return s.images
}

func (s *Store) ImageByID(id string) (models.Image, error) {
	for _, img := range s.images {
		if img.ID == id {
			return img, nil
		}
	}
	return models.Image{}, ErrNotFound
}

// ImageData decodes an image's base64 payload. Decoding happens on every
// call; decoded bytes are never cached. A payload that fails to decode is
// reported as an error since the record is unusable.
func (s *Store) ImageData(id string) ([]byte, error) {
	img, err := s.ImageByID(id)
	if err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(img.Data)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", id, err)
	}
	return data, nil
}

// Users returns a snapshot of the user collection, including any accounts
// registered since load.
func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User(nil), s.users...)
}

// Login matches a credential pair against the user collection. Matching is
// case-sensitive exact equality on both fields.
func (s *Store) Login(email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Register appends a new user with a fresh id. The email must not already
// be taken; the check and the append happen under the same lock so
// concurrent signups cannot admit duplicates.
func (s *Store) Register(fullName, email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return models.User{}, ErrUserExists
		}
	}
	user := models.User{
		ID:       uuid.NewString(),
		FullName: fullName,
		Email:    email,
		Password: password,
	}
	s.users = append(s.users, user)
	return user, nil
}
