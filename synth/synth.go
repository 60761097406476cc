// Package synth produces randomized values for endpoints that have no
// backing data in the fixture.
package synth

import (
	"math"

	"github.com/brianvoe/gofakeit/v7"
)

// transitStatuses are the literal strings the order status endpoint serves.
// They deliberately differ in casing from models.OrderStatus: the client app
// was built against these exact values.
var transitStatuses = []string{"in_transit", "picked", "packing"}

// Taxes is the response shape of GET /taxes.
type Taxes struct {
	VAT         float64 `json:"vat"`
	ShippingFee int     `json:"shippingFee"`
}

// Bounds configures the ranges randomized values are drawn from.
type Bounds struct {
	VATMin      float64
	VATMax      float64
	ShippingMin int
	ShippingMax int
}

type Generator struct {
	faker  *gofakeit.Faker
	bounds Bounds
}

func NewGenerator(b Bounds) *Generator {
	return &Generator{faker: gofakeit.New(0), bounds: b}
}

// OrderStatus returns a uniformly random transit status. Every call draws a
// fresh value; nothing is memoized or related to any stored order.
func (g *Generator) OrderStatus() string {
	return g.faker.RandomString(transitStatuses)
}

// TaxRates returns a random VAT rate (two decimal places) and shipping fee
// within the configured bounds.
func (g *Generator) TaxRates() Taxes {
	vat := g.faker.Float64Range(g.bounds.VATMin, g.bounds.VATMax)
	return Taxes{
		VAT:         math.Round(vat*100) / 100,
		ShippingFee: g.faker.Number(g.bounds.ShippingMin, g.bounds.ShippingMax),
	}
}
