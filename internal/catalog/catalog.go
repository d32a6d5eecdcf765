// Package catalog holds the static, read-only product and offer lists the
// storefront browses. The catalog is fixture data; it is an input to the
// cart, never mutated by it.
package catalog

import "storefront/internal/domain"

// Catalog is an immutable product/offer set.
type Catalog struct {
	products []domain.Product
	offers   []domain.Offer
	byID     map[string]domain.Product
}

// New builds a catalog from the given products and offers.
func New(products []domain.Product, offers []domain.Offer) *Catalog {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, offers: offers, byID: byID}
}

// Default returns the built-in fixture catalog.
func Default() *Catalog {
	return New(fixtureProducts(), fixtureOffers())
}

// Products returns the product list in catalog order.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Offers returns the promotional offer list.
func (c *Catalog) Offers() []domain.Offer {
	out := make([]domain.Offer, len(c.offers))
	copy(out, c.offers)
	return out
}

// ByID returns the product with the given id, or domain.ErrNotFound.
func (c *Catalog) ByID(id string) (domain.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}
