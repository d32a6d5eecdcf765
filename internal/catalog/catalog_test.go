package catalog

import (
	"errors"
	"strings"
	"testing"

	"storefront/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if len(c.Products()) != 10 {
		t.Fatalf("expected 10 fixture products, got %d", len(c.Products()))
	}
	if len(c.Offers()) != 10 {
		t.Fatalf("expected 10 fixture offers, got %d", len(c.Offers()))
	}

	p, err := c.ByID("1")
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if p.Title != "Product No.1" || p.PriceCents != 12000 {
		t.Fatalf("unexpected product: %+v", p)
	}

	if _, err := c.ByID("nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLoadProductsCSV(t *testing.T) {
	csvData := `id,title,price,description,image
1,Kursi Rotan,$120,Handmade chair,img/kursi.png
2,Meja Kayu,95.50,,img/meja.png
3,Lampu Hias,8000,,
,,ignored row,,`

	products, err := LoadProductsCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}

	if products[0].PriceCents != 12000 {
		t.Fatalf("dollar price: expected 12000 cents, got %d", products[0].PriceCents)
	}
	if products[1].PriceCents != 9550 {
		t.Fatalf("decimal price: expected 9550 cents, got %d", products[1].PriceCents)
	}
	if products[2].PriceCents != 8000 {
		t.Fatalf("cent price: expected 8000 cents, got %d", products[2].PriceCents)
	}
	if products[0].Description != "Handmade chair" || products[0].Image != "img/kursi.png" {
		t.Fatalf("unexpected product fields: %+v", products[0])
	}
}

func TestLoadProductsCSVBadPrice(t *testing.T) {
	csvData := `id,title,price
1,Thing,12.345`
	if _, err := LoadProductsCSV(strings.NewReader(csvData)); err == nil {
		t.Fatal("expected error for malformed price")
	}
}
