package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"storefront/internal/domain"
)

// LoadProductsCSV reads a product list from CSV. Expected headers:
// id, title, price, description, image. The price column accepts either a
// cent amount ("12000") or a decimal amount with optional currency sign
// ("$120", "120.50").
func LoadProductsCSV(r io.Reader) ([]domain.Product, error) {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas

	headers, err := csvr.Read()
	if err != nil {
		return nil, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var products []domain.Product
	for {
		record, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return products, fmt.Errorf("read row: %w", err)
		}

		id := pick(record, index, "id")
		title := pick(record, index, "title")
		if id == "" || title == "" {
			continue
		}
		cents, err := parsePriceCents(pick(record, index, "price"))
		if err != nil {
			return products, fmt.Errorf("product %q: %w", id, err)
		}

		products = append(products, domain.Product{
			ID:          id,
			Title:       title,
			PriceCents:  cents,
			Description: pick(record, index, "description"),
			Image:       pick(record, index, "image"),
		})
	}
	return products, nil
}

// parsePriceCents accepts "$120", "120.50", or a bare cent amount "12000".
// A value containing a decimal point or currency sign is a major-unit
// amount; otherwise it is already cents.
func parsePriceCents(raw string) (int64, error) {
	v := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "$"))
	if v == "" {
		return 0, errors.New("price required")
	}
	if !strings.Contains(v, ".") && !strings.HasPrefix(strings.TrimSpace(raw), "$") {
		return strconv.ParseInt(v, 10, 64)
	}
	major := v
	minor := "00"
	if dot := strings.Index(v, "."); dot >= 0 {
		major = v[:dot]
		minor = v[dot+1:]
	}
	switch len(minor) {
	case 0:
		minor = "00"
	case 1:
		minor += "0"
	case 2:
	default:
		return 0, fmt.Errorf("invalid price %q", raw)
	}
	if major == "" {
		major = "0"
	}
	mj, err := strconv.ParseInt(major, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", raw)
	}
	mn, err := strconv.ParseInt(minor, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", raw)
	}
	return mj*100 + mn, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
