package catalog

import "storefront/internal/domain"

func fixtureProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Title: "Product No.1", PriceCents: 12000, Image: "assets/images/products/product1.png"},
		{ID: "2", Title: "Product No.2", PriceCents: 9500, Image: "assets/images/products/product2.png"},
		{ID: "3", Title: "Product No.3", PriceCents: 8000, Image: "assets/images/products/product3.png"},
		{ID: "4", Title: "Product No.4", PriceCents: 11000, Image: "assets/images/products/product4.png"},
		{ID: "5", Title: "Product No.5", PriceCents: 7000, Image: "assets/images/products/product5.png"},
		{ID: "6", Title: "Product No.6", PriceCents: 13000, Image: "assets/images/products/product6.png"},
		{ID: "7", Title: "Product No.7", PriceCents: 9000, Image: "assets/images/products/product7.png"},
		{ID: "8", Title: "Product No.8", PriceCents: 8500, Image: "assets/images/products/product8.png"},
		{ID: "9", Title: "Product No.9", PriceCents: 11500, Image: "assets/images/products/product9.png"},
		{ID: "10", Title: "Product No.10", PriceCents: 10000, Image: "assets/images/products/product10.png"},
	}
}

func fixtureOffers() []domain.Offer {
	return []domain.Offer{
		{ID: "1", Title: "Super", Color: "#D33B0D"},
		{ID: "2", Title: "Weekend Bonus", Color: "#DF5A0C"},
		{ID: "3", Title: "Flash Sale Spesial", Color: "#084137"},
		{ID: "4", Title: "End of Year Sale", Color: "#EB920C"},
		{ID: "5", Title: "Today Promotion", Color: "#0C4A6E"},
		{ID: "6", Title: "Voucher Sale 50%", Color: "#D33B0D"},
		{ID: "7", Title: "Cashback Spesial", Color: "#DF5A0C"},
		{ID: "8", Title: "Weekly Mega Deals", Color: "#084137"},
		{ID: "9", Title: "Free Delivery", Color: "#EB920C"},
		{ID: "10", Title: "Reward Loyal Customer", Color: "#0C4A6E"},
	}
}
