package repository

import (
	"time"

	"github.com/tair/storefront/internal/catalog/domain"
)

// Static catalog used until the real product API is wired in. The records
// satisfy the catalog contract: non-empty images, valid currency and stock
// status on every product.

// SeedData returns the static catalog for backends that persist it
func SeedData() ([]domain.Product, []domain.Category, []domain.Brand) {
	return seedProducts(), seedCategories(), seedBrands()
}

func seedBrands() []domain.Brand {
	return []domain.Brand{
		{ID: "brand-voltra", Name: "Voltra", Slug: "voltra", Description: "Consumer electronics"},
		{ID: "brand-anadolu", Name: "Anadolu Atölye", Slug: "anadolu-atolye", Description: "Handcrafted homeware from Anatolia"},
		{ID: "brand-nordic", Name: "Nordic Thread", Slug: "nordic-thread", Description: "Scandinavian knitwear"},
		{ID: "brand-meshur", Name: "Meşhur Lezzetler", Slug: "meshur-lezzetler", Description: "Regional delicacies"},
	}
}

func seedCategories() []domain.Category {
	return []domain.Category{
		{ID: "electronics", Name: "Electronics", Slug: "electronics", Description: "Audio, smart home and accessories"},
		{ID: "home-living", Name: "Home & Living", Slug: "home-living", Description: "Kitchen and decoration"},
		{ID: "fashion", Name: "Fashion", Slug: "fashion", Description: "Clothing and accessories"},
		{ID: "gourmet", Name: "Gourmet", Slug: "gourmet", Description: "Turkish delight, coffee and more"},
	}
}

func seedProducts() []domain.Product {
	brands := map[string]domain.Brand{}
	for _, b := range seedBrands() {
		brands[b.ID] = b
	}
	categories := map[string]domain.Category{}
	for _, c := range seedCategories() {
		categories[c.ID] = c
	}

	day := func(d int) time.Time {
		return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
	}
	img := func(id, alt string) []domain.Image {
		return []domain.Image{{ID: "img-" + id, URL: "https://cdn.storefront.dev/products/" + id + ".jpg", Alt: alt}}
	}

	return []domain.Product{
		{
			ID: "prd-1001", Slug: "kablosuz-kulaklik-pro", Name: "Wireless Headphones Pro",
			Description:      "Over-ear wireless headphones with active noise cancelling and 40 hours of battery life.",
			ShortDescription: "ANC over-ear headphones",
			Images:           img("prd-1001", "Wireless Headphones Pro"),
			Price:            domain.Price{Amount: 2499, Currency: domain.CurrencyTRY},
			OriginalPrice:    &domain.Price{Amount: 2999, Currency: domain.CurrencyTRY},
			Discount:         &domain.Discount{Type: domain.DiscountPercentage, Value: 17, Label: "Summer sale"},
			Brand:            brands["brand-voltra"], Category: categories["electronics"],
			Rating: domain.Rating{Average: 4.6, Count: 412, Distribution: map[int]int{5: 290, 4: 80, 3: 25, 2: 10, 1: 7}},
			Stock:  domain.Stock{Available: 34, Status: domain.StockInStock},
			Attributes: []domain.Attribute{
				{Name: "Battery life", Value: "40 h"},
				{Name: "Connectivity", Value: "Bluetooth 5.3"},
			},
			Tags:      []string{"audio", "sale", "wireless"},
			CreatedAt: day(10), UpdatedAt: day(40), IsFeatured: true,
		},
		{
			ID: "prd-1002", Slug: "akilli-priz-duo", Name: "Smart Plug Duo",
			Description:      "Two-pack Wi-Fi smart plugs with energy monitoring and schedule support.",
			ShortDescription: "Wi-Fi smart plug, 2 pack",
			Images:           img("prd-1002", "Smart Plug Duo"),
			Price:            domain.Price{Amount: 649, Currency: domain.CurrencyTRY},
			Brand:            brands["brand-voltra"], Category: categories["electronics"],
			Rating:    domain.Rating{Average: 4.2, Count: 156, Distribution: map[int]int{5: 80, 4: 45, 3: 20, 2: 6, 1: 5}},
			Stock:     domain.Stock{Available: 120, Status: domain.StockInStock},
			Tags:      []string{"smart-home", "wireless"},
			CreatedAt: day(55), UpdatedAt: day(55), IsNew: true,
		},
		{
			ID: "prd-1003", Slug: "tasinabilir-hoparlor-mini", Name: "Portable Speaker Mini",
			Description:      "Pocket-sized waterproof speaker with punchy bass and 12 hours of playtime.",
			ShortDescription: "Waterproof mini speaker",
			Images:           img("prd-1003", "Portable Speaker Mini"),
			Price:            domain.Price{Amount: 899, Currency: domain.CurrencyTRY},
			Brand:            brands["brand-voltra"], Category: categories["electronics"],
			Rating:    domain.Rating{Average: 3.9, Count: 73, Distribution: map[int]int{5: 25, 4: 22, 3: 15, 2: 6, 1: 5}},
			Stock:     domain.Stock{Available: 3, Status: domain.StockLowStock},
			Tags:      []string{"audio", "wireless", "outdoor"},
			CreatedAt: day(20), UpdatedAt: day(45),
		},
		{
			ID: "prd-2001", Slug: "el-yapimi-seramik-fincan-seti", Name: "Handmade Ceramic Cup Set",
			Description:      "Set of four hand-thrown ceramic coffee cups, each glazed in a unique Iznik-inspired pattern.",
			ShortDescription: "4-piece ceramic cup set",
			Images:           img("prd-2001", "Handmade Ceramic Cup Set"),
			Price:            domain.Price{Amount: 1190, Currency: domain.CurrencyTRY},
			Brand:            brands["brand-anadolu"], Category: categories["home-living"],
			Rating:     domain.Rating{Average: 4.9, Count: 208, Distribution: map[int]int{5: 190, 4: 14, 3: 3, 2: 1, 1: 0}},
			Stock:      domain.Stock{Available: 18, Status: domain.StockInStock},
			Attributes: []domain.Attribute{{Name: "Material", Value: "Stoneware"}},
			Tags:       []string{"handmade", "kitchen", "gift"},
			CreatedAt:  day(5), UpdatedAt: day(5), IsFeatured: true,
		},
		{
			ID: "prd-2002", Slug: "dokuma-kirlent-kilifi", Name: "Woven Cushion Cover",
			Description:      "Kilim-weave cushion cover in natural wool, 45x45 cm.",
			ShortDescription: "Kilim cushion cover",
			Images:           img("prd-2002", "Woven Cushion Cover"),
			Price:            domain.Price{Amount: 420, Currency: domain.CurrencyTRY},
			Brand:            brands["brand-anadolu"], Category: categories["home-living"],
			Rating:    domain.Rating{Average: 4.4, Count: 95, Distribution: map[int]int{5: 60, 4: 22, 3: 9, 2: 3, 1: 1}},
			Stock:     domain.Stock{Available: 0, Status: domain.StockOutOfStock},
			Tags:      []string{"handmade", "decor"},
			CreatedAt: day(2), UpdatedAt: day(30),
		},
		{
			ID: "prd-3001", Slug: "merino-yun-kazak", Name: "Merino Wool Sweater",
			Description:      "Mid-weight crewneck sweater knitted from extra-fine merino wool.",
			ShortDescription: "Merino crewneck",
			Images:           img("prd-3001", "Merino Wool Sweater"),
			Price:            domain.Price{Amount: 1850, Currency: domain.CurrencyTRY},
			OriginalPrice:    &domain.Price{Amount: 2200, Currency: domain.CurrencyTRY},
			Brand:            brands["brand-nordic"], Category: categories["fashion"],
			Rating: domain.Rating{Average: 4.7, Count: 321, Distribution: map[int]int{5: 240, 4: 60, 3: 15, 2: 4, 1: 2}},
			Stock:  domain.Stock{Available: 42, Status: domain.StockInStock},
			Attributes: []domain.Attribute{
				{Name: "Material", Value: "100% merino wool"},
				{Name: "Fit", Value: "Regular"},
			},
			Tags:      []string{"knitwear", "sale", "winter"},
			CreatedAt: day(15), UpdatedAt: day(50), IsFeatured: true,
		},
		{
			ID: "prd-3002", Slug: "keten-gomlek", Name: "Linen Shirt",
			Description:      "Relaxed-fit shirt in stonewashed European linen.",
			ShortDescription: "Stonewashed linen shirt",
			Images:           img("prd-3002", "Linen Shirt"),
			Price:            domain.Price{Amount: 980, Currency: domain.CurrencyTRY},
			Brand:            brands["brand-nordic"], Category: categories["fashion"],
			Rating:    domain.Rating{Average: 4.1, Count: 64, Distribution: map[int]int{5: 28, 4: 20, 3: 10, 2: 4, 1: 2}},
			Stock:     domain.Stock{Available: 57, Status: domain.StockInStock},
			Tags:      []string{"summer"},
			CreatedAt: day(58), UpdatedAt: day(58), IsNew: true,
		},
		{
			ID: "prd-4001", Slug: "cifte-kavrulmus-lokum", Name: "Double-Roasted Turkish Delight",
			Description:      "Pistachio-filled double-roasted lokum prepared to a 90-year-old family recipe.",
			ShortDescription: "Pistachio lokum, 500 g",
			Images:           img("prd-4001", "Double-Roasted Turkish Delight"),
			Price:            domain.Price{Amount: 540, Currency: domain.CurrencyTRY},
			Brand:            brands["brand-meshur"], Category: categories["gourmet"],
			Rating:    domain.Rating{Average: 4.8, Count: 530, Distribution: map[int]int{5: 450, 4: 60, 3: 12, 2: 5, 1: 3}},
			Stock:     domain.Stock{Available: 200, Status: domain.StockInStock},
			Tags:      []string{"sweet", "gift", "regional"},
			CreatedAt: day(1), UpdatedAt: day(1), IsFeatured: true,
		},
		{
			ID: "prd-4002", Slug: "taze-cekilmis-kahve", Name: "Stone-Ground Turkish Coffee",
			Description:      "Medium-roast arabica, stone-ground for traditional cezve brewing. Ships the week it is roasted.",
			ShortDescription: "Turkish coffee, 250 g",
			Images:           img("prd-4002", "Stone-Ground Turkish Coffee"),
			Price:            domain.Price{Amount: 310, Currency: domain.CurrencyTRY},
			Brand:            brands["brand-meshur"], Category: categories["gourmet"],
			Rating:    domain.Rating{Average: 4.5, Count: 289, Distribution: map[int]int{5: 200, 4: 60, 3: 20, 2: 6, 1: 3}},
			Stock:     domain.Stock{Available: 0, Status: domain.StockPreOrder},
			Tags:      []string{"coffee", "regional"},
			CreatedAt: day(48), UpdatedAt: day(60), IsNew: true,
		},
	}
}
