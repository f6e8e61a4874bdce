package catalog

import (
	"time"

	"github.com/savora-app/savora/internal/core/domain"
)

// Store indexes within the fixture store set.
const (
	storeTechHub = iota
	storeElectroMart
	storeShopZone
	storeGadgetWorld
	storeSportEdge
	storeAthleteZone
	storeAudioTech
	storeDenimCo
	storeMegaStore
	storeHomeAppliance
)

func buildStores() []domain.Store {
	allCategories := domain.Categories()

	stores := []domain.Store{
		{
			Name:          "TechHub Premium",
			Description:   "Premium electronics retailer offering the latest technology products and accessories",
			LogoRef:       "applelogo",
			Website:       "https://www.techhubpremium.com",
			AverageRating: 4.7,
			ReviewCount:   12500,
			Categories:    []domain.Category{domain.CategoryElectronics},
		},
		{
			Name:          "ElectroMart",
			Description:   "Leading electronics retailer with a wide selection of technology products",
			LogoRef:       "bolt.circle.fill",
			Website:       "https://www.electromart.com",
			AverageRating: 4.4,
			ReviewCount:   8900,
			Categories: []domain.Category{
				domain.CategoryElectronics, domain.CategoryHome,
				domain.CategoryAutomotive,
			},
		},
		{
			Name:          "ShopZone",
			Description:   "Large online retailer offering millions of products across all categories",
			LogoRef:       "cart.fill",
			Website:       "https://www.shopzone.com",
			AverageRating: 4.6,
			ReviewCount:   50000,
			Categories:    allCategories,
		},
		{
			Name:          "GadgetWorld",
			Description:   "Modern electronics store specializing in smartphones, tablets, and smart home devices",
			LogoRef:       "smartphone",
			Website:       "https://www.gadgetworld.com",
			AverageRating: 4.5,
			ReviewCount:   3400,
			Categories: []domain.Category{
				domain.CategoryElectronics, domain.CategoryHome,
			},
		},
		{
			Name:          "SportEdge",
			Description:   "Premium athletic store for sports footwear, apparel, and equipment",
			LogoRef:       "figure.run",
			Website:       "https://www.sportedge.com",
			AverageRating: 4.6,
			ReviewCount:   7800,
			Categories: []domain.Category{
				domain.CategorySports, domain.CategoryClothing,
			},
		},
		{
			Name:          "AthleteZone",
			Description:   "Athletic footwear and sportswear specialist",
			LogoRef:       "sportscourt.fill",
			Website:       "https://www.athletezone.com",
			AverageRating: 4.3,
			ReviewCount:   4500,
			Categories: []domain.Category{
				domain.CategorySports, domain.CategoryClothing,
			},
		},
		{
			Name:          "AudioTech Store",
			Description:   "Specialist in audio equipment, headphones, and entertainment electronics",
			LogoRef:       "headphones",
			Website:       "https://www.audiotech.com",
			AverageRating: 4.5,
			ReviewCount:   2900,
			Categories:    []domain.Category{domain.CategoryElectronics},
		},
		{
			Name:          "DenimCo",
			Description:   "Classic denim brand offering quality jeans and casual wear",
			LogoRef:       "tshirt.fill",
			Website:       "https://www.denimco.com",
			AverageRating: 4.4,
			ReviewCount:   3600,
			Categories:    []domain.Category{domain.CategoryClothing},
		},
		{
			Name:          "MegaStore",
			Description:   "Major retail chain offering a wide variety of products for everyday life",
			LogoRef:       "target",
			Website:       "https://www.megastore.com",
			AverageRating: 4.5,
			ReviewCount:   15600,
			Categories:    allCategories,
		},
		{
			Name:          "HomeAppliance Hub",
			Description:   "Innovative home appliances and cleaning solutions",
			LogoRef:       "fanblades.fill",
			Website:       "https://www.homeappliancehub.com",
			AverageRating: 4.6,
			ReviewCount:   2100,
			Categories:    []domain.Category{domain.CategoryHome},
		},
	}

	for i := range stores {
		stores[i].StoreID = domain.NewID()
	}
	return stores
}

func buildProducts(stores []domain.Store, now time.Time) []domain.Product {
	price := func(storeIdx int, amount float64) domain.StorePrice {
		return domain.StorePrice{
			PriceID:     domain.NewID(),
			StoreID:     stores[storeIdx].StoreID,
			StoreName:   stores[storeIdx].Name,
			Price:       amount,
			Currency:    "USD",
			InStock:     true,
			LastUpdated: now,
		}
	}

	products := []domain.Product{
		{
			Name:        "Flagship Smartphone",
			Description: "Premium smartphone with advanced camera system and long battery life",
			Category:    domain.CategoryElectronics,
			ImageRef:    "iphone.circle.fill",
			Prices: []domain.StorePrice{
				price(storeTechHub, 999.00),
				price(storeElectroMart, 979.00),
				price(storeShopZone, 949.00),
			},
			AverageRating: 4.8,
			ReviewCount:   1250,
		},
		{
			Name:        "Premium Smartphone",
			Description: "High-performance smartphone with stunning display and powerful features",
			Category:    domain.CategoryElectronics,
			ImageRef:    "smartphone",
			Prices: []domain.StorePrice{
				price(storeGadgetWorld, 899.00),
				price(storeElectroMart, 879.00),
				price(storeShopZone, 849.00),
			},
			AverageRating: 4.7,
			ReviewCount:   980,
		},
		{
			Name:        "Wireless Earbuds Pro",
			Description: "True wireless earbuds with noise cancellation and premium sound quality",
			Category:    domain.CategoryElectronics,
			ImageRef:    "airpodspro",
			Prices: []domain.StorePrice{
				price(storeTechHub, 249.00),
				price(storeElectroMart, 249.00),
				price(storeShopZone, 229.00),
			},
			AverageRating: 4.9,
			ReviewCount:   3200,
		},
		{
			Name:        "Running Shoes",
			Description: "Comfortable athletic shoes with cushioning technology for runners",
			Category:    domain.CategorySports,
			ImageRef:    "figure.run",
			Prices: []domain.StorePrice{
				price(storeSportEdge, 150.00),
				price(storeShopZone, 139.99),
				price(storeAthleteZone, 145.00),
			},
			AverageRating: 4.6,
			ReviewCount:   560,
		},
		{
			Name:        "Noise-Canceling Headphones",
			Description: "Over-ear headphones with active noise cancellation and premium audio",
			Category:    domain.CategoryElectronics,
			ImageRef:    "headphones",
			Prices: []domain.StorePrice{
				price(storeAudioTech, 399.00),
				price(storeElectroMart, 379.00),
				price(storeShopZone, 369.00),
			},
			AverageRating: 4.8,
			ReviewCount:   2100,
		},
		{
			Name:        "Classic Denim Jeans",
			Description: "Comfortable straight fit jeans made from quality denim fabric",
			Category:    domain.CategoryClothing,
			ImageRef:    "tshirt.fill",
			Prices: []domain.StorePrice{
				price(storeDenimCo, 69.50),
				price(storeShopZone, 59.99),
				price(storeMegaStore, 64.99),
			},
			AverageRating: 4.5,
			ReviewCount:   890,
		},
		{
			Name:        "Cordless Vacuum Cleaner",
			Description: "Powerful cordless vacuum with advanced cleaning technology",
			Category:    domain.CategoryHome,
			ImageRef:    "fanblades.fill",
			Prices: []domain.StorePrice{
				price(storeHomeAppliance, 649.99),
				price(storeElectroMart, 629.99),
				price(storeShopZone, 599.99),
			},
			AverageRating: 4.7,
			ReviewCount:   1450,
		},
		{
			Name:        "Digital E-Reader",
			Description: "Portable e-reader with high-resolution display for book lovers",
			Category:    domain.CategoryBooks,
			ImageRef:    "book.fill",
			Prices: []domain.StorePrice{
				price(storeShopZone, 139.99),
				price(storeElectroMart, 139.99),
				price(storeMegaStore, 149.99),
			},
			AverageRating: 4.8,
			ReviewCount:   5670,
		},
		{
			Name:        "Fitness Smartwatch",
			Description: "Smartwatch with fitness tracking, heart rate monitoring, and GPS",
			Category:    domain.CategoryElectronics,
			ImageRef:    "applewatch",
			Prices: []domain.StorePrice{
				price(storeTechHub, 399.00),
				price(storeElectroMart, 389.00),
				price(storeShopZone, 379.00),
			},
			AverageRating: 4.7,
			ReviewCount:   2340,
		},
		{
			Name:        "Professional Laptop",
			Description: "Lightweight laptop with powerful performance and all-day battery",
			Category:    domain.CategoryElectronics,
			ImageRef:    "laptopcomputer",
			Prices: []domain.StorePrice{
				price(storeTechHub, 1199.00),
				price(storeElectroMart, 1149.00),
				price(storeShopZone, 1099.00),
			},
			AverageRating: 4.9,
			ReviewCount:   4560,
		},
		{
			Name:        "Handheld Gaming Device",
			Description: "Portable gaming console with vibrant screen and enhanced audio",
			Category:    domain.CategoryToys,
			ImageRef:    "gamecontroller.fill",
			Prices: []domain.StorePrice{
				price(storeShopZone, 349.99),
				price(storeElectroMart, 349.99),
				price(storeMegaStore, 349.99),
			},
			AverageRating: 4.9,
			ReviewCount:   3450,
		},
		{
			Name:        "Outdoor Winter Jacket",
			Description: "Warm waterproof jacket with insulation for cold weather",
			Category:    domain.CategoryClothing,
			ImageRef:    "tshirt.fill",
			Prices: []domain.StorePrice{
				price(storeShopZone, 299.00),
				price(storeMegaStore, 299.00),
			},
			AverageRating: 4.6,
			ReviewCount:   560,
		},
		{
			Name:        "Stand Mixer",
			Description: "Powerful stand mixer perfect for baking and cooking",
			Category:    domain.CategoryHome,
			ImageRef:    "house.fill",
			Prices: []domain.StorePrice{
				price(storeShopZone, 379.99),
				price(storeElectroMart, 399.99),
				price(storeMegaStore, 379.99),
			},
			AverageRating: 4.9,
			ReviewCount:   3450,
		},
		{
			Name:        "Large Screen Smart TV",
			Description: "High-definition smart TV with streaming capabilities",
			Category:    domain.CategoryElectronics,
			ImageRef:    "tv.fill",
			Prices: []domain.StorePrice{
				price(storeGadgetWorld, 699.99),
				price(storeElectroMart, 649.99),
				price(storeShopZone, 629.99),
			},
			AverageRating: 4.6,
			ReviewCount:   2340,
		},
		{
			Name:        "Sports Water Bottle",
			Description: "Insulated water bottle for athletes and outdoor activities",
			Category:    domain.CategorySports,
			ImageRef:    "drop.fill",
			Prices: []domain.StorePrice{
				price(storeShopZone, 44.95),
				price(storeMegaStore, 44.95),
			},
			AverageRating: 4.8,
			ReviewCount:   6780,
		},
	}

	for i := range products {
		products[i].ProductID = domain.NewID()
	}
	return products
}

func buildDeals(products []domain.Product, now time.Time) []domain.Deal {
	deal := func(
		p domain.Product, priceIdx int,
		title, description string,
		original, discounted float64, days int,
	) domain.Deal {
		sp := p.Prices[priceIdx]
		return domain.Deal{
			DealID:          domain.NewID(),
			Title:           title,
			Description:     description,
			ProductID:       p.ProductID,
			ProductName:     p.Name,
			StoreID:         sp.StoreID,
			StoreName:       sp.StoreName,
			OriginalPrice:   original,
			DiscountedPrice: discounted,
			StartDate:       now,
			EndDate:         now.AddDate(0, 0, days),
			ImageRef:        p.ImageRef,
			Category:        p.Category,
		}
	}

	return []domain.Deal{
		deal(products[0], 2, "Smartphone Flash Sale",
			"Save big on flagship smartphone today only",
			999.00, 799.00, 7),
		deal(products[4], 2, "Audio Weekend Sale",
			"Limited time offer on premium headphones",
			399.00, 299.00, 2),
		deal(products[3], 1, "Athletic Footwear Sale",
			"Big savings on running shoes this week",
			150.00, 99.99, 14),
		deal(products[2], 2, "Wireless Earbuds Deal",
			"Special weekly discount on true wireless earbuds",
			249.00, 199.00, 1),
		deal(products[6], 2, "Home Cleaning Sale",
			"Cordless vacuum cleaner at special discounted price",
			649.99, 499.99, 10),
	}
}

func buildReviews(now time.Time) []domain.Review {
	review := func(
		author string, rating float64, title, content string,
		daysAgo, helpful int, verified bool,
	) domain.Review {
		return domain.Review{
			ReviewID:         domain.NewID(),
			AuthorName:       author,
			Rating:           rating,
			Title:            title,
			Content:          content,
			Date:             now.AddDate(0, 0, -daysAgo),
			HelpfulCount:     helpful,
			VerifiedPurchase: verified,
		}
	}

	return []domain.Review{
		review("Sarah M.", 5.0, "Amazing product!",
			"This is exactly what I was looking for. The quality is outstanding and the price was great. Highly recommend!",
			5, 45, true),
		review("John D.", 4.0, "Good value for money",
			"Overall satisfied with the purchase. Works as described, though shipping took a bit longer than expected.",
			12, 28, true),
		review("Emily R.", 5.0, "Best purchase this year",
			"Exceeded my expectations in every way. The build quality is excellent and it performs flawlessly. Worth every penny!",
			8, 67, true),
		review("Michael T.", 3.0, "It's okay",
			"Does the job but nothing special. There are better options out there for a similar price.",
			3, 12, false),
		review("Lisa K.", 5.0, "Highly recommended!",
			"This product has changed my daily routine for the better. Easy to use and very reliable. Customer service was also excellent!",
			15, 89, true),
		review("David P.", 5.0, "Perfect!",
			"Exactly as described. Fast shipping and excellent packaging. The product works perfectly and looks great!",
			2, 34, true),
		review("Jennifer L.", 4.0, "Great quality",
			"Really happy with this purchase. The build quality is solid and it does exactly what it's supposed to do.",
			7, 23, true),
		review("Robert W.", 5.0, "Excellent value",
			"For the price, this is an incredible product. I've been using it daily and couldn't be happier with my purchase.",
			18, 56, true),
		review("Amanda S.", 4.0, "Very satisfied",
			"Good product overall. A few minor quirks but nothing that would stop me from recommending it.",
			10, 19, true),
		review("Chris B.", 5.0, "Love it!",
			"This has become my go-to product. The quality is top-notch and it's incredibly easy to use. 10/10 would buy again!",
			4, 78, true),
		review("Michelle H.", 4.0, "Good purchase",
			"Happy with this buy. It does what it promises and the quality seems good. Time will tell how it holds up.",
			20, 15, true),
		review("Thomas G.", 5.0, "Fantastic!",
			"Been using this for a few weeks now and it's been perfect. Great design, great functionality, great price!",
			14, 42, true),
	}
}
