package httphandler

import (
	"time"

	"github.com/savora-app/savora/internal/core/domain"
)

type (
	Product struct {
		ProductID     string       `json:"product_id"`
		Name          string       `json:"name"`
		Description   string       `json:"description"`
		Category      string       `json:"category"`
		ImageRef      string       `json:"image_ref"`
		Prices        []StorePrice `json:"prices"`
		AverageRating float64      `json:"average_rating"`
		ReviewCount   int          `json:"review_count"`

		LowestPrice       *StorePrice `json:"lowest_price,omitempty"`
		HighestPrice      *StorePrice `json:"highest_price,omitempty"`
		PriceDifference   float64     `json:"price_difference"`
		SavingsPercentage float64     `json:"savings_percentage"`
	}

	StorePrice struct {
		PriceID     string    `json:"price_id"`
		StoreID     string    `json:"store_id"`
		StoreName   string    `json:"store_name"`
		Price       float64   `json:"price"`
		Currency    string    `json:"currency"`
		InStock     bool      `json:"in_stock"`
		LastUpdated time.Time `json:"last_updated"`
	}

	Store struct {
		StoreID       string   `json:"store_id"`
		Name          string   `json:"name"`
		Description   string   `json:"description"`
		LogoRef       string   `json:"logo_ref"`
		Website       string   `json:"website"`
		AverageRating float64  `json:"average_rating"`
		ReviewCount   int      `json:"review_count"`
		Categories    []string `json:"categories"`
	}

	Deal struct {
		DealID             string    `json:"deal_id"`
		Title              string    `json:"title"`
		Description        string    `json:"description"`
		ProductID          string    `json:"product_id"`
		ProductName        string    `json:"product_name"`
		StoreID            string    `json:"store_id"`
		StoreName          string    `json:"store_name"`
		OriginalPrice      float64   `json:"original_price"`
		DiscountedPrice    float64   `json:"discounted_price"`
		DiscountPercentage float64   `json:"discount_percentage"`
		StartDate          time.Time `json:"start_date"`
		EndDate            time.Time `json:"end_date"`
		DaysRemaining      int       `json:"days_remaining"`
		ImageRef           string    `json:"image_ref"`
		Category           string    `json:"category"`
	}

	Review struct {
		ReviewID         string    `json:"review_id"`
		AuthorName       string    `json:"author_name"`
		Rating           float64   `json:"rating"`
		Title            string    `json:"title"`
		Content          string    `json:"content"`
		Date             time.Time `json:"date"`
		ProductID        string    `json:"product_id,omitempty"`
		StoreID          string    `json:"store_id,omitempty"`
		HelpfulCount     int       `json:"helpful_count"`
		VerifiedPurchase bool      `json:"verified_purchase"`
	}

	WishlistItem struct {
		ItemID            string    `json:"item_id"`
		ProductID         string    `json:"product_id"`
		ProductName       string    `json:"product_name"`
		ProductImageRef   string    `json:"product_image_ref"`
		CurrentPrice      float64   `json:"current_price"`
		TargetPrice       *float64  `json:"target_price,omitempty"`
		PriceAlertEnabled bool      `json:"price_alert_enabled"`
		Notes             string    `json:"notes"`
		AddedDate         time.Time `json:"added_date"`
		Category          string    `json:"category"`
		IsPriceAtTarget   bool      `json:"is_price_at_target"`
	}

	Wishlist struct {
		WishlistID  string         `json:"wishlist_id"`
		Name        string         `json:"name"`
		Items       []WishlistItem `json:"items"`
		IsShared    bool           `json:"is_shared"`
		CreatedDate time.Time      `json:"created_date"`
		TotalValue  float64        `json:"total_value"`
	}

	UserSettings struct {
		NotificationsEnabled     bool     `json:"notifications_enabled"`
		PriceAlertsEnabled       bool     `json:"price_alerts_enabled"`
		DealNotificationsEnabled bool     `json:"deal_notifications_enabled"`
		EmailNotifications       bool     `json:"email_notifications"`
		DarkModeEnabled          bool     `json:"dark_mode_enabled"`
		PreferredCurrency        string   `json:"preferred_currency"`
		FavoriteCategories       []string `json:"favorite_categories"`
	}

	CreateWishlistRequest struct {
		Name string `json:"name"`
	}

	AddItemRequest struct {
		ProductID string `json:"product_id"`
	}
)

func toStorePrice(sp domain.StorePrice) StorePrice {
	return StorePrice{
		PriceID:     sp.PriceID,
		StoreID:     sp.StoreID,
		StoreName:   sp.StoreName,
		Price:       sp.Price,
		Currency:    sp.Currency,
		InStock:     sp.InStock,
		LastUpdated: sp.LastUpdated,
	}
}

func toProduct(p domain.Product) Product {
	v := Product{
		ProductID:         p.ProductID,
		Name:              p.Name,
		Description:       p.Description,
		Category:          p.Category.String(),
		ImageRef:          p.ImageRef,
		Prices:            make([]StorePrice, 0, len(p.Prices)),
		AverageRating:     p.AverageRating,
		ReviewCount:       p.ReviewCount,
		PriceDifference:   p.PriceDifference(),
		SavingsPercentage: p.SavingsPercentage(),
	}
	for _, sp := range p.Prices {
		v.Prices = append(v.Prices, toStorePrice(sp))
	}
	if lowest, ok := p.LowestPrice(); ok {
		lp := toStorePrice(lowest)
		v.LowestPrice = &lp
	}
	if highest, ok := p.HighestPrice(); ok {
		hp := toStorePrice(highest)
		v.HighestPrice = &hp
	}
	return v
}

func toProducts(ps []domain.Product) []Product {
	vs := make([]Product, 0, len(ps))
	for _, p := range ps {
		vs = append(vs, toProduct(p))
	}
	return vs
}

func toStore(s domain.Store) Store {
	categories := make([]string, 0, len(s.Categories))
	for _, c := range s.Categories {
		categories = append(categories, c.String())
	}
	return Store{
		StoreID:       s.StoreID,
		Name:          s.Name,
		Description:   s.Description,
		LogoRef:       s.LogoRef,
		Website:       s.Website,
		AverageRating: s.AverageRating,
		ReviewCount:   s.ReviewCount,
		Categories:    categories,
	}
}

func toDeal(d domain.Deal, now time.Time) Deal {
	return Deal{
		DealID:             d.DealID,
		Title:              d.Title,
		Description:        d.Description,
		ProductID:          d.ProductID,
		ProductName:        d.ProductName,
		StoreID:            d.StoreID,
		StoreName:          d.StoreName,
		OriginalPrice:      d.OriginalPrice,
		DiscountedPrice:    d.DiscountedPrice,
		DiscountPercentage: d.DiscountPercentage(),
		StartDate:          d.StartDate,
		EndDate:            d.EndDate,
		DaysRemaining:      d.DaysRemaining(now),
		ImageRef:           d.ImageRef,
		Category:           d.Category.String(),
	}
}

func toReview(r domain.Review) Review {
	return Review{
		ReviewID:         r.ReviewID,
		AuthorName:       r.AuthorName,
		Rating:           r.Rating,
		Title:            r.Title,
		Content:          r.Content,
		Date:             r.Date,
		ProductID:        r.ProductID,
		StoreID:          r.StoreID,
		HelpfulCount:     r.HelpfulCount,
		VerifiedPurchase: r.VerifiedPurchase,
	}
}

func toWishlistItem(i domain.WishlistItem) WishlistItem {
	return WishlistItem{
		ItemID:            i.ItemID,
		ProductID:         i.ProductID,
		ProductName:       i.ProductName,
		ProductImageRef:   i.ProductImageRef,
		CurrentPrice:      i.CurrentPrice,
		TargetPrice:       i.TargetPrice,
		PriceAlertEnabled: i.PriceAlertEnabled,
		Notes:             i.Notes,
		AddedDate:         i.AddedDate,
		Category:          i.Category.String(),
		IsPriceAtTarget:   i.IsPriceAtTarget(),
	}
}

func toWishlist(w domain.Wishlist) Wishlist {
	v := Wishlist{
		WishlistID:  w.WishlistID,
		Name:        w.Name,
		Items:       make([]WishlistItem, 0, len(w.Items)),
		IsShared:    w.IsShared,
		CreatedDate: w.CreatedDate,
		TotalValue:  w.TotalValue(),
	}
	for _, item := range w.Items {
		v.Items = append(v.Items, toWishlistItem(item))
	}
	return v
}

func (i WishlistItem) toDomain() (domain.WishlistItem, error) {
	category, err := domain.ParseCategory(i.Category)
	if err != nil {
		return domain.WishlistItem{}, err
	}
	return domain.WishlistItem{
		ItemID:            i.ItemID,
		ProductID:         i.ProductID,
		ProductName:       i.ProductName,
		ProductImageRef:   i.ProductImageRef,
		CurrentPrice:      i.CurrentPrice,
		TargetPrice:       i.TargetPrice,
		PriceAlertEnabled: i.PriceAlertEnabled,
		Notes:             i.Notes,
		AddedDate:         i.AddedDate,
		Category:          category,
	}, nil
}

func toSettings(s domain.UserSettings) UserSettings {
	categories := make([]string, 0, len(s.FavoriteCategories))
	for _, c := range s.FavoriteCategories {
		categories = append(categories, c.String())
	}
	return UserSettings{
		NotificationsEnabled:     s.NotificationsEnabled,
		PriceAlertsEnabled:       s.PriceAlertsEnabled,
		DealNotificationsEnabled: s.DealNotificationsEnabled,
		EmailNotifications:       s.EmailNotifications,
		DarkModeEnabled:          s.DarkModeEnabled,
		PreferredCurrency:        s.PreferredCurrency,
		FavoriteCategories:       categories,
	}
}

func (s UserSettings) toDomain() (domain.UserSettings, error) {
	categories := make([]domain.Category, 0, len(s.FavoriteCategories))
	for _, tag := range s.FavoriteCategories {
		category, err := domain.ParseCategory(tag)
		if err != nil {
			return domain.UserSettings{}, err
		}
		categories = append(categories, category)
	}
	if len(categories) == 0 {
		categories = nil
	}
	return domain.UserSettings{
		NotificationsEnabled:     s.NotificationsEnabled,
		PriceAlertsEnabled:       s.PriceAlertsEnabled,
		DealNotificationsEnabled: s.DealNotificationsEnabled,
		EmailNotifications:       s.EmailNotifications,
		DarkModeEnabled:          s.DarkModeEnabled,
		PreferredCurrency:        s.PreferredCurrency,
		FavoriteCategories:       categories,
	}, nil
}
