package storage

import (
	"time"

	"github.com/savora-app/savora/internal/core/domain"
	"github.com/savora-app/savora/pkg/schema"
)

func wishlistsToRecord(ws []domain.Wishlist) schema.WishlistsV1 {
	record := schema.WishlistsV1{
		Wishlists: make([]schema.WishlistV1, 0, len(ws)),
	}
	for _, w := range ws {
		wv := schema.WishlistV1{
			WishlistID:  w.WishlistID,
			Name:        w.Name,
			IsShared:    w.IsShared,
			CreatedDate: w.CreatedDate.UnixMilli(),
			Items:       make([]schema.WishlistItemV1, 0, len(w.Items)),
		}
		for _, item := range w.Items {
			wv.Items = append(wv.Items, schema.WishlistItemV1{
				ItemID:            item.ItemID,
				ProductID:         item.ProductID,
				ProductName:       item.ProductName,
				ProductImageRef:   item.ProductImageRef,
				CurrentPrice:      item.CurrentPrice,
				TargetPrice:       item.TargetPrice,
				PriceAlertEnabled: item.PriceAlertEnabled,
				Notes:             item.Notes,
				AddedDate:         item.AddedDate.UnixMilli(),
				Category:          item.Category.String(),
			})
		}
		record.Wishlists = append(record.Wishlists, wv)
	}
	return record
}

func wishlistsToDomain(record schema.WishlistsV1) []domain.Wishlist {
	ws := make([]domain.Wishlist, 0, len(record.Wishlists))
	for _, wv := range record.Wishlists {
		w := domain.Wishlist{
			WishlistID:  wv.WishlistID,
			Name:        wv.Name,
			IsShared:    wv.IsShared,
			CreatedDate: time.UnixMilli(wv.CreatedDate),
			Items:       make([]domain.WishlistItem, 0, len(wv.Items)),
		}
		for _, iv := range wv.Items {
			w.Items = append(w.Items, domain.WishlistItem{
				ItemID:            iv.ItemID,
				ProductID:         iv.ProductID,
				ProductName:       iv.ProductName,
				ProductImageRef:   iv.ProductImageRef,
				CurrentPrice:      iv.CurrentPrice,
				TargetPrice:       iv.TargetPrice,
				PriceAlertEnabled: iv.PriceAlertEnabled,
				Notes:             iv.Notes,
				AddedDate:         time.UnixMilli(iv.AddedDate),
				Category:          domain.Category(iv.Category),
			})
		}
		ws = append(ws, w)
	}
	return ws
}

func settingsToRecord(s domain.UserSettings) schema.UserSettingsV1 {
	categories := make([]string, 0, len(s.FavoriteCategories))
	for _, c := range s.FavoriteCategories {
		categories = append(categories, c.String())
	}
	return schema.UserSettingsV1{
		NotificationsEnabled:     s.NotificationsEnabled,
		PriceAlertsEnabled:       s.PriceAlertsEnabled,
		DealNotificationsEnabled: s.DealNotificationsEnabled,
		EmailNotifications:       s.EmailNotifications,
		DarkModeEnabled:          s.DarkModeEnabled,
		PreferredCurrency:        s.PreferredCurrency,
		FavoriteCategories:       categories,
	}
}

func settingsToDomain(record schema.UserSettingsV1) domain.UserSettings {
	categories := make([]domain.Category, 0, len(record.FavoriteCategories))
	for _, tag := range record.FavoriteCategories {
		categories = append(categories, domain.Category(tag))
	}
	if len(categories) == 0 {
		categories = nil
	}
	return domain.UserSettings{
		NotificationsEnabled:     record.NotificationsEnabled,
		PriceAlertsEnabled:       record.PriceAlertsEnabled,
		DealNotificationsEnabled: record.DealNotificationsEnabled,
		EmailNotifications:       record.EmailNotifications,
		DarkModeEnabled:          record.DarkModeEnabled,
		PreferredCurrency:        record.PreferredCurrency,
		FavoriteCategories:       categories,
	}
}
