package catalog

import "storefront/models"

func oldPrice(v int64) *int64 { return &v }

// Seed returns a fresh copy of the built-in catalog.
func Seed() []models.Product {
	return []models.Product{
		{ID: 1, Name: "iPhone 15 Pro", Category: models.CategoryIPhone, Price: 119990, OldPrice: oldPrice(129990), Image: "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/iphone-15-pro-finish-select-202309-6-1inch-naturaltitanium", InStock: true, IsNew: true, IsSale: true, Description: "Титан. Так прочен. Так лёгок. Так Pro."},
		{ID: 2, Name: "iPhone 15", Category: models.CategoryIPhone, Price: 89990, OldPrice: oldPrice(99990), Image: "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/iphone-15-finish-select-202309-6-1inch-pink", InStock: true, IsNew: true, IsSale: true, Description: "Новый дизайн. Новая камера. Новая мощь."},
		{ID: 3, Name: "iPhone 14 Pro", Category: models.CategoryIPhone, Price: 99990, Image: "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/iphone-14-pro-finish-select-202209-6-1inch-deeppurple", InStock: true, Description: "Pro. Вне всяких сомнений."},
		{ID: 4, Name: "MacBook Pro 14\"", Category: models.CategoryMac, Price: 239990, Image: "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/mbp14-spaceblack-select-202310", InStock: true, Description: "Мощь, меняющая всё."},
		{ID: 5, Name: "MacBook Air 15\"", Category: models.CategoryMac, Price: 179990, Image: "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/macbook-air-15-midnight-select-202306", InStock: true, IsNew: true, Description: "Поразительно тонкий. Изумительно быстрый."},
		{ID: 6, Name: "iMac 24\"", Category: models.CategoryMac, Price: 165990, OldPrice: oldPrice(204990), Image: "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/imac-24-blue-select-202104", InStock: true, IsSale: true, Description: "Мощность и красота в одном устройстве."},
		{ID: 7, Name: "iPad Pro 12.9\"", Category: models.CategoryIPad, Price: 109990, Image: "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/ipad-pro-12-select-wifi-spacegray-202210", InStock: true, Description: "Мощный. Простой. Универсальный."},
		{ID: 8, Name: "iPad Air", Category: models.CategoryIPad, Price: 59990, OldPrice: oldPrice(69990), Image: "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/ipad-air-select-202203-blue", InStock: true, IsSale: true, Description: "Лёгкий. Яркий. Мощный."},
		{ID: 9, Name: "Apple Watch Ultra 2", Category: models.CategoryWatch, Price: 89990, Image: "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/watch-49-titanium-ultra2", InStock: true, IsNew: true, Description: "Приключения ждут."},
		{ID: 10, Name: "Apple Watch Series 9", Category: models.CategoryWatch, Price: 39990, Image: "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/watch-s9-gps-select-202309", InStock: true, IsNew: true, Description: "Следите за здоровьем и активностью."},
		{ID: 11, Name: "AirPods Pro (2-го поколения)", Category: models.CategoryAirPods, Price: 24990, Image: "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/MT223", InStock: true, Description: "Активное шумоподавление."},
		{ID: 12, Name: "AirPods (3-го поколения)", Category: models.CategoryAirPods, Price: 19990, Image: "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/MV7N2", InStock: true, Description: "Звук, который вы полюбите."},
		{ID: 13, Name: "Apple Pencil (USB-C)", Category: models.CategoryAccessories, Price: 7990, Image: "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/MU7T2_AV2", InStock: true, Description: "Точность в каждом штрихе."},
		{ID: 14, Name: "Зарядное устройство MagSafe", Category: models.CategoryAccessories, Price: 3990, Image: "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/MX0J2", InStock: true, Description: "Быстрая беспроводная зарядка."},
	}
}

// Merge overlays admin-managed products on the seed: an override with a seed id replaces that
// entry in place, any other override is appended in its stored order.
func Merge(seed, overrides []models.Product) []models.Product {
	out := make([]models.Product, len(seed), len(seed)+len(overrides))
	copy(out, seed)

	index := make(map[int64]int, len(out))
	for i, p := range out {
		index[p.ID] = i
	}
	for _, p := range overrides {
		if i, ok := index[p.ID]; ok {
			out[i] = p
			continue
		}
		index[p.ID] = len(out)
		out = append(out, p)
	}
	return out
}

// Find looks a product up by id.
func Find(products []models.Product, id int64) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
