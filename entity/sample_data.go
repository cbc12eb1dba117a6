package entity

import "time"

// SampleDishes is the menu bundled with the app. It seeds an empty database
// and doubles as the catalog fallback when the database cannot be read.
func SampleDishes() []Dish {
	return []Dish{
		{
			Name: "トムヤムクン", Description: "エビの旨味たっぷりの酸辣スープ",
			Price: 1200, ImageName: "トムヤムクン", SpicyLevel: 3,
			Allergens: []string{"エビ"}, Category: "スープ",
			Calories: 320, CookingMinutes: 15,
			Ingredients: []string{"エビ", "レモングラス", "こぶみかんの葉", "ナンプラー"},
			Protein:     "18g", Fat: "12g", Carbs: "24g", Sodium: "1,400mg",
		},
		{
			Name: "グリーンカレー", Description: "ココナッツミルクの甘さと青唐辛子の辛さが絶妙",
			Price: 1400, ImageName: "グリーンカレー", SpicyLevel: 4,
			Allergens: []string{}, Category: "カレー",
			Calories: 540, CookingMinutes: 20,
			Ingredients: []string{"鶏肉", "ココナッツミルク", "青唐辛子", "タイナス"},
			Protein:     "26g", Fat: "32g", Carbs: "38g", Sodium: "1,100mg",
		},
		{
			Name: "パッタイ", Description: "タイ風焼きそば、甘酸っぱいタマリンドソース",
			Price: 1100, ImageName: "パッタイ", SpicyLevel: 2,
			Allergens: []string{"卵"}, Category: "麺",
			Calories: 480, CookingMinutes: 12,
			Ingredients: []string{"米麺", "卵", "もやし", "タマリンド"},
			Protein:     "16g", Fat: "14g", Carbs: "68g", Sodium: "980mg",
		},
		{
			Name: "ガパオライス", Description: "バジル炒めご飯、目玉焼きトッピング",
			Price: 1000, ImageName: "ガパオライス", SpicyLevel: 3,
			Allergens: []string{"卵"}, Category: "ご飯",
			Calories: 620, CookingMinutes: 10,
			Ingredients: []string{"鶏ひき肉", "ホーリーバジル", "ジャスミンライス", "卵"},
			Protein:     "28g", Fat: "22g", Carbs: "72g", Sodium: "1,250mg",
		},
		{
			Name: "生春巻き", Description: "新鮮な野菜とエビの生春巻き",
			Price: 800, ImageName: "生春巻き", SpicyLevel: 0,
			Allergens: []string{"エビ"}, Category: "前菜",
			Calories: 180, CookingMinutes: 8,
			Ingredients: []string{"ライスペーパー", "エビ", "レタス", "ビーフン"},
			Protein:     "10g", Fat: "3g", Carbs: "28g", Sodium: "420mg",
		},
		{
			Name: "ソムタム", Description: "青パパイヤのサラダ、爽やかな酸味",
			Price: 900, ImageName: "ソムタム", SpicyLevel: 3, Vegetarian: true,
			Allergens: []string{}, Category: "サラダ",
			Calories: 150, CookingMinutes: 7,
			Ingredients: []string{"青パパイヤ", "トマト", "ライム", "ピーナッツ"},
			Protein:     "4g", Fat: "6g", Carbs: "20g", Sodium: "760mg",
		},
		{
			Name: "カオマンガイ", Description: "茹で鶏とジャスミンライス",
			Price: 1300, ImageName: "カオマンガイ", SpicyLevel: 1,
			Allergens: []string{}, Category: "ご飯",
			Calories: 580, CookingMinutes: 18,
			Ingredients: []string{"鶏もも肉", "ジャスミンライス", "生姜", "パクチー"},
			Protein:     "34g", Fat: "18g", Carbs: "70g", Sodium: "890mg",
		},
		{
			Name: "ココナッツミルクアイス", Description: "濃厚なココナッツの風味",
			Price: 500, ImageName: "ココナッツミルクアイス", SpicyLevel: 0, Vegetarian: true,
			Allergens: []string{}, Category: "デザート",
			Calories: 240, CookingMinutes: 3,
			Ingredients: []string{"ココナッツミルク", "砂糖"},
			Protein:     "2g", Fat: "16g", Carbs: "22g", Sodium: "45mg",
		},
	}
}

func SampleCategories() []Category {
	return []Category{
		{Name: "スープ", Icon: "🍲"},
		{Name: "カレー", Icon: "🍛"},
		{Name: "麺", Icon: "🍜"},
		{Name: "ご飯", Icon: "🍚"},
		{Name: "前菜", Icon: "🥗"},
		{Name: "サラダ", Icon: "🥬"},
		{Name: "デザート", Icon: "🍨"},
	}
}

func int64ptr(v int64) *int64 { return &v }

// SampleCoupons expire relative to the seed time, matching the bundled set
// (SALE15 is intentionally both used and expired).
func SampleCoupons(now time.Time) []Coupon {
	return []Coupon{
		{
			Title: "新規登録特典", Description: "初回注文で使える500円割引クーポン",
			DiscountType: DiscountFixedAmount, DiscountValue: 500,
			MinimumAmount: int64ptr(2000), ExpiryDate: now.AddDate(0, 0, 30),
			Code: "WELCOME500",
		},
		{
			Title: "週末限定", Description: "土日の注文で20%OFF！",
			DiscountType: DiscountPercentage, DiscountValue: 20,
			MinimumAmount: int64ptr(1500), ExpiryDate: now.AddDate(0, 0, 7),
			Code: "WEEKEND20",
		},
		{
			Title: "リピーター感謝", Description: "3回目以降のご注文で300円割引",
			DiscountType: DiscountFixedAmount, DiscountValue: 300,
			MinimumAmount: int64ptr(1000), ExpiryDate: now.AddDate(0, 0, 14),
			Code: "REPEAT300",
		},
		{
			Title: "大口注文特典", Description: "5000円以上のご注文で送料無料",
			DiscountType: DiscountFreeShip, DiscountValue: 0,
			MinimumAmount: int64ptr(5000), ExpiryDate: now.AddDate(0, 1, 0),
			Code: "FREESHIP",
		},
		{
			Title: "期間限定セール", Description: "全メニュー15%OFF（使用済み）",
			DiscountType: DiscountPercentage, DiscountValue: 15,
			ExpiryDate: now.AddDate(0, 0, -5), Used: true,
			Code: "SALE15",
		},
	}
}
