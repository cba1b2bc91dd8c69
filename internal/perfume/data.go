package perfume

type Notes struct {
	Top   []string
	Heart []string
	Base  []string
}

type Perfume struct {
	ID          string
	Name        string
	Brand       string
	Price       int
	Description string
	Notes       Notes
	Gender      string
	Volume      string
	Seasons     []string
	Occasions   []string
	Longevity   string
}

type Promotion struct {
	Description string
	Discount    float64
	Code        string
	MinItems    int
}

// DefaultCatalog is the built-in assortment, in display order.
func DefaultCatalog() []Perfume {
	return []Perfume{
		{
			ID:          "chanel_no5",
			Name:        "Chanel No. 5",
			Brand:       "Chanel",
			Price:       12500,
			Description: "Легендарный аромат с нотами альдегидов, иланг-иланга и сандала",
			Notes: Notes{
				Top:   []string{"альдегиды", "лимон", "нероли"},
				Heart: []string{"роза", "жасмин", "иланг-иланг"},
				Base:  []string{"сандал", "ветивер", "амбра"},
			},
			Gender:    "женский",
			Volume:    "100ml",
			Seasons:   []string{"весна", "лето"},
			Occasions: []string{"вечер", "особый случай"},
			Longevity: "долгий",
		},
		{
			ID:          "dior_sauvage",
			Name:        "Dior Sauvage",
			Brand:       "Dior",
			Price:       8900,
			Description: "Свежий мужской аромат с нотами бергамота и амброксана",
			Notes: Notes{
				Top:   []string{"калабрийский бергамот", "перец"},
				Heart: []string{"лаванда", "розовый перец", "ветивер"},
				Base:  []string{"амброксан", "кедр", "лабданум"},
			},
			Gender:    "мужской",
			Volume:    "100ml",
			Seasons:   []string{"весна", "лето", "осень"},
			Occasions: []string{"день", "работа", "спорт"},
			Longevity: "средний",
		},
		{
			ID:          "tom_ford_black_orchid",
			Name:        "Tom Ford Black Orchid",
			Brand:       "Tom Ford",
			Price:       15800,
			Description: "Роскошный унисекс аромат с нотами черной орхидеи и шоколада",
			Notes: Notes{
				Top:   []string{"черная орхидея", "черная смородина", "бергамот"},
				Heart: []string{"орхидея", "специи", "фруктовые ноты"},
				Base:  []string{"пачули", "ваниль", "сандал", "шоколад"},
			},
			Gender:    "унисекс",
			Volume:    "50ml",
			Seasons:   []string{"осень", "зима"},
			Occasions: []string{"вечер", "свидание", "особый случай"},
			Longevity: "очень долгий",
		},
		{
			ID:          "creed_aventus",
			Name:        "Creed Aventus",
			Brand:       "Creed",
			Price:       22000,
			Description: "Престижный мужской аромат с фруктовыми и древесными нотами",
			Notes: Notes{
				Top:   []string{"ананас", "черная смородина", "яблоко", "бергамот"},
				Heart: []string{"роза", "береза", "жасмин", "пачули"},
				Base:  []string{"мускус", "дубовый мох", "амбра", "ваниль"},
			},
			Gender:    "мужской",
			Volume:    "120ml",
			Seasons:   []string{"весна", "лето", "осень"},
			Occasions: []string{"день", "работа", "особый случай"},
			Longevity: "очень долгий",
		},
		{
			ID:          "ysl_black_opium",
			Name:        "YSL Black Opium",
			Brand:       "Yves Saint Laurent",
			Price:       7200,
			Description: "Соблазнительный женский аромат с нотами кофе и ванили",
			Notes: Notes{
				Top:   []string{"розовый перец", "груша", "мандарин"},
				Heart: []string{"кофе", "жасмин", "горький миндаль"},
				Base:  []string{"ваниль", "пачули", "кедр", "кашмеран"},
			},
			Gender:    "женский",
			Volume:    "90ml",
			Seasons:   []string{"осень", "зима"},
			Occasions: []string{"вечер", "свидание", "клуб"},
			Longevity: "долгий",
		},
	}
}

func DefaultPromotions() []Promotion {
	return []Promotion{
		{Description: "Скидка 15% на первую покупку", Discount: 0.15, Code: "FIRST15"},
		{Description: "При покупке двух ароматов - скидка 20%", Discount: 0.20, MinItems: 2},
		{Description: "Весенняя распродажа - скидка 10%", Discount: 0.10, Code: "SPRING10"},
	}
}

// DefaultSeasonRecommendations and friends map criteria to perfume IDs.
func DefaultSeasonRecommendations() map[string][]string {
	return map[string][]string{
		"весна": {"chanel_no5", "dior_sauvage", "creed_aventus"},
		"лето":  {"chanel_no5", "dior_sauvage", "creed_aventus"},
		"осень": {"dior_sauvage", "tom_ford_black_orchid", "creed_aventus", "ysl_black_opium"},
		"зима":  {"tom_ford_black_orchid", "ysl_black_opium"},
	}
}

func DefaultOccasionRecommendations() map[string][]string {
	return map[string][]string{
		"работа":        {"dior_sauvage", "creed_aventus"},
		"свидание":      {"tom_ford_black_orchid", "ysl_black_opium"},
		"особый случай": {"chanel_no5", "tom_ford_black_orchid", "creed_aventus"},
		"день":          {"dior_sauvage", "creed_aventus"},
		"вечер":         {"chanel_no5", "tom_ford_black_orchid", "ysl_black_opium"},
	}
}
