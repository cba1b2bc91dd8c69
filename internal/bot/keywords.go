package bot

import "strings"

// Keyword sets for the direct handlers, checked in this fixed order before
// any fallback when no intent was recognized. First match wins.
var (
	recommendKeywords = []string{"порекомендуй", "посоветуй", "подскажи", "что выбрать", "помоги выбрать"}
	purchaseKeywords  = []string{"купить", "заказать", "приобрести", "взять"}
	catalogKeywords   = []string{"каталог", "что есть", "покажи", "ассортимент"}
	priceKeywords     = []string{"цена", "стоит", "стоимость", "цены", "прайс"}
	maleKeywords      = []string{"мужск", "для мужчины", "парню", "для него"}
	femaleKeywords    = []string{"женск", "для женщины", "девушке", "для неё"}
	friendlyKeywords  = []string{"как дела", "что посоветуешь"}
)

func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// Brand groups raw-text keywords under a fallback intent. Brand detection
// runs on the original message, not on lemmas, so Latin brand spellings
// survive.
type Brand struct {
	Intent   string
	Name     string
	Keywords []string
}

func DefaultBrands() []Brand {
	return []Brand{
		{
			Intent: "brand_chanel",
			Name:   "Chanel",
			Keywords: []string{
				"chanel", "шанель", "коко", "coco", "номер 5", "no 5",
				"chance", "bleu", "gabrielle", "allure",
			},
		},
		{
			Intent: "brand_dior",
			Name:   "Dior",
			Keywords: []string{
				"dior", "диор", "miss", "sauvage", "jadore", "j'adore",
				"poison", "fahrenheit", "joy", "addict",
			},
		},
	}
}

// detectBrand counts keyword hits per brand; the brand with strictly more
// hits than every other wins. Ties and zero hits produce no fallback.
func detectBrand(lowered string, brands []Brand) (Brand, bool) {
	bestIdx := -1
	bestHits := 0
	tied := false
	for i, brand := range brands {
		hits := 0
		for _, kw := range brand.Keywords {
			if strings.Contains(lowered, kw) {
				hits++
			}
		}
		switch {
		case hits > bestHits:
			bestIdx = i
			bestHits = hits
			tied = false
		case hits == bestHits && hits > 0:
			tied = true
		}
	}
	if bestIdx == -1 || tied {
		return Brand{}, false
	}
	return brands[bestIdx], true
}
