package perfume

import (
	"fmt"
	"sort"
	"strings"
)

// Service formats catalog and promotion content into chat-ready response
// text. It is a pure read-only view over static assortment data.
type Service struct {
	catalog    []Perfume
	byID       map[string]Perfume
	promotions []Promotion
	bySeason   map[string][]string
	byOccasion map[string][]string
	contacts   Contacts
}

type Contacts struct {
	Phone string
	Email string
}

func NewService() *Service {
	return NewServiceWith(DefaultCatalog(), DefaultPromotions(),
		DefaultSeasonRecommendations(), DefaultOccasionRecommendations(),
		Contacts{Phone: "+7 (999) 123-45-67", Email: "order@perfume-shop.ru"})
}

func NewServiceWith(catalog []Perfume, promotions []Promotion, bySeason, byOccasion map[string][]string, contacts Contacts) *Service {
	byID := make(map[string]Perfume, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}
	return &Service{
		catalog:    catalog,
		byID:       byID,
		promotions: promotions,
		bySeason:   bySeason,
		byOccasion: byOccasion,
		contacts:   contacts,
	}
}

func (s *Service) ShowCatalog() string {
	var b strings.Builder
	b.WriteString("🎯 **Наш каталог элитных ароматов:**\n\n")
	for _, p := range s.catalog {
		b.WriteString(fmt.Sprintf("**%s** (%s)\n%s руб. | %s\n%s\n%s\n\n",
			p.Name, p.Brand, formatPrice(p.Price), p.Volume, p.Gender, brief(p.Description)))
	}
	b.WriteString("Хотите узнать подробнее о каком-то аромате? Просто назовите его!")
	return b.String()
}

func (s *Service) ShowPrices() string {
	sorted := append([]Perfume(nil), s.catalog...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })

	var b strings.Builder
	b.WriteString("💰 **Цены на наши ароматы:**\n\n")
	for _, p := range sorted {
		b.WriteString(fmt.Sprintf("• %s: **%s руб.**\n", p.Name, formatPrice(p.Price)))
	}
	b.WriteString("\n🎁 Действуют специальные предложения! Напишите 'акции' для подробностей.")
	return b.String()
}

func (s *Service) RecommendByGender(gender string) string {
	var picks []Perfume
	for _, p := range s.catalog {
		if p.Gender == gender {
			picks = append(picks, p)
		}
	}
	if len(picks) == 0 {
		return fmt.Sprintf("К сожалению, сейчас нет ароматов категории '%s'", gender)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("✨ **Рекомендации для %s ароматов:**\n\n", gender))
	for _, p := range picks {
		b.WriteString(recommendation(p))
	}
	b.WriteString("Какой аромат заинтересовал больше всего?")
	return b.String()
}

var criteriaAliases = map[string]string{
	"evening": "вечер",
	"work":    "работа",
	"spring":  "весна",
	"summer":  "лето",
	"autumn":  "осень",
	"winter":  "зима",
}

// RecommendByCriteria resolves a season or occasion keyword into a
// formatted pick list.
func (s *Service) RecommendByCriteria(criteria string) string {
	if mapped, ok := criteriaAliases[criteria]; ok {
		criteria = mapped
	}
	if ids := s.bySeason[criteria]; len(ids) > 0 {
		return s.formatRecommendations(ids, "для "+criteria)
	}
	if ids := s.byOccasion[criteria]; len(ids) > 0 {
		return s.formatRecommendations(ids, "для "+criteria)
	}
	return fmt.Sprintf("🔍 Подбираю ароматы для '%s'...", criteria)
}

func (s *Service) ShowPromotions() string {
	var b strings.Builder
	b.WriteString("🎁 **Наши специальные предложения:**\n\n")
	for _, promo := range s.promotions {
		b.WriteString(fmt.Sprintf("🎁 **%s**\n💸 Скидка: %d%%\n", promo.Description, int(promo.Discount*100)))
		if promo.Code != "" {
			b.WriteString(fmt.Sprintf("🏷️ Промокод: `%s`\n", promo.Code))
		}
		if promo.MinItems > 0 {
			b.WriteString(fmt.Sprintf("📦 Минимум товаров: %d\n", promo.MinItems))
		}
		b.WriteString("\n")
	}
	b.WriteString("Готовы воспользоваться предложением? Скажите 'купить'! 🛒")
	return b.String()
}

func (s *Service) ShowBrand(brand string) string {
	var picks []Perfume
	for _, p := range s.catalog {
		if strings.EqualFold(p.Brand, brand) {
			picks = append(picks, p)
		}
	}
	if len(picks) == 0 {
		return fmt.Sprintf("К сожалению, ароматов бренда %s сейчас нет в наличии 😔", brand)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("👑 **Ароматы %s:**\n\n", brand))
	for _, p := range picks {
		b.WriteString(fmt.Sprintf("✨ **%s**\n💰 %s руб. | 📦 %s\n👤 %s\n📝 %s\n\n",
			p.Name, formatPrice(p.Price), p.Volume, p.Gender, p.Description))
	}
	b.WriteString(fmt.Sprintf("Интересует что-то из коллекции %s?", brand))
	return b.String()
}

// ProcessPurchase answers a purchase message, pulling out the mentioned
// perfume when one can be recognized in the text.
func (s *Service) ProcessPurchase(text string) string {
	p, ok := s.ExtractPerfume(text)
	if !ok {
		return "🛒 Замечательно! Какой именно аромат вас заинтересовал?\nИли хотите, чтобы я что-то порекомендовал?"
	}

	var b strings.Builder
	b.WriteString("🛒 **Отличный выбор!**\n\n")
	b.WriteString(fmt.Sprintf("✨ %s\n💰 %s руб.\n\n", p.Name, formatPrice(p.Price)))
	b.WriteString("📞 Для оформления заказа свяжитесь с нами:\n")
	b.WriteString(fmt.Sprintf("📱 %s\n📧 %s\n\n", s.contacts.Phone, s.contacts.Email))
	b.WriteString("🎁 Не забудьте про наши акции!")
	return b.String()
}

// ExtractPerfume recognizes a perfume mention: the full name first, then a
// brand word combined with a distinctive name word.
func (s *Service) ExtractPerfume(text string) (Perfume, bool) {
	lowered := strings.ToLower(text)
	for _, p := range s.catalog {
		if strings.Contains(lowered, strings.ToLower(p.Name)) {
			return p, true
		}
	}
	for _, p := range s.catalog {
		if mentionsBrandAndName(lowered, p) {
			return p, true
		}
	}
	return Perfume{}, false
}

// Details formats one perfume.
func (s *Service) Details(id string) (string, bool) {
	p, ok := s.byID[id]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("✨ **%s**\n💰 %s руб. | 📦 %s\n👤 %s\n📝 %s\n",
		p.Name, formatPrice(p.Price), p.Volume, p.Gender, p.Description), true
}

// Search returns IDs of perfumes whose name, brand or description contains
// the query.
func (s *Service) Search(query string) []string {
	q := strings.ToLower(query)
	var ids []string
	for _, p := range s.catalog {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

func (s *Service) formatRecommendations(ids []string, context string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("✨ **Идеальные ароматы %s:**\n\n", context))
	for _, id := range ids {
		if p, ok := s.byID[id]; ok {
			b.WriteString(recommendation(p))
		}
	}
	b.WriteString("Что-то приглянулось? Расскажу подробнее! 😊")
	return b.String()
}

func recommendation(p Perfume) string {
	return fmt.Sprintf("✨ **%s**\n💰 %s руб.\n📝 %s\n\n", p.Name, formatPrice(p.Price), p.Description)
}

func mentionsBrandAndName(lowered string, p Perfume) bool {
	brandHit := false
	for _, word := range strings.Fields(strings.ToLower(p.Brand)) {
		if strings.Contains(lowered, word) {
			brandHit = true
			break
		}
	}
	if !brandHit {
		return false
	}
	for _, word := range strings.Fields(strings.ToLower(p.Name)) {
		if len(word) > 3 && strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}

func brief(description string) string {
	runes := []rune(description)
	if len(runes) <= 80 {
		return description + "..."
	}
	return string(runes[:80]) + "..."
}

// formatPrice renders 12500 as "12,500", matching the storefront style.
func formatPrice(price int) string {
	s := fmt.Sprintf("%d", price)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
