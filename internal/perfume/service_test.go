package perfume

import (
	"strings"
	"testing"
)

func TestShowPricesSortedAscending(t *testing.T) {
	s := NewService()
	out := s.ShowPrices()
	cheap := strings.Index(out, "YSL Black Opium")
	costly := strings.Index(out, "Creed Aventus")
	if cheap == -1 || costly == -1 {
		t.Fatalf("price list missing catalog entries:\n%s", out)
	}
	if cheap > costly {
		t.Fatalf("prices not sorted ascending:\n%s", out)
	}
}

func TestRecommendByGender(t *testing.T) {
	s := NewService()
	out := s.RecommendByGender("мужской")
	if !strings.Contains(out, "Dior Sauvage") || !strings.Contains(out, "Creed Aventus") {
		t.Fatalf("male recommendations incomplete:\n%s", out)
	}
	if strings.Contains(out, "Chanel No. 5") {
		t.Fatalf("female perfume leaked into male recommendations:\n%s", out)
	}
}

func TestRecommendByGenderUnknownCategory(t *testing.T) {
	s := NewService()
	out := s.RecommendByGender("детский")
	if !strings.Contains(out, "нет ароматов") {
		t.Fatalf("unexpected response for empty category:\n%s", out)
	}
}

func TestRecommendByCriteriaAliases(t *testing.T) {
	s := NewService()
	direct := s.RecommendByCriteria("зима")
	aliased := s.RecommendByCriteria("winter")
	if direct != aliased {
		t.Fatalf("alias winter should resolve to зима")
	}
	if !strings.Contains(direct, "Tom Ford Black Orchid") {
		t.Fatalf("winter picks missing:\n%s", direct)
	}
}

func TestShowBrandCaseInsensitive(t *testing.T) {
	s := NewService()
	out := s.ShowBrand("chanel")
	if !strings.Contains(out, "Chanel No. 5") {
		t.Fatalf("brand lookup should be case-insensitive:\n%s", out)
	}
	missing := s.ShowBrand("Guerlain")
	if !strings.Contains(missing, "нет в наличии") {
		t.Fatalf("unexpected response for absent brand:\n%s", missing)
	}
}

func TestExtractPerfumeByFullName(t *testing.T) {
	s := NewService()
	p, ok := s.ExtractPerfume("хочу купить Dior Sauvage пожалуйста")
	if !ok || p.ID != "dior_sauvage" {
		t.Fatalf("perfume=%+v ok=%v, want dior_sauvage", p, ok)
	}
}

func TestExtractPerfumeByBrandAndNameWord(t *testing.T) {
	s := NewService()
	p, ok := s.ExtractPerfume("есть ли у вас tom ford orchid")
	if !ok || p.ID != "tom_ford_black_orchid" {
		t.Fatalf("perfume=%+v ok=%v, want tom_ford_black_orchid", p, ok)
	}
}

func TestProcessPurchaseWithoutMention(t *testing.T) {
	s := NewService()
	out := s.ProcessPurchase("хочу что-нибудь купить")
	if !strings.Contains(out, "Какой именно аромат") {
		t.Fatalf("purchase without mention should ask for the perfume:\n%s", out)
	}
}

func TestProcessPurchaseWithMention(t *testing.T) {
	s := NewService()
	out := s.ProcessPurchase("беру creed aventus")
	if !strings.Contains(out, "Creed Aventus") || !strings.Contains(out, "22,000") {
		t.Fatalf("purchase response incomplete:\n%s", out)
	}
}

func TestFormatPrice(t *testing.T) {
	cases := map[int]string{
		900:     "900",
		7200:    "7,200",
		12500:   "12,500",
		1250000: "1,250,000",
	}
	for price, want := range cases {
		if got := formatPrice(price); got != want {
			t.Fatalf("formatPrice(%d)=%q, want %q", price, got, want)
		}
	}
}

func TestSearch(t *testing.T) {
	s := NewService()
	ids := s.Search("ваниль")
	if len(ids) == 0 {
		t.Fatalf("search by note found nothing")
	}
	for _, id := range ids {
		if _, ok := s.Details(id); !ok {
			t.Fatalf("search returned unknown id %q", id)
		}
	}
}
