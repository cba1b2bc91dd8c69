package bot

type Config struct {
	// IntentConfidenceMin is the floor below which a classifier prediction
	// is treated as no intent at all.
	IntentConfidenceMin float64
	// DirectIntentMin gates the direct intent-response fallback for
	// intents outside both partitions.
	DirectIntentMin float64
	// NegativeConfidenceMin gates the consolation response on negative
	// sentiment.
	NegativeConfidenceMin float64
	// CasualThreshold is the casual-message streak after which the bot
	// offers business content once.
	CasualThreshold int
	// BrandFallbackConfidence is assigned to brand-keyword detections.
	BrandFallbackConfidence float64

	BusinessIntents []string
	CasualIntents   []string
}

func DefaultConfig() Config {
	return Config{
		IntentConfidenceMin:     0.1,
		DirectIntentMin:         0.3,
		NegativeConfidenceMin:   0.5,
		CasualThreshold:         4,
		BrandFallbackConfidence: 0.8,
		BusinessIntents: []string{
			"perfume_catalog", "price_inquiry", "purchase_intent",
			"promotion_inquiry", "brand_chanel", "brand_dior",
			"season_spring", "season_summer", "season_autumn", "season_winter",
		},
		CasualIntents: []string{
			"greeting", "goodbye", "bot_name", "bot_identity", "help", "joke",
			"smalltalk_mood", "smalltalk_compliment", "smalltalk_gratitude", "smalltalk_activity",
			"location_question", "abilities", "age_question", "inspiration", "weather", "recommendation_unsure",
		},
	}
}
