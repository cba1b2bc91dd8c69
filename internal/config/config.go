package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	HTTPAddr        string
	IntentsPath     string
	DialoguesPath   string
	ModelPath       string
	DBDSN           string
	MQTTEnabled     bool
	MQTTBrokerURL   string
	MQTTClientID    string
	MQTTUsername    string
	MQTTPassword    string
	MQTTTopicPrefix string
	SessionIdleTTL  time.Duration
	TranscriptLimit int
	RandomSeed      int64
}

type TrainConfig struct {
	IntentsPath string
	ModelPath   string
	RandomSeed  int64
}

// LoadServerConfig reads the environment, after merging an optional .env
// file. Missing variables fall back to local-development defaults; only the
// MQTT gateway needs explicit opt-in.
func LoadServerConfig() ServerConfig {
	_ = godotenv.Load()

	return ServerConfig{
		HTTPAddr:        getenvDefault("AROMA_HTTP_ADDR", ":9020"),
		IntentsPath:     getenvDefault("AROMA_INTENTS_PATH", "configs/intents.json"),
		DialoguesPath:   getenvDefault("AROMA_DIALOGUES_PATH", "configs/dialogues.txt"),
		ModelPath:       getenvDefault("AROMA_MODEL_PATH", "data/intent_model.json"),
		DBDSN:           os.Getenv("DB_DSN"),
		MQTTEnabled:     getenvBoolDefault("MQTT_ENABLED", false),
		MQTTBrokerURL:   getenvDefault("MQTT_BROKER_URL", "tcp://localhost:1883"),
		MQTTClientID:    getenvDefault("AROMA_MQTT_CLIENT_ID", "aroma-server"),
		MQTTUsername:    os.Getenv("MQTT_USERNAME"),
		MQTTPassword:    os.Getenv("MQTT_PASSWORD"),
		MQTTTopicPrefix: getenvDefault("MQTT_TOPIC_PREFIX", "aroma"),
		SessionIdleTTL:  time.Duration(getenvIntDefault("SESSION_IDLE_TTL_SECONDS", 1800)) * time.Second,
		TranscriptLimit: getenvIntDefault("TRANSCRIPT_LIMIT", 50),
		RandomSeed:      getenvInt64Default("AROMA_RANDOM_SEED", 0),
	}
}

func LoadTrainConfig() TrainConfig {
	_ = godotenv.Load()

	return TrainConfig{
		IntentsPath: getenvDefault("AROMA_INTENTS_PATH", "configs/intents.json"),
		ModelPath:   getenvDefault("AROMA_MODEL_PATH", "data/intent_model.json"),
		RandomSeed:  getenvInt64Default("AROMA_RANDOM_SEED", 0),
	}
}

func getenvDefault(key, val string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return val
}

func getenvIntDefault(key string, val int) int {
	v := os.Getenv(key)
	if v == "" {
		return val
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return val
	}
	return n
}

func getenvInt64Default(key string, val int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return val
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return val
	}
	return n
}

func getenvBoolDefault(key string, val bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return val
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return val
	}
	return b
}
