package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"aroma/internal/bot"
	"aroma/internal/classifier"
	"aroma/internal/config"
	"aroma/internal/dialogue"
	"aroma/internal/domain"
	"aroma/internal/intents"
	"aroma/internal/mqtt"
	"aroma/internal/perfume"
	"aroma/internal/sentiment"
	"aroma/internal/session"
	"aroma/internal/store"
	"aroma/internal/textproc"
	"aroma/internal/topic"
)

type app struct {
	bot        *bot.Bot
	sessions   *session.Manager
	classifier *classifier.Classifier
	catalog    *intents.Catalog
	store      *store.Store
	limit      int
	logger     *slog.Logger
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg := config.LoadServerConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalog, err := intents.Load(cfg.IntentsPath)
	if err != nil {
		logger.Error("load intents failed", "path", cfg.IntentsPath, "error", err)
		os.Exit(1)
	}

	normalizer := textproc.New(textproc.DefaultConfig())
	analyzer := sentiment.New(sentiment.DefaultConfig(), sentiment.DefaultLexicon(), normalizer)
	detector := topic.New(topic.DefaultTopics(), normalizer)

	clf := classifier.New(classifier.DefaultConfig(), normalizer, cfg.ModelPath, newRand(cfg.RandomSeed), logger)
	clf.Load()
	if !clf.Trained() {
		report, err := clf.Train(catalog.Examples())
		if err != nil {
			logger.Error("train classifier failed", "error", err)
			os.Exit(1)
		}
		if err := clf.Save(); err != nil {
			logger.Warn("save model failed", "path", cfg.ModelPath, "error", err)
		}
		logger.Info("classifier trained", "samples", report.Samples, "classes", len(report.Classes), "accuracy", report.Accuracy)
	}

	fallback := dialogue.NewFallback(
		dialogue.NewSource(cfg.DialoguesPath, logger),
		dialogue.NewMatcher(dialogue.DefaultConfig()),
	)

	chatBot := bot.New(bot.DefaultConfig(), catalog, bot.Components{
		Normalizer: normalizer,
		Sentiment:  analyzer,
		Topics:     detector,
		Intents:    clf,
		Dialogues:  fallback,
		Service:    perfume.NewService(),
		Rand:       newRand(cfg.RandomSeed),
	}, logger)

	sessions := session.NewManager(cfg.SessionIdleTTL, logger)
	sessions.StartPruning(5*time.Minute, ctx.Done())

	a := &app{
		bot:        chatBot,
		sessions:   sessions,
		classifier: clf,
		catalog:    catalog,
		limit:      cfg.TranscriptLimit,
		logger:     logger,
	}

	if cfg.DBDSN != "" {
		st, err := store.New(ctx, cfg.DBDSN)
		if err != nil {
			logger.Error("connect db failed", "error", err)
			os.Exit(1)
		}
		defer st.Close()
		if err := st.Migrate(ctx); err != nil {
			logger.Error("migrate db failed", "error", err)
			os.Exit(1)
		}
		a.store = st
	}

	if cfg.MQTTEnabled {
		hub := mqtt.NewHub(mqtt.HubConfig{
			BrokerURL:   cfg.MQTTBrokerURL,
			ClientID:    cfg.MQTTClientID,
			Username:    cfg.MQTTUsername,
			Password:    cfg.MQTTPassword,
			TopicPrefix: cfg.MQTTTopicPrefix,
		}, a, logger)
		if err := hub.Start(ctx); err != nil {
			logger.Error("start mqtt hub failed", "error", err)
			os.Exit(1)
		}
		logger.Info("mqtt gateway enabled", "broker", cfg.MQTTBrokerURL, "prefix", cfg.MQTTTopicPrefix)
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "trained": a.classifier.Trained()})
	})
	r.Post("/v1/chat", func(w http.ResponseWriter, req *http.Request) {
		var chatReq domain.ChatRequest
		if err := json.NewDecoder(req.Body).Decode(&chatReq); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json"})
			return
		}
		writeJSON(w, http.StatusOK, a.HandleChat(req.Context(), chatReq))
	})
	r.Post("/v1/train", func(w http.ResponseWriter, req *http.Request) {
		report, err := a.classifier.Train(a.catalog.Examples())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		if err := a.classifier.Save(); err != nil {
			a.logger.Warn("save model failed", "error", err)
		}
		writeJSON(w, http.StatusOK, report)
	})
	r.Get("/v1/stats", func(w http.ResponseWriter, req *http.Request) {
		body := map[string]any{
			"responses":     a.bot.Stats(),
			"sessions":      a.sessions.Count(),
			"trained":       a.classifier.Trained(),
			"intents":       a.catalog.Count(),
			"intent_counts": map[string]int{},
		}
		if a.store != nil {
			counts, err := a.store.IntentCounts(req.Context())
			if err != nil {
				a.logger.Warn("load intent counts failed", "error", err)
			} else {
				body["intent_counts"] = counts
			}
		}
		writeJSON(w, http.StatusOK, body)
	})
	r.Get("/v1/sessions/{sessionID}/transcript", func(w http.ResponseWriter, req *http.Request) {
		if a.store == nil {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "transcript store is not configured"})
			return
		}
		sessionID := chi.URLParam(req, "sessionID")
		limit := a.limit
		if v := req.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}
		turns, err := a.store.RecentTurns(req.Context(), sessionID, limit)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"session_id": sessionID, "turns": turns})
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("aroma server started", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("received shutdown signal")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
}

// HandleChat runs one message through its session and persists the turn
// when a transcript store is configured. Shared by the HTTP and MQTT
// frontends.
func (a *app) HandleChat(ctx context.Context, req domain.ChatRequest) domain.ChatResponse {
	sess := a.sessions.Get(req.SessionID)

	var reply bot.Reply
	sess.Do(func(state *bot.State) {
		reply = a.bot.Respond(state, req.Text)
	})

	if a.store != nil {
		a.persistTurn(ctx, store.Turn{SessionID: sess.ID, UserID: req.UserID, Role: "user", Content: req.Text})
		a.persistTurn(ctx, store.Turn{
			SessionID: sess.ID, UserID: req.UserID, Role: "assistant",
			Content: reply.Text, Intent: reply.Intent, Stage: reply.Stage,
		})
	}

	return domain.ChatResponse{
		SessionID: sess.ID,
		Reply:     reply.Text,
		Stage:     reply.Stage,
		Intent:    reply.Intent,
	}
}

func (a *app) persistTurn(ctx context.Context, turn store.Turn) {
	if err := a.store.SaveTurn(ctx, turn); err != nil {
		a.logger.Warn("save turn failed", "session_id", turn.SessionID, "error", err)
	}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
