package mqtt

import (
	"context"
	"encoding/json"
	"log/slog"

	paho "github.com/eclipse/paho.mqtt.golang"

	"aroma/internal/domain"
)

type HubConfig struct {
	BrokerURL   string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
}

// ChatHandler processes one inbound message and returns the reply to
// publish. The hub calls it from paho's delivery goroutines.
type ChatHandler interface {
	HandleChat(ctx context.Context, req domain.ChatRequest) domain.ChatResponse
}

// Hub bridges MQTT chat topics to the bot. Clients publish user text to
// {prefix}/chat/{sessionId}/in and receive replies on
// {prefix}/chat/{sessionId}/out.
type Hub struct {
	cfg     HubConfig
	client  paho.Client
	handler ChatHandler
	logger  *slog.Logger
}

func NewHub(cfg HubConfig, handler ChatHandler, logger *slog.Logger) *Hub {
	return &Hub{
		cfg:     cfg,
		handler: handler,
		logger:  logger,
	}
}

func (h *Hub) Start(ctx context.Context) error {
	opts := paho.NewClientOptions().
		AddBroker(h.cfg.BrokerURL).
		SetClientID(h.cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true)

	if h.cfg.Username != "" {
		opts.SetUsername(h.cfg.Username)
		opts.SetPassword(h.cfg.Password)
	}

	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		h.logger.Error("mqtt connection lost", "error", err)
	})

	h.client = paho.NewClient(opts)
	if token := h.client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}

	if token := h.client.Subscribe(TopicChatInbound(h.cfg.TopicPrefix), 1, h.handleInbound); token.Wait() && token.Error() != nil {
		return token.Error()
	}

	go func() {
		<-ctx.Done()
		h.client.Disconnect(100)
	}()

	return nil
}

func (h *Hub) handleInbound(_ paho.Client, msg paho.Message) {
	sessionID, err := ParseSessionID(msg.Topic(), h.cfg.TopicPrefix)
	if err != nil {
		h.logger.Warn("skip invalid chat topic", "topic", msg.Topic(), "error", err)
		return
	}

	var req domain.ChatRequest
	if err := json.Unmarshal(msg.Payload(), &req); err != nil {
		// plain-text payloads are accepted as the message body
		req = domain.ChatRequest{Text: string(msg.Payload())}
	}
	req.SessionID = sessionID

	resp := h.handler.HandleChat(context.Background(), req)

	body, err := json.Marshal(resp)
	if err != nil {
		h.logger.Error("marshal chat response", "session_id", sessionID, "error", err)
		return
	}
	topic := TopicChatOut(h.cfg.TopicPrefix, sessionID)
	if token := h.client.Publish(topic, 1, false, body); token.Wait() && token.Error() != nil {
		h.logger.Error("publish chat response", "topic", topic, "error", token.Error())
	}
}
