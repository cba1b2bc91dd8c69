package mqtt

import (
	"fmt"
	"strings"
)

// expected: {prefix}/chat/{sessionId}/in
func ParseSessionID(topic, prefix string) (string, error) {
	parts := strings.Split(topic, "/")
	prefixParts := strings.Split(prefix, "/")
	if len(parts) != len(prefixParts)+3 {
		return "", fmt.Errorf("invalid topic: %s", topic)
	}
	for i, p := range prefixParts {
		if parts[i] != p {
			return "", fmt.Errorf("topic prefix mismatch: %s", topic)
		}
	}
	if parts[len(prefixParts)] != "chat" || parts[len(parts)-1] != "in" {
		return "", fmt.Errorf("invalid topic pattern: %s", topic)
	}
	sessionID := parts[len(prefixParts)+1]
	if sessionID == "" || sessionID == "+" {
		return "", fmt.Errorf("invalid session id in topic: %s", topic)
	}
	return sessionID, nil
}
