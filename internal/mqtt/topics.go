package mqtt

import "fmt"

func TopicChatInbound(prefix string) string {
	return fmt.Sprintf("%s/chat/+/in", prefix)
}

func TopicChatIn(prefix, sessionID string) string {
	return fmt.Sprintf("%s/chat/%s/in", prefix, sessionID)
}

func TopicChatOut(prefix, sessionID string) string {
	return fmt.Sprintf("%s/chat/%s/out", prefix, sessionID)
}
