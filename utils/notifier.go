package utils

import (
	"log"

	"lms/config"

	"github.com/go-resty/resty/v2"
)

// ForumNotification is the payload posted to the configured forum webhook
type ForumNotification struct {
	ThreadID    uint   `json:"thread_id"`
	PostID      uint   `json:"post_id,omitempty"`
	AuthorID    uint   `json:"author_id"`
	ThreadTitle string `json:"thread_title"`
	Event       string `json:"event"` // THREAD_CREATED, POST_CREATED
}

// NotifyForum delivers a forum event to the external notification service.
// Delivery is best-effort; failures are logged and dropped.
func NotifyForum(notification ForumNotification) {
	webhookURL := config.AppConfig.ForumWebhookURL
	if webhookURL == "" {
		return
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(notification).
		Post(webhookURL)
	if err != nil {
		log.Printf("Error delivering forum notification: %v", err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Printf("Forum notification rejected, response code: %d", resp.StatusCode())
	}
}
