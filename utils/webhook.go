package utils

import (
	"log"
	"time"

	"revtrack/config"
	"revtrack/models"

	"github.com/go-resty/resty/v2"
)

// NotifyReviewSubmitted posts a new review to the configured webhook
// endpoint. Fire-and-forget: called in a goroutine after the review is
// committed, failures are logged only.
func NotifyReviewSubmitted(review models.Review) {
	webhookURL := config.AppConfig.ReviewWebhookURL
	if webhookURL == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":       "review.submitted",
			"reviewId":    review.ID,
			"rating":      review.Rating,
			"companyId":   review.CompanyID,
			"reviewerId":  review.ReviewerID,
			"submitterId": review.SubmitterID,
		}).
		Post(webhookURL)
	if err != nil {
		log.Printf("Error calling review webhook: %v", err)
		return
	}

	if resp.StatusCode() >= 300 {
		log.Printf("Review webhook returned status %d: %s", resp.StatusCode(), resp.String())
	}
}
