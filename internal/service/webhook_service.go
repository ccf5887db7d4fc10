package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/caic-xyz/website/internal/model"

	"github.com/rs/zerolog/log"
)

type WebhookServiceConfig struct {
	WebhookURL string
	InstanceID string
}

// WebhookService notifies an optional webhook about new submissions. Delivery
// is best effort, failures are logged and dropped, nothing is retried.
type WebhookService struct {
	Config WebhookServiceConfig
	client *http.Client
}

type webhookPayload struct {
	Instance string `json:"instance"`
	Email    string `json:"email"`
	Pain     string `json:"pain"`
	Pay      string `json:"pay"`
}

func NewWebhookService(config WebhookServiceConfig) *WebhookService {
	return &WebhookService{
		Config: config,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Notify sends the new-submission webhook in the background.
func (ws *WebhookService) Notify(submission model.Submission) {
	if ws.Config.WebhookURL == "" {
		return
	}

	go ws.send(submission)
}

func (ws *WebhookService) send(submission model.Submission) {
	body, err := json.Marshal(webhookPayload{
		Instance: ws.Config.InstanceID,
		Email:    submission.Email,
		Pain:     submission.Pain,
		Pay:      submission.Pay,
	})

	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal webhook body")
		return
	}

	req, err := http.NewRequest(http.MethodPost, ws.Config.WebhookURL, bytes.NewReader(body))

	if err != nil {
		log.Error().Err(err).Msg("Failed to create webhook request")
		return
	}

	req.Header.Add("Content-Type", "application/json")

	res, err := ws.client.Do(req)

	if err != nil {
		log.Error().Err(err).Msg("Failed to send webhook")
		return
	}

	res.Body.Close()

	if res.StatusCode != 200 && res.StatusCode != 201 {
		log.Debug().Str("status", res.Status).Msg("Webhook returned non-200/201 status")
	}
}
