package lambdahandler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/filedrop/file-delivery-bot/internal/controllers/webhook"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
)

// Handler adapts API Gateway proxy events to the same update processing as the HTTP server.
type Handler struct {
	processor webhook.UpdateProcessor
	secret    string
}

// New creates a new Handler.
func New(processor webhook.UpdateProcessor, secret string) *Handler {
	return &Handler{
		processor: processor,
		secret:    secret,
	}
}

// Handle answers POST with the processing status and anything else with the health payload.
// Errors are reported in the response, never returned, so API Gateway always gets a body.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if !strings.EqualFold(req.HTTPMethod, http.MethodPost) {
		return jsonResponse(http.StatusOK, webhook.StatusResponse{Status: webhook.StatusRunning}), nil
	}

	if !webhook.SecretMatches(h.secret, header(req.Headers, webhook.SecretTokenHeader)) {
		return jsonResponse(http.StatusUnauthorized, webhook.ErrorResponse{Error: "unauthorized"}), nil
	}

	body, err := requestBody(req)
	if err == nil {
		var upd models.Update
		if err = json.Unmarshal(body, &upd); err == nil {
			h.processor.ProcessUpdate(ctx, &upd)
			return jsonResponse(http.StatusOK, webhook.StatusResponse{Status: webhook.StatusOK}), nil
		}
	}

	zerolog.Ctx(ctx).Error().Err(err).Msg("Error processing update")
	return jsonResponse(http.StatusInternalServerError, webhook.ErrorResponse{Error: err.Error()}), nil
}

func requestBody(req events.APIGatewayProxyRequest) ([]byte, error) {
	if !req.IsBase64Encoded {
		return []byte(req.Body), nil
	}
	body, err := base64.StdEncoding.DecodeString(req.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 body: %w", err)
	}
	return body, nil
}

// header finds a header regardless of the casing API Gateway delivered it in.
func header(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

func jsonResponse(code int, payload any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		code = http.StatusInternalServerError
		body = []byte(`{"error":"failed to encode response"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: code,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
