package repository

import (
	"context"
	"fmt"

	"foster/domain"

	"github.com/go-resty/resty/v2"
)

type retellRepository struct {
	client     *resty.Client
	fromNumber string
}

type retellCreateCallRequest struct {
	FromNumber string `json:"from_number"`
	ToNumber   string `json:"to_number"`
}

type retellCallResponse struct {
	CallID     string `json:"call_id"`
	CallStatus string `json:"call_status"`
	Transcript string `json:"transcript"`
}

type retellErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// NewRetellRepository builds the voice-vendor client. fromNumber is the
// rescue's outbound caller id in E.164 form.
func NewRetellRepository(baseURL, apiKey, fromNumber string) domain.VoiceCallRepo {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")

	return &retellRepository{
		client:     client,
		fromNumber: fromNumber,
	}
}

func (rr *retellRepository) PlaceCall(ctx context.Context, toNumber string) (string, error) {
	var callResp retellCallResponse
	var errResp retellErrorResponse

	resp, err := rr.client.R().
		SetContext(ctx).
		SetBody(retellCreateCallRequest{FromNumber: rr.fromNumber, ToNumber: toNumber}).
		SetResult(&callResp).
		SetError(&errResp).
		Post("/v2/create-phone-call")
	if err != nil {
		return "", fmt.Errorf("could not reach voice api: %v", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("voice api returned %d: %s", resp.StatusCode(), retellErrorDetail(&errResp, resp.String()))
	}

	if callResp.CallID == "" {
		return "", fmt.Errorf("voice api response missing call_id")
	}

	return callResp.CallID, nil
}

func (rr *retellRepository) GetTranscript(ctx context.Context, callID string) (string, error) {
	var callResp retellCallResponse
	var errResp retellErrorResponse

	resp, err := rr.client.R().
		SetContext(ctx).
		SetResult(&callResp).
		SetError(&errResp).
		Get("/v2/get-call/" + callID)
	if err != nil {
		return "", fmt.Errorf("could not reach voice api: %v", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("voice api returned %d: %s", resp.StatusCode(), retellErrorDetail(&errResp, resp.String()))
	}

	// The call resource exists before the conversation has been
	// transcribed. An empty transcript is an interim state.
	if callResp.Transcript == "" {
		return "", domain.ErrNoTranscript
	}

	return callResp.Transcript, nil
}

func retellErrorDetail(errResp *retellErrorResponse, raw string) string {
	if errResp.Message != "" {
		return errResp.Message
	}
	if errResp.Error != "" {
		return errResp.Error
	}
	return raw
}
