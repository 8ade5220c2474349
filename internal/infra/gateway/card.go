// Package gateway holds clients for external collaborators.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"hotelhub/internal/pkg/config"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase"
)

type chargeRequest struct {
	Reference   string `json:"reference"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	CardToken   string `json:"card_token"`
}

type chargeResponse struct {
	Approved      bool   `json:"approved"`
	TransactionID string `json:"transaction_id"`
	DeclineReason string `json:"decline_reason"`
}

// CardClient talks to the card processor over its JSON API. Declines are a
// normal outcome, not an error; errors mean the gateway could not be reached
// or answered garbage.
type CardClient struct {
	baseURL string
	client  *http.Client
}

func NewCardClient(cfg config.GatewayConfig) *CardClient {
	return &CardClient{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *CardClient) Charge(ctx context.Context, req usecase.CardCharge) (*usecase.CardChargeResult, error) {
	body, err := json.Marshal(chargeRequest{
		Reference:   req.BookingID.String(),
		AmountCents: req.AmountCents,
		Currency:    "EUR",
		CardToken:   req.CardToken,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode charge request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/charges", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build charge request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, errs.Wrap(err, "charge request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("gateway returned status %d", resp.StatusCode))
	}

	var out chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errs.Wrap(err, "failed to decode charge response")
	}

	return &usecase.CardChargeResult{
		Approved:      out.Approved,
		TransactionID: out.TransactionID,
		DeclineReason: out.DeclineReason,
	}, nil
}
