// Package challenge verifies bot-deterrent challenge tokens against the
// external verification service.
package challenge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/tupelotree/contact-backend/config"
	"github.com/tupelotree/contact-backend/services"
	"go.uber.org/zap"
)

// Verifier performs the single synchronous siteverify call for a token
type Verifier struct {
	httpClient *http.Client
	verifyURL  string
	secret     string
	logger     *zap.Logger
}

// verifyResponse is the service's JSON reply; only the success flag and the
// diagnostic error codes are interpreted.
type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// New creates a new Verifier from the challenge configuration
func New(cfg config.ChallengeConfig, logger *zap.Logger) *Verifier {
	return &Verifier{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		verifyURL:  cfg.VerifyURL,
		secret:     cfg.SecretKey,
		logger:     logger,
	}
}

// Verify submits the token with the shared secret and interprets the
// service's boolean success field. An explicit rejection and a transport or
// decode failure are distinct outcomes: the former is user-facing, the
// latter is a downstream service error. No retries are attempted.
func (v *Verifier) Verify(ctx context.Context, token string) error {
	form := url.Values{
		"secret":   {v.secret},
		"response": {token},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return services.NewDomainError(services.ErrorTypeDownstream, "challenge service unavailable", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return services.NewDomainError(services.ErrorTypeDownstream, "challenge service unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.logger.Error("challenge service returned non-OK status", zap.Int("status", resp.StatusCode))
		return services.NewDomainError(services.ErrorTypeDownstream, "challenge service unavailable", nil).
			WithDetail("status", resp.StatusCode)
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return services.NewDomainError(services.ErrorTypeDownstream, "challenge service unavailable", err)
	}

	if !body.Success {
		v.logger.Info("challenge rejected", zap.Strings("error_codes", body.ErrorCodes))
		return services.NewDomainError(services.ErrorTypeChallengeRejected, "challenge verification rejected", nil).
			WithDetail("error_codes", body.ErrorCodes)
	}

	return nil
}
