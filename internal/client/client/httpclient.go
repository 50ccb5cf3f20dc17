package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/authclient/internal/client/models"
	"github.com/dmitrijs2005/authclient/internal/common"
	"github.com/dmitrijs2005/authclient/internal/logging"
	"github.com/google/uuid"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 1 << 20

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginResponse struct {
	Data struct {
		Name         string `json:"name"`
		Email        string `json:"email"`
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	} `json:"data"`
}

type errorResponse struct {
	Message string `json:"message"`
}

type HTTPClient struct {
	loginURL    string
	registerURL string
	http        *http.Client
	log         logging.Logger
}

// NewHTTPClient returns a client posting to the given absolute URLs. A zero
// timeout leaves requests bounded only by the caller's context.
func NewHTTPClient(loginURL, registerURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		loginURL:    loginURL,
		registerURL: registerURL,
		http:        &http.Client{Timeout: timeout},
		log:         log,
	}
}

func (c *HTTPClient) Login(ctx context.Context, email string, password string) (*models.Session, error) {
	status, body, err := c.post(ctx, c.loginURL, loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if err := checkStatus(status, body); err != nil {
		return nil, err
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if resp.Data.AccessToken == "" || resp.Data.RefreshToken == "" {
		return nil, fmt.Errorf("%w: missing tokens", ErrMalformedResponse)
	}

	session := &models.Session{
		User: models.User{
			Name:        resp.Data.Name,
			Email:       resp.Data.Email,
			AccessToken: resp.Data.AccessToken,
		},
		RefreshToken: resp.Data.RefreshToken,
	}

	exp, err := TokenExpiry(resp.Data.AccessToken)
	if err != nil {
		c.log.Debug(ctx, "access token has no readable expiry", "error", err)
	}
	session.AccessExpiresAt = exp

	return session, nil
}

func (c *HTTPClient) Register(ctx context.Context, email string, name string, password string) error {
	status, body, err := c.post(ctx, c.registerURL, registerRequest{Email: email, Name: name, Password: password})
	if err != nil {
		return err
	}
	return checkStatus(status, body)
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// post sends one JSON request and returns the status and body of the answer.
// Any failure before a response arrives is reported as ErrUnavailable.
func (c *HTTPClient) post(ctx context.Context, url string, payload any) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return 0, nil, err
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "url", url, "request_id", requestID, "error", err)
		return 0, nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.log.Warn(ctx, "reading response failed", "url", url, "request_id", requestID, "error", err)
		return 0, nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "request done",
		"url", url,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	return resp.StatusCode, body, nil
}

func checkStatus(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}
	var er errorResponse
	// a body that is not the error envelope leaves Message empty
	_ = json.Unmarshal(body, &er)
	return &RemoteError{StatusCode: status, Message: er.Message}
}
