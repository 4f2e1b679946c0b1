package utils

import (
	"context"
	"errors"
	"net"
	"strings"

	openaigo "github.com/openai/openai-go"
	"github.com/sashabaranov/go-openai"
)

// Error classes reported by ClassifyError.
const (
	ErrClassRateLimited = "rate_limited"
	ErrClassUpstream5xx = "upstream_5xx"
	ErrClassUpstream4xx = "upstream_4xx"
	ErrClassTimeout     = "timeout"
	ErrClassTransport   = "transport"
	ErrClassUnknown     = "unknown"
)

// ClassifyError labels an upstream chat completion error for logs and
// metrics. It never triggers a retry.
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}

	if status := statusCode(err); status != 0 {
		switch {
		case status == 429:
			return ErrClassRateLimited
		case status >= 500:
			return ErrClassUpstream5xx
		case status >= 400:
			return ErrClassUpstream4xx
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrClassTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrClassTimeout
		}
		return ErrClassTransport
	}

	// Fall back to the message for errors the SDKs return untyped.
	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "rate limit"):
		return ErrClassRateLimited
	case strings.Contains(errMsg, "timeout"):
		return ErrClassTimeout
	case strings.Contains(errMsg, "connection refused"),
		strings.Contains(errMsg, "connection reset by peer"),
		strings.Contains(errMsg, "no such host"):
		return ErrClassTransport
	}
	return ErrClassUnknown
}

// statusCode digs the upstream HTTP status out of either SDK's error type.
func statusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	var sdkErr *openaigo.Error
	if errors.As(err, &sdkErr) {
		return sdkErr.StatusCode
	}
	return 0
}
