package llm

import (
	"errors"
	"regexp"
	"strings"

	openai "github.com/openai/openai-go"
)

// Status codes in error text are matched as whole numbers so durations and
// identifiers like "4000ms" never classify as an HTTP status.
var (
	rateLimitStatusRe = regexp.MustCompile(`\b429\b`)
	quotaStatusRe     = regexp.MustCompile(`\b403\b`)
	fatalStatusRe     = regexp.MustCompile(`\b(400|401|404|422)\b`)
)

func containsRateLimitPhrases(s string) bool {
	s = strings.ToLower(s)
	return strings.Contains(s, "rate limit") ||
		strings.Contains(s, "requests per minute") ||
		strings.Contains(s, "rpm exceeded") ||
		strings.Contains(s, "rate exceeded") ||
		strings.Contains(s, "quota exceeded") ||
		strings.Contains(s, "too many requests") ||
		strings.Contains(s, "insufficient_quota") ||
		strings.Contains(s, "insufficient quota") ||
		(strings.Contains(s, "quota") && strings.Contains(s, "exceeded")) ||
		strings.Contains(s, "current quota")
}

// IsRateLimitError checks if an error indicates a quota or throughput
// rejection from the backend.
func IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == 429 {
			return true
		}
		// Some providers signal quota exhaustion with a 403.
		if apiErr.StatusCode == 403 {
			return containsRateLimitPhrases(err.Error())
		}
	}
	errStr := strings.ToLower(err.Error())
	if rateLimitStatusRe.MatchString(errStr) {
		return true
	}
	if quotaStatusRe.MatchString(errStr) {
		return containsRateLimitPhrases(errStr)
	}
	return containsRateLimitPhrases(errStr)
}

// IsFatalError checks if an error is a permanent request failure (malformed
// request, authentication) that must propagate without retry. Rate limits
// are checked first by the caller and never land here.
func IsFatalError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 400, 401, 403, 404, 422:
			return true
		}
	}
	errStr := strings.ToLower(err.Error())
	return fatalStatusRe.MatchString(errStr) ||
		strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "invalid api key") ||
		strings.Contains(errStr, "invalid_api_key") ||
		strings.Contains(errStr, "bad request") ||
		strings.Contains(errStr, "model not found")
}
