package facades

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

const (
	// DefaultTimeout bounds every outgoing request.
	DefaultTimeout = 15 * time.Second

	maxBodySize   = 4 << 20
	maxDetailSize = 200
)

// jsonGetter performs read-only JSON GETs against one base URL.
type jsonGetter struct {
	baseURL string
	client  *http.Client
}

func newJSONGetter(baseURL string, timeout time.Duration) jsonGetter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return jsonGetter{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// get returns the body of a 2xx response. Any other outcome is a
// *models.NetworkError.
func (g jsonGetter) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	target := g.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		logger.Log.Errorw("request failed", "url", target, "error", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrapf(ctxErr, "GET %s", path)
		}
		return nil, &models.NetworkError{Detail: fmt.Sprintf("GET %s failed: %v", path, err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &models.NetworkError{Status: resp.StatusCode, Detail: errors.Wrap(err, "failed to read response").Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := errorDetail(resp.StatusCode, body)
		logger.Log.Warnw("non-2xx response", "url", target, "status", resp.StatusCode, "detail", detail)
		return nil, &models.NetworkError{Status: resp.StatusCode, Detail: detail}
	}

	return body, nil
}

// errorDetail picks the most useful message from an error body: the
// error, message or detail field, else the raw text, else "HTTP <status>".
func errorDetail(status int, body []byte) string {
	if gjson.ValidBytes(body) {
		for _, field := range []string{"error", "message", "detail"} {
			v := gjson.GetBytes(body, field)
			if v.Exists() && v.Type == gjson.String && v.String() != "" {
				return v.String()
			}
		}
	}

	text := strings.TrimSpace(string(body))
	if text != "" {
		if len(text) > maxDetailSize {
			text = text[:maxDetailSize] + "…"
		}
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}
