package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClient is the subset of http.Client the vendor integrations need.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// DefaultHTTPClient bounds vendor calls that carry no per-request deadline.
func DefaultHTTPClient() *http.Client {
	return &http.Client{Timeout: 15 * time.Second}
}

// CallJSON posts a JSON body (or issues a GET when body is nil) to a vendor
// endpoint and decodes the JSON response into out. Failures come back as
// VendorError values for the provider to fold into a failed check result.
func CallJSON(ctx context.Context, client HTTPClient, provider, method, url string, headers map[string]string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return NewVendorError(ErrorInternal, provider, "encode request", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return NewVendorError(ErrorInternal, provider, "build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return NewVendorError(ErrorTimeout, provider, "vendor call timed out", err)
		}
		return NewVendorError(ErrorVendorOutage, provider, "vendor unreachable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return NewVendorError(ErrorAuthentication, provider, fmt.Sprintf("vendor rejected credentials (status %d)", resp.StatusCode), nil)
	case resp.StatusCode >= 500:
		return NewVendorError(ErrorVendorOutage, provider, fmt.Sprintf("vendor error (status %d)", resp.StatusCode), nil)
	case resp.StatusCode >= 400:
		return NewVendorError(ErrorValidation, provider, fmt.Sprintf("vendor rejected request (status %d)", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewVendorError(ErrorBadData, provider, "decode response", err)
	}
	return nil
}
