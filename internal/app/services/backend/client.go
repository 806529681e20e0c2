package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/exceptions"

	json "github.com/goccy/go-json"
)

// readRetries bounds how often read-only calls are re-sent after a transport
// failure. Writes are never retried to avoid duplicate side effects.
const readRetries = 2

// restClient is the shared HTTP plumbing of the clinic backend clients.
type restClient struct {
	baseUrl    string
	httpClient *http.Client
}

func newRestClient(baseUrl string) restClient {
	return restClient{
		baseUrl:    strings.TrimRight(baseUrl, "/"),
		httpClient: &http.Client{},
	}
}

// getJSON is the retried read path.
func (c *restClient) getJSON(ctx context.Context, url, resource string, out interface{}) error {
	var lastErr error
	for attempt := 0; attempt <= readRetries; attempt++ {
		err := c.doJSON(ctx, constvars.MethodGet, url, nil, resource, exceptions.ErrBackendGetResource, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !exceptions.IsHTTPErrRetryable(err) {
			return err
		}
	}
	return lastErr
}

func (c *restClient) doJSON(ctx context.Context, method, url string, payload interface{}, resource string, failure func(error, string) *exceptions.CustomError, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		return statusError(resp, resource, failure)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return exceptions.ErrDecodeResponse(err, resource)
	}
	return nil
}

// statusError translates the backend's answer into the error taxonomy:
// 404 is stale data, 409 a lost race, 400 a validation failure the backend
// caught, anything else a backend/transport failure.
func statusError(resp *http.Response, resource string, failure func(error, string) *exceptions.CustomError) error {
	bodyBytes, _ := io.ReadAll(resp.Body)
	cause := fmt.Errorf("backend answered %d: %s", resp.StatusCode, strings.TrimSpace(string(bodyBytes)))
	switch resp.StatusCode {
	case constvars.StatusNotFound:
		return exceptions.ErrResourceNotFound(cause, resource)
	case constvars.StatusConflict:
		return exceptions.ErrResourceConflict(cause, resource)
	case constvars.StatusBadRequest:
		return exceptions.ErrInputValidation(cause)
	}
	return failure(cause, resource)
}
