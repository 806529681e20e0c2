package identity

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"citamed-service/internal/app/contracts"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/exceptions"

	json "github.com/goccy/go-json"
)

// identityClient talks to the external account provider. Any non-2xx answer
// maps to an unauthenticated-style error; the provider's own reasons are kept
// in the dev message only.
type identityClient struct {
	baseUrl string
	apiKey  string
	http    *http.Client
}

func NewIdentityClient(baseUrl, apiKey string) contracts.IdentityProvider {
	return &identityClient{baseUrl: baseUrl, apiKey: apiKey, http: &http.Client{}}
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type identityResult struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

func (c *identityClient) SignIn(ctx context.Context, email, password string) (string, error) {
	var result identityResult
	err := c.post(ctx, "/signIn", credentialsPayload{Email: email, Password: password}, &result)
	if err != nil {
		return "", exceptions.ErrIdentitySignIn(err)
	}
	return result.UID, nil
}

func (c *identityClient) SignUp(ctx context.Context, email, password string) (string, error) {
	var result identityResult
	err := c.post(ctx, "/signUp", credentialsPayload{Email: email, Password: password}, &result)
	if err != nil {
		return "", exceptions.ErrIdentitySignUp(err)
	}
	return result.UID, nil
}

func (c *identityClient) CurrentUser(ctx context.Context, token string) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.baseUrl+"/currentUser", nil)
	if err != nil {
		return "", "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != constvars.StatusOK {
		return "", "", exceptions.ErrIdentityCurrentUser(fmt.Errorf("identity provider answered %d", resp.StatusCode))
	}

	var result identityResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", "", exceptions.ErrDecodeResponse(err, constvars.ResourceUser)
	}
	return result.UID, result.Email, nil
}

func (c *identityClient) ResetPassword(ctx context.Context, email string) error {
	err := c.post(ctx, "/resetPassword", map[string]string{"email": email}, nil)
	if err != nil {
		return exceptions.ErrIdentityResetPassword(err)
	}
	return nil
}

func (c *identityClient) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.baseUrl+path, bytes.NewBuffer(raw))
	if err != nil {
		return err
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		return fmt.Errorf("identity provider answered %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *identityClient) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
}
