package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrInvalid covers every way a token can fail verification: malformed,
// rejected by the provider, unverified email, or provider timeout.
var ErrInvalid = errors.New("identity: invalid token")

const tokenInfoURL = "https://www.googleapis.com/oauth2/v3/tokeninfo"

// Claims is the verified subset of the provider payload the rest of the
// system is allowed to see.
type Claims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// Verifier checks a client-supplied Google id_token against the tokeninfo
// endpoint. The HTTP client timeout is the bounded wait on the provider.
type Verifier struct {
	Endpoint string
	client   *http.Client
}

func NewVerifier(timeout time.Duration) *Verifier {
	return &Verifier{
		Endpoint: tokenInfoURL,
		client:   &http.Client{Timeout: timeout},
	}
}

// Verify exchanges an id_token for verified claims. Any failure, including
// an unverified email, comes back as ErrInvalid.
func (v *Verifier) Verify(ctx context.Context, idToken string) (*Claims, error) {
	if idToken == "" {
		return nil, ErrInvalid
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		v.Endpoint+"?id_token="+url.QueryEscape(idToken), nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: tokeninfo status %d", ErrInvalid, resp.StatusCode)
	}

	var payload struct {
		Email         string    `json:"email"`
		EmailVerified looseBool `json:"email_verified"`
		Name          string    `json:"name"`
		Picture       string    `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if payload.Email == "" || !bool(payload.EmailVerified) {
		return nil, fmt.Errorf("%w: email not verified", ErrInvalid)
	}

	return &Claims{
		Email:         payload.Email,
		EmailVerified: true,
		Name:          payload.Name,
		Picture:       payload.Picture,
	}, nil
}

// looseBool tolerates the tokeninfo v3 quirk of encoding booleans as the
// strings "true"/"false".
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	switch string(data) {
	case "true":
		*b = true
	case "false", "null", "":
		*b = false
	default:
		return fmt.Errorf("invalid bool value %q", data)
	}
	return nil
}
