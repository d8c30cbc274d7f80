package identity

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type permissionResponse struct {
	envelope
	Data struct {
		IsPermitted bool `json:"is_permitted"`
		User        struct {
			ID       flexID `json:"id"`
			Email    string `json:"email"`
			FullName string `json:"full_name"`
		} `json:"user"`
		Roles    []string `json:"roles"`
		Hospital *struct {
			HospitalID flexID `json:"hospital_id"`
		} `json:"hospital"`
	} `json:"data"`
}

type userResponse struct {
	envelope
	Data struct {
		ID       flexID `json:"id"`
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Mobile   string `json:"mobile"`
	} `json:"data"`
}

// RemoteProvider asks the auth service over HTTP. The token is forwarded
// verbatim as the Authorization header.
type RemoteProvider struct {
	client *resty.Client
}

func NewRemoteProvider(baseURL string, timeout time.Duration) *RemoteProvider {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &RemoteProvider{client: client}
}

// statusOf picks the failing status from the HTTP response and the body envelope.
func statusOf(resp *resty.Response, body envelope) (int, string) {
	if resp.IsError() {
		msg := body.Message
		if msg == "" {
			msg = resp.Status()
		}
		return resp.StatusCode(), msg
	}
	if body.Status != 0 && body.Status != http.StatusOK {
		return body.Status, body.Message
	}
	return 0, ""
}

func (p *RemoteProvider) Check(ctx context.Context, token, permission string) (*Identity, error) {
	if bearerToken(token) == "" {
		return nil, ErrMissingToken
	}

	var out permissionResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Authorization", token).
		SetQueryParam("permission", permission).
		SetResult(&out).
		SetError(&out).
		Get("/user/permission/check")
	if err != nil {
		return nil, &StatusError{StatusCode: http.StatusBadGateway, Message: err.Error()}
	}
	if code, msg := statusOf(resp, out.envelope); code != 0 {
		return nil, &StatusError{StatusCode: code, Message: msg}
	}

	id := &Identity{
		Permitted: out.Data.IsPermitted,
		UserID:    uint(out.Data.User.ID),
		Email:     out.Data.User.Email,
		FullName:  out.Data.User.FullName,
		Roles:     out.Data.Roles,
	}
	if out.Data.Hospital != nil {
		id.HospitalID = uint(out.Data.Hospital.HospitalID)
	}
	return id, nil
}

func (p *RemoteProvider) LookupUser(ctx context.Context, token, email string) (*User, error) {
	if bearerToken(token) == "" {
		return nil, ErrMissingToken
	}

	var out userResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Authorization", token).
		SetQueryParam("email", email).
		SetResult(&out).
		SetError(&out).
		Get("/user/serialize")
	if err != nil {
		return nil, &StatusError{StatusCode: http.StatusBadGateway, Message: err.Error()}
	}
	if code, msg := statusOf(resp, out.envelope); code != 0 {
		return nil, &StatusError{StatusCode: code, Message: msg}
	}

	return &User{
		ID:       uint(out.Data.ID),
		FullName: out.Data.FullName,
		Email:    out.Data.Email,
		Mobile:   out.Data.Mobile,
	}, nil
}
