package receiverflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	review "afternote/internal/review/models"
	id "afternote/pkg/domain"
)

const (
	headerAuthCode = "X-Auth-Code"
	defaultTimeout = 15 * time.Second
)

// Client is the HTTP implementation of API and Uploader.
type Client struct {
	baseURL string
	http    *http.Client
}

type ClientOption func(*Client)

func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		cl.http = c
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type errorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type verifyResponse struct {
	ReceiverID   string `json:"receiverId"`
	ReceiverName string `json:"receiverName"`
	SenderName   string `json:"senderName"`
	Relation     string `json:"relation"`
}

type presignResponse struct {
	PresignedURL string `json:"presignedUrl"`
	FileURL      string `json:"fileUrl"`
	ContentType  string `json:"contentType"`
}

type statusResponse struct {
	ID        string  `json:"id"`
	Status    string  `json:"status"`
	AdminNote *string `json:"adminNote"`
	CreatedAt string  `json:"createdAt"`
}

func (c *Client) SendEmailCode(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/api/receiver-auth/email/send", "", map[string]string{"email": email}, nil)
}

func (c *Client) VerifyEmailCode(ctx context.Context, email, code string) error {
	return c.do(ctx, http.MethodPost, "/api/receiver-auth/email/verify", "",
		map[string]string{"email": email, "code": code}, nil)
}

func (c *Client) VerifyMasterKey(ctx context.Context, authCode string) (*VerifyResult, error) {
	var resp verifyResponse
	if err := c.do(ctx, http.MethodPost, "/api/receiver-auth/verify", "",
		map[string]string{"authCode": authCode}, &resp); err != nil {
		return nil, err
	}
	receiverID, err := id.ParseReceiverID(resp.ReceiverID)
	if err != nil {
		return nil, fmt.Errorf("decode verify response: %w", err)
	}
	return &VerifyResult{
		ReceiverID:   receiverID,
		ReceiverName: resp.ReceiverName,
		SenderName:   resp.SenderName,
		Relation:     resp.Relation,
	}, nil
}

func (c *Client) PresignDocument(ctx context.Context, authCode, extension string) (*PresignedUpload, error) {
	var resp presignResponse
	if err := c.do(ctx, http.MethodPost, "/api/receiver-auth/presigned-url", authCode,
		map[string]string{"extension": extension}, &resp); err != nil {
		return nil, err
	}
	return &PresignedUpload{PresignedURL: resp.PresignedURL, FileURL: resp.FileURL, ContentType: resp.ContentType}, nil
}

func (c *Client) SubmitVerification(ctx context.Context, authCode, deathURL, familyURL string) (*VerificationStatus, error) {
	var resp statusResponse
	if err := c.do(ctx, http.MethodPost, "/api/receiver-auth/delivery-verification", authCode,
		map[string]string{"deathCertificateUrl": deathURL, "familyRelationCertificateUrl": familyURL}, &resp); err != nil {
		return nil, err
	}
	return resp.toStatus()
}

func (c *Client) VerificationStatus(ctx context.Context, authCode string) (*VerificationStatus, error) {
	var resp statusResponse
	if err := c.do(ctx, http.MethodGet, "/api/receiver-auth/delivery-verification/status", authCode, nil, &resp); err != nil {
		return nil, err
	}
	return resp.toStatus()
}

// Upload PUTs the document to the presigned URL. The URL is absolute and
// goes to object storage, not the API.
func (c *Client) Upload(ctx context.Context, upload PresignedUpload, doc Document) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, upload.PresignedURL, bytes.NewReader(doc.Data))
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", upload.ContentType)
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= http.StatusBadRequest {
		return &APIError{Status: resp.StatusCode, Code: "upload_failed"}
	}
	return nil
}

func (r statusResponse) toStatus() (*VerificationStatus, error) {
	status := review.Status(r.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("decode status response: unknown status %q", r.Status)
	}
	out := &VerificationStatus{ID: r.ID, Status: status, AdminNote: r.AdminNote}
	if r.CreatedAt != "" {
		createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("decode status response: %w", err)
		}
		out.CreatedAt = createdAt
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path, authCode string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authCode != "" {
		req.Header.Set(headerAuthCode, authCode)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var eb errorBody
		// An undecodable error body leaves Message empty, which classifies
		// as Unknown.
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return &APIError{Status: resp.StatusCode, Code: eb.Error, Message: eb.ErrorDescription}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
