package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// Request is the wire body for the conversational endpoint.
type Request struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
	UseRag         bool   `json:"use_rag"`
}

// Source is a supporting document returned by the retrieval step.
type Source struct {
	Content    string  `json:"content"`
	FilePath   string  `json:"file_path"`
	Similarity float64 `json:"similarity,omitempty"`
}

// Response is the service's success payload.
type Response struct {
	Message        string   `json:"message"`
	ConversationID string   `json:"conversation_id"`
	Sources        []Source `json:"sources,omitempty"`
	Timestamp      string   `json:"timestamp,omitempty"`
}

// TransportError means the service could not be reached at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("chat service unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError means the service responded with a failure status.
type ServiceError struct {
	Status int
	Body   string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("chat service returned %d", e.Status)
}

// Client talks to the remote conversational API. The transport contract is
// fixed: POST {base}/api/v1/chat/message with a JSON Request.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Send posts one message and decodes the reply. Failures are typed:
// TransportError when the service is unreachable, ServiceError on a
// non-success status.
func (c *Client) Send(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/chat/message", bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &ServiceError{Status: resp.StatusCode, Body: string(raw)}
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &ServiceError{Status: resp.StatusCode, Body: "malformed response body"}
	}
	return &out, nil
}
