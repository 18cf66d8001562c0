// Package api is a typed HTTP client for the task board REST surface.
// It decodes the server's response envelope and maps error codes back to
// the domain error sentinels so callers can use errors.Is.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/errs"
	"taskboard/pkg/utils"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is returned when the server answered with an error envelope
// that has no domain sentinel mapping. It still wraps the closest
// sentinel so errors.Is keeps working.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (%s, status %d)", e.Message, e.Code, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	switch e.Code {
	case utils.ErrCodeNotFound:
		return errs.ErrNotFound
	case utils.ErrCodeUnauthorized, utils.ErrCodeForbidden:
		return errs.ErrNotAuthorized
	case utils.ErrCodeValidation, utils.ErrCodeBadRequest:
		return errs.ErrValidation
	default:
		return nil
	}
}

type envelope struct {
	Success bool             `json:"success"`
	Data    json.RawMessage  `json:"data"`
	Error   *utils.ErrorInfo `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("api: decoding response for %s %s: %w", method, path, err)
	}

	if !env.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode, Code: utils.ErrCodeInternalError, Message: "unknown error"}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("api: decoding data for %s %s: %w", method, path, err)
		}
	}
	return nil
}

// === Boards ===

func (c *Client) ListBoards(ctx context.Context) ([]dto.BoardResponse, error) {
	var out []dto.BoardResponse
	err := c.do(ctx, http.MethodGet, "/api/boards", nil, &out)
	return out, err
}

func (c *Client) GetBoard(ctx context.Context, id uuid.UUID) (*dto.BoardResponse, error) {
	var out dto.BoardResponse
	if err := c.do(ctx, http.MethodGet, "/api/boards/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	var out dto.BoardResponse
	if err := c.do(ctx, http.MethodPost, "/api/boards", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBoard(ctx context.Context, id uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	var out dto.BoardResponse
	if err := c.do(ctx, http.MethodPut, "/api/boards/"+id.String(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBoard(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/boards/"+id.String(), nil, nil)
}

// === Columns ===

func (c *Client) ListColumns(ctx context.Context, boardID uuid.UUID) ([]dto.ColumnResponse, error) {
	var out []dto.ColumnResponse
	err := c.do(ctx, http.MethodGet, "/api/boards/"+boardID.String()+"/columns", nil, &out)
	return out, err
}

func (c *Client) CreateColumn(ctx context.Context, boardID uuid.UUID, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error) {
	var out dto.ColumnResponse
	if err := c.do(ctx, http.MethodPost, "/api/boards/"+boardID.String()+"/columns", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateColumn(ctx context.Context, id uuid.UUID, req *dto.UpdateColumnRequest) (*dto.ColumnResponse, error) {
	var out dto.ColumnResponse
	if err := c.do(ctx, http.MethodPut, "/api/columns/"+id.String(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MoveColumn(ctx context.Context, id uuid.UUID, destIndex int) (*dto.MoveColumnResponse, error) {
	req := &dto.MoveColumnRequest{DestIndex: &destIndex}
	var out dto.MoveColumnResponse
	if err := c.do(ctx, http.MethodPut, "/api/columns/"+id.String()+"/move", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteColumn(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/columns/"+id.String(), nil, nil)
}

// === Tasks ===

func (c *Client) ListTasks(ctx context.Context, columnID uuid.UUID) ([]dto.TaskResponse, error) {
	var out []dto.TaskResponse
	err := c.do(ctx, http.MethodGet, "/api/columns/"+columnID.String()+"/tasks", nil, &out)
	return out, err
}

func (c *Client) CreateTask(ctx context.Context, columnID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	var out dto.TaskResponse
	if err := c.do(ctx, http.MethodPost, "/api/columns/"+columnID.String()+"/tasks", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTask(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	var out dto.TaskResponse
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id.String(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MoveTask(ctx context.Context, id, destColumnID uuid.UUID, destIndex int) (*dto.MoveTaskResponse, error) {
	req := &dto.MoveTaskRequest{DestColumnID: destColumnID, DestIndex: &destIndex}
	var out dto.MoveTaskResponse
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id.String()+"/move", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+id.String(), nil, nil)
}

// === Users ===

func (c *Client) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	var out []dto.UserResponse
	err := c.do(ctx, http.MethodGet, "/api/users", nil, &out)
	return out, err
}
