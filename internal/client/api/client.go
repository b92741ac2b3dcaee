// Package api is the HTTP client for the TaskKeeper server. It speaks the
// server's JSON wire format and maps error responses back to the shared
// sentinel errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mbelyaev/taskkeeper/internal/common"
)

// Account mirrors the server's account representation. There is no password
// field on the wire in either direction except the plaintext sent on
// register and login.
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is the result of a successful register or login call.
type Session struct {
	Token string  `json:"token"`
	User  Account `json:"user"`
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken stores the session token used on subsequent protected calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

type errorResponse struct {
	Error string `json:"error"`
}

// do performs a JSON request and decodes a successful response into out.
// Error statuses become sentinel errors where the contract defines one, so
// callers can branch with errors.Is.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var er errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&er)

		switch {
		case resp.StatusCode == http.StatusUnauthorized && er.Error == "Invalid credentials":
			return common.ErrorInvalidCredentials
		case resp.StatusCode == http.StatusUnauthorized:
			return common.ErrorUnauthorized
		case resp.StatusCode == http.StatusNotFound:
			return common.ErrorNotFound
		case er.Error == "Email already exists":
			return common.ErrorEmailExists
		case er.Error != "":
			return fmt.Errorf("server: %s", er.Error)
		default:
			return fmt.Errorf("server: unexpected status %d", resp.StatusCode)
		}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and adopts the returned session token.
func (c *Client) Register(ctx context.Context, name, email, password string) (*Session, error) {
	var s Session
	err := c.do(ctx, http.MethodPost, "/api/auth/register", credentials{Name: name, Email: email, Password: password}, &s)
	if err != nil {
		return nil, err
	}
	c.SetToken(s.Token)
	return &s, nil
}

// Login authenticates and adopts the returned session token.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var s Session
	err := c.do(ctx, http.MethodPost, "/api/auth/login", credentials{Email: email, Password: password}, &s)
	if err != nil {
		return nil, err
	}
	c.SetToken(s.Token)
	return &s, nil
}

func (c *Client) Profile(ctx context.Context) (*Account, error) {
	var resp struct {
		User Account `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

type taskRequest struct {
	Title string `json:"title"`
}

func (c *Client) CreateTask(ctx context.Context, title string) (*Task, error) {
	var t Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks", taskRequest{Title: title}, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) UpdateTask(ctx context.Context, id, title string) (*Task, error) {
	var t Task
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, taskRequest{Title: title}, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) ToggleTask(ctx context.Context, id string) (*Task, error) {
	var t Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks/"+id+"/toggle", nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, nil)
}
