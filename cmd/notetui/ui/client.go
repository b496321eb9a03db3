package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"catatan/app/dto"
	"catatan/app/models"
)

// Client is a thin wrapper over the backend HTTP API. The access token from
// Login is kept for subsequent calls.
type Client struct {
	BaseURL string
	Token   string

	http *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, http: &http.Client{Timeout: 10 * time.Second}}
}

func (c *Client) do(method, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) Login(username, password string) error {
	var tok dto.TokenResponse
	if err := c.do(http.MethodPost, "/login", dto.LoginRequest{Username: username, Password: password}, &tok); err != nil {
		return err
	}
	c.Token = tok.AccessToken
	return nil
}

func (c *Client) ListNotes() ([]models.Note, error) {
	var notes []models.Note
	if err := c.do(http.MethodGet, "/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) SetPin(id uint, favorite bool) error {
	return c.do(http.MethodPost, "/notes/pin", dto.PinRequest{ID: id, Favorite: favorite}, nil)
}

func (c *Client) DeleteNote(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/notes/delete?id=%d", id), nil, nil)
}
