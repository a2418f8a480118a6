package vk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const apiVersion = "5.131"

// Client is a minimal VK Bots API client: sending messages and the group Long
// Poll loop. Only the handful of methods the quiz bot needs.
type Client struct {
	token string
	httpc *http.Client
}

func New(token string) *Client {
	return &Client{
		token: token,
		httpc: &http.Client{Timeout: 60 * time.Second},
	}
}

type apiError struct {
	Code int    `json:"error_code"`
	Msg  string `json:"error_msg"`
}

func (e *apiError) Error() string { return fmt.Sprintf("vk api %d: %s", e.Code, e.Msg) }

func (c *Client) call(ctx context.Context, method string, params url.Values, out any) error {
	params.Set("access_token", c.token)
	params.Set("v", apiVersion)

	req, err := http.NewRequestWithContext(ctx, "POST",
		"https://api.vk.com/method/"+method,
		strings.NewReader(params.Encode()),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("vk %s %d: %s", method, resp.StatusCode, string(x))
	}

	var envelope struct {
		Response json.RawMessage `json:"response"`
		Error    *apiError       `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return err
	}
	if envelope.Error != nil {
		return envelope.Error
	}
	if out != nil {
		return json.Unmarshal(envelope.Response, out)
	}
	return nil
}

// GroupID resolves the id of the group the token belongs to.
func (c *Client) GroupID(ctx context.Context) (int64, error) {
	var groups []struct {
		ID int64 `json:"id"`
	}
	if err := c.call(ctx, "groups.getById", url.Values{}, &groups); err != nil {
		return 0, err
	}
	if len(groups) == 0 {
		return 0, fmt.Errorf("groups.getById: empty response")
	}
	return groups[0].ID, nil
}

// SendMessage delivers text to a user; keyboard is an optional JSON layout
// (see Keyboard). random_id dedupes retries on the VK side.
func (c *Client) SendMessage(ctx context.Context, userID int64, text, keyboard string) error {
	params := url.Values{}
	params.Set("user_id", strconv.FormatInt(userID, 10))
	params.Set("message", text)
	params.Set("random_id", strconv.FormatInt(int64(rand.Int31()), 10))
	if keyboard != "" {
		params.Set("keyboard", keyboard)
	}
	return c.call(ctx, "messages.send", params, nil)
}
