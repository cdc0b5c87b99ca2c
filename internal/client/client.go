package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const apiURL = "https://api.telegram.org/bot%s/%s"

// HTTPClient реализует Client через HTTP API Telegram.
type HTTPClient struct {
	token      string
	httpClient *http.Client
}

// NewHTTPClient создаёт нового HTTP клиента Telegram.
func NewHTTPClient(token string) *HTTPClient {
	return &HTTPClient{
		token:      token,
		httpClient: &http.Client{},
	}
}

// SendMessage отправляет сообщение.
func (c *HTTPClient) SendMessage(ctx context.Context, chatID int64, text string, opts *SendOptions) (*Message, error) {
	params := map[string]interface{}{
		"chat_id": chatID,
		"text":    text,
	}

	if opts != nil {
		params["parse_mode"] = opts.ParseMode
	}

	ctx, cancel := context.WithTimeout(ctx, timeoutSend)
	defer cancel()

	rawResp, err := c.doRequest(ctx, "sendMessage", params)
	if err != nil {
		return nil, err
	}

	var message Message
	if err = json.Unmarshal(rawResp, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

// GetUpdates получает обновления. timeout — таймаут long polling в секундах.
func (c *HTTPClient) GetUpdates(ctx context.Context, offset int, timeout int) ([]Update, error) {
	params := map[string]interface{}{
		"offset":  offset,
		"timeout": timeout,
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second+timeoutSend)
	defer cancel()

	rawResp, err := c.doRequest(ctx, "getUpdates", params)
	if err != nil {
		return nil, err
	}
	var updates []Update
	if err = json.Unmarshal(rawResp, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// doRequest выполняет запрос к Telegram API.
func (c *HTTPClient) doRequest(ctx context.Context, method string, params map[string]interface{}) (json.RawMessage, error) {
	url := fmt.Sprintf(apiURL, c.token, method)

	body, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result struct {
		OK     bool            `json:"ok"`
		Result json.RawMessage `json:"result"`
		Error  string          `json:"description"`
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	if !result.OK {
		return nil, fmt.Errorf("telegram api error: %s", result.Error)
	}

	return result.Result, nil
}
