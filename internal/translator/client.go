// Package translator реализует перевод записей FAQ через внешний API
// с кешированием результатов и повторами при rate-limit ошибках.
package translator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client клиент внешнего API перевода (формат ответа MyMemory).
type Client struct {
	apiURL     string
	httpClient *http.Client
}

// NewClient создаёт новый клиент переводчика.
func NewClient(apiURL string, requestTimeout time.Duration) *Client {
	return &Client{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type translateResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus  int    `json:"responseStatus"`
	ResponseDetails string `json:"responseDetails"`
}

// Translate переводит текст с английского на язык lang.
// Ответ 429 возвращается как ошибка с текстом статуса "Too Many Requests",
// по которому слой повторов отличает rate-limit от остальных отказов.
func (c *Client) Translate(text, lang string) (string, error) {
	const op = "translator.Translate"

	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", "en|"+lang)

	resp, err := c.httpClient.Get(c.apiURL + "?" + params.Encode())
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: unexpected status: %s", op, resp.Status)
	}

	var body translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if body.ResponseStatus != http.StatusOK {
		return "", fmt.Errorf("%s: %w", op, errors.New(body.ResponseDetails))
	}
	return body.ResponseData.TranslatedText, nil
}
