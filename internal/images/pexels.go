package images

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
)

// PhotoSource holds the size variants Pexels returns for one photo.
type PhotoSource struct {
	Tiny   string `json:"tiny"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// Photo is one photo descriptor, kept verbatim from the API.
type Photo struct {
	Src PhotoSource `json:"src"`
	Alt string      `json:"alt,omitempty"`
}

type searchResponse struct {
	Photos []Photo `json:"photos"`
}

// Client queries the Pexels photo search API. When no API key is configured
// the Authorization header is simply omitted.
type Client struct {
	httpClient *resty.Client
	apiKey     string
}

func NewClient(baseURL, apiKey string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)

	return &Client{
		httpClient: client,
		apiKey:     apiKey,
	}
}

// Search returns up to 4 photos for the term. Image absence degrades
// gracefully: any non-success status or transport failure yields an empty
// slice, never an error for the caller to handle.
func (c *Client) Search(ctx context.Context, term string) []Photo {
	req := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("query", term).
		SetQueryParam("per_page", "4")
	if c.apiKey != "" {
		req.SetHeader("Authorization", c.apiKey)
	}

	resp, err := req.Get("/search")
	if err != nil {
		log.Printf("Image fetch error for %q: %v", term, err)
		return nil
	}
	if !resp.IsSuccess() {
		log.Printf("Image search for %q returned status %d", term, resp.StatusCode())
		return nil
	}

	var result searchResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		log.Printf("Image search for %q returned malformed JSON: %v", term, err)
		return nil
	}

	photos := result.Photos
	if len(photos) > 4 {
		photos = photos[:4]
	}
	return photos
}

// SearchRaw returns the photo API's JSON body untouched, for the passthrough
// endpoint. Unlike Search, failures here are surfaced to the caller.
func (c *Client) SearchRaw(ctx context.Context, term string) ([]byte, error) {
	req := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("query", term).
		SetQueryParam("per_page", "4")
	if c.apiKey != "" {
		req.SetHeader("Authorization", c.apiKey)
	}

	resp, err := req.Get("/search")
	if err != nil {
		return nil, fmt.Errorf("failed to query photo API: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("photo API returned status %d", resp.StatusCode())
	}
	return resp.Body(), nil
}
