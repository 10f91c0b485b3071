//go:build integration
// +build integration

package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"
)

var baseURL string

func init() {
	host := getEnv("TEST_API_HOST", "localhost")
	port := getEnv("TEST_API_PORT", "8080")
	baseURL = fmt.Sprintf("http://%s:%s", host, port)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// makeRequest performs an HTTP request with a JSON body and returns the
// response and body
func makeRequest(t *testing.T, method, path string, body interface{}) (*http.Response, []byte) {
	client := &http.Client{Timeout: 10 * time.Second}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	return resp, respBody
}

// makeFormRequest posts url-encoded form values the way the voice platform
// delivers its webhooks
func makeFormRequest(t *testing.T, path string, form url.Values) (*http.Response, []byte) {
	client := &http.Client{Timeout: 10 * time.Second}

	req, err := http.NewRequest(http.MethodPost, baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	return resp, respBody
}

// parseJSONResponse unmarshals JSON response into the provided interface
func parseJSONResponse(t *testing.T, body []byte, v interface{}) {
	err := json.Unmarshal(body, v)
	if err != nil {
		t.Fatalf("Failed to parse JSON response: %v\nBody: %s", err, string(body))
	}
}

// assertStatusCode checks if the response status code matches expected
func assertStatusCode(t *testing.T, resp *http.Response, expected int) {
	if resp.StatusCode != expected {
		t.Errorf("Expected status code %d, got %d", expected, resp.StatusCode)
	}
}

// assertResponseHeader checks if a response header has the expected value
func assertResponseHeader(t *testing.T, resp *http.Response, key, expected string) {
	actual := resp.Header.Get(key)
	if actual != expected {
		t.Errorf("Expected header %s to be %s, got %s", key, expected, actual)
	}
}
