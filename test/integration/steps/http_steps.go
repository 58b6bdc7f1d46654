package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/cucumber/godog"
)

var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// substitute replaces {key} placeholders with values captured from
// previous responses.
func (tc *TestContext) substitute(s string) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		key := strings.Trim(match, "{}")
		if value, ok := tc.vars[key]; ok {
			return value
		}
		return match
	})
}

// doRequest sends an HTTP request to the test server and stores the response.
func (tc *TestContext) doRequest(method, path, body string) error {
	path = tc.substitute(path)
	body = tc.substitute(body)

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req, err := http.NewRequest(method, tc.server.URL+path, reader)
	if err != nil {
		return err
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	tc.captureIDs()
	return nil
}

// captureIDs stores the id of the last response so later steps can
// reference it as {last_id}.
func (tc *TestContext) captureIDs() {
	var parsed map[string]any
	if err := json.Unmarshal(tc.responseBody, &parsed); err != nil {
		return
	}
	if id, ok := parsed["id"].(string); ok {
		tc.vars["last_id"] = id
	}
	if payments, ok := parsed["payments"].([]any); ok {
		for i, p := range payments {
			payment, ok := p.(map[string]any)
			if !ok {
				continue
			}
			if id, ok := payment["id"].(string); ok {
				tc.vars[fmt.Sprintf("payment:%d", i+1)] = id
			}
		}
	}
}

// parsedResponse unmarshals the last response body into a map.
func (tc *TestContext) parsedResponse() (map[string]any, error) {
	var parsed map[string]any
	if err := json.Unmarshal(tc.responseBody, &parsed); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w (body: %s)", err, string(tc.responseBody))
	}
	return parsed, nil
}

func registerHTTPSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, func(ctx context.Context, method, path string) error {
		return GetTestContext(ctx).doRequest(method, path, "")
	})

	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, func(ctx context.Context, method, path string, body *godog.DocString) error {
		return GetTestContext(ctx).doRequest(method, path, body.Content)
	})

	ctx.Step(`^I am not authenticated$`, func(ctx context.Context) error {
		tc := GetTestContext(ctx)
		tc.accessToken = ""
		tc.refreshToken = ""
		return nil
	})
}
