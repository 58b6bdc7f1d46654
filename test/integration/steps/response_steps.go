package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

// lookupField resolves a dotted path like "payments.0.status" in the parsed
// response body.
func (tc *TestContext) lookupField(path string) (any, error) {
	parsed, err := tc.parsedResponse()
	if err != nil {
		return nil, err
	}

	var current any = parsed
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response: %s", path, string(tc.responseBody))
			}
			current = value
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in path %q", part, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into %q at %q", path, part)
		}
	}
	return current, nil
}

func formatFieldValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, func(ctx context.Context, expected int) error {
		tc := GetTestContext(ctx)
		if tc.response.StatusCode != expected {
			return fmt.Errorf("expected status %d, got %d (body: %s)", expected, tc.response.StatusCode, string(tc.responseBody))
		}
		return nil
	})

	ctx.Step(`^the response should contain "([^"]*)"$`, func(ctx context.Context, expected string) error {
		tc := GetTestContext(ctx)
		expected = tc.substitute(expected)
		if !strings.Contains(string(tc.responseBody), expected) {
			return fmt.Errorf("response does not contain %q: %s", expected, string(tc.responseBody))
		}
		return nil
	})

	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, func(ctx context.Context, path, expected string) error {
		tc := GetTestContext(ctx)
		expected = tc.substitute(expected)
		value, err := tc.lookupField(path)
		if err != nil {
			return err
		}
		if got := formatFieldValue(value); got != expected {
			return fmt.Errorf("expected field %q to be %q, got %q", path, expected, got)
		}
		return nil
	})

	ctx.Step(`^the response field "([^"]*)" should exist$`, func(ctx context.Context, path string) error {
		tc := GetTestContext(ctx)
		_, err := tc.lookupField(path)
		return err
	})

	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, func(ctx context.Context, path string, count int) error {
		tc := GetTestContext(ctx)
		value, err := tc.lookupField(path)
		if err != nil {
			return err
		}
		items, ok := value.([]any)
		if !ok {
			return fmt.Errorf("field %q is not an array", path)
		}
		if len(items) != count {
			return fmt.Errorf("expected field %q to have %d items, got %d", path, count, len(items))
		}
		return nil
	})

	ctx.Step(`^the response error code should be "([^"]*)"$`, func(ctx context.Context, expected string) error {
		tc := GetTestContext(ctx)
		value, err := tc.lookupField("code")
		if err != nil {
			return err
		}
		if got := formatFieldValue(value); got != expected {
			return fmt.Errorf("expected error code %q, got %q (body: %s)", expected, got, string(tc.responseBody))
		}
		return nil
	})
}
