package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

// registerDomainSteps registers steps that set up domain data through the
// public API: users, sessions, payers, categories, credit cards and expenses.
func registerDomainSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a registered user "([^"]*)" with password "([^"]*)"$`, func(ctx context.Context, email, password string) error {
		tc := GetTestContext(ctx)
		name := strings.Split(email, "@")[0]
		body := fmt.Sprintf(`{"email": %q, "password": %q, "name": %q, "terms_accepted": true}`, email, password, name)
		if err := tc.doRequest("POST", "/api/v1/auth/register", body); err != nil {
			return err
		}
		if tc.response.StatusCode != 201 {
			return fmt.Errorf("failed to register user %s: status %d, body %s", email, tc.response.StatusCode, string(tc.responseBody))
		}
		return nil
	})

	ctx.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, func(ctx context.Context, email, password string) error {
		tc := GetTestContext(ctx)
		body := fmt.Sprintf(`{"email": %q, "password": %q}`, email, password)
		if err := tc.doRequest("POST", "/api/v1/auth/login", body); err != nil {
			return err
		}
		if tc.response.StatusCode != 200 {
			return fmt.Errorf("failed to log in as %s: status %d, body %s", email, tc.response.StatusCode, string(tc.responseBody))
		}
		parsed, err := tc.parsedResponse()
		if err != nil {
			return err
		}
		accessToken, _ := parsed["access_token"].(string)
		refreshToken, _ := parsed["refresh_token"].(string)
		if accessToken == "" || refreshToken == "" {
			return fmt.Errorf("login response missing tokens: %s", string(tc.responseBody))
		}
		tc.accessToken = accessToken
		tc.refreshToken = refreshToken
		tc.vars["refresh_token"] = refreshToken
		return nil
	})

	ctx.Step(`^I have a payer named "([^"]*)"$`, func(ctx context.Context, name string) error {
		tc := GetTestContext(ctx)
		body := fmt.Sprintf(`{"name": %q}`, name)
		if err := tc.doRequest("POST", "/api/v1/payers", body); err != nil {
			return err
		}
		if tc.response.StatusCode != 201 {
			return fmt.Errorf("failed to create payer %s: status %d, body %s", name, tc.response.StatusCode, string(tc.responseBody))
		}
		tc.vars["payer:"+name] = tc.vars["last_id"]
		return nil
	})

	ctx.Step(`^I have a category named "([^"]*)"$`, func(ctx context.Context, name string) error {
		tc := GetTestContext(ctx)
		body := fmt.Sprintf(`{"name": %q}`, name)
		if err := tc.doRequest("POST", "/api/v1/categories", body); err != nil {
			return err
		}
		if tc.response.StatusCode != 201 {
			return fmt.Errorf("failed to create category %s: status %d, body %s", name, tc.response.StatusCode, string(tc.responseBody))
		}
		tc.vars["category:"+name] = tc.vars["last_id"]
		return nil
	})

	ctx.Step(`^I have a credit card "([^"]*)" closing on day (\d+) and due on day (\d+)$`, func(ctx context.Context, name string, closingDay, dueDay int) error {
		tc := GetTestContext(ctx)
		body := fmt.Sprintf(`{"name": %q, "closing_day": %d, "due_day": %d}`, name, closingDay, dueDay)
		if err := tc.doRequest("POST", "/api/v1/credit-cards", body); err != nil {
			return err
		}
		if tc.response.StatusCode != 201 {
			return fmt.Errorf("failed to create credit card %s: status %d, body %s", name, tc.response.StatusCode, string(tc.responseBody))
		}
		tc.vars["card:"+name] = tc.vars["last_id"]
		return nil
	})

	ctx.Step(`^I have an expense "([^"]*)" with body:$`, func(ctx context.Context, alias string, body *godog.DocString) error {
		tc := GetTestContext(ctx)
		if err := tc.doRequest("POST", "/api/v1/expenses", body.Content); err != nil {
			return err
		}
		if tc.response.StatusCode != 201 {
			return fmt.Errorf("failed to create expense %s: status %d, body %s", alias, tc.response.StatusCode, string(tc.responseBody))
		}
		tc.vars["expense:"+alias] = tc.vars["last_id"]
		tc.captureExpensePayments(alias)
		return nil
	})
}

// captureExpensePayments stores the payment ids of a just created expense
// under keys like "payment:Rent:1".
func (tc *TestContext) captureExpensePayments(alias string) {
	var parsed map[string]any
	if err := json.Unmarshal(tc.responseBody, &parsed); err != nil {
		return
	}
	payments, ok := parsed["payments"].([]any)
	if !ok {
		return
	}
	for i, p := range payments {
		payment, ok := p.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := payment["id"].(string); ok {
			tc.vars[fmt.Sprintf("payment:%s:%d", alias, i+1)] = id
		}
	}
}
