package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

// registerSeedSteps registers the steps that prepare accounts and records
// through the public API before a scenario exercises it.
func registerSeedSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am registered as "([^"]*)" with password "([^"]*)"$`, iAmRegisteredAsWithPassword)
	ctx.Step(`^I have a category named "([^"]*)"$`, iHaveACategoryNamed)
	ctx.Step(`^I have a "([^"]*)" transaction "([^"]*)" of (\d+\.?\d*) on "([^"]*)" in category "([^"]*)"$`, iHaveATransaction)
}

// iAmRegisteredAsWithPassword creates an account and authenticates as it.
func iAmRegisteredAsWithPassword(ctx context.Context, email, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	name := strings.Split(email, "@")[0]
	body, err := json.Marshal(map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return ctx, fmt.Errorf("failed to build register payload: %w", err)
	}

	if err := tc.doRequest("POST", "/api/v1/auth/register", body); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != 201 {
		return ctx, fmt.Errorf("registration failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var auth struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(tc.responseBody, &auth); err != nil {
		return ctx, fmt.Errorf("failed to parse registration response: %w", err)
	}
	tc.accessToken = auth.AccessToken

	return SetTestContext(ctx, tc), nil
}

// iHaveACategoryNamed creates a category for the authenticated user and
// remembers its ID under the given name for later placeholders.
func iHaveACategoryNamed(ctx context.Context, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return ctx, fmt.Errorf("failed to build category payload: %w", err)
	}

	if err := tc.doRequest("POST", "/api/v1/categories", body); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != 201 {
		return ctx, fmt.Errorf("category creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var category struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &category); err != nil {
		return ctx, fmt.Errorf("failed to parse category response: %w", err)
	}
	tc.categoryIDs[name] = category.ID

	return SetTestContext(ctx, tc), nil
}

// iHaveATransaction records a transaction for the authenticated user in a
// previously seeded category.
func iHaveATransaction(ctx context.Context, txnType, description string, amount float64, date, categoryName string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	categoryID, ok := tc.categoryIDs[categoryName]
	if !ok {
		return ctx, fmt.Errorf("category %q was not seeded", categoryName)
	}

	body, err := json.Marshal(map[string]interface{}{
		"date":        date,
		"description": description,
		"amount":      amount,
		"type":        txnType,
		"category_id": categoryID,
	})
	if err != nil {
		return ctx, fmt.Errorf("failed to build transaction payload: %w", err)
	}

	if err := tc.doRequest("POST", "/api/v1/expenses", body); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != 201 {
		return ctx, fmt.Errorf("transaction creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	return SetTestContext(ctx, tc), nil
}
