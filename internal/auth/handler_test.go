package auth_test

import (
	"testing"

	"github.com/legalge/platform/internal/models"
	"github.com/legalge/platform/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	app, _ := testutils.SetupTestApp(t)

	t.Run("Success - Register new user", func(t *testing.T) {
		body := map[string]interface{}{
			"name":     "John Doe",
			"email":    "john@example.com",
			"password": "password123",
			"role":     "SPECIALIST",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/auth/register", body, "")
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		assert.True(t, result.Success)
		assert.Equal(t, "Registration successful", result.Message)

		if result.Data != nil {
			data := result.Data.(map[string]interface{})
			assert.NotEmpty(t, data["access_token"])
			assert.NotEmpty(t, data["refresh_token"])
		}
	})

	t.Run("Error - Missing required fields", func(t *testing.T) {
		body := map[string]interface{}{
			"email": "test@example.com",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/auth/register", body, "")
		assert.NoError(t, err)
		assert.Equal(t, 422, resp.Code)

		testutils.AssertError(t, resp, "VALIDATION_ERROR")
	})

	t.Run("Error - Duplicate email", func(t *testing.T) {
		body := map[string]interface{}{
			"name":     "Jane Doe",
			"email":    "john@example.com",
			"password": "password123",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/auth/register", body, "")
		assert.NoError(t, err)
		assert.Equal(t, 409, resp.Code)

		testutils.AssertError(t, resp, "CONFLICT")
	})
}

func TestRegisterNeverGrantsSuperAdmin(t *testing.T) {
	app, _ := testutils.SetupTestApp(t)

	body := map[string]interface{}{
		"name":     "Sneaky",
		"email":    "sneaky@example.com",
		"password": "password123",
		"role":     "SUPER_ADMIN",
	}

	resp, err := testutils.MakeRequest(app, "POST", "/auth/register", body, "")
	assert.NoError(t, err)
	assert.Equal(t, 422, resp.Code)

	testutils.AssertError(t, resp, "VALIDATION_ERROR")
}

func TestLoginHandler(t *testing.T) {
	app, db := testutils.SetupTestApp(t)

	testutils.CreateTestUser(t, db, "test@example.com", "password123", models.RoleSpecialist)

	t.Run("Success - Valid credentials", func(t *testing.T) {
		body := map[string]interface{}{
			"email":    "test@example.com",
			"password": "password123",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/auth/login", body, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		assert.True(t, result.Success)

		if result.Data != nil {
			data := result.Data.(map[string]interface{})
			assert.NotEmpty(t, data["access_token"])
			assert.NotEmpty(t, data["refresh_token"])
		} else {
			t.Fatal("Expected data in response but got nil")
		}
	})

	t.Run("Error - Wrong password", func(t *testing.T) {
		body := map[string]interface{}{
			"email":    "test@example.com",
			"password": "wrong",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/auth/login", body, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)

		testutils.AssertError(t, resp, "UNAUTHORIZED")
	})
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	app, _ := testutils.SetupTestApp(t)

	resp, err := testutils.MakeRequest(app, "GET", "/manage/posts?scope=specialist", nil, "")
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.Code)
}

func TestRoleGateBlocksSubscriber(t *testing.T) {
	app, db := testutils.SetupTestApp(t)

	sub := testutils.CreateTestUser(t, db, "sub@example.com", "password123", models.RoleSubscriber)
	token := testutils.GetAuthToken(t, sub)

	resp, err := testutils.MakeRequest(app, "GET", "/manage/posts?scope=specialist", nil, token)
	assert.NoError(t, err)
	assert.Equal(t, 403, resp.Code)

	testutils.AssertError(t, resp, "FORBIDDEN")
}
