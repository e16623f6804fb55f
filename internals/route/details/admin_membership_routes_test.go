package details

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memberController "abhm_backend/internals/features/membership/controller"
)

// The admin paths are part of the frontend contract; every registered route
// must answer 401 without a token, never 404.
func TestAdminMembershipRoutePaths(t *testing.T) {
	app := fiber.New()
	AdminMembershipRoutes(app.Group("/api"), memberController.NewAdminController(nil, nil, nil))

	id := "7d9f2d6e-0a1b-4c3d-9e8f-112233445566"
	cases := []struct {
		method string
		path   string
	}{
		{"GET", "/api/membership/admin/pending-requests"},
		{"GET", "/api/membership/admin/members"},
		{"GET", fmt.Sprintf("/api/membership/admin/member/%s", id)},
		{"POST", "/api/membership/admin/verify-request"},
		{"PUT", fmt.Sprintf("/api/membership/admin/member/%s/photo", id)},
		{"GET", "/api/membership/admin/dashboard-stats"},
		{"GET", fmt.Sprintf("/api/membership/admin/member/%s/id-card-pdf", id)},
		{"GET", fmt.Sprintf("/api/membership/admin/member/%s/id-card-html", id)},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}
