package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YudheerRM/bidding-insights/internal/application/analytics"
	"github.com/YudheerRM/bidding-insights/internal/application/auth"
	"github.com/YudheerRM/bidding-insights/internal/application/dto"
	"github.com/YudheerRM/bidding-insights/internal/application/tendering"
	"github.com/YudheerRM/bidding-insights/internal/application/usecase"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/internal/infrastructure/memory"
	"github.com/YudheerRM/bidding-insights/internal/infrastructure/pdf"
	apphttp "github.com/YudheerRM/bidding-insights/internal/interfaces/http"
)

type api struct {
	app   *fiber.App
	store *memory.Store
}

func newAPI(t *testing.T) *api {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()

	for _, u := range []entity.User{
		{ID: "admin-1", Email: "admin@example.com", Name: "Admin", Role: entity.RoleAdmin, IsActive: true},
		{ID: "official-1", Email: "official@example.com", Name: "Official", Role: entity.RoleGovernmentOfficial, IsActive: true},
		{ID: "bidder-1", Email: "bidder@example.com", Name: "Bidder One", Role: entity.RoleBidder, IsActive: true, CompanyName: "Acme"},
		{ID: "bidder-2", Email: "other@example.com", Name: "Bidder Two", Role: entity.RoleBidder, IsActive: false},
	} {
		u := u
		u.CreatedAt = time.Now()
		require.NoError(t, store.Users().Create(ctx, &u))
	}
	for _, tender := range []entity.Tender{
		{ID: "t-open", Title: "Road works", RefNumber: "RFQ-001", Status: "Open"},
		{ID: "t-closed", Title: "School", RefNumber: "RFQ-002", Status: "closed"},
	} {
		tender := tender
		require.NoError(t, store.Tenders().Create(ctx, &tender))
	}

	userUC := usecase.NewUserDirectoryUseCase(store.Users(), store)
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		TenderUC:      usecase.NewTenderUseCase(store.Tenders()),
		ApplicationUC: tendering.NewApplicationUseCase(store.Applications(), store.Tenders(), store.Users(), store, pdf.NewReceiptGenerator("Bidding Insights")),
		UserUC:        userUC,
		StatsUC:       analytics.NewStatsUseCase(store.Stats()),
		JWTSecret:     testJWTSecret,
	})
	return &api{app: app, store: store}
}

func (a *api) do(t *testing.T, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func errorCode(t *testing.T, raw []byte) string {
	t.Helper()
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &e), string(raw))
	return e.Code
}

func TestApplications_ApplyTwice(t *testing.T) {
	a := newAPI(t)
	bidder := tokenFor(t, "bidder-1", "bidder")

	resp, raw := a.do(t, http.MethodPost, "/api/tender-applications", bidder, fiber.Map{"tender_id": "t-open", "notes": "ready"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var created dto.ApplicationResponse
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "submitted", created.Status)
	assert.Equal(t, "bidder-1", created.UserID)

	resp, raw = a.do(t, http.MethodPost, "/api/tender-applications", bidder, fiber.Map{"tender_id": "t-open"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "ALREADY_APPLIED", errorCode(t, raw))

	resp, raw = a.do(t, http.MethodGet, "/api/tender-applications", bidder, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.ApplicationListResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list.Applications, 1)
	assert.Equal(t, "Road works", list.Applications[0].Tender.Title)
}

func TestApplications_ErrorMapping(t *testing.T) {
	a := newAPI(t)
	bidder := tokenFor(t, "bidder-1", "bidder")

	cases := []struct {
		body   fiber.Map
		status int
		code   string
	}{
		{fiber.Map{"tender_id": ""}, http.StatusBadRequest, "TENDER_ID_REQUIRED"},
		{fiber.Map{"tender_id": "missing"}, http.StatusNotFound, "TENDER_NOT_FOUND"},
		{fiber.Map{"tender_id": "t-closed"}, http.StatusBadRequest, "TENDER_NOT_OPEN"},
	}
	for _, tc := range cases {
		resp, raw := a.do(t, http.MethodPost, "/api/tender-applications", bidder, tc.body)
		assert.Equal(t, tc.status, resp.StatusCode, string(raw))
		assert.Equal(t, tc.code, errorCode(t, raw))
	}

	resp, raw := a.do(t, http.MethodPost, "/api/tender-applications", "", fiber.Map{"tender_id": "t-open"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, raw))
}

func TestApplications_Withdraw(t *testing.T) {
	a := newAPI(t)
	ctx := context.Background()
	now := time.Now()
	for _, app := range []entity.TenderApplication{
		{ID: "a-pending", UserID: "bidder-1", TenderID: "t-open", Status: entity.ApplicationStatusPending, ApplicationDate: now},
		{ID: "a-approved", UserID: "bidder-1", TenderID: "t-closed", Status: entity.ApplicationStatusApproved, ApplicationDate: now},
	} {
		app := app
		require.NoError(t, a.store.Applications().Create(ctx, &app))
	}
	bidder := tokenFor(t, "bidder-1", "bidder")
	other := tokenFor(t, "bidder-2", "bidder")

	resp, raw := a.do(t, http.MethodDelete, "/api/tender-applications?id=a-pending", other, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "APPLICATION_NOT_FOUND", errorCode(t, raw))

	resp, raw = a.do(t, http.MethodDelete, "/api/tender-applications/a-approved", bidder, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "APPLICATION_NOT_PENDING", errorCode(t, raw))

	resp, raw = a.do(t, http.MethodDelete, "/api/tender-applications", bidder, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "APPLICATION_ID_REQUIRED", errorCode(t, raw))

	resp, _ = a.do(t, http.MethodDelete, "/api/tender-applications?id=a-pending", bidder, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = a.do(t, http.MethodDelete, "/api/tender-applications?id=a-pending", bidder, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestApplications_Receipt(t *testing.T) {
	a := newAPI(t)
	bidder := tokenFor(t, "bidder-1", "bidder")

	resp, raw := a.do(t, http.MethodPost, "/api/tender-applications", bidder, fiber.Map{"tender_id": "t-open"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.ApplicationResponse
	require.NoError(t, json.Unmarshal(raw, &created))

	resp, raw = a.do(t, http.MethodGet, "/api/tender-applications/"+created.ID+"/receipt", bidder, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))

	resp, _ = a.do(t, http.MethodGet, "/api/tender-applications/"+created.ID+"/receipt", tokenFor(t, "bidder-2", "bidder"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTenders_PublicReadsGatedWrites(t *testing.T) {
	a := newAPI(t)

	resp, raw := a.do(t, http.MethodGet, "/api/tenders?status=OPEN", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.TenderListResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list.Tenders, 1)
	assert.Equal(t, "t-open", list.Tenders[0].ID)

	body := fiber.Map{"title": "Water supply", "ref_number": "RFQ-010", "status": "open"}
	resp, _ = a.do(t, http.MethodPost, "/api/tenders", tokenFor(t, "bidder-1", "bidder"), body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, raw = a.do(t, http.MethodPost, "/api/tenders", tokenFor(t, "official-1", "government_official"), body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	resp, _ = a.do(t, http.MethodGet, "/api/tenders/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminUsers(t *testing.T) {
	a := newAPI(t)
	admin := tokenFor(t, "admin-1", "admin")

	resp, _ := a.do(t, http.MethodGet, "/api/admin/users", tokenFor(t, "bidder-1", "bidder"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, raw := a.do(t, http.MethodGet, "/api/admin/users?role=bidder&isActive=true&sortBy=email&sortOrder=asc", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.UserListResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list.Users, 1)
	assert.Equal(t, "bidder@example.com", list.Users[0].Email)
	assert.Equal(t, 1, list.Pagination.Total)
	assert.Equal(t, 1, list.Pagination.TotalPages)

	resp, raw = a.do(t, http.MethodGet, "/api/admin/users?limit=2&page=2", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Len(t, list.Users, 2)
	assert.Equal(t, 4, list.Pagination.Total)
	assert.Equal(t, 2, list.Pagination.TotalPages)

	resp, raw = a.do(t, http.MethodPost, "/api/admin/users", admin, fiber.Map{
		"email": "Bidder@Example.com", "name": "Dup", "password": "Secret123", "role": "bidder",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "EMAIL_EXISTS", errorCode(t, raw))

	resp, raw = a.do(t, http.MethodDelete, "/api/admin/users/admin-1", admin, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "ADMIN_UNDELETABLE", errorCode(t, raw))

	resp, raw = a.do(t, http.MethodPut, "/api/admin/users/admin-1", admin, fiber.Map{"role": "viewer"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "ADMIN_ROLE_LOCKED", errorCode(t, raw))

	resp, raw = a.do(t, http.MethodPost, "/api/admin/users", admin, fiber.Map{
		"email": "long@example.com", "name": "Long", "password": strings.Repeat("Aa1", 30), "role": "bidder",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "WEAK_PASSWORD", errorCode(t, raw))

	resp, _ = a.do(t, http.MethodDelete, "/api/admin/users/bidder-2", admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = a.do(t, http.MethodDelete, "/api/admin/users/bidder-2", admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "USER_NOT_FOUND", errorCode(t, raw))
}

func TestAdminStats(t *testing.T) {
	a := newAPI(t)

	resp, raw := a.do(t, http.MethodGet, "/api/admin/stats", tokenFor(t, "admin-1", "admin"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats dto.StatsResponse
	require.NoError(t, json.Unmarshal(raw, &stats))
	assert.Equal(t, 4, stats.TotalUsers)
	assert.Equal(t, 3, stats.ActiveUsers)
	assert.Equal(t, 2, stats.UsersByRole["bidder"])
}

func TestSignUpLoginProfile(t *testing.T) {
	a := newAPI(t)

	resp, raw := a.do(t, http.MethodPost, "/api/auth/sign-up", "", fiber.Map{
		"email": "New.Viewer@Example.com", "password": "Passw0rdX", "confirm_password": "Passw0rdX",
		"name": "New Viewer", "role": "viewer",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	resp, raw = a.do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{"email": "new.viewer@example.com", "password": "wrong-one"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, raw))

	resp, raw = a.do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{"email": "new.viewer@example.com", "password": "Passw0rdX"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal(raw, &login))
	require.NotEmpty(t, login.Token)

	token := "Bearer " + login.Token
	resp, raw = a.do(t, http.MethodPatch, "/api/user/profile", token, fiber.Map{"phone_number": "+27 11 555 0100"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var me dto.UserResponse
	require.NoError(t, json.Unmarshal(raw, &me))
	assert.Equal(t, "+27 11 555 0100", me.PhoneNumber)
	assert.Equal(t, "new.viewer@example.com", me.Email)

	resp, raw = a.do(t, http.MethodPatch, "/api/user/profile", token, fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "NO_CHANGES", errorCode(t, raw))
}

func TestInvalidBody(t *testing.T) {
	a := newAPI(t)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
