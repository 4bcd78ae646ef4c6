package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"employee-portal/config"
	"employee-portal/models"
	"employee-portal/pkg/paseto"
	util "employee-portal/pkg/utils"
	"employee-portal/repository/repotest"
	"employee-portal/services"
)

type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time { return c.t }

type testApp struct {
	t     *testing.T
	app   *fiber.App
	store *repotest.Store
	clock *testClock
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	secret, err := util.GenerateBase64Key(32)
	if err != nil {
		t.Fatalf("GenerateBase64Key() error = %v", err)
	}
	cfg := &config.AppConfig{
		PasetoSecret: secret,
		SessionTTL:   time.Hour,
		Location:     time.UTC,
		BaseURL:      "http://localhost:3000",
	}
	store := repotest.NewStore()
	clock := &testClock{t: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)}

	tokens, err := paseto.NewPasetoMaker(cfg.PasetoSecret, cfg.SessionTTL)
	if err != nil {
		t.Fatalf("NewPasetoMaker() error = %v", err)
	}
	auth := services.NewAuthService(store.Users(), tokens, clock.Now)

	app, err := New(cfg, store.Repositories(), auth, clock.Now)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return &testApp{t: t, app: app, store: store, clock: clock}
}

// browser keeps cookies between requests the way a real one would.
type browser struct {
	ta      *testApp
	cookies map[string]string
}

func (ta *testApp) browser() *browser {
	return &browser{ta: ta, cookies: map[string]string{}}
}

func (b *browser) do(req *http.Request) *http.Response {
	b.ta.t.Helper()
	for name, value := range b.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	resp, err := b.ta.app.Test(req, -1)
	if err != nil {
		b.ta.t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	for _, c := range resp.Cookies() {
		if c.Value == "" || c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c.Value
	}
	return resp
}

func (b *browser) get(path string) *http.Response {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values) *http.Response {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) signupAndLogin(code, email, role string) {
	b.ta.t.Helper()
	resp := b.post("/signup", url.Values{
		"employee_id": {code},
		"email":       {email},
		"password":    {"secret1"},
		"role":        {role},
	})
	expectRedirect(b.ta.t, resp, "/login")
	b.get("/login")

	resp = b.post("/login", url.Values{"email": {email}, "password": {"secret1"}})
	if role == models.RoleAdmin {
		expectRedirect(b.ta.t, resp, "/admin/dashboard")
	} else {
		expectRedirect(b.ta.t, resp, "/employee/dashboard")
	}
}

func expectRedirect(t *testing.T, resp *http.Response, location string) {
	t.Helper()
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("status = %d, want 302 to %s", resp.StatusCode, location)
	}
	if got := resp.Header.Get("Location"); got != location {
		t.Fatalf("Location = %q, want %q", got, location)
	}
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func TestSignupLoginRoundTrip(t *testing.T) {
	ta := newTestApp(t)
	b := ta.browser()

	b.signupAndLogin("E1", "a@x.io", models.RoleEmployee)

	resp := b.get("/employee/dashboard")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("dashboard status = %d", resp.StatusCode)
	}
	if !strings.Contains(body(t, resp), "a@x.io") {
		t.Error("dashboard does not show the signed-in user")
	}

	expectRedirect(t, b.get("/login"), "/employee/dashboard")
	expectRedirect(t, b.get("/signup"), "/employee/dashboard")

	expectRedirect(t, b.get("/logout"), "/login")
	expectRedirect(t, b.get("/employee/dashboard"), "/login")
}

func TestDuplicateEmailRejected(t *testing.T) {
	ta := newTestApp(t)
	b := ta.browser()
	form := url.Values{"employee_id": {"E1"}, "email": {"a@x.io"}, "password": {"secret1"}, "role": {models.RoleEmployee}}

	expectRedirect(t, b.post("/signup", form), "/login")

	form.Set("employee_id", "E2")
	expectRedirect(t, b.post("/signup", form), "/signup")

	resp := b.get("/signup")
	if !strings.Contains(body(t, resp), "Email already exists") {
		t.Error("signup page does not show the duplicate email message")
	}
	if ta.store.UserCount() != 1 {
		t.Errorf("UserCount() = %d, want 1", ta.store.UserCount())
	}
}

func TestSignupRejectsOverlongPassword(t *testing.T) {
	ta := newTestApp(t)
	b := ta.browser()

	resp := b.post("/signup", url.Values{
		"employee_id": {"E1"},
		"email":       {"a@x.io"},
		"password":    {strings.Repeat("é", 40)},
		"role":        {models.RoleEmployee},
	})
	expectRedirect(t, resp, "/signup")

	if !strings.Contains(body(t, b.get("/signup")), "Password must be at most 72 bytes") {
		t.Error("signup page does not show the password length message")
	}
	if ta.store.UserCount() != 0 {
		t.Errorf("UserCount() = %d, want 0", ta.store.UserCount())
	}
}

func TestInvalidLogin(t *testing.T) {
	ta := newTestApp(t)
	b := ta.browser()

	expectRedirect(t, b.post("/login", url.Values{"email": {"nobody@x.io"}, "password": {"x"}}), "/login")
	if !strings.Contains(body(t, b.get("/login")), "Invalid email or password") {
		t.Error("login page does not show the invalid credentials message")
	}
}

func TestAttendanceDay(t *testing.T) {
	ta := newTestApp(t)
	b := ta.browser()
	b.signupAndLogin("E1", "a@x.io", models.RoleEmployee)

	expectRedirect(t, b.get("/employee/checkout"), "/employee/attendance")
	if ta.store.AttendanceCount() != 0 {
		t.Fatalf("checkout without check-in created a record")
	}

	ta.clock.t = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	expectRedirect(t, b.get("/employee/checkin"), "/employee/attendance")
	ta.clock.t = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	expectRedirect(t, b.get("/employee/checkin"), "/employee/attendance")
	ta.clock.t = time.Date(2024, 1, 1, 17, 0, 0, 0, time.UTC)
	expectRedirect(t, b.get("/employee/checkout"), "/employee/attendance")

	page := body(t, b.get("/employee/attendance"))
	for _, want := range []string{"2024-01-01", "09:00", "17:00", "Present", "checked-out"} {
		if !strings.Contains(page, want) {
			t.Errorf("attendance page missing %q", want)
		}
	}
	if strings.Contains(page, "10:00") {
		t.Error("second check-in overwrote the first")
	}
	if ta.store.AttendanceCount() != 1 {
		t.Errorf("AttendanceCount() = %d, want 1", ta.store.AttendanceCount())
	}
}

func TestRoleGate(t *testing.T) {
	ta := newTestApp(t)

	anonymous := ta.browser()
	expectRedirect(t, anonymous.get("/admin/employees"), "/login")
	expectRedirect(t, anonymous.get("/employee/profile"), "/login")
	expectRedirect(t, anonymous.get("/"), "/login")

	employee := ta.browser()
	employee.signupAndLogin("E1", "a@x.io", models.RoleEmployee)
	expectRedirect(t, employee.get("/admin/employees"), "/login")

	admin := ta.browser()
	admin.signupAndLogin("A1", "root@x.io", models.RoleAdmin)
	expectRedirect(t, admin.get("/employee/dashboard"), "/login")

	resp := admin.get("/admin/employees")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("admin employees status = %d", resp.StatusCode)
	}
	if !strings.Contains(body(t, resp), "a@x.io") {
		t.Error("employee list does not include the employee")
	}
}

func TestLeaveWorkflow(t *testing.T) {
	ta := newTestApp(t)
	employee := ta.browser()
	employee.signupAndLogin("E1", "a@x.io", models.RoleEmployee)

	resp := employee.post("/employee/leave", url.Values{
		"leave_type": {"Sick"},
		"start_date": {"2024-01-01"},
		"end_date":   {"2024-01-03"},
		"reason":     {"flu"},
	})
	expectRedirect(t, resp, "/employee/leave")

	leaves, err := ta.store.LeaveRequests().FindAll(context.Background())
	if err != nil || len(leaves) != 1 {
		t.Fatalf("FindAll() = %v, %v", leaves, err)
	}
	leave := leaves[0]
	if leave.Status != models.LeaveStatusPending || leave.Days != 3 {
		t.Errorf("stored leave = %+v", leave)
	}

	expectRedirect(t, employee.post("/employee/leave", url.Values{
		"leave_type": {"Sick"}, "start_date": {"2024-01-05"}, "end_date": {"2024-01-03"},
	}), "/employee/leave")
	if !strings.Contains(body(t, employee.get("/employee/leave")), "end date no earlier than the start date") {
		t.Error("leave page does not show the invalid date message")
	}

	admin := ta.browser()
	admin.signupAndLogin("A1", "root@x.io", models.RoleAdmin)

	if resp := admin.get("/admin/leave/1"); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("leave action status = %d", resp.StatusCode)
	}
	expectRedirect(t, admin.post("/admin/leave/1", url.Values{"status": {"Approved"}, "admin_comment": {"get well"}}), "/admin/leaves")

	decided, err := ta.store.LeaveRequests().FindByID(context.Background(), leave.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if decided.Status != models.LeaveStatusApproved || decided.AdminComment != "get well" {
		t.Errorf("decided = %+v", decided)
	}
	if decided.LeaveType != "Sick" || decided.Reason != "flu" || decided.StartDate != "2024-01-01" {
		t.Errorf("decision changed other fields: %+v", decided)
	}

	for _, path := range []string{"/admin/leave/999", "/admin/leave/abc", "/admin/employee/999/edit"} {
		if resp := admin.get(path); resp.StatusCode != fiber.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", path, resp.StatusCode)
		}
	}
}

func TestAdminEditsEmployee(t *testing.T) {
	ta := newTestApp(t)
	employee := ta.browser()
	employee.signupAndLogin("E1", "a@x.io", models.RoleEmployee)
	admin := ta.browser()
	admin.signupAndLogin("A1", "root@x.io", models.RoleAdmin)

	expectRedirect(t, admin.post("/admin/employee/1/edit", url.Values{
		"full_name": {"Ann"}, "job_title": {"Engineer"}, "salary": {"abc"},
	}), "/admin/employee/1/edit")

	expectRedirect(t, admin.post("/admin/employee/1/edit", url.Values{
		"full_name": {"Ann"}, "job_title": {"Engineer"}, "salary": {"5000.5"},
	}), "/admin/employees")

	page := body(t, employee.get("/employee/payroll"))
	if !strings.Contains(page, "5000.50") || !strings.Contains(page, "Engineer") {
		t.Error("payroll page does not show the salary set by the admin")
	}

	expectRedirect(t, employee.post("/employee/profile/edit", url.Values{
		"full_name": {"Ann Lee"}, "phone": {"555"}, "address": {"Main St"},
	}), "/employee/profile")
	page = body(t, employee.get("/employee/profile"))
	if !strings.Contains(page, "Ann Lee") || !strings.Contains(page, "Engineer") {
		t.Error("self edit lost the admin-managed job title")
	}
}

func TestNoCacheHeaders(t *testing.T) {
	ta := newTestApp(t)
	resp := ta.browser().get("/login")
	if got := resp.Header.Get("Cache-Control"); got != "no-store, no-cache, must-revalidate, private" {
		t.Errorf("Cache-Control = %q", got)
	}
	if got := resp.Header.Get("Pragma"); got != "no-cache" {
		t.Errorf("Pragma = %q", got)
	}
	if got := resp.Header.Get("Expires"); got != "0" {
		t.Errorf("Expires = %q", got)
	}
}

func TestCheckInQRCode(t *testing.T) {
	ta := newTestApp(t)
	admin := ta.browser()
	admin.signupAndLogin("A1", "root@x.io", models.RoleAdmin)

	resp := admin.get("/admin/attendance/qr")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
}

func apiRequest(t *testing.T, ta *testApp, method, path, token string, payload any) *http.Response {
	t.Helper()
	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		reader = strings.NewReader(string(raw))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ta.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func apiLogin(t *testing.T, ta *testApp, email string) string {
	t.Helper()
	resp := apiRequest(t, ta, http.MethodPost, "/api/v1/auth/login", "", models.UserLoginPayload{Email: email, Password: "secret1"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	var out models.LoginSuccessResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	return out.Token
}

func TestJSONAPI(t *testing.T) {
	ta := newTestApp(t)
	ta.browser().signupAndLogin("E1", "a@x.io", models.RoleEmployee)
	ta.browser().signupAndLogin("A1", "root@x.io", models.RoleAdmin)

	if resp := apiRequest(t, ta, http.MethodGet, "/api/v1/me", "", nil); resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("no token status = %d, want 401", resp.StatusCode)
	}
	if resp := apiRequest(t, ta, http.MethodGet, "/api/v1/me", "v2.local.bogus", nil); resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("bad token status = %d, want 401", resp.StatusCode)
	}
	if resp := apiRequest(t, ta, http.MethodPost, "/api/v1/auth/login", "", models.UserLoginPayload{Email: "a@x.io", Password: "nope"}); resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", resp.StatusCode)
	}

	employeeToken := apiLogin(t, ta, "a@x.io")
	adminToken := apiLogin(t, ta, "root@x.io")

	if resp := apiRequest(t, ta, http.MethodGet, "/api/v1/admin/attendance", employeeToken, nil); resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("employee on admin route status = %d, want 403", resp.StatusCode)
	}
	if resp := apiRequest(t, ta, http.MethodPost, "/api/v1/attendance/check-in", adminToken, nil); resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("admin on employee route status = %d, want 403", resp.StatusCode)
	}

	resp := apiRequest(t, ta, http.MethodPost, "/api/v1/attendance/check-in", employeeToken, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("check-in status = %d", resp.StatusCode)
	}

	resp = apiRequest(t, ta, http.MethodPost, "/api/v1/leave-requests", employeeToken, models.LeaveRequestCreatePayload{
		LeaveType: "Sick", StartDate: "2024-01-01", EndDate: "2024-01-03",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create leave status = %d", resp.StatusCode)
	}
	var created models.LeaveRequestSuccessResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode leave: %v", err)
	}

	resp = apiRequest(t, ta, http.MethodPut, "/api/v1/admin/leave-requests/999/status", adminToken, models.LeaveRequestDecisionPayload{Status: models.LeaveStatusApproved})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("unknown leave status = %d, want 404", resp.StatusCode)
	}
	resp = apiRequest(t, ta, http.MethodPut, "/api/v1/admin/leave-requests/1/status", adminToken, models.LeaveRequestDecisionPayload{Status: "Maybe"})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("bad status code = %d, want 400", resp.StatusCode)
	}
	resp = apiRequest(t, ta, http.MethodPut, "/api/v1/admin/leave-requests/1/status", adminToken, models.LeaveRequestDecisionPayload{Status: models.LeaveStatusRejected, AdminComment: "busy week"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("decide status = %d", resp.StatusCode)
	}
	var decided models.LeaveRequestSuccessResponse
	if err := json.NewDecoder(resp.Body).Decode(&decided); err != nil {
		t.Fatalf("decode decision: %v", err)
	}
	if decided.LeaveRequest.ID != created.LeaveRequest.ID || decided.LeaveRequest.Status != models.LeaveStatusRejected {
		t.Errorf("decision = %+v", decided.LeaveRequest)
	}

	resp = apiRequest(t, ta, http.MethodGet, "/api/v1/admin/attendance", adminToken, nil)
	var rows []models.AttendanceWithUser
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode attendance: %v", err)
	}
	if len(rows) != 1 || rows[0].UserEmail != "a@x.io" {
		t.Errorf("admin attendance = %+v", rows)
	}
}
