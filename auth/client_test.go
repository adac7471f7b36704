package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	sdk "github.com/caselink/caselink-go"
	"github.com/caselink/caselink-go/routes"
)

func TestLoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != routes.AuthLogin {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var creds Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Fatalf("decode credentials: %v", err)
		}
		if creds.Email != "ada@example.com" || creds.Password != "hunter2" {
			t.Errorf("unexpected credentials %+v", creds)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("login must not carry a bearer token")
		}
		_ = json.NewEncoder(w).Encode(LoginResponse{
			AccessToken:  "access",
			RefreshToken: "refresh",
			User:         sdk.UserProfile{ID: "u1", Email: creds.Email, Roles: []string{sdk.RoleClient}},
		})
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	resp, err := client.Login(context.Background(), Credentials{Email: "ada@example.com", Password: "hunter2"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.AccessToken != "access" || resp.RefreshToken != "refresh" || resp.User.ID != "u1" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.Login(context.Background(), Credentials{Email: "ada@example.com", Password: "wrong"})
	if !IsInvalidCredentials(err) {
		t.Fatalf("expected invalid-credentials error, got %v", err)
	}
	if err.Error() != "sdk/auth: http 401: Invalid email or password" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
}

func TestLoginRequiresInputs(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://localhost"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Login(context.Background(), Credentials{Email: "ada@example.com"}); err == nil {
		t.Fatal("expected error for missing password")
	}
	if _, err := client.Login(context.Background(), Credentials{Password: "hunter2"}); err == nil {
		t.Fatal("expected error for missing email")
	}
}

func TestRefreshPresentsRefreshTokenAsBearer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != routes.AuthRefresh {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer the-refresh-token" {
			t.Errorf("expected refresh token as bearer, got %q", got)
		}
		_ = json.NewEncoder(w).Encode(RefreshResponse{AccessToken: "rotated"})
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	resp, err := client.Refresh(context.Background(), "the-refresh-token")
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if resp.AccessToken != "rotated" {
		t.Fatalf("unexpected access token %q", resp.AccessToken)
	}
}

func TestRefreshRequiresToken(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://localhost"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Refresh(context.Background(), " "); err == nil {
		t.Fatal("expected error for empty refresh token")
	}
}

func TestSignupLawyerRequiresBarNumber(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://localhost"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.Signup(context.Background(), SignupRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Password:  "hunter2",
		UserType:  sdk.UserTypeLawyer,
	})
	if err == nil {
		t.Fatal("expected error for lawyer signup without bar number")
	}
}

func TestSignupEmailTaken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Email already registered"})
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.Signup(context.Background(), SignupRequest{
		Email:    "taken@example.com",
		Password: "hunter2",
		UserType: sdk.UserTypeClient,
	})
	if !IsEmailTaken(err) {
		t.Fatalf("expected email-taken error, got %v", err)
	}
}

func TestLogoutUsesAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != routes.AuthLogout {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer access" {
			t.Errorf("expected access token as bearer, got %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Logged out"})
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if err := client.Logout(context.Background(), "access"); err != nil {
		t.Fatalf("logout: %v", err)
	}
}

func TestForgotPassword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != routes.AuthForgotPassword {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		if payload["email"] != "ada@example.com" {
			t.Errorf("unexpected payload %v", payload)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Reset email sent"})
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if err := client.ForgotPassword(context.Background(), " ada@example.com "); err != nil {
		t.Fatalf("forgot password: %v", err)
	}
}

func TestGoogleAuthURL(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "https://api.caselink.law/api/"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	got := client.GoogleAuthURL("signup")
	want := "https://api.caselink.law/api/auth/google?auth_type=signup"
	if got != want {
		t.Fatalf("GoogleAuthURL = %q, want %q", got, want)
	}
}
