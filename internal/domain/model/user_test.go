package model

import (
	"testing"

	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
)

func TestCreateUserRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := func() CreateUserRequest {
		return CreateUserRequest{
			Username:     "dupont",
			Email:        "dupont@example.com",
			PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
			FirstName:    "Jean",
			LastName:     "Dupont",
			Role:         domainauth.RolePlayer,
		}
	}

	t.Run("valid", func(t *testing.T) {
		req := valid()
		if err := req.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("normalizes email and trims fields", func(t *testing.T) {
		req := valid()
		req.Email = "  Dupont@Example.COM "
		req.Username = " dupont "
		if err := req.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Email != "dupont@example.com" {
			t.Fatalf("email not normalized: %q", req.Email)
		}
		if req.Username != "dupont" {
			t.Fatalf("username not trimmed: %q", req.Username)
		}
	})

	t.Run("rejects bad input", func(t *testing.T) {
		cases := map[string]func(*CreateUserRequest){
			"empty username": func(r *CreateUserRequest) { r.Username = "  " },
			"empty email":    func(r *CreateUserRequest) { r.Email = "" },
			"malformed email": func(r *CreateUserRequest) {
				r.Email = "not-an-address"
			},
			"unknown role": func(r *CreateUserRequest) { r.Role = "superuser" },
		}
		for name, mutate := range cases {
			req := valid()
			mutate(&req)
			if err := req.Validate(); err == nil {
				t.Fatalf("%s: expected error", name)
			}
		}
	})
}

func TestUpdateUserRequest_Validate(t *testing.T) {
	t.Parallel()

	empty := UpdateUserRequest{}
	if err := empty.Validate(); err == nil {
		t.Fatalf("expected error for empty update")
	}

	email := "new@example.com"
	req := UpdateUserRequest{Email: &email}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := domainauth.Role("root")
	req = UpdateUserRequest{Role: &bad}
	if err := req.Validate(); err == nil {
		t.Fatalf("expected error for invalid role")
	}
}

func TestUser_DisplayName(t *testing.T) {
	t.Parallel()

	u := User{Username: "martin", FirstName: "Claire", LastName: "Martin"}
	if got := u.DisplayName(); got != "Claire Martin" {
		t.Fatalf("DisplayName() = %q", got)
	}
	u = User{Username: "martin"}
	if got := u.DisplayName(); got != "martin" {
		t.Fatalf("DisplayName() fallback = %q", got)
	}
}
