package utils_test

import (
	"strings"
	"testing"

	"softkom/utils"

	"golang.org/x/crypto/bcrypt"
)

func TestCheckPasswordHash(t *testing.T) {
	password := "SecurePass123!"

	// Generate a hash for testing
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to generate password hash: %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{
			name:     "Valid password should match hash",
			password: password,
			hash:     string(hash),
			want:     true,
		},
		{
			name:     "Invalid password should not match hash",
			password: "WrongPassword123!",
			hash:     string(hash),
			want:     false,
		},
		{
			name:     "Empty password should not match hash",
			password: "",
			hash:     string(hash),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := utils.CheckPasswordHash(tt.password, tt.hash); got != tt.want {
				t.Errorf("CheckPasswordHash() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("p1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if string(hash) == "p1" {
		t.Fatal("HashPassword() stored the plaintext")
	}
	if !utils.CheckPasswordHash("p1", string(hash)) {
		t.Error("original password should verify against its hash")
	}
	if utils.CheckPasswordHash("p2", string(hash)) {
		t.Error("different password should not verify against the hash")
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{
			name:  "Valid email should pass validation",
			email: "user@example.com",
			want:  true,
		},
		{
			name:  "Valid email with subdomain should pass validation",
			email: "user@subdomain.example.com",
			want:  true,
		},
		{
			name:  "Valid email with plus addressing should pass validation",
			email: "user+tag@example.com",
			want:  true,
		},
		{
			name:  "Email missing @ symbol should fail validation",
			email: "userexample.com",
			want:  false,
		},
		{
			name:  "Email missing domain should fail validation",
			email: "user@",
			want:  false,
		},
		{
			name:  "Email with invalid characters should fail validation",
			email: "user name@example.com",
			want:  false,
		},
		{
			name:  "Empty email should fail validation",
			email: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utils.ValidateEmail(tt.email)
			if (err == nil) != tt.want {
				t.Errorf("ValidateEmail() error = %v, wantErr = %v", err, !tt.want)
			}
		})
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{
			name:    "Plain digits should pass validation",
			phone:   "111",
			wantErr: false,
		},
		{
			name:    "International format should pass validation",
			phone:   "+4915112345678",
			wantErr: false,
		},
		{
			name:    "Digits with separators should pass validation",
			phone:   "030-1234 567",
			wantErr: false,
		},
		{
			name:    "Empty phone should fail validation",
			phone:   "",
			wantErr: true,
		},
		{
			name:    "Over-long phone should fail validation",
			phone:   "1234567890123456",
			wantErr: true,
		},
		{
			name:    "Letters should fail validation",
			phone:   "CALL-ME",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utils.ValidatePhoneNumber(tt.phone)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePhoneNumber() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTaskDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantErr     bool
	}{
		{
			name:        "Valid description should pass validation",
			description: "buy milk",
			wantErr:     false,
		},
		{
			name:        "Description at the bound should pass validation",
			description: strings.Repeat("a", 255),
			wantErr:     false,
		},
		{
			name:        "Empty description should fail validation",
			description: "",
			wantErr:     true,
		},
		{
			name:        "Over-long description should fail validation",
			description: strings.Repeat("a", 256),
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utils.ValidateTaskDescription(tt.description)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTaskDescription() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTaskCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		wantErr  bool
	}{
		{
			name:     "Valid category should pass validation",
			category: "personal",
			wantErr:  false,
		},
		{
			name:     "Empty category should pass validation",
			category: "",
			wantErr:  false,
		},
		{
			name:     "Category at the bound should pass validation",
			category: strings.Repeat("a", 100),
			wantErr:  false,
		},
		{
			name:     "Over-long category should fail validation",
			category: strings.Repeat("a", 101),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utils.ValidateTaskCategory(tt.category)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTaskCategory() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSamePassword(t *testing.T) {
	tests := []struct {
		name              string
		password          string
		confirmedPassword string
		want              bool
	}{
		{
			name:              "Matching passwords should return true",
			password:          "SecureP@ss123",
			confirmedPassword: "SecureP@ss123",
			want:              true,
		},
		{
			name:              "Non-matching passwords should return false",
			password:          "SecureP@ss123",
			confirmedPassword: "DifferentP@ss456",
			want:              false,
		},
		{
			name:              "Case sensitivity should be preserved",
			password:          "SecureP@ss123",
			confirmedPassword: "securep@ss123",
			want:              false,
		},
		{
			name:              "Empty passwords should match if both empty",
			password:          "",
			confirmedPassword: "",
			want:              true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := utils.SamePassword(tt.password, tt.confirmedPassword); got != tt.want {
				t.Errorf("SamePassword() = %v, want %v", got, tt.want)
			}
		})
	}
}
