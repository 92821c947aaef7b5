package handler

import (
	"strings"
	"testing"
)

func TestValidator_Messages(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"missing email", &credentialsRequest{Password: "secret1"}, "email is required"},
		{"bad email", &credentialsRequest{Email: "nope", Password: "secret1"}, "email must be a valid email"},
		{"short password", &credentialsRequest{Email: "a@b.co", Password: "123"}, "password must be at least 6 characters"},
		{"missing focus", &focusRequest{}, "focus_text is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.in)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected %q in %q", tc.want, err.Error())
			}
		})
	}

	if err := v.Validate(&credentialsRequest{Email: "a@b.co", Password: "secret1"}); err != nil {
		t.Errorf("unexpected error for valid request: %v", err)
	}
}
