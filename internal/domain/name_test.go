package domain

import (
	"errors"
	"testing"
)

func TestParseFullName(t *testing.T) {
	tests := []struct {
		name      string
		fullName  string
		wantFirst string
		wantLast  string
		wantErr   error
	}{
		{
			name:      "first and last",
			fullName:  "John Doe",
			wantFirst: "John",
			wantLast:  "Doe",
		},
		{
			name:      "first only",
			fullName:  "John",
			wantFirst: "John",
			wantLast:  "",
		},
		{
			name:      "extra whitespace",
			fullName:  "  John \t Doe  ",
			wantFirst: "John",
			wantLast:  "Doe",
		},
		{
			name:     "empty",
			fullName: "",
			wantErr:  ErrFullNameFormat,
		},
		{
			name:     "whitespace only",
			fullName: "   ",
			wantErr:  ErrFullNameFormat,
		},
		{
			name:     "three tokens",
			fullName: "John Ronald Doe",
			wantErr:  ErrFullNameFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last, err := ParseFullName(tt.fullName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if first != tt.wantFirst {
				t.Errorf("expected first %q, got %q", tt.wantFirst, first)
			}
			if last != tt.wantLast {
				t.Errorf("expected last %q, got %q", tt.wantLast, last)
			}
		})
	}
}

func TestParseFullNameErrorNamesInput(t *testing.T) {
	_, _, err := ParseFullName("one two three")
	if err == nil {
		t.Fatal("expected error")
	}

	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected *DomainError, got %T", err)
	}
	if domainErr.Input != "one two three" {
		t.Errorf("expected offending input in error, got %q", domainErr.Input)
	}
}
