package models

import "testing"

func TestUser_CheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	tests := []struct {
		name     string
		user     User
		password string
		expected bool
	}{
		{"correct password", User{PasswordHash: hash}, "s3cret", true},
		{"wrong password", User{PasswordHash: hash}, "guess", false},
		{"empty password", User{PasswordHash: hash}, "", false},
		{"oidc-only user", User{}, "s3cret", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.CheckPassword(tt.password); got != tt.expected {
				t.Errorf("CheckPassword() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLabels(t *testing.T) {
	set := &FrequentItemset{Items: []string{"whole milk", "yogurt"}}
	if got := set.Label(); got != "{whole milk, yogurt}" {
		t.Errorf("FrequentItemset.Label() = %q", got)
	}

	rule := &AssociationRule{Antecedents: []string{"yogurt"}, Consequents: []string{"whole milk"}}
	if got := rule.Label(); got != "{yogurt} -> {whole milk}" {
		t.Errorf("AssociationRule.Label() = %q", got)
	}
}
