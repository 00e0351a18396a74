package auth

import "testing"

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		valid    bool
		message  string
	}{
		{
			name:     "empty",
			password: "",
			message:  "Password cannot be empty",
		},
		{
			name:     "too short",
			password: "abc1!",
			message:  "Password must be at least 8 characters long",
		},
		{
			name:     "seven chars with digit still too short",
			password: "abcdef1",
			message:  "Password must be at least 8 characters long",
		},
		{
			name:     "letters only",
			password: "abcdefgh",
			message:  "Password must contain at least one number or special character",
		},
		{
			name:     "digit satisfies composition",
			password: "abcdefg1",
			valid:    true,
			message:  "Password meets strength requirements",
		},
		{
			name:     "symbol satisfies composition",
			password: "abcdefg!",
			valid:    true,
			message:  "Password meets strength requirements",
		},
		{
			name:     "spaces alone do not satisfy composition",
			password: "abcd efgh",
			message:  "Password must contain at least one number or special character",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ValidatePassword(tc.password)
			if got.Valid != tc.valid {
				t.Fatalf("valid: got %v want %v", got.Valid, tc.valid)
			}
			if got.Message != tc.message {
				t.Fatalf("message: got %q want %q", got.Message, tc.message)
			}
		})
	}
}
