package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stringPtr(v string) *string {
	return &v
}

func TestUpdateUserInput_IsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input UpdateUserInput
		want  bool
	}{
		{name: "nothing set", input: UpdateUserInput{}, want: true},
		{name: "only empty strings", input: UpdateUserInput{Username: stringPtr(""), Email: stringPtr(""), Password: stringPtr("")}, want: true},
		{name: "empty roles", input: UpdateUserInput{Roles: []string{}}, want: true},
		{name: "username", input: UpdateUserInput{Username: stringPtr("alice")}, want: false},
		{name: "password with empty username", input: UpdateUserInput{Username: stringPtr(""), Password: stringPtr("secret")}, want: false},
		{name: "roles", input: UpdateUserInput{Roles: []string{"Admin"}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.IsEmpty())
		})
	}
}
