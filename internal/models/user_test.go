package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestValidate(t *testing.T) {
	cases := []struct {
		name     string
		req      RegisterRequest
		badField string
	}{
		{"valid", RegisterRequest{Username: "velopert", Password: "x"}, ""},
		{"min length", RegisterRequest{Username: "abc", Password: "x"}, ""},
		{"max length", RegisterRequest{Username: strings.Repeat("a", 20), Password: "x"}, ""},
		{"digits allowed", RegisterRequest{Username: "user123", Password: "x"}, ""},
		{"too short", RegisterRequest{Username: "ab", Password: "x"}, "username"},
		{"too long", RegisterRequest{Username: strings.Repeat("a", 21), Password: "x"}, "username"},
		{"hyphen rejected", RegisterRequest{Username: "user-name", Password: "x"}, "username"},
		{"space rejected", RegisterRequest{Username: "user name", Password: "x"}, "username"},
		{"unicode rejected", RegisterRequest{Username: "사용자이름", Password: "x"}, "username"},
		{"missing username", RegisterRequest{Password: "x"}, "username"},
		{"missing password", RegisterRequest{Username: "velopert"}, "password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := tc.req.Validate()
			if tc.badField == "" {
				assert.Nil(t, errs)
				return
			}
			assert.Len(t, errs, 1)
			assert.Equal(t, tc.badField, errs[0].Field)
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	assert.Nil(t, (&LoginRequest{Username: "u", Password: "p"}).Validate())
	assert.Len(t, (&LoginRequest{}).Validate(), 2)
}
