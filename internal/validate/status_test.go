package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStatus(t *testing.T) {

	testCases := []struct {
		status string
		result bool
	}{
		{"Pending", true},
		{"Preparing", true},
		{"Cooked", true},
		{"Delivering", true},
		{"Completed", true},
		{"Cancelled", true},
		{"pending", true},
		{"COOKED", true},
		{"deliVERing", true},
		{"Ready", false},
		{"Cancelledd", false},
		{"", false},
		{"42", false},
	}

	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			assert.Equal(t, tc.result, ValidateStatus(tc.status))
		})
	}
}
