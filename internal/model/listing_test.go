package model_test

import (
	"testing"

	"property-listing-service/internal/model"
)

func TestIsActive(t *testing.T) {
	active := model.StatusActive
	sold := "SOLD"

	cases := []struct {
		name   string
		status *string
		want   bool
	}{
		{"Nil Status Defaults To Active", nil, true},
		{"Explicit Active", &active, true},
		{"Sold Is Inactive", &sold, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := model.Listing{Status: tc.status}
			if got := l.IsActive(); got != tc.want {
				t.Errorf("IsActive() = %v, want %v", got, tc.want)
			}
		})
	}
}
