package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"boxoffice/internal/domain"
)

func TestPriceFor(t *testing.T) {
	tests := []struct {
		name     string
		category domain.Category
		want     string
	}{
		{name: "VIP is free", category: domain.CategoryVIP, want: "0.00"},
		{name: "child pays discounted rate", category: domain.CategoryChild, want: "5.00"},
		{name: "senior pays discounted rate", category: domain.CategorySenior, want: "5.00"},
		{name: "adult pays standard rate", category: domain.CategoryAdult, want: "10.00"},
		{name: "unknown label defaults to standard rate", category: domain.Category("Student"), want: "10.00"},
		{name: "empty label defaults to standard rate", category: domain.Category(""), want: "10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriceFor(tt.category).StringFixed(2))

			// Pure function, same output on repeated calls.
			assert.Equal(t, tt.want, PriceFor(tt.category).StringFixed(2))
		})
	}
}

func TestExplanation(t *testing.T) {
	tests := []struct {
		category domain.Category
		want     string
	}{
		{category: domain.CategoryVIP, want: "VIP (Free admission)"},
		{category: domain.CategoryChild, want: "Child (discounted rate)"},
		{category: domain.CategorySenior, want: "Senior (discounted rate)"},
		{category: domain.CategoryAdult, want: "Adult (standard rate)"},
		{category: domain.Category("Student"), want: "Student (standard rate)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, Explanation(tt.category))
		})
	}
}
