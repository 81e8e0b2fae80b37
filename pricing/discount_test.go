package pricing

import (
	"testing"
	"time"

	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/stretchr/testify/assert"
)

func ts(s string) *time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return &t
}

func TestWindowContains(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2026-06-15")

	tests := []struct {
		name       string
		start, end *time.Time
		want       bool
	}{
		{"unbounded both sides", nil, nil, true},
		{"inside window", ts("2026-06-01"), ts("2026-06-30"), true},
		{"before start", ts("2026-07-01"), nil, false},
		{"after end", nil, ts("2026-06-01"), false},
		{"open start", nil, ts("2026-06-30"), true},
		{"open end", ts("2026-06-01"), nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WindowContains(tt.start, tt.end, now))
		})
	}
}

func TestPickEffective(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2026-06-15")

	expired := models.Discount{ID: 1, EndDate: ts("2026-01-01")}
	current := models.Discount{ID: 2}
	later := models.Discount{ID: 3}

	got := pickEffective([]models.Discount{expired, current, later}, now)
	if assert.NotNil(t, got) {
		// lowest-id valid candidate wins
		assert.Equal(t, uint(2), got.ID)
	}

	assert.Nil(t, pickEffective([]models.Discount{expired}, now))
	assert.Nil(t, pickEffective(nil, now))
}

func TestDiscountedPrice(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		d     *models.Discount
		want  float64
	}{
		{"nil discount", 100, nil, 100},
		{"percentage", 200, &models.Discount{Type: models.DiscountTypePercentage, Value: 25}, 150},
		{"fixed", 100, &models.Discount{Type: models.DiscountTypeFixed, Value: 30}, 70},
		{"fixed floors at zero", 20, &models.Discount{Type: models.DiscountTypeFixed, Value: 50}, 0},
		{"full percentage", 80, &models.Discount{Type: models.DiscountTypePercentage, Value: 100}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiscountedPrice(tt.price, tt.d))
			assert.GreaterOrEqual(t, DiscountedPrice(tt.price, tt.d), 0.0)
		})
	}
}
