package request

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edvin/accountdesk/internal/model"
)

func TestParseListing_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	l := ParseListing(r)
	assert.Equal(t, 1, l.Page)
	assert.Equal(t, model.StatusNew, l.Status)
	assert.Equal(t, 0, l.Offset())
}

func TestParseListing_PageLeniency(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"1", 1},
		{"3", 3},
		{"9999", 9999},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("page=%s", tt.raw), func(t *testing.T) {
			r := httptest.NewRequest("GET", "/?page="+tt.raw, nil)
			assert.Equal(t, tt.want, ParseListing(r).Page)
		})
	}
}

func TestParseListing_OffsetMath(t *testing.T) {
	for page := 1; page <= 5; page++ {
		r := httptest.NewRequest("GET", fmt.Sprintf("/?page=%d", page), nil)
		assert.Equal(t, (page-1)*20, ParseListing(r).Offset())
	}
}

func TestParseListing_StatusProvided(t *testing.T) {
	r := httptest.NewRequest("GET", "/?status=Good", nil)
	assert.Equal(t, model.StatusGood, ParseListing(r).Status)
}

func TestParseListing_StatusExplicitlyEmptyMeansAll(t *testing.T) {
	r := httptest.NewRequest("GET", "/?status=", nil)
	assert.Equal(t, model.Status(""), ParseListing(r).Status)
}

func TestParseListing_StatusAbsentDefaultsToNew(t *testing.T) {
	r := httptest.NewRequest("GET", "/?page=2", nil)
	assert.Equal(t, model.StatusNew, ParseListing(r).Status)
}

func TestParseListing_UnknownStatusNormalizedToDefault(t *testing.T) {
	r := httptest.NewRequest("GET", "/?status=Archived", nil)
	assert.Equal(t, model.StatusNew, ParseListing(r).Status)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, want int
	}{
		{0, 0},
		{1, 1},
		{20, 1},
		{21, 2},
		{45, 3},
		{60, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total), "total=%d", tt.total)
	}
}
