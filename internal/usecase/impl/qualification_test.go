package impl

import (
	"testing"

	"leadgrid/internal/domain/entity"
	"leadgrid/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestQualifier_Score(t *testing.T) {
	q := newQualifier(newTestConfig().Qualification)

	tests := []struct {
		name          string
		raw           service.RawBusiness
		wantScore     int
		wantQualified bool
	}{
		{
			name: "full record in matching category",
			raw: service.RawBusiness{
				Phone: "+1 555 0100", Email: "owner@plumbco.com",
				Rating: 4.6, ReviewCount: 120, Category: "Plumbing",
			},
			wantScore:     100,
			wantQualified: true,
		},
		{
			name: "contact only, low rating",
			raw: service.RawBusiness{
				Phone: "+1 555 0100", Email: "owner@plumbco.com",
				Rating: 3.1, ReviewCount: 2, Category: "bakery",
			},
			wantScore:     40,
			wantQualified: false,
		},
		{
			name: "exactly at threshold",
			raw: service.RawBusiness{
				Rating: 4.0, ReviewCount: 10, Category: "emergency plumbing",
			},
			wantScore:     60,
			wantQualified: true,
		},
		{
			name: "malformed email earns nothing",
			raw: service.RawBusiness{
				Email: "not-an-email", Rating: 4.5, ReviewCount: 9, Category: "plumbing",
			},
			wantScore:     50,
			wantQualified: false,
		},
		{
			name:          "empty record",
			raw:           service.RawBusiness{},
			wantScore:     0,
			wantQualified: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, qualified := q.Score(&tt.raw, "plumbing")
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantQualified, qualified)
		})
	}
}

func TestQualifier_DefaultThreshold(t *testing.T) {
	q := newQualifier(nil)

	assert.Equal(t, defaultQualifyScore, q.threshold)

	score, qualified := q.Score(&service.RawBusiness{Category: "Plumbing"}, "plumbing")
	assert.Equal(t, scoreRating+scoreReviews+scoreCategoryMatch, score)
	assert.True(t, qualified)
}

func TestQualifier_ClassifyWebsite(t *testing.T) {
	q := newQualifier(newTestConfig().Qualification)

	tests := []struct {
		website string
		want    entity.WebsiteStatus
	}{
		{"", entity.WebsiteStatusInvalid},
		{"   ", entity.WebsiteStatusInvalid},
		{"plumbco.com", entity.WebsiteStatusInvalid},
		{"ftp://plumbco.com", entity.WebsiteStatusInvalid},
		{"https://", entity.WebsiteStatusInvalid},
		{"https://plumbco.com", entity.WebsiteStatusValid},
		{"http://www.plumbco.com/contact", entity.WebsiteStatusValid},
		{"https://www.facebook.com/plumbco", entity.WebsiteStatusNeedsReview},
		{"https://YELP.com/biz/plumbco", entity.WebsiteStatusNeedsReview},
		{"https://notyelp.com", entity.WebsiteStatusValid},
	}

	for _, tt := range tests {
		t.Run(tt.website, func(t *testing.T) {
			assert.Equal(t, tt.want, q.ClassifyWebsite(tt.website))
		})
	}
}

func TestCategoryMatches(t *testing.T) {
	assert.True(t, categoryMatches("Plumbing", "plumbing"))
	assert.True(t, categoryMatches("Emergency Plumbing", "plumbing"))
	assert.True(t, categoryMatches("plumb", "plumbing"))
	assert.False(t, categoryMatches("bakery", "plumbing"))
	assert.False(t, categoryMatches("", "plumbing"))
}
