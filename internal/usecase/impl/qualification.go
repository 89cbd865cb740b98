// Package impl contains the implementation of the application's business logic.
package impl

import (
	"net/url"
	"strings"

	"leadgrid/config"
	"leadgrid/internal/domain/entity"
	"leadgrid/internal/domain/service"

	"github.com/go-playground/validator/v10"
)

// Qualification rubric points.
const (
	scorePhone          = 20
	scoreEmail          = 20
	scoreRating         = 25
	scoreReviews        = 10
	scoreCategoryMatch  = 25
	defaultQualifyScore = 60
)

// qualifier scores raw provider records and classifies their websites.
type qualifier struct {
	threshold   int
	minRating   float64
	minReviews  int
	reviewHosts []string
	validate    *validator.Validate
}

func newQualifier(cfg *config.QualificationConfig) *qualifier {
	q := &qualifier{
		threshold: defaultQualifyScore,
		validate:  validator.New(),
	}
	if cfg != nil {
		if cfg.Threshold > 0 {
			q.threshold = cfg.Threshold
		}
		q.minRating = cfg.MinRating
		q.minReviews = cfg.MinReviews
		for _, host := range cfg.ReviewHosts {
			q.reviewHosts = append(q.reviewHosts, strings.ToLower(strings.TrimSpace(host)))
		}
	}

	return q
}

// Score applies the rubric to a record found in a zone of the given category.
func (q *qualifier) Score(raw *service.RawBusiness, zoneCategory string) (int, bool) {
	score := 0

	if strings.TrimSpace(raw.Phone) != "" {
		score += scorePhone
	}
	if raw.Email != "" && q.validate.Var(raw.Email, "email") == nil {
		score += scoreEmail
	}
	if raw.Rating >= q.minRating {
		score += scoreRating
	}
	if raw.ReviewCount >= q.minReviews {
		score += scoreReviews
	}
	if categoryMatches(raw.Category, zoneCategory) {
		score += scoreCategoryMatch
	}

	return score, score >= q.threshold
}

// ClassifyWebsite maps a website URL to its website status.
func (q *qualifier) ClassifyWebsite(website string) entity.WebsiteStatus {
	website = strings.TrimSpace(website)
	if website == "" {
		return entity.WebsiteStatusInvalid
	}

	parsed, err := url.Parse(website)
	if err != nil || parsed.Host == "" {
		return entity.WebsiteStatusInvalid
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return entity.WebsiteStatusInvalid
	}

	host := strings.ToLower(parsed.Hostname())
	for _, reviewHost := range q.reviewHosts {
		if host == reviewHost || strings.HasSuffix(host, "."+reviewHost) {
			return entity.WebsiteStatusNeedsReview
		}
	}

	return entity.WebsiteStatusValid
}

// categoryMatches is a case-insensitive containment check in either direction.
func categoryMatches(providerCategory, zoneCategory string) bool {
	provider := strings.ToLower(strings.TrimSpace(providerCategory))
	zone := strings.ToLower(strings.TrimSpace(zoneCategory))
	if provider == "" || zone == "" {
		return false
	}

	return strings.Contains(provider, zone) || strings.Contains(zone, provider)
}
