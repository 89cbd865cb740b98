package config

import "time"

// ApplyDefaults fills in every optional section that the YAML file left out.
func ApplyDefaults(cfg *Config) {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = 12
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 12 * time.Hour
	}

	if cfg.Scraper == nil {
		cfg.Scraper = &ScraperConfig{}
	}
	applyScraperDefaults(cfg.Scraper)

	if cfg.Qualification == nil {
		cfg.Qualification = &QualificationConfig{}
	}
	if cfg.Qualification.Threshold == 0 {
		cfg.Qualification.Threshold = 60
	}
	if cfg.Qualification.MinRating == 0 {
		cfg.Qualification.MinRating = 4.0
	}
	if cfg.Qualification.MinReviews == 0 {
		cfg.Qualification.MinReviews = 10
	}
	if len(cfg.Qualification.ReviewHosts) == 0 {
		cfg.Qualification.ReviewHosts = []string{
			"facebook.com", "instagram.com", "linktr.ee", "yelp.com", "business.site",
		}
	}

	if cfg.Provider == nil {
		cfg.Provider = &ProviderConfig{}
	}
	if cfg.Provider.Timeout == 0 {
		cfg.Provider.Timeout = 30 * time.Second
	}

	if cfg.Strategy == nil {
		cfg.Strategy = &StrategyConfig{}
	}
	applyStrategyDefaults(cfg.Strategy)

	if cfg.Payment == nil {
		cfg.Payment = &PaymentConfig{}
	}
	if cfg.Payment.Timeout == 0 {
		cfg.Payment.Timeout = 15 * time.Second
	}

	if cfg.Activation == nil {
		cfg.Activation = &ActivationConfig{}
	}
	if cfg.Activation.LeaseDuration == 0 {
		cfg.Activation.LeaseDuration = time.Minute
	}
	if cfg.Activation.StorageRetries == 0 {
		cfg.Activation.StorageRetries = 3
	}
	if cfg.Activation.RetryBackoff == 0 {
		cfg.Activation.RetryBackoff = 100 * time.Millisecond
	}

	if cfg.Sites == nil {
		cfg.Sites = &SitesConfig{}
	}

	if cfg.ShortLink == nil {
		cfg.ShortLink = &ShortLinkConfig{}
	}
	if cfg.ShortLink.TokenLength == 0 {
		cfg.ShortLink.TokenLength = 7
	}
	if cfg.ShortLink.MaxIssueAttempts == 0 {
		cfg.ShortLink.MaxIssueAttempts = 5
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}

	if cfg.Filter == nil {
		cfg.Filter = &FilterConfig{}
	}
	if cfg.Filter.DefaultPageSize == 0 {
		cfg.Filter.DefaultPageSize = 20
	}
	if cfg.Filter.MaxPageSize == 0 {
		cfg.Filter.MaxPageSize = 100
	}
	if cfg.Filter.ExportLimit == 0 {
		cfg.Filter.ExportLimit = 5000
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.ReportTTL == 0 {
		cfg.Cache.ReportTTL = 5 * time.Minute
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Concurrency == 0 {
		cfg.Worker.Concurrency = 4
	}
}

func applyScraperDefaults(c *ScraperConfig) {
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 3
	}
	if c.InitialBackoff == 0 {
		c.InitialBackoff = 500 * time.Millisecond
	}
	if c.MaxBackoff == 0 {
		c.MaxBackoff = 10 * time.Second
	}
	if c.ResultLimit == 0 {
		c.ResultLimit = 200
	}
	if c.StaleThreshold == 0 {
		c.StaleThreshold = 30 * time.Minute
	}
	if c.SweepInterval == 0 {
		c.SweepInterval = time.Minute
	}
	if c.DispatchConcurrency == 0 {
		c.DispatchConcurrency = 8
	}
}

func applyStrategyDefaults(c *StrategyConfig) {
	if c.Generator == "" {
		c.Generator = "grid"
	}
	if c.Timeout == 0 {
		c.Timeout = 60 * time.Second
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 3
	}
	if c.GridZoom == 0 {
		c.GridZoom = 13
	}
	if c.MaxZones == 0 {
		c.MaxZones = 200
	}
}
