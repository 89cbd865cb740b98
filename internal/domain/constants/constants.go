package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Strategy generators
const (
	StrategyGeneratorGrid   = "grid"
	StrategyGeneratorRemote = "remote"
)

// Link types issued by the short link registry
const (
	LinkTypeSite = "site"
)

// HeaderSignature carries the hex HMAC-SHA256 of a payment webhook body.
const HeaderSignature = "X-Signature"
