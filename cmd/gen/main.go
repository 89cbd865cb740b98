package main

import (
	"leadgrid/internal/infra/persistence/model"

	"gorm.io/gen"
)

// gen writes typed query helpers for the read-mostly models.
// Zone claims and activation leases stay hand-written in the repositories.
func main() {
	models := []any{
		model.StrategyModel{},
		model.ZoneModel{},
		model.BusinessModel{},
		model.DraftCampaignModel{},
		model.FilterPresetModel{},
		model.SiteModel{},
		model.CustomerModel{},
		model.SubscriptionModel{},
		model.ActivationModel{},
		model.ShortLinkModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
