// Package strategy implements StrategyGenerator collaborators.
package strategy

import (
	"context"
	"fmt"
	"sort"

	"leadgrid/internal/domain/entity"
	"leadgrid/internal/domain/service"
	"leadgrid/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/maptile"
)

const minGridZoom = 1

// gridGenerator partitions the market bounds into web mercator tiles.
// Zones closer to the market center get a higher priority.
type gridGenerator struct {
	zoom     maptile.Zoom
	maxZones int
}

// NewGridGenerator creates a tile partition generator. When the bounds need more
// than maxZones tiles at zoom, coarser zoom levels are tried.
func NewGridGenerator(zoom, maxZones int) service.StrategyGenerator {
	if zoom < minGridZoom {
		zoom = minGridZoom
	}
	if maxZones < 1 {
		maxZones = 1
	}

	return &gridGenerator{
		zoom:     maptile.Zoom(zoom),
		maxZones: maxZones,
	}
}

type gridCell struct {
	tile     maptile.Tile
	bound    orb.Bound
	distance float64
}

// Generate returns one zone per tile intersecting the market bounds.
func (g *gridGenerator) Generate(ctx context.Context, market entity.MarketDescriptor) (*service.StrategyProposal, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	bounds := market.Bounds
	if bounds.IsEmpty() {
		return nil, errors.New("market bounds are empty")
	}

	cells := g.partition(bounds)
	if len(cells) == 0 {
		return nil, errors.New("market bounds produced no zones")
	}

	center := bounds.Center()
	for i := range cells {
		cells[i].distance = geo.Distance(center, cells[i].bound.Center())
	}
	sort.SliceStable(cells, func(i, j int) bool {
		return cells[i].distance < cells[j].distance
	})

	zones := make([]service.ZoneProposal, 0, len(cells))
	for i, cell := range cells {
		zones = append(zones, service.ZoneProposal{
			Name:     fmt.Sprintf("%s %d/%d/%d", market.Region, cell.tile.Z, cell.tile.X, cell.tile.Y),
			Category: market.Category,
			MinLat:   cell.bound.Min.Lat(),
			MinLng:   cell.bound.Min.Lon(),
			MaxLat:   cell.bound.Max.Lat(),
			MaxLng:   cell.bound.Max.Lon(),
			Priority: len(cells) - i,
		})
	}

	return &service.StrategyProposal{
		Name: fmt.Sprintf("%s %s", market.Region, market.Category),
		Rationale: fmt.Sprintf("%d zones from zoom %d tiles over %s, ordered by distance to the market center",
			len(zones), cells[0].tile.Z, market.Region),
		Zones: zones,
	}, nil
}

// partition tiles the bounds at the coarsest zoom, starting from g.zoom, that stays within maxZones.
func (g *gridGenerator) partition(bounds orb.Bound) []gridCell {
	for zoom := g.zoom; zoom >= minGridZoom; zoom-- {
		topLeft := maptile.At(orb.Point{bounds.Min.Lon(), bounds.Max.Lat()}, zoom)
		bottomRight := maptile.At(orb.Point{bounds.Max.Lon(), bounds.Min.Lat()}, zoom)

		count := int(bottomRight.X-topLeft.X+1) * int(bottomRight.Y-topLeft.Y+1)
		if count > g.maxZones && zoom > minGridZoom {
			continue
		}

		cells := make([]gridCell, 0, count)
		for x := topLeft.X; x <= bottomRight.X; x++ {
			for y := topLeft.Y; y <= bottomRight.Y; y++ {
				tile := maptile.New(x, y, zoom)
				clipped, ok := clip(tile.Bound(), bounds)
				if !ok {
					continue
				}
				cells = append(cells, gridCell{tile: tile, bound: clipped})
			}
		}

		if len(cells) > g.maxZones {
			cells = cells[:g.maxZones]
		}

		return cells
	}

	return nil
}

// clip intersects a with b and reports whether the result has a positive area.
func clip(a, b orb.Bound) (orb.Bound, bool) {
	clipped := orb.Bound{
		Min: orb.Point{max(a.Min.Lon(), b.Min.Lon()), max(a.Min.Lat(), b.Min.Lat())},
		Max: orb.Point{min(a.Max.Lon(), b.Max.Lon()), min(a.Max.Lat(), b.Max.Lat())},
	}

	if clipped.Max.Lon() <= clipped.Min.Lon() || clipped.Max.Lat() <= clipped.Min.Lat() {
		return orb.Bound{}, false
	}

	return clipped, true
}
