package processor

import (
	"fmt"

	"github.com/woozymasta/geodots/internal/geo"
)

// DotRecord is one output line. Field order is the wire order.
type DotRecord struct {
	Lon       float64       `json:"lon"`
	Lat       float64       `json:"lat"`
	Country   string        `json:"country"`
	Continent geo.Continent `json:"continent"`
}

// Project copies the centroid, name and continent of a feature into a DotRecord.
func Project(f geo.Feature) (DotRecord, error) {
	p := f.Properties

	switch {
	case p.GeoPoint == nil:
		return DotRecord{}, missing("properties.geo_point_2d")
	case p.GeoPoint.Lon == nil:
		return DotRecord{}, missing("properties.geo_point_2d.lon")
	case p.GeoPoint.Lat == nil:
		return DotRecord{}, missing("properties.geo_point_2d.lat")
	case p.Name == nil:
		return DotRecord{}, missing("properties.name")
	case p.Continent == nil:
		return DotRecord{}, missing("properties.continent")
	}

	return DotRecord{
		Lon:       *p.GeoPoint.Lon,
		Lat:       *p.GeoPoint.Lat,
		Country:   *p.Name,
		Continent: *p.Continent,
	}, nil
}

// ProjectAll projects every feature in order and stops at the first failure.
func ProjectAll(features []geo.Feature) ([]DotRecord, error) {
	records := make([]DotRecord, 0, len(features))
	for i, f := range features {
		rec, err := Project(f)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}
