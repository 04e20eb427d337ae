// Package geo handles geographic data structures and coordinate conversions.
package geo

import "encoding/json"

// TypeFeatureCollection is the only root document type accepted by the loader.
const TypeFeatureCollection = "FeatureCollection"

// FeatureCollection represents a collection of country features.
// It follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type" yaml:"type"`
	Features []Feature `json:"features" yaml:"features"`
}

// Feature represents a single country with its boundary and administrative properties.
type Feature struct {
	Properties Properties `json:"properties" yaml:"properties"`
	Type       string     `json:"type" yaml:"type"`
	Geometry   Geometry   `json:"geometry" yaml:"geometry"`
}

// Geometry represents the boundary of a feature (Polygon or MultiPolygon).
// Coordinates are kept raw, nothing downstream reads them.
type Geometry struct {
	Type        string          `json:"type" yaml:"type"`
	Coordinates json.RawMessage `json:"coordinates" yaml:"-"`
}

// GeoPoint is the representative centroid of a feature.
type GeoPoint struct {
	Lon *float64 `json:"lon" yaml:"lon"`
	Lat *float64 `json:"lat" yaml:"lat"`
}

// Properties holds the administrative metadata of a country feature.
// Pointer fields are nil when the key is absent from the input or null.
type Properties struct {
	GeoPoint    *GeoPoint  `json:"geo_point_2d" yaml:"geo_point_2d"`
	Name        *string    `json:"name" yaml:"name"`
	Continent   *Continent `json:"continent" yaml:"continent"`
	ISOAlpha2   *string    `json:"iso_3166_1_alpha_2_codes,omitempty" yaml:"iso_3166_1_alpha_2_codes,omitempty"`
	FrenchShort *string    `json:"french_short,omitempty" yaml:"french_short,omitempty"`
	ISO3        string     `json:"iso3" yaml:"iso3"`
	Status      string     `json:"status" yaml:"status"`
	ColorCode   string     `json:"color_code" yaml:"color_code"`
	Region      string     `json:"region" yaml:"region"`
}
