package geo

import (
	"encoding/json"
	"fmt"
)

// decodeFields decodes a JSON object into fields, keyed by exact member name.
// encoding/json folds key case when filling structs, GeoJSON keys are case sensitive.
// Absent members leave their destination untouched.
func decodeFields(data []byte, fields map[string]any) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for key, dst := range fields {
		value, ok := raw[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, dst); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	return nil
}

// UnmarshalJSON decodes a feature using exact member names.
func (f *Feature) UnmarshalJSON(data []byte) error {
	var v Feature
	err := decodeFields(data, map[string]any{
		"type":       &v.Type,
		"geometry":   &v.Geometry,
		"properties": &v.Properties,
	})
	if err != nil {
		return err
	}

	*f = v
	return nil
}

// UnmarshalJSON decodes a geometry using exact member names.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	var v Geometry
	err := decodeFields(data, map[string]any{
		"type":        &v.Type,
		"coordinates": &v.Coordinates,
	})
	if err != nil {
		return err
	}

	*g = v
	return nil
}

// UnmarshalJSON decodes a centroid using exact member names.
func (p *GeoPoint) UnmarshalJSON(data []byte) error {
	var v GeoPoint
	err := decodeFields(data, map[string]any{
		"lon": &v.Lon,
		"lat": &v.Lat,
	})
	if err != nil {
		return err
	}

	*p = v
	return nil
}

// UnmarshalJSON decodes properties using exact member names, so "NAME" never
// stands in for a missing "name".
func (p *Properties) UnmarshalJSON(data []byte) error {
	var v Properties
	err := decodeFields(data, map[string]any{
		"geo_point_2d":             &v.GeoPoint,
		"name":                     &v.Name,
		"continent":                &v.Continent,
		"iso_3166_1_alpha_2_codes": &v.ISOAlpha2,
		"french_short":             &v.FrenchShort,
		"iso3":                     &v.ISO3,
		"status":                   &v.Status,
		"color_code":               &v.ColorCode,
		"region":                   &v.Region,
	})
	if err != nil {
		return err
	}

	*p = v
	return nil
}
