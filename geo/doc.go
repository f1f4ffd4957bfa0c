// Package geo places exchange cycles on a map.
//
// A Gazetteer resolves court codes (TJAC … TJTO, accent- and case-insensitive)
// to approximate coordinates of the state capitals. Path turns a cycle into a
// closed LineString that visits every participant's current court and returns to
// the first; FeatureCollection bundles many cycles as GeoJSON for plotting.
package geo
