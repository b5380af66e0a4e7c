// Package gpx reads GPX tracks and reduces them to the distance and
// elevation gain an event records.
package gpx

import (
	"bytes"
	"fmt"
	"io"
	"os"

	gpxgo "github.com/tkrajina/gpxgo/gpx"
)

type Point struct {
	Lat       float64
	Lon       float64
	Elevation *float64 // m, absent when the device did not record it
}

// Track is the summary of every track segment in a file, in document order.
type Track struct {
	Name          string
	Distance      float64 // km
	ElevationGain float64 // m
	TrackPoints   []Point
}

// ParseFile reads and parses the GPX file at path.
func ParseFile(path string) (Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return Track{}, fmt.Errorf("failed to open gpx file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a GPX document. Empty input yields a zero Track.
func Parse(r io.Reader) (Track, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Track{}, fmt.Errorf("failed to read gpx: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Track{}, nil
	}

	doc, err := gpxgo.ParseBytes(data)
	if err != nil {
		return Track{}, fmt.Errorf("malformed gpx: %w", err)
	}

	track := Track{Name: doc.Name}
	for _, trk := range doc.Tracks {
		if track.Name == "" {
			track.Name = trk.Name
		}
		// Segments are separate recordings; distance is not bridged between them.
		for _, seg := range trk.Segments {
			track.Distance += segmentLength(seg.Points)
			track.ElevationGain += segmentGain(seg.Points)
			for _, p := range seg.Points {
				track.TrackPoints = append(track.TrackPoints, toPoint(p))
			}
		}
	}

	return track, nil
}

func toPoint(p gpxgo.GPXPoint) Point {
	pt := Point{Lat: p.Latitude, Lon: p.Longitude}
	if p.Elevation.NotNull() {
		ele := p.Elevation.Value()
		pt.Elevation = &ele
	}
	return pt
}

// segmentLength is the great-circle length of a segment in km.
func segmentLength(points []gpxgo.GPXPoint) float64 {
	var m float64
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		m += gpxgo.HaversineDistance(prev.Latitude, prev.Longitude, cur.Latitude, cur.Longitude)
	}
	return m / 1000
}

// segmentGain sums unsmoothed climbs between neighbouring points that both
// carry an elevation.
func segmentGain(points []gpxgo.GPXPoint) float64 {
	var gain float64
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1].Elevation, points[i].Elevation
		if prev.Null() || cur.Null() {
			continue
		}
		if delta := cur.Value() - prev.Value(); delta > 0 {
			gain += delta
		}
	}
	return gain
}

// Haversine returns the great-circle distance between two points in km.
func Haversine(a, b Point) float64 {
	return gpxgo.HaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon) / 1000
}
