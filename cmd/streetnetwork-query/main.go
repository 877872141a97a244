// Command streetnetwork-query is a demo CLI exercising the routing core
// end to end: it builds a small in-process street network, then runs a
// nearest-stop-points query followed by a path query against it, printing
// results the way a caller of StreetNetwork would consume them.
//
// A real deployment would load GeoRef from a preprocessed graph build
// pipeline (out of scope here); this command builds one directly with
// georef.Builder so the query surface is exercisable without one.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/paulmach/orb"

	"github.com/pbougue/navitia/pkg/georef"
	"github.com/pbougue/navitia/pkg/proximity"
	"github.com/pbougue/navitia/pkg/routing"
)

func main() {
	originLat := flag.Float64("origin-lat", 0, "query origin latitude")
	originLon := flag.Float64("origin-lon", 0, "query origin longitude")
	radius := flag.Duration("radius", 10*time.Minute, "nearest-stop-points search radius")
	speedFactor := flag.Float64("speed-factor", 1.0, "query speed factor")
	flag.Parse()

	start := time.Now()

	log.Println("Building demo street network...")
	gr, stops := buildDemoGeoRef()
	log.Printf("Built: %d vertices, %d stop points", gr.Graph.NumVertices, len(stops))

	pl := proximity.NewRTreeProximityList(stops)
	sn := routing.NewStreetNetwork(gr)
	sn.Init(routing.EntryPoint{
		Coord:       orb.Point{*originLon, *originLat},
		Mode:        georef.Walking,
		SpeedFactor: *speedFactor,
	}, nil)

	log.Printf("Ready in %s", time.Since(start).Round(time.Millisecond))

	nearest, err := sn.FindNearestStopPoints(*radius, pl, false)
	if err != nil {
		log.Fatalf("FindNearestStopPoints: %v", err)
	}
	log.Printf("%d stop point(s) within %s", len(nearest), *radius)
	for sp, d := range nearest {
		log.Printf("  stop %d: %s", sp, d.Round(time.Millisecond))
	}

	for sp := range nearest {
		path, err := sn.GetPath(sp, false)
		if err != nil {
			log.Printf("GetPath(%d): %v", sp, err)
			continue
		}
		log.Printf("path to stop %d: %d item(s), %s total", sp, len(path.Items), path.Duration.Round(time.Millisecond))
		for _, item := range path.Items {
			log.Printf("  way %d, %s, turn %.1f°", item.WayIdx, item.Duration.Round(time.Millisecond), item.Angle)
		}
	}
}

// buildDemoGeoRef assembles a tiny two-way walking network bent at one
// corner, with a single stop point at the far end, and reports the
// per-mode logical vertex offsets the way a multi-mode graph build would.
func buildDemoGeoRef() (*georef.GeoRef, []orb.Point) {
	b := georef.NewBuilder()
	a := b.AddVertex(orb.Point{2.3522, 48.8566})   // Paris
	c := b.AddVertex(orb.Point{2.3522, 48.8575})   // ~100m north
	d := b.AddVertex(orb.Point{2.3533, 48.8575})   // ~80m further east

	ways := []georef.Way{
		{Name: "Rue du Nord", Geoms: []orb.LineString{{orb.Point{2.3522, 48.8566}, orb.Point{2.3522, 48.8575}}}},
		{Name: "Rue de l'Est", Geoms: []orb.LineString{{orb.Point{2.3522, 48.8575}, orb.Point{2.3533, 48.8575}}}},
	}

	b.AddEdge(a, c, georef.EdgeData{Duration: 72 * time.Second, WayIdx: 0, GeomIdx: 0, Caracteristic: georef.Walk})
	b.AddEdge(c, a, georef.EdgeData{Duration: 72 * time.Second, WayIdx: 0, GeomIdx: 0, Caracteristic: georef.Walk})
	b.AddEdge(c, d, georef.EdgeData{Duration: 72 * time.Second, WayIdx: 1, GeomIdx: 0, Caracteristic: georef.Walk})
	b.AddEdge(d, c, georef.EdgeData{Duration: 72 * time.Second, WayIdx: 1, GeomIdx: 0, Caracteristic: georef.Walk})

	g := b.Build()
	idx := georef.BuildEdgeIndex(g, 0, g.NumVertices, ways)

	var offsets georef.Offsets
	offsets[georef.Walking] = 0

	gr := &georef.GeoRef{
		Graph:           g,
		Ways:            ways,
		Offsets:         offsets,
		NumBaseVertices: g.NumVertices,
		DefaultSpeed:    georef.NewDefaultSpeed(),
		Transitions:     georef.DefaultTransitionDurations(),
	}
	gr.EdgeIndexes[georef.Walking] = idx

	stops := []orb.Point{gr.Graph.Coord[offsets.Logical(georef.Walking, d)]}
	gr.ProjectedStopPoints = make([][georef.ModeCount]georef.ProjectionData, len(stops))
	for i, s := range stops {
		gr.ProjectedStopPoints[i][georef.Walking] = gr.Project(s, georef.Walking)
	}

	return gr, stops
}
