package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	lib "github.com/theoremus-urban-solutions/gpx-align"
	"github.com/theoremus-urban-solutions/gpx-align/formatter"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	lat := flag.Float64("lat", math.NaN(), "alignment point latitude (overrides config)")
	lon := flag.Float64("lon", math.NaN(), "alignment point longitude (overrides config)")
	radius := flag.Float64("radius", 0, "search radius in meters around the alignment point (overrides config)")
	input := flag.String("input", "", "directory containing .gpx files (overrides config)")
	output := flag.String("output", "", "output directory (default <input>_aligned)")
	format := flag.String("format", "text", "summary format: text|json")
	flag.Parse()

	lib.InitLogging()
	cfgErr := lib.LoadAppConfig()

	switch *mode {
	case "serve":
		if cfgErr != nil {
			panic(cfgErr)
		}
		lib.StartServer()
		lib.HandleGracefulShutdown()
	case "oneshot":
		req := resolveRequest(*lat, *lon, *radius, *input, *output)
		res, err := lib.RunBatch(req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		switch *format {
		case "json":
			fmt.Println(string(formatter.BuildJSON(res)))
		case "text":
			formatter.WriteText(os.Stdout, res)
		default:
			panic("unknown format")
		}
	default:
		panic("unknown mode")
	}
}

// resolveRequest merges flags over config defaults. Unset flags keep their
// sentinel (NaN for coordinates, zero otherwise) and fall back to the
// config; whatever remains unset is caught by target validation when the
// run starts.
func resolveRequest(lat, lon, radius float64, input, output string) lib.AlignRequest {
	req := lib.AlignRequest{
		Latitude:     lib.Config.Align.Target.Latitude,
		Longitude:    lib.Config.Align.Target.Longitude,
		RadiusMeters: lib.Config.Align.Target.RadiusMeters,
		InputDir:     lib.Config.Align.InputDir,
		OutputDir:    lib.Config.Align.OutputDir,
	}
	if !math.IsNaN(lat) {
		req.Latitude = lat
	}
	if !math.IsNaN(lon) {
		req.Longitude = lon
	}
	if radius > 0 {
		req.RadiusMeters = radius
	}
	if input != "" {
		req.InputDir = input
	}
	if output != "" {
		req.OutputDir = output
	}
	return req
}
