package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"vedic-backend/internal/models"
	"vedic-backend/internal/places"
	"vedic-backend/internal/service"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute one chart and print it as JSON",
	Example: `  server chart --datetime 1996-08-22T12:23 --lat 11.0055 --lon 76.9661 --tz 5.5
  server chart --datetime "1990-01-01 06:00" --place Pune --house-system placidus`,
	RunE: runChart,
}

func init() {
	f := chartCmd.Flags()
	f.String("datetime", "", "local civil date-time, ISO-8601 without zone")
	f.Float64("lat", 0, "latitude, degrees north")
	f.Float64("lon", 0, "longitude, degrees east")
	f.Float64("tz", 0, "UTC offset in hours (estimated from longitude when omitted)")
	f.String("place", "", "city name, used when --lat/--lon are omitted")
	f.String("ayanamsa", "", "sidereal reference (default from config)")
	f.String("house-system", "", "equal, placidus, koch, porphyry, regiomontanus, campanus, whole-sign")
	f.String("node-type", "", "mean or true")
	f.Int("from-year", 0, "first year of the dasha calendar (default birth year)")
	f.Bool("compact", false, "print without indentation")
	_ = chartCmd.MarkFlagRequired("datetime")
}

func runChart(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	raw, _ := f.GetString("datetime")
	local, err := models.ParseLocalDateTime(raw)
	if err != nil {
		return err
	}

	lat, _ := f.GetFloat64("lat")
	lon, _ := f.GetFloat64("lon")
	if !f.Changed("lat") || !f.Changed("lon") {
		place, _ := f.GetString("place")
		if place == "" {
			return fmt.Errorf("%w: --lat and --lon or --place are required", models.ErrInvalidInput)
		}
		svc := places.NewService(newGeocoder(cfg.CitiesFile), 1, time.Minute, logger)
		found, ok, err := svc.First(cmd.Context(), place)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("place %q not found", place)
		}
		lat, lon = found.Lat, found.Lon
	}

	tz, _ := f.GetFloat64("tz")
	if !f.Changed("tz") {
		tz, err = places.LongitudeResolver{}.Offset(cmd.Context(), local, lat, lon)
		if err != nil {
			return err
		}
	}

	ayanamsa, _ := f.GetString("ayanamsa")
	houses, _ := f.GetString("house-system")
	node, _ := f.GetString("node-type")
	fromYear, _ := f.GetInt("from-year")

	birth := models.BirthContext{
		LocalTime:   local,
		Latitude:    lat,
		Longitude:   lon,
		UTCOffset:   tz,
		Ayanamsa:    orDefault(ayanamsa, cfg.Defaults.Ayanamsa),
		HouseSystem: orDefault(houses, cfg.Defaults.HouseSystem),
		NodeType:    orDefault(node, cfg.Defaults.NodeType),
	}
	res, err := newChartService().Compute(birth, service.ChartOptions{
		CalendarFromYear: fromYear,
		CalendarYears:    cfg.CalendarYears,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if compact, _ := f.GetBool("compact"); !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(res)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
