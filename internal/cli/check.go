package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tiiuae/missionfeasibility/internal/config"
	"github.com/tiiuae/missionfeasibility/internal/events"
	"github.com/tiiuae/missionfeasibility/internal/feasibility"
	"github.com/tiiuae/missionfeasibility/internal/geofence"
	"github.com/tiiuae/missionfeasibility/internal/mission"
	"github.com/tiiuae/missionfeasibility/internal/metrics"
	"github.com/tiiuae/missionfeasibility/internal/storage"
	"github.com/tiiuae/missionfeasibility/internal/vehicle"
)

// CheckCmd returns the check command, which loads one mission either from a
// SQLite store or a YAML fixture file and reports whether it is feasible.
func CheckCmd() *cobra.Command {
	var (
		configPath  string
		vehicleType string
		landed      bool
		homeLat     float64
		homeLon     float64
		homeAlt     float64
		homeValid   bool
		fenceFile   string
		dryRun      bool
		mqttBroker  string
		mqttTopic   string
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "check <mission-db-or-fixture> <storage-id>",
		Short: "Check whether a mission is feasible",
		Long: `Loads a mission item sequence and runs it against the feasibility
validator: command support, great-circle distance limits, geofence
containment, landing geometry, and item-ordering rules.

The first argument is either a path to a SQLite mission store (.db) or a
YAML mission fixture (.yaml/.yml); for a fixture, storage-id is ignored.

Exits 0 if the mission is feasible, 1 otherwise.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			missionPath, storageID := args[0], args[1]

			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

			cfg, paramStore, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			reader, count, err := openMissionSource(missionPath, storageID)
			if err != nil {
				return fmt.Errorf("open mission: %w", err)
			}

			vt, err := parseVehicleType(vehicleType)
			if err != nil {
				return err
			}

			vs := vehicle.State{
				HomeGlobalPositionValid: homeValid,
				HomeAltValid:            homeValid,
				Home:                    vehicle.Position{Lat: homeLat, Lon: homeLon, Alt: homeAlt},
				Landed:                  landed,
				VehicleType:             vt,
				TakeoffLandRequired:     cfg.RequiredItemsPolicy,
				DefaultAcceptanceRadius: 2.0,
			}

			fence := geofence.Geofence(geofence.Null{})
			if fenceFile != "" {
				loaded, err := geofence.LoadPolygonFile(fenceFile)
				if err != nil {
					return fmt.Errorf("load geofence: %w", err)
				}
				fence = loaded
			}

			var sink events.Sink
			switch {
			case dryRun:
				sink = events.NewMemorySink()
			case mqttBroker != "":
				client, err := events.DialMQTT(mqttBroker, "feasibilitycheck-"+storageID)
				if err != nil {
					return fmt.Errorf("connect event sink: %w", err)
				}
				sink = events.NewMQTTSink(client, mqttTopic)
			default:
				sink = events.NewZerologSink(log)
			}

			var recorder metrics.Recorder = metrics.Noop{}
			if metricsAddr != "" {
				reg := prometheus.NewRegistry()
				prom, err := metrics.NewPrometheus(reg)
				if err != nil {
					return fmt.Errorf("register metrics: %w", err)
				}
				recorder = prom

				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
				go func() {
					if err := http.ListenAndServe(metricsAddr, mux); err != nil {
						log.Warn().Err(err).Msg("metrics listener stopped")
					}
				}()
			}

			checker := feasibility.New(reader, fence, paramStore, sink, recorder)

			feasible, result := checker.Check(
				context.Background(),
				mission.Mission{StorageID: storageID, Count: count},
				vs,
				cfg,
			)

			if mem, ok := sink.(*events.MemorySink); ok {
				for _, r := range mem.Records {
					fmt.Printf("[%s] %s: %s\n", r.Severity, r.ID, r.Template)
				}
			}

			if feasible {
				fmt.Printf("mission %q is feasible (takeoff=%v landing=%v warning=%v)\n",
					storageID, result.HasTakeoff, result.HasLanding, result.Warning)
				return nil
			}

			fmt.Printf("mission %q is not feasible\n", storageID)
			cmd.SilenceUsage = true
			os.Exit(1)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "feasibility.yaml", "path to the feasibility config file")
	cmd.Flags().StringVar(&vehicleType, "vehicle-type", "multicopter", "vehicle type: multicopter, fixedwing, vtol")
	cmd.Flags().BoolVar(&landed, "landed", true, "whether the vehicle is currently landed")
	cmd.Flags().Float64Var(&homeLat, "home-lat", 0, "home latitude in degrees")
	cmd.Flags().Float64Var(&homeLon, "home-lon", 0, "home longitude in degrees")
	cmd.Flags().Float64Var(&homeAlt, "home-alt", 0, "home altitude AMSL in meters")
	cmd.Flags().BoolVar(&homeValid, "home-valid", true, "whether home position/altitude is valid")
	cmd.Flags().StringVar(&fenceFile, "geofence", "", "path to a JSON geofence polygon file, empty disables the geofence check")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "collect events in memory and print them instead of logging or publishing")
	cmd.Flags().StringVar(&mqttBroker, "mqtt-broker", "", "MQTT broker address for event publishing, empty logs events instead")
	cmd.Flags().StringVar(&mqttTopic, "mqtt-topic", "feasibility/events", "MQTT topic for published events")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on, empty disables metrics")

	return cmd
}

func openMissionSource(path, storageID string) (mission.Reader, int, error) {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		f, err := mission.LoadFixture(path)
		if err != nil {
			return nil, 0, err
		}
		count, err := f.Count(context.Background(), storageID)
		return f, count, err
	}

	db, err := storage.OpenSQLite(path)
	if err != nil {
		return nil, 0, err
	}
	count, err := db.Count(context.Background(), storageID)
	return db, count, err
}

func parseVehicleType(s string) (vehicle.Type, error) {
	switch s {
	case "multicopter":
		return vehicle.Multicopter, nil
	case "fixedwing":
		return vehicle.FixedWing, nil
	case "vtol":
		return vehicle.VTOL, nil
	default:
		return 0, fmt.Errorf("unknown vehicle type %q", s)
	}
}
