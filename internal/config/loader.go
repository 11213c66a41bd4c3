package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/tiiuae/missionfeasibility/internal/params"
	"github.com/tiiuae/missionfeasibility/internal/vehicle"
)

// Load reads Config and a parameter store from path (YAML, JSON, or TOML,
// whatever Viper's extension sniffing picks up), falling back to Default()
// for any key the file or environment doesn't set.
func Load(path string) (Config, params.Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("MISSION_FEASIBILITY")
	v.AutomaticEnv()

	v.SetDefault("max_distance_first_waypoint", 0.0)
	v.SetDefault("max_distance_between_waypoints", 0.0)
	v.SetDefault("required_items_policy", int(vehicle.PolicyNone))
	v.SetDefault("parameters", map[string]interface{}{})

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, nil, errors.Wrap(err, "read feasibility config")
		}
	}

	cfg := Config{
		MaxDistanceFirstWaypoint:    v.GetFloat64("max_distance_first_waypoint"),
		MaxDistanceBetweenWaypoints: v.GetFloat64("max_distance_between_waypoints"),
		RequiredItemsPolicy:         vehicle.Policy(v.GetInt("required_items_policy")),
	}

	raw := v.GetStringMap("parameters")
	values := make(map[string]float64, len(raw))
	for name, val := range raw {
		f, err := cast.ToFloat64E(val)
		if err != nil {
			return Config{}, nil, errors.Wrapf(err, "parameter %q", name)
		}
		values[name] = f
	}

	return cfg, params.NewMapStore(values), nil
}
