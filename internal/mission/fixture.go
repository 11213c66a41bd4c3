package mission

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// fixtureItem is the YAML shape of one mission item in a fixture file, using
// the wire names PX4's QGroundControl mission plan export uses.
type fixtureItem struct {
	Command          string     `yaml:"command"`
	Lat              float64    `yaml:"lat"`
	Lon              float64    `yaml:"lon"`
	Altitude         float64    `yaml:"altitude"`
	RelativeAlt      bool       `yaml:"relative_alt"`
	AcceptanceRadius float64    `yaml:"acceptance_radius"`
	LoiterRadius     float64    `yaml:"loiter_radius"`
	Params           [7]float64 `yaml:"params"`
}

type fixtureFile struct {
	Items []fixtureItem `yaml:"items"`
}

var fixtureCommandNames = func() map[string]Command {
	m := make(map[string]Command, len(commandNames))
	for cmd, name := range commandNames {
		m[name] = cmd
	}
	return m
}()

// Fixture is a YAML-file-backed Reader for a single mission, for local
// testing and for the CLI's check command when its mission argument is a
// .yaml/.yml file instead of a SQLite store.
type Fixture struct {
	items []Item
}

// LoadFixture reads a mission fixture from path.
func LoadFixture(path string) (*Fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read mission fixture")
	}

	var f fixtureFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, errors.Wrap(err, "parse mission fixture")
	}

	items := make([]Item, len(f.Items))
	for i, fi := range f.Items {
		cmd, ok := fixtureCommandNames[fi.Command]
		if !ok {
			return nil, errors.Errorf("mission fixture item %d: unknown command %q", i, fi.Command)
		}
		items[i] = Item{
			Command:            cmd,
			Lat:                fi.Lat,
			Lon:                fi.Lon,
			Altitude:           fi.Altitude,
			AltitudeIsRelative: fi.RelativeAlt,
			AcceptanceRadius:   fi.AcceptanceRadius,
			LoiterRadius:       fi.LoiterRadius,
			Params:             fi.Params,
		}
	}

	return &Fixture{items: items}, nil
}

func (f *Fixture) ReadAt(_ context.Context, _ string, index int) (Item, error) {
	if index < 0 || index >= len(f.items) {
		return Item{}, errors.New("mission fixture item not found")
	}
	return f.items[index], nil
}

func (f *Fixture) Count(_ context.Context, _ string) (int, error) {
	return len(f.items), nil
}

var _ Reader = (*Fixture)(nil)
