package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the starting layout of a simulated world, loaded from YAML.
type Scenario struct {
	StartTick uint32      `yaml:"start_tick"`
	Rooms     []RoomSpec  `yaml:"rooms"`
	Creeps    []CreepSpec `yaml:"creeps"`
	Memory    []string    `yaml:"memory"` // persisted entries that exist before the first tick
}

type RoomSpec struct {
	Name       string          `yaml:"name"`
	Controller *ControllerSpec `yaml:"controller"`
	Sources    []SourceSpec    `yaml:"sources"`
	Spawns     []SpawnSpec     `yaml:"spawns"`
	Sites      []SiteSpec      `yaml:"sites"`
}

type ControllerSpec struct {
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
	Level int `yaml:"level"`
}

type SourceSpec struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Energy int `yaml:"energy"` // 0 = full
}

type SpawnSpec struct {
	Name   string `yaml:"name"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Energy int    `yaml:"energy"`
}

type SiteSpec struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Structure string `yaml:"structure"`
	Total     int    `yaml:"total"`
}

type CreepSpec struct {
	Name   string   `yaml:"name"`
	Room   string   `yaml:"room"`
	X      int      `yaml:"x"`
	Y      int      `yaml:"y"`
	Body   []string `yaml:"body"`
	Energy int      `yaml:"energy"`
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(sc.Rooms) == 0 {
		return nil, fmt.Errorf("scenario has no rooms")
	}
	seen := make(map[string]bool)
	for _, r := range sc.Rooms {
		if r.Name == "" {
			return nil, fmt.Errorf("scenario room without name")
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("duplicate room %s", r.Name)
		}
		seen[r.Name] = true
	}
	return &sc, nil
}
