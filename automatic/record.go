package automatic

import "gopkg.in/yaml.v3"

// GameRecord is one finished autoplay game, in the shape we want for the
// YAML game log.
type GameRecord struct {
	ID    string        `yaml:"id"`
	First string        `yaml:"first"`
	Turns int           `yaml:"turns"`
	Final []PlayerFinal `yaml:"final"`
	Log   []string      `yaml:"log,omitempty"`
}

type PlayerFinal struct {
	Nickname string `yaml:"nickname"`
	Points   int    `yaml:"points"`
	Bingos   int    `yaml:"bingos"`
}

// yamlRecord marshals the record as a one-element sequence, so that
// appending records to the same file keeps the file a single valid YAML
// list.
func yamlRecord(rec *GameRecord) ([]byte, error) {
	return yaml.Marshal([]*GameRecord{rec})
}
