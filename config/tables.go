package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
)

// TableDir is where the game looks for JSON table overrides.
const TableDir = "tables"

// LoadTables applies ships.json and enemies.json from fsys. Missing files
// are skipped; a table that fails to decode leaves its defaults untouched.
func LoadTables(fsys fs.FS) error {
	tables := []struct {
		name string
		load func(fs.FS, string) error
	}{
		{"ships.json", LoadShips},
		{"enemies.json", LoadEnemies},
	}
	for _, t := range tables {
		if err := t.load(fsys, t.name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// LoadShips decodes a ship table keyed by ship id ("1", "2", ...) and merges
// it into Ships. Fields missing from a record keep the DefaultShip values.
func LoadShips(fsys fs.FS, path string) error {
	raw, err := readTable(fsys, path)
	if err != nil {
		return err
	}

	loaded := make(map[int]PlayerShipConfig, len(raw))
	for key, msg := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("ship table %s: bad id %q: %w", path, key, err)
		}
		ship := Ship(id)
		if err := json.Unmarshal(msg, &ship); err != nil {
			return fmt.Errorf("ship table %s: ship %d: %w", path, id, err)
		}
		loaded[id] = ship
	}

	for id, ship := range loaded {
		Ships[id] = ship
	}
	return nil
}

// LoadEnemies decodes an enemy table keyed by variant name and merges it into
// Enemies. Fields missing from a record keep the DefaultEnemy values.
func LoadEnemies(fsys fs.FS, path string) error {
	raw, err := readTable(fsys, path)
	if err != nil {
		return err
	}

	loaded := make(map[string]EnemyVariantConfig, len(raw))
	for key, msg := range raw {
		variant := EnemyVariant(key)
		if err := json.Unmarshal(msg, &variant); err != nil {
			return fmt.Errorf("enemy table %s: variant %q: %w", path, key, err)
		}
		if variant.HP <= 0 {
			return fmt.Errorf("enemy table %s: variant %q: hp must be positive", path, key)
		}
		loaded[key] = variant
	}

	for key, variant := range loaded {
		Enemies[key] = variant
	}
	return nil
}

func readTable(fsys fs.FS, path string) (map[string]json.RawMessage, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", path, err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse table %s: %w", path, err)
	}
	return raw, nil
}
