package tripdb

import "taxidash.io/internal/appconf"

// MemoryPath selects an in-memory database.
const MemoryPath = ":memory:"

// Config holds configuration options for the Client
type Config struct {
	DBPath string
	Env    appconf.Environment
}

func NewConfig(dbPath string, env appconf.Environment) Config {
	return Config{
		DBPath: dbPath,
		Env:    env,
	}
}
