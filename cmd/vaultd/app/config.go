package app

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"
)

// Config holds the node settings. Every value can be set with an
// environment variable and overridden by a command line flag.
type Config struct {
	// Home is the directory holding the application database.
	Home string `env:"VAULTD_HOME"`
	// Bind is the address the ABCI server listens on.
	Bind string `env:"VAULTD_BIND" envDefault:"tcp://localhost:26658"`
	// LogLevel is one of debug, info, error or none.
	LogLevel string `env:"VAULTD_LOG_LEVEL" envDefault:"info"`
	// Debug returns full error information to clients.
	Debug bool `env:"VAULTD_DEBUG"`
	// DBBackend is the tendermint database backend, for example
	// goleveldb or memdb.
	DBBackend string `env:"VAULTD_DB_BACKEND" envDefault:"goleveldb"`
	// CacheSize is the number of iavl nodes kept in memory.
	CacheSize int `env:"VAULTD_CACHE_SIZE" envDefault:"10000"`
	// MinReserve is the balance every vault keeps out of reach of
	// regular and emergency withdrawals.
	MinReserve uint64 `env:"VAULTD_MIN_RESERVE"`
}

// LoadConfig reads the configuration from the environment. Home defaults to
// $HOME/.vaultd.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return c, errors.Wrap(errors.ErrInput, err.Error())
	}
	if c.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return c, errors.Wrap(errors.ErrInput, err.Error())
		}
		c.Home = filepath.Join(home, ".vaultd")
	}
	return c, c.Validate()
}

// Validate returns an error if any value cannot be used to start a node.
func (c Config) Validate() error {
	var errs error
	if c.Bind == "" {
		errs = errors.AppendField(errs, "Bind", errors.ErrEmpty)
	}
	if _, err := log.AllowLevel(c.LogLevel); err != nil {
		errs = errors.AppendField(errs, "LogLevel", errors.Wrap(errors.ErrInput, err.Error()))
	}
	switch dbm.DBBackendType(c.DBBackend) {
	case dbm.GoLevelDBBackend, dbm.CLevelDBBackend, dbm.MemDBBackend, dbm.FSDBBackend:
	default:
		errs = errors.AppendField(errs, "DBBackend", errors.Wrapf(errors.ErrInput, "unknown backend %q", c.DBBackend))
	}
	if c.CacheSize <= 0 {
		errs = errors.AppendField(errs, "CacheSize", errors.Wrap(errors.ErrInput, "must be greater than zero"))
	}
	return errs
}

// Logger returns a tendermint logger writing to stdout that drops entries
// below the configured level.
func (c Config) Logger() (log.Logger, error) {
	allow, err := log.AllowLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout))
	return log.NewFilter(logger, allow).With("module", "vaultd"), nil
}

// CommitStore opens the application database under the home directory.
func (c Config) CommitStore() (iavl.CommitStore, error) {
	if dbm.DBBackendType(c.DBBackend) == dbm.MemDBBackend {
		return iavl.NewCommitStoreFromDB(dbm.NewMemDB(), c.CacheSize), nil
	}
	dir, err := filepath.Abs(filepath.Join(c.Home, "data"))
	if err != nil {
		return iavl.CommitStore{}, errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return iavl.CommitStore{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	db := dbm.NewDB("vault", dbm.DBBackendType(c.DBBackend), dir)
	return iavl.NewCommitStoreFromDB(db, c.CacheSize), nil
}
