package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault"
	vaultd "github.com/iov-one/vault/cmd/vaultd/app"
	"github.com/iov-one/vault/crypto"
	"github.com/iov-one/vault/errors"
	"github.com/tendermint/tendermint/abci/server"
	"github.com/urfave/cli/v2"
)

const (
	flagHome      = "home"
	flagBind      = "bind"
	flagDebug     = "debug"
	flagLogLevel  = "log-level"
	flagGenesis   = "genesis"
	flagAdmin     = "admin"
	flagVault     = "vault"
	flagMinAmount = "min-amount"
	flagMaxAmount = "max-amount"
	flagKey       = "key"
)

// loadConfig reads the environment and applies the command line overrides.
func loadConfig(c *cli.Context) (vaultd.Config, error) {
	conf, err := vaultd.LoadConfig()
	if err != nil {
		return conf, err
	}
	if c.IsSet(flagHome) {
		conf.Home = c.String(flagHome)
	}
	if c.IsSet(flagBind) {
		conf.Bind = c.String(flagBind)
	}
	if c.IsSet(flagDebug) {
		conf.Debug = c.Bool(flagDebug)
	}
	if c.IsSet(flagLogLevel) {
		conf.LogLevel = c.String(flagLogLevel)
	}
	return conf, conf.Validate()
}

func startCommand() *cli.Command {
	return &cli.Command{
		Name:  "start",
		Usage: "Run the abci server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagBind, Usage: "address server listens on"},
			&cli.BoolFlag{Name: flagDebug, Usage: "call stack returned on error"},
			&cli.StringFlag{Name: flagLogLevel, Usage: "debug, info, error or none"},
		},
		Action: func(c *cli.Context) error {
			conf, err := loadConfig(c)
			if err != nil {
				return err
			}
			logger, err := conf.Logger()
			if err != nil {
				return err
			}
			app, err := vaultd.GenerateApp(conf, logger)
			if err != nil {
				return err
			}

			logger.Info("Starting ABCI app", "bind", conf.Bind, "home", conf.Home)
			svr, err := server.NewServer(conf.Bind, "socket", app)
			if err != nil {
				return errors.Wrap(errors.ErrInput, err.Error())
			}
			svr.SetLogger(logger.With("module", "abci-server"))
			if err := svr.Start(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()
			logger.Info("Stopping ABCI app")
			return svr.Stop()
		},
	}
}

func initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Set the app_state of a tendermint genesis file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagGenesis, Usage: "genesis file, defaults to <home>/config/genesis.json"},
			&cli.StringFlag{Name: flagAdmin, Usage: "address of the vault admin, defaults to the address of the key file"},
			&cli.StringFlag{Name: flagKey, Usage: "private key file, defaults to <home>/admin.key"},
			&cli.StringFlag{Name: flagVault, Value: "main", Usage: "ID of the vault created at genesis"},
			&cli.Uint64Flag{Name: flagMinAmount, Value: 1000000, Usage: "smallest accepted contribution"},
			&cli.Uint64Flag{Name: flagMaxAmount, Value: 100000000000, Usage: "largest accepted contribution"},
		},
		Action: func(c *cli.Context) error {
			conf, err := loadConfig(c)
			if err != nil {
				return err
			}

			var admin vault.Address
			if enc := c.String(flagAdmin); enc != "" {
				if admin, err = vault.ParseAddress(enc); err != nil {
					return errors.Wrap(err, "admin")
				}
			} else {
				key, err := readKey(keyPath(c, conf))
				if err != nil {
					return err
				}
				admin = key.PublicKey().Address()
			}

			opts, err := vaultd.GenInitOptions(admin, vaultd.GenesisVault{
				ID:        c.String(flagVault),
				MinAmount: c.Uint64(flagMinAmount),
				MaxAmount: c.Uint64(flagMaxAmount),
			})
			if err != nil {
				return err
			}

			genesis := c.String(flagGenesis)
			if genesis == "" {
				genesis = filepath.Join(conf.Home, "config", "genesis.json")
			}
			if err := vaultd.AddGenesisOptions(genesis, opts); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "genesis %s updated, admin %s\n", genesis, admin)
			return nil
		},
	}
}

func keygenCommand() *cli.Command {
	return &cli.Command{
		Name:  "keygen",
		Usage: "Create a new ed25519 private key",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagKey, Usage: "private key file, defaults to <home>/admin.key"},
		},
		Action: func(c *cli.Context) error {
			conf, err := loadConfig(c)
			if err != nil {
				return err
			}
			path := keyPath(c, conf)
			if _, err := os.Stat(path); err == nil {
				return errors.Wrapf(errors.ErrDuplicate, "key file %s", path)
			}

			key := crypto.GenPrivKeyEd25519()
			raw, err := proto.Marshal(key)
			if err != nil {
				return errors.Wrap(errors.ErrInput, err.Error())
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
				return errors.Wrap(errors.ErrInput, err.Error())
			}
			if err := ioutil.WriteFile(path, raw, 0o600); err != nil {
				return errors.Wrap(errors.ErrInput, err.Error())
			}

			addr := key.PublicKey().Address()
			b32, err := addr.Bech32()
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%s\n%s\n", addr, b32)
			return nil
		},
	}
}

func keyPath(c *cli.Context, conf vaultd.Config) string {
	if p := c.String(flagKey); p != "" {
		return p
	}
	return filepath.Join(conf.Home, "admin.key")
}

func readKey(path string) (*crypto.PrivateKey, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrNotFound, err.Error())
	}
	var key crypto.PrivateKey
	if err := proto.Unmarshal(raw, &key); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	if len(key.Ed25519) == 0 {
		return nil, errors.Wrapf(errors.ErrEmpty, "key file %s", path)
	}
	return &key, nil
}
