// Package main defines the entry point of a read-only beacon node serving
// consensus accounting queries over its local store.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/seaham/beacond/beacon-chain/db"
	"github.com/seaham/beacond/beacon-chain/rpc"
	"github.com/seaham/beacond/config/params"
)

var log = logrus.WithField("prefix", "main")

var (
	dataDirFlag = &cli.StringFlag{
		Name:  "datadir",
		Usage: "Data directory for the database",
		Value: defaultDataDir(),
	}
	httpHostFlag = &cli.StringFlag{
		Name:  "http-host",
		Usage: "Host on which the HTTP server listens",
		Value: "127.0.0.1",
	}
	httpPortFlag = &cli.StringFlag{
		Name:  "http-port",
		Usage: "Port on which the HTTP server listens",
		Value: "3500",
	}
	chainConfigFileFlag = &cli.StringFlag{
		Name:  "chain-config-file",
		Usage: "Path to a YAML file with chain config values",
	}
	verbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity (trace, debug, info, warn, error, fatal, panic)",
		Value: "info",
	}
)

func main() {
	app := cli.App{
		Name:  "beacond",
		Usage: "Serves beacon chain block, reward and fork choice queries from a local store",
		Flags: []cli.Flag{
			dataDirFlag,
			httpHostFlag,
			httpPortFlag,
			chainConfigFileFlag,
			verbosityFlag,
		},
		Before: func(ctx *cli.Context) error {
			level, err := logrus.ParseLevel(ctx.String(verbosityFlag.Name))
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			return nil
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("Could not run beacond")
	}
}

func run(cliCtx *cli.Context) error {
	if cfgPath := cliCtx.String(chainConfigFileFlag.Name); cfgPath != "" {
		params.LoadChainConfigFile(cfgPath)
	}

	ctx := context.Background()
	store, err := db.NewDB(cliCtx.String(dataDirFlag.Name))
	if err != nil {
		return err
	}
	log.WithField("path", store.DatabasePath()).Info("Opened beacon chain database")

	svc := rpc.NewService(ctx, &rpc.Config{
		Host:     cliCtx.String(httpHostFlag.Name),
		Port:     cliCtx.String(httpPortFlag.Name),
		BeaconDB: store,
	})
	svc.Start()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	log.Info("Stopping beacond")

	if err := svc.Stop(); err != nil {
		log.WithError(err).Error("Could not stop HTTP service")
	}
	return store.Close()
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "beacond-data"
	}
	return home + "/.beacond"
}
