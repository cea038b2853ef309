// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/urfave/cli"

	"github.com/neobex/neobexd/command/neobex-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that do not read the configuration file
var noConfiguration = map[string]bool{
	"":         true,
	"help":     true,
	"h":        true,
	"version":  true,
	"generate": true,
	"id":       true,
}

func main() {

	app := cli.NewApp()
	app.Name = "neobex-cli"
	app.Usage = "trade on a neobexd market"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` [$XDG_CONFIG_HOME/neobex-cli/neobex-cli.json]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}

	currencyFlag := cli.StringFlag{
		Name:  "currency, u",
		Value: "NBX",
		Usage: " pricing currency `CODE` [NBX|USD]",
	}
	idFlag := cli.StringFlag{
		Name:  "id",
		Value: "",
		Usage: " record `ID` (generated if blank)",
	}
	wantedFlag := cli.StringSliceFlag{
		Name:  "wanted, w",
		Usage: "*wanted record `ID`, repeat or comma separate",
	}

	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "initialise neobex-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*neobexd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " using existing private key or seed `HEX`",
				},
				cli.StringFlag{
					Name:  "fingerprint, f",
					Value: "",
					Usage: " expected server certificate SHA3-256 `HEX`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " using existing private key or seed `HEX`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " receive only identity for `ACCOUNT`",
				},
				cli.BoolFlag{
					Name:  "default",
					Usage: " make this the default identity",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: " ",
			Action:    runGenerate,
		},
		{
			Name:      "id",
			Usage:     "generate a random record id",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Value: "offer",
					Usage: " record `KIND` [offer|sale|auction]",
				},
			},
			Action: runId,
		},
		{
			Name:      "balance",
			Usage:     "display token balance",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " identity name or `ACCOUNT` [current identity]",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "transfer",
			Usage:     "transfer tokens to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*identity name or `ACCOUNT` to receive",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Usage: "*token base units `AMOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "sell",
			Usage:     "put an item up for sale at a fixed price",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.Uint64Flag{
					Name:  "amount, a",
					Usage: "*price `AMOUNT`",
				},
				currencyFlag,
				cli.DurationFlag{
					Name:  "valid-for, d",
					Value: 24 * time.Hour,
					Usage: " sale lasts for `DURATION`",
				},
			},
			Action: runSell,
		},
		{
			Name:      "auction",
			Usage:     "put an item up for auction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.Uint64Flag{
					Name:  "minimum, m",
					Usage: " minimum bid `AMOUNT`",
				},
				currencyFlag,
				cli.DurationFlag{
					Name:  "closing-in, d",
					Value: 24 * time.Hour,
					Usage: " auction closes after `DURATION`",
				},
			},
			Action: runAuction,
		},
		{
			Name:      "offer",
			Usage:     "offer items and/or tokens for wanted records",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.Uint64Flag{
					Name:  "items, n",
					Usage: " worth of the offered items `AMOUNT`",
				},
				cli.Uint64Flag{
					Name:  "total, t",
					Usage: "*total worth including tokens `AMOUNT`",
				},
				currencyFlag,
				wantedFlag,
				cli.DurationFlag{
					Name:  "valid-for, d",
					Usage: " offer lasts for `DURATION` [no limit]",
				},
			},
			Action: runOffer,
		},
		{
			Name:      "bid",
			Usage:     "bid on an auction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.StringFlag{
					Name:  "auction, a",
					Value: "",
					Usage: "*auction `ID`",
				},
				cli.Uint64Flag{
					Name:  "total, t",
					Usage: "*bid `AMOUNT`",
				},
				currencyFlag,
			},
			Action: runBid,
		},
		{
			Name:      "cancel",
			Usage:     "cancel an offer, bid, sale or auction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id",
					Value: "",
					Usage: "*record `ID`",
				},
				cli.BoolFlag{
					Name:  "bid, b",
					Usage: " the offer id is a bid",
				},
			},
			Action: runCancel,
		},
		{
			Name:      "want",
			Usage:     "add wanted ids to an offer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id",
					Value: "",
					Usage: "*offer `ID`",
				},
				wantedFlag,
			},
			Action: runWant,
		},
		{
			Name:      "unwant",
			Usage:     "remove wanted ids from an offer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id",
					Value: "",
					Usage: "*offer `ID`",
				},
				wantedFlag,
			},
			Action: runUnwant,
		},
		{
			Name:      "show",
			Usage:     "display an offer, sale or auction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id",
					Value: "",
					Usage: "*record `ID`",
				},
			},
			Action: runShow,
		},
		{
			Name:      "list",
			Usage:     "list records of one kind",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Value: "offer",
					Usage: " record `KIND` [offer|sale|auction]",
				},
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " first `ID` to list",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records `COUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:      "info",
			Usage:     "display neobexd and token status",
			ArgsUsage: " ",
			Action:    runInfo,
		},
		{
			Name:      "version",
			Usage:     "display neobex-cli version",
			ArgsUsage: " ",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		file, err := configurationFile(c.GlobalString("config"), app.Name)
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		m := &metadata{
			file:    file,
			save:    false,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if noConfiguration[command] {
			return nil
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		m.config, err = configuration.Load(file)
		return err
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if m.verbose {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			return configuration.Save(m.file, m.config)
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// explicit file or the default under XDG_CONFIG_HOME
func configurationFile(file string, name string) (string, error) {
	if "" != file {
		return file, nil
	}

	p := os.Getenv("XDG_CONFIG_HOME")
	if "" == p {
		return "", fmt.Errorf("XDG_CONFIG_HOME environment is not set")
	}
	dir, err := checkFileExists(p)
	if nil != err {
		return "", err
	}
	if !dir {
		return "", fmt.Errorf("not a directory: %q", p)
	}
	return path.Join(p, name, name+".json"), nil
}
