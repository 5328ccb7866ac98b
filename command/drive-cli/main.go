// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/drived/fault"
)

// set by the linker: go build -ldflags "-X main.cliVersion=M.N" ./...
var cliVersion = "zero" // do not change this value

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if loggerStarted {
		fault.Finalise()
		logger.Finalise()
	}
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "drive-cli"
	app.Usage = "operate a local document drive"
	app.Version = cliVersion
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
			Value: "drived.conf",
			Usage: " configuration `FILE`",
		},
		cli.Uint64Flag{
			Name:  "time, t",
			Value: 0,
			Usage: " block time in `MILLISECONDS` [default now]",
		},
		cli.UintFlag{
			Name:  "core-height",
			Value: 0,
			Usage: " core chain locked `HEIGHT` [default previous block]",
		},
		cli.UintFlag{
			Name:  "epoch, e",
			Value: 0,
			Usage: " fee `EPOCH` of new blocks",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "init",
			Usage:     "create the root structure of an empty drive",
			ArgsUsage: "\n   (* = required)",
			Action:    runInit,
		},
		{
			Name:      "load-contract",
			Usage:     "apply a data contract from a JSON file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*contract JSON `FILE`",
				},
			},
			Action: runLoadContract,
		},
		{
			Name:      "identity",
			Usage:     "create an identity with an initial balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*base58 identity or @name for a seeded identity `ID`",
				},
				cli.Uint64Flag{
					Name:  "balance, b",
					Value: 0,
					Usage: "*initial balance in `CREDITS`",
				},
			},
			Action: runIdentity,
		},
		{
			Name:      "insert",
			Usage:     "create a document through a documents batch",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "contract, C",
					Value: "",
					Usage: "*data contract `ID`",
				},
				cli.StringFlag{
					Name:  "type, T",
					Value: "",
					Usage: "*document type `NAME`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner identity `ID`",
				},
				cli.StringFlag{
					Name:  "properties, p",
					Value: "",
					Usage: "*document properties `JSON`",
				},
				cli.StringFlag{
					Name:  "entropy",
					Value: "",
					Usage: " document id entropy `STRING` [default properties]",
				},
				cli.BoolFlag{
					Name:  "prove",
					Usage: " output a proof of the committed result",
				},
			},
			Action: runInsert,
		},
		{
			Name:      "vote",
			Usage:     "cast a masternode vote in a contest",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append(pollFlags(),
				cli.StringFlag{
					Name:  "voter",
					Value: "",
					Usage: "*voting identity `ID`",
				},
				cli.StringFlag{
					Name:  "towards",
					Value: "",
					Usage: "+vote for contender `ID`",
				},
				cli.BoolFlag{
					Name:  "abstain",
					Usage: "+abstain",
				},
				cli.BoolFlag{
					Name:  "lock",
					Usage: "+vote to lock the value",
				},
				cli.BoolFlag{
					Name:  "prove",
					Usage: " output a proof of the committed result",
				},
			),
			Action: runVote,
		},
		{
			Name:      "end-block",
			Usage:     "commit a block resolving every poll ended by its time",
			ArgsUsage: "\n   (* = required)",
			Action:    runEndBlock,
		},
		{
			Name:      "vote-state",
			Usage:     "show the tallies of a contest",
			ArgsUsage: "\n   (* = required)",
			Flags: append(pollFlags(),
				cli.BoolFlag{
					Name:  "documents, d",
					Usage: " include contender documents",
				},
				cli.BoolFlag{
					Name:  "prove",
					Usage: " output a proof instead of the state",
				},
			),
			Action: runVoteState,
		},
		{
			Name:      "prove-document",
			Usage:     "output a proof of a document",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "contract, C",
					Value: "",
					Usage: "*data contract `ID`",
				},
				cli.StringFlag{
					Name:  "type, T",
					Value: "",
					Usage: "*document type `NAME`",
				},
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*document `ID`",
				},
			},
			Action: runProveDocument,
		},
		{
			Name:      "verify-proof",
			Usage:     "verify a proof produced by this program",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "file, f",
					Usage: " proof `FILE`, repeat to verify several [default stdin]",
				},
			},
			Action: runVerifyProof,
		},
		{
			Name:      "credits",
			Usage:     "check that all credits are accounted for",
			ArgsUsage: "\n   (* = required)",
			Action:    runCredits,
		},
	}

	app.Before = func(c *cli.Context) error {

		command := c.Args().Get(0)
		if "" == command || "help" == command || "h" == command {
			return nil
		}

		m, err := open(c.GlobalString("config"))
		if nil != err {
			return err
		}
		m.verbose = c.GlobalBool("verbose")
		m.e = c.App.ErrWriter
		m.w = c.App.Writer

		c.App.Metadata["config"] = m
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		delete(c.App.Metadata, "config")
		return m.close()
	}

	return app
}

// flags naming one contested value tuple
func pollFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "contract, C",
			Value: "",
			Usage: "*data contract `ID`",
		},
		cli.StringFlag{
			Name:  "type, T",
			Value: "",
			Usage: "*document type `NAME`",
		},
		cli.StringFlag{
			Name:  "index, x",
			Value: "",
			Usage: " contested index `NAME` [default the type's contested index]",
		},
		cli.StringFlag{
			Name:  "values",
			Value: "",
			Usage: "*index values as a JSON array `VALUES`",
		},
	}
}
