// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/configuration"
	"github.com/neobex/neobexd/currency"
	"github.com/neobex/neobexd/ledger"
	"github.com/neobex/neobexd/publish"
	"github.com/neobex/neobexd/rpc/listeners"
	"github.com/neobex/neobexd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "neobex.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "neobexd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10

	defaultFeePercentage   = 1
	defaultMaximumFee      = ledger.DefaultMaximumFee * ledger.Factor
	defaultAuctionInterval = 60 // seconds
	defaultFundingAsset    = "ETH"
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// ICOType - token sale window; zero values take the defaults
type ICOType struct {
	Asset           string `gluamapper:"asset" json:"asset"`
	StartTime       uint64 `gluamapper:"start_time" json:"start_time"`
	Days            uint64 `gluamapper:"days" json:"days"`
	BonusDays       uint64 `gluamapper:"bonus_days" json:"bonus_days"`
	BonusPercentage uint64 `gluamapper:"bonus_percentage" json:"bonus_percentage"`
	BaseRate        uint64 `gluamapper:"base_rate" json:"base_rate"`
	MaximumSupply   uint64 `gluamapper:"maximum_supply" json:"maximum_supply"`
}

type MarketType struct {
	Owner           string  `gluamapper:"owner" json:"owner"`
	UsdToNbxRate    uint64  `gluamapper:"usd_to_nbx_rate" json:"usd_to_nbx_rate"`
	FeePercentage   uint64  `gluamapper:"fee_percentage" json:"fee_percentage"`
	MaximumFee      uint64  `gluamapper:"maximum_fee" json:"maximum_fee"`
	AuctionInterval uint64  `gluamapper:"auction_interval" json:"auction_interval"`
	ICO             ICOType `gluamapper:"ico" json:"ico"`
}

type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType `gluamapper:"database" json:"database"`
	Market        MarketType   `gluamapper:"market" json:"market"`

	ClientRPC  listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Publishing publish.Configuration      `gluamapper:"publishing" json:"publishing"`
	Logging    logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Market: MarketType{
			UsdToNbxRate:    currency.DefaultUsdToNbxRate,
			FeePercentage:   defaultFeePercentage,
			MaximumFee:      defaultMaximumFee,
			AuctionInterval: defaultAuctionInterval,
			ICO: ICOType{
				Asset: defaultFundingAsset,
			},
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	variables := map[string]string{
		"config_directory": dataDirectory,
	}
	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	if _, err := account.FromBase58(options.Market.Owner); nil != err {
		return nil, fmt.Errorf("market owner: %q  error: %s", options.Market.Owner, err)
	}
	if 0 == options.Market.UsdToNbxRate {
		return nil, fmt.Errorf("market usd_to_nbx_rate must be positive")
	}
	if options.Market.FeePercentage > 100 {
		return nil, fmt.Errorf("market fee_percentage: %d exceeds 100", options.Market.FeePercentage)
	}
	if 0 == options.Market.AuctionInterval {
		return nil, fmt.Errorf("market auction_interval must be positive")
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.Publishing.PrivateKey,
		&options.Publishing.PublicKey,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		if !util.IsPlainName(*f[0]) {
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
		if nil != f[1] {
			*f[0] = util.EnsureAbsolute(*f[1], *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// owner - the clearing account, already checked by getConfiguration
func (m *MarketType) owner() account.Account {
	a, _ := account.FromBase58(m.Owner)
	return a
}

// fees - fee schedule applied at settlement
func (m *MarketType) fees() ledger.Fees {
	return ledger.Fees{
		Percentage: m.FeePercentage,
		Maximum:    m.MaximumFee,
	}
}

// ico - the sale window, unset fields take the default schedule
func (m *MarketType) ico() ledger.ICO {
	ico := ledger.DefaultICO(m.ICO.Asset, m.ICO.StartTime)
	if 0 != m.ICO.Days {
		ico.Days = m.ICO.Days
	}
	if 0 != m.ICO.BonusDays {
		ico.BonusDays = m.ICO.BonusDays
	}
	if 0 != m.ICO.BonusPercentage {
		ico.BonusPercentage = m.ICO.BonusPercentage
	}
	if 0 != m.ICO.BaseRate {
		ico.BaseRate = m.ICO.BaseRate
	}
	if 0 != m.ICO.MaximumSupply {
		ico.MaximumSupply = m.ICO.MaximumSupply
	}
	return ico
}

// interval between auction sweeps
func (m *MarketType) auctionInterval() time.Duration {
	return time.Duration(m.AuctionInterval) * time.Second
}
