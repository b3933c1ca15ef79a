package main

import (
	"encoding/json"
	"fmt"
	"os"

	dst "github.com/next-exp/evm_go/pkg"
)

func LoadConfiguration(filename string) (dst.Configuration, error) {
	var config dst.Configuration

	// Set default values
	config.MaxEvents = 1000000000
	config.Verbosity = 0
	config.NoDB = false
	config.Discard = true
	config.Skip = 0
	config.Host = "next.ific.uv.es"
	config.User = "nextreader"
	config.Passwd = "readonly"
	config.DBName = "NEXT100"
	config.NumWorkers = 1
	config.WriteData = true
	config.WriteHits = true
	config.WriteKr = true
	config.WriteVoxels = true
	config.CompressionLevel = 4
	config.NPmt = 60
	config.NSipm = 3584
	config.PmtWL = 64000
	config.SipmWL = 1600

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = json.Unmarshal(data, &config)
	if err != nil {
		return config, err
	}
	return config, nil
}

func printConfiguration(config dst.Configuration, logger Logger) {
	logger.Info(fmt.Sprintf("File in: %s", config.FileIn), "config")
	logger.Info(fmt.Sprintf("File out: %s", config.FileOut), "config")
	logger.Info(fmt.Sprintf("Stream out: %s", config.StreamOut), "config")
	logger.Info(fmt.Sprintf("Run number: %d", config.RunNumber), "config")
	logger.Info(fmt.Sprintf("No DB: %t", config.NoDB), "config")
	logger.Info(fmt.Sprintf("Host: %s", config.Host), "config")
	logger.Info(fmt.Sprintf("DB name: %s", config.DBName), "config")
	logger.Info(fmt.Sprintf("Skip: %d", config.Skip), "config")
	logger.Info(fmt.Sprintf("Max events: %d", config.MaxEvents), "config")
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "config")
	logger.Info(fmt.Sprintf("Discard: %t", config.Discard), "config")
	logger.Info(fmt.Sprintf("Write data: %t", config.WriteData), "config")
	logger.Info(fmt.Sprintf("Write hits: %t", config.WriteHits), "config")
	logger.Info(fmt.Sprintf("Write kr: %t", config.WriteKr), "config")
	logger.Info(fmt.Sprintf("Write voxels: %t", config.WriteVoxels), "config")
	logger.Info(fmt.Sprintf("Compression level: %d", config.CompressionLevel), "config")
	logger.Info(fmt.Sprintf("Number of workers: %d", config.NumWorkers), "config")
	if config.NoDB {
		logger.Info(fmt.Sprintf("Sensors: %d PMTs (%d samples), %d SiPMs (%d samples)",
			config.NPmt, config.PmtWL, config.NSipm, config.SipmWL), "config")
	}
}
