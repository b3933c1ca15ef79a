package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	sqlx "github.com/jmoiron/sqlx"
	evm "github.com/next-exp/evm_go/evm"
	dst "github.com/next-exp/evm_go/pkg"
	"github.com/next-exp/evm_go/pkg/h5writer"
)

var dbConn *sqlx.DB
var configuration dst.Configuration

var (
	logger         Logger
	VerbosityLevel int
	DiscardErrors  bool
)

func init() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	handlerStdOut := NewHandler(os.Stdout, opts)
	handlerStdErr := slog.NewJSONHandler(os.Stderr, opts)
	logger = Logger{
		InfoLog:  slog.New(handlerStdOut),
		ErrorLog: slog.New(handlerStdErr),
	}
}

func main() {
	configFilename := flag.String("config", "", "Configuration file path")
	flag.Parse()

	var err error
	configuration, err = LoadConfiguration(*configFilename)
	if err != nil {
		message := fmt.Errorf("Error reading configuration file: %w", err)
		logger.Error(message.Error())
		os.Exit(1)
	}
	dst.SetConfiguration(configuration)
	dst.SetLogger(logger)

	VerbosityLevel = configuration.Verbosity
	DiscardErrors = configuration.Discard
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Reading configuration file: %s", *configFilename)
		logger.Info(message, "main")
		printConfiguration(configuration, logger)
	}

	if err := run(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	sensorParams, err := loadSensorParams()
	if err != nil {
		return err
	}
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Sensor params: %s", sensorParams)
		logger.Info(message, "main")
	}

	file, err := os.Open(configuration.FileIn)
	if err != nil {
		return fmt.Errorf("Error opening file: %w", err)
	}
	defer file.Close()

	writers, closeWriters, err := createWriters()
	if err != nil {
		return err
	}
	if len(writers) == 0 {
		logger.Info("No output file configured, events will only be validated", "main")
	}

	for _, writer := range writers {
		if err := writer.WriteSensorParams(sensorParams); err != nil {
			return joinClose(fmt.Errorf("error writing sensor params: %w", err), closeWriters)
		}
	}

	start := time.Now()
	fileReader := NewFileReader(file, configuration.Skip, configuration.MaxEvents)
	jobs := make(chan WorkerData, 100)
	readErr := make(chan error, 1)
	go sendEventsToWorkers(fileReader, jobs, readErr)
	results := startWorkers(configuration.NumWorkers, jobs)

	discarded := 0
	processed, err := processWorkerResults(results, func(result WorkerResult) error {
		if result.Err != nil {
			if !DiscardErrors {
				return fmt.Errorf("error building event: %w", result.Err)
			}
			logger.Error(fmt.Sprintf("discarding event: %v", result.Err))
			discarded++
			return nil
		}
		if VerbosityLevel > 1 {
			message := fmt.Sprintf("Writing event %d", result.Event.EventNumber())
			logger.Info(message, "main")
		}
		return dst.ProcessRecoEvent(result.Event, configuration, writers...)
	})
	if err != nil {
		return joinClose(err, closeWriters)
	}
	if err := <-readErr; err != nil {
		return joinClose(err, closeWriters)
	}

	if err := closeWriters(); err != nil {
		return err
	}
	duration := time.Since(start)
	message := fmt.Sprintf("Events processed: %d, discarded: %d, total time: %d ms",
		processed-discarded, discarded, duration.Milliseconds())
	logger.Info(message, "main")
	return nil
}

func loadSensorParams() (evm.SensorParams, error) {
	if configuration.NoDB {
		return evm.NewSensorParams(configuration.NPmt, configuration.PmtWL,
			configuration.NSipm, configuration.SipmWL), nil
	}

	var err error
	dbConn, err = dst.ConnectToDatabase(configuration.User, configuration.Passwd, configuration.Host, configuration.DBName)
	if err != nil {
		return evm.SensorParams{}, fmt.Errorf("Error connection to database: %w", err)
	}
	defer dbConn.Close()

	return dst.LoadSensorParams(dbConn, configuration.RunNumber, configuration.PmtWL, configuration.SipmWL)
}

func createWriters() ([]dst.EventWriter, func() error, error) {
	var writers []dst.EventWriter
	var closers []func() error
	closeAll := func() error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}

	if configuration.FileOut != "" {
		writer, err := h5writer.NewWriter(configuration.FileOut, configuration.CompressionLevel)
		if err != nil {
			return nil, nil, err
		}
		writers = append(writers, writer)
		closers = append(closers, writer.Close)
	}

	if configuration.StreamOut != "" {
		file, err := os.Create(configuration.StreamOut)
		if err != nil {
			return nil, nil, joinClose(fmt.Errorf("Error creating stream file: %w", err), closeAll)
		}
		buffered := bufio.NewWriter(file)
		writers = append(writers, dst.NewStreamWriter(buffered))
		closers = append(closers, func() error {
			if err := buffered.Flush(); err != nil {
				file.Close()
				return fmt.Errorf("error flushing stream file: %w", err)
			}
			return file.Close()
		})
	}
	return writers, closeAll, nil
}

// joinClose closes the writers and reports both errors.
func joinClose(err error, closeWriters func() error) error {
	return errors.Join(err, closeWriters())
}
