package dst

import (
	"errors"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx" //make alias name the package to sqlx
	evm "github.com/next-exp/evm_go/evm"
)

// Electronic IDs below this value belong to PMTs, the rest to SiPMs.
const pmtElecIDThreshold = 999

func ConnectToDatabase(user string, pass string, host string, dbname string) (*sqlx.DB, error) {
	port := "3306"
	dbURI := fmt.Sprintf("%s:%s@(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)
	db, err := sqlx.Connect("mysql", dbURI)
	return db, err
}

type SensorMappingEntry struct {
	ElecID   int `db:"ElecID"`
	SensorID int `db:"SensorID"`
}

// LoadSensorParams counts the PMTs and SiPMs mapped for a run. Waveform
// lengths are not stored in the database and are taken from the arguments.
func LoadSensorParams(db *sqlx.DB, runNumber int, pmtwl int, sipmwl int) (evm.SensorParams, error) {
	query := "SELECT ElecID, SensorID FROM ChannelMapping WHERE MinRun <= ? and MaxRun >= ? ORDER BY SensorID"

	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Reading channel mapping for run %d from DB", runNumber)
		logger.Info(message, "database")
	}
	if configuration.Verbosity > 2 {
		message := fmt.Sprintf("Query: %s", query)
		logger.Info(message, "database")
	}

	rows, err := db.Queryx(query, runNumber, runNumber)
	if err != nil {
		errMessage := fmt.Errorf("error querying database: %w", err)
		return evm.SensorParams{}, &ErrSensorParams{RunNumber: runNumber, Err: errMessage}
	}
	defer rows.Close()

	entries := make([]SensorMappingEntry, 0)
	for rows.Next() {
		result := SensorMappingEntry{}
		err := rows.StructScan(&result)
		if err != nil {
			errMessage := fmt.Errorf("error scanning DB row: %w", err)
			return evm.SensorParams{}, &ErrSensorParams{RunNumber: runNumber, Err: errMessage}
		}
		entries = append(entries, result)
	}
	if err := rows.Err(); err != nil {
		errMessage := fmt.Errorf("error iterating DB rows: %w", err)
		return evm.SensorParams{}, &ErrSensorParams{RunNumber: runNumber, Err: errMessage}
	}
	if len(entries) == 0 {
		return evm.SensorParams{}, &ErrSensorParams{RunNumber: runNumber, Err: errors.New("no channel mapping found")}
	}

	sp := SensorParamsFromMapping(entries, pmtwl, sipmwl)
	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Sensor params for run %d: %s", runNumber, sp)
		logger.Info(message, "database")
	}
	return sp, nil
}

// SensorParamsFromMapping splits the channel mapping into PMTs and SiPMs.
// A sensor mapped more than once is counted once.
func SensorParamsFromMapping(entries []SensorMappingEntry, pmtwl int, sipmwl int) evm.SensorParams {
	pmts := make(map[int]struct{})
	sipms := make(map[int]struct{})
	for _, entry := range entries {
		if entry.ElecID < pmtElecIDThreshold {
			pmts[entry.SensorID] = struct{}{}
		} else {
			sipms[entry.SensorID] = struct{}{}
		}
	}
	return evm.NewSensorParams(len(pmts), pmtwl, len(sipms), sipmwl)
}
