package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/notaneet/roomstats/model"
)

type PGSQLConverter struct{}

const CreateReports = `CREATE TABLE IF NOT EXISTS reports (
	id SERIAL PRIMARY KEY,
	run_id UUID NOT NULL,
	name TEXT NOT NULL,
	start_date DATE,
	end_date DATE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`
const CreateReportRows = `CREATE TABLE IF NOT EXISTS report_rows (
	report_id INTEGER NOT NULL REFERENCES reports (id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	cells JSONB NOT NULL,
	PRIMARY KEY (report_id, position)
);`
const InsertReportQuery = "INSERT INTO reports (run_id, name, start_date, end_date) VALUES ($1, $2, $3, $4) RETURNING id"
const InsertRowQuery = "INSERT INTO report_rows (report_id, position, cells) VALUES ($1, $2, $3)"

func (p PGSQLConverter) Write(set model.ReportSet, out string) error {
	if out == "" {
		return fmt.Errorf("credentials can not be empty")
	}

	conn, err := sqlx.Connect("postgres", out)
	if err != nil {
		return err
	}
	defer conn.Close()

	for _, ddl := range []string{CreateReports, CreateReportRows} {
		if _, err = conn.Exec(ddl); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}

	tx, err := conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insertReport, err := tx.Preparex(InsertReportQuery)
	if err != nil {
		return err
	}
	insertRow, err := tx.Preparex(InsertRowQuery)
	if err != nil {
		return err
	}

	// reports of one run share the run id
	runID := uuid.New().String()
	for _, r := range set.Reports {
		var reportID int64
		if err = insertReport.QueryRowx(runID, r.Name, nullDate(set.Start), nullDate(set.End)).Scan(&reportID); err != nil {
			return fmt.Errorf("insert report %q: %w", r.Name, err)
		}

		for i, row := range r.Table {
			cells, err := json.Marshal(row)
			if err != nil {
				return err
			}
			if _, err = insertRow.Exec(reportID, i, string(cells)); err != nil {
				return fmt.Errorf("insert row %d of %q: %w", i, r.Name, err)
			}
		}
	}

	return tx.Commit()
}

// nullDate open interval ends are stored as NULL
func nullDate(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(model.DateLayout)
}
