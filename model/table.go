package model

import "time"

// Table rendered report, first row holds the labels. Cells are string or int.
type Table [][]any

// Report named table
type Report struct {
	Name  string `json:"name"`
	Table Table  `json:"table"`
}

// ReportSet everything produced by one run
type ReportSet struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Reports []Report  `json:"reports"`
}
