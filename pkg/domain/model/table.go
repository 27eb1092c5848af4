package model

import (
	"strings"

	"github.com/m-mizutani/goerr"
)

type TableRef struct {
	Project string `json:"project"`
	Dataset string `json:"dataset"`
	Table   string `json:"table"`
}

// ParseTableRef parses "project.dataset.table". The project may contain dots itself
// (e.g. "example.com:proj"), so dataset and table are taken from the right.
func ParseTableRef(s string) (TableRef, error) {
	tableAt := strings.LastIndex(s, ".")
	if tableAt < 0 {
		return TableRef{}, goerr.New("table must be project.dataset.table").With("table", s)
	}
	datasetAt := strings.LastIndex(s[:tableAt], ".")
	if datasetAt < 0 {
		return TableRef{}, goerr.New("table must be project.dataset.table").With("table", s)
	}

	ref := TableRef{
		Project: s[:datasetAt],
		Dataset: s[datasetAt+1 : tableAt],
		Table:   s[tableAt+1:],
	}
	if ref.Project == "" || ref.Dataset == "" || ref.Table == "" {
		return TableRef{}, goerr.New("table must be project.dataset.table").With("table", s)
	}

	return ref, nil
}

func (x TableRef) String() string {
	return x.Project + "." + x.Dataset + "." + x.Table
}

// RowError is a rejection of a single row reported by a table store.
type RowError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}
