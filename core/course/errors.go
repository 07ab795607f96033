package course

import (
	"errors"
	"strings"
)

var (
	ErrEmptyID           = errors.New("course does not have ID")
	ErrReindexInProgress = errors.New("reindex already in progress")
)

// DiscoveryError reports a failure talking to the search engine
type DiscoveryError struct {
	Op     string
	ID     string
	Index  string
	ESCode string
	Err    error
}

func (err DiscoveryError) Error() string {
	var s strings.Builder
	s.WriteString("discovery error: ")
	if err.Op != "" {
		s.WriteString(err.Op + ": ")
	}
	if err.ID != "" {
		s.WriteString("doc ID '" + err.ID + "': ")
	}
	if err.Index != "" {
		s.WriteString("index '" + err.Index + "': ")
	}
	if err.ESCode != "" {
		s.WriteString("elasticsearch code '" + err.ESCode + "': ")
	}
	s.WriteString(err.Err.Error())
	return s.String()
}

func (err DiscoveryError) Unwrap() error {
	return err.Err
}

// IndexingError is a fatal failure of a bootstrap or reindex run
type IndexingError struct {
	Op  string
	Err error
}

func (err IndexingError) Error() string {
	return "indexing error: " + err.Op + ": " + err.Err.Error()
}

func (err IndexingError) Unwrap() error {
	return err.Err
}
