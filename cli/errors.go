package cli

import (
	"errors"

	"github.com/MakeNowJust/heredoc"
)

var (
	ErrConfigNotFound = errors.New(heredoc.Doc(`
	Config file not found. Loading from defaults...

	Run "coursefinder config init" to initialize a new configuration file
	Run "coursefinder help environment" for more information.

	Alternatively, make a "config.yaml" file in the current directory from the example given
`))
)
