package setup

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingArtifact marks a file a stage needs but cannot find. The
	// workflow reports it as a warning and skips the stage.
	ErrMissingArtifact = errors.New("artifact not found")

	// ErrDestinationExists is returned when the renamed entry file would
	// replace a different file.
	ErrDestinationExists = errors.New("destination already exists")
)

// Stage names one step of the workflow.
type Stage string

const (
	StageHeader Stage = "header"
	StageRename Stage = "rename"
	StageConfig Stage = "config"
	StagePHPCS  Stage = "phpcs"
)

// StageError is a fatal failure in one stage. Stages after it do not run.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func missing(path string) error {
	return fmt.Errorf("%w: %s", ErrMissingArtifact, path)
}
