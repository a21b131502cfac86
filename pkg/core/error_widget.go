package core

import (
	"sync"

	"github.com/go-flick/flick/pkg/errors"
)

// ErrorWidgetBuilder produces a fallback widget for a failed build.
type ErrorWidgetBuilder func(err *errors.BuildError) Widget

var (
	errorWidgetMu      sync.RWMutex
	errorWidgetBuilder ErrorWidgetBuilder
)

// SetErrorWidgetBuilder installs a global fallback builder used when a
// widget's Build panics. Pass nil to restore the default placeholder.
func SetErrorWidgetBuilder(builder ErrorWidgetBuilder) {
	errorWidgetMu.Lock()
	defer errorWidgetMu.Unlock()
	errorWidgetBuilder = builder
}

// GetErrorWidgetBuilder returns the installed fallback builder, or nil.
func GetErrorWidgetBuilder() ErrorWidgetBuilder {
	errorWidgetMu.RLock()
	defer errorWidgetMu.RUnlock()
	return errorWidgetBuilder
}

// errorPlaceholder is a minimal fallback widget shown when a build fails
// and no error widget builder is configured. It renders nothing; the error
// has already been reported to the error handler.
type errorPlaceholder struct {
	StatelessBase
	err *errors.BuildError
}

func (p errorPlaceholder) Build(ctx BuildContext) Widget {
	return nil
}
