package cmd

import (
	"context"
	"errors"

	"github.com/lhecker/ta-office/config"
	"github.com/lhecker/ta-office/database"
)

var (
	// This structure gets (de)initialized in the prerun and postrun hooks of the rootCmd.
	singletons = struct {
		Config   *config.Config
		Database *database.Database
	}{}
)

func isContextCanceledError(err error) bool {
	return errors.Is(err, context.Canceled)
}
