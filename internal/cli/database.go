package cli

import (
	"context"

	"github.com/opencode-ai/showcase/internal/db"
)

func openDatabase(ctx context.Context) (*db.DB, error) {
	cfg := GetConfig()
	database, err := db.Open(ctx, cfg.Paths.DataDir)
	if err != nil {
		return nil, &PreflightError{
			Message:  err.Error(),
			Hint:     "Check that paths.data_dir is writable",
			NextStep: "showcase --config <file> progress list",
		}
	}
	return database, nil
}
