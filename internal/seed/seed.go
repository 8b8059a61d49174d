// Package seed creates the baseline records a fresh deployment needs.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/campushire/campushire/internal/app/models"
	appRepos "github.com/campushire/campushire/internal/app/repositories"
	"github.com/campushire/campushire/internal/pkg/apperrors"
)

// defaultColleges are created on first startup so registration forms have
// something to offer before any college signs itself up.
var defaultColleges = []string{
	"National Institute of Technology",
	"State Engineering College",
	"City University",
}

// CreateDefaultData creates the default colleges if they don't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	collegeRepo := appRepos.NewCollegeRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default colleges...")
	var finalErr error

	for _, name := range defaultColleges {
		college := &appModels.College{Name: name}
		err := collegeRepo.Create(ctx, college)
		if err != nil && !errors.Is(err, apperrors.ErrCollegeAlreadyExists) {
			lgr.Error().Err(err).Str("college", name).Msg("Error creating default college")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
