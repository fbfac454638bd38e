package source

import (
	"context"

	"github.com/dmitrijs2005/usercards/internal/client/models"
	"github.com/dmitrijs2005/usercards/internal/logging"
)

// Receiver is the part of the carousel that consumes a fetch outcome.
type Receiver interface {
	Initialize(records []models.User)
	ReportFetchFailure(message string)
}

// Result is the outcome of one Fetch, delivered once.
type Result struct {
	Users []models.User
	Err   error
}

// Apply hands r to dst: records on success, the static message otherwise.
func (r Result) Apply(ctx context.Context, dst Receiver, log logging.Logger) {
	if r.Err != nil {
		log.Error(ctx, "error fetching users", "error", r.Err)
		dst.ReportFetchFailure(FetchFailureMessage)
		return
	}
	log.Info(ctx, "users loaded", "count", len(r.Users))
	dst.Initialize(r.Users)
}

// Load awaits one fetch from src and applies it to dst.
func Load(ctx context.Context, src Source, dst Receiver, log logging.Logger) {
	users, err := src.Fetch(ctx)
	Result{Users: users, Err: err}.Apply(ctx, dst, log)
}
