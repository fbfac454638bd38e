// Package source fetches the batch of user records shown by the carousel.
//
// There is exactly one failure kind, ErrFetchFailed; callers match it with
// errors.Is and show FetchFailureMessage. The cause is only logged.
package source

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/usercards/internal/client/models"
)

// FetchFailureMessage is the only thing a viewer sees when fetching fails.
const FetchFailureMessage = "Error to fetch data. Please try again later."

var ErrFetchFailed = errors.New("fetch failed")

// Source returns the ordered batch of records in a single call.
type Source interface {
	Fetch(ctx context.Context) ([]models.User, error)
}
