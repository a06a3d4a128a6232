package plugin

import (
	"context"

	"github.com/notaneet/roomstats/model"
)

// Plugin a store the calendar grid is read from
type Plugin interface {
	GetName() string
	GetGrid(ctx context.Context) (model.Grid, error)
}
