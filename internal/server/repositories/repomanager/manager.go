package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/spakiosk/internal/dbx"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/counters"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/events"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/redemptions"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/settings"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/tiers"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/wallets"
)

// RepositoryManager vends repositories bound to either the pool or an open
// transaction, so a service can run several of them in one unit of work.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Tokens(db dbx.DBTX) tokens.Repository
	Wallets(db dbx.DBTX) wallets.Repository
	Redemptions(db dbx.DBTX) redemptions.Repository
	Events(db dbx.DBTX) events.Repository
	Settings(db dbx.DBTX) settings.Repository
	Tiers(db dbx.DBTX) tiers.Repository
	Counters(db dbx.DBTX) counters.Repository
}
