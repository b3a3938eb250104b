package lokalmart

import (
	"context"

	"github.com/lokalmart/lokalmart/lokalmart/chat"
	"github.com/lokalmart/lokalmart/lokalmart/database"
	"github.com/lokalmart/lokalmart/lokalmart/database/repositories"
	"github.com/lokalmart/lokalmart/lokalmart/engine"
	"github.com/lokalmart/lokalmart/lokalmart/remote"
	"github.com/lokalmart/lokalmart/lokalmart/services"
)

func New(cfg Config, version string, commit string) *App {
	return &App{
		Cfg:     cfg,
		Version: version,
		Commit:  commit,
	}
}

// App holds the wired-up marketplace components. Repositories are exposed
// so UI-facing layers can read freely; the engine stays the sole writer of
// offer and listing status fields.
type App struct {
	Cfg     Config
	Version string
	Commit  string

	DB     *database.DB
	Remote *remote.Client

	ListingRepository   repositories.ListingRepository
	OfferRepository     repositories.OfferRepository
	UserRepository      repositories.UserRepository
	ChatRepository      repositories.ChatRepository
	FavouriteRepository repositories.FavouriteRepository
	ReviewRepository    repositories.ReviewRepository

	Engine     *engine.Engine
	Search     *services.SearchService
	Reconciler *services.Reconciler
}

// Setup constructs repositories, remote stores and the lifecycle engine on
// top of the already-connected DB and Remote handles.
func (a *App) Setup() {
	bunDB := a.DB.BunDB()

	a.ListingRepository = repositories.NewListingRepository(bunDB)
	a.OfferRepository = repositories.NewOfferRepository(bunDB)
	a.UserRepository = repositories.NewUserRepository(bunDB)
	a.ChatRepository = repositories.NewChatRepository(bunDB)
	a.FavouriteRepository = repositories.NewFavouriteRepository(bunDB)
	a.ReviewRepository = repositories.NewReviewRepository(bunDB)

	local := NewLocalStore(a.ListingRepository, a.OfferRepository)
	remoteOffers := remote.NewOfferStore(a.Remote)
	remoteListings := remote.NewListingStore(a.Remote)
	notifier := chat.NewNotifier(a.ChatRepository)

	a.Engine = engine.New(local, remoteOffers, remoteListings, notifier)
	a.Search = services.NewSearchService(a.ListingRepository)
	a.Reconciler = services.NewReconciler(
		a.ListingRepository,
		a.OfferRepository,
		remoteOffers,
		remoteListings,
		services.ReconcilerConfig{
			MaxConcurrency: a.Cfg.Reconcile.MaxConcurrency,
		},
	)
}

func (a *App) Close(ctx context.Context) {
	if a.Remote != nil {
		_ = a.Remote.Close(ctx)
	}
	if a.DB != nil {
		a.DB.Close()
	}
}
