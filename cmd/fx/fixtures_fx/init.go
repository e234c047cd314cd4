package fixtures_fx

import (
	"go.uber.org/fx"

	"akwaaba/internal/fixtures"
	"akwaaba/internal/retrieval"
)

var Module = fx.Provide(
	provideStore, provideRetriever,
)

func provideStore() (*fixtures.Store, error) {
	return fixtures.Load()
}

func provideRetriever(store *fixtures.Store) *retrieval.Retriever {
	return retrieval.NewRetriever(store)
}
