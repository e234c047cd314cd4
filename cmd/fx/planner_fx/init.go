package planner_fx

import (
	"go.uber.org/fx"

	"akwaaba/internal/gateway"
	"akwaaba/internal/retrieval"
	"akwaaba/internal/services"
)

var Module = fx.Provide(
	provideItineraryService, provideChatService, provideBudgetService,
	providePackingService, provideLanguageService,
)

func provideItineraryService(ai gateway.Client, retriever *retrieval.Retriever) services.ItineraryServiceInterface {
	return services.NewItineraryService(ai, retriever)
}

func provideChatService(ai gateway.Client, retriever *retrieval.Retriever) services.ChatServiceInterface {
	return services.NewChatService(ai, retriever)
}

func provideBudgetService(ai gateway.Client) services.BudgetServiceInterface {
	return services.NewBudgetService(ai)
}

func providePackingService(ai gateway.Client) services.PackingServiceInterface {
	return services.NewPackingService(ai)
}

func provideLanguageService(ai gateway.Client, speech gateway.SpeechSynthesizer) services.LanguageServiceInterface {
	return services.NewLanguageService(ai, speech)
}
