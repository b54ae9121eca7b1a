// Package chat wires the intent router, templaters, retrieval engine and
// personalizer into the message-processing pipeline.
package chat

import (
	"context"
	"log"

	"github.com/healthnest/healthnest-be/internal/classifier"
	"github.com/healthnest/healthnest-be/internal/knowledge"
	"github.com/healthnest/healthnest-be/internal/personalize"
	"github.com/healthnest/healthnest-be/internal/profile"
	"github.com/healthnest/healthnest-be/internal/retrieval"
	"github.com/healthnest/healthnest-be/internal/templates"
)

// templatedConfidence is reported for keyword-routed (non-retrieval)
// answers, matching the source system's fixed figure.
const templatedConfidence = 0.95

// Response is the outcome of processing one message.
type Response struct {
	Answer     string
	Confidence float64
	Category   string
}

// Interfaces for dependencies
type RouterInterface interface {
	Route(message string) classifier.Intent
}

type RetrieverInterface interface {
	Retrieve(message string) retrieval.Result
}

// Logger records processed exchanges. It is optional; a nil logger disables
// recording.
type Logger interface {
	SaveChatLog(ctx context.Context, message, answer, category string, confidence float64) (err error)
}

// Engine handles the core dispatch independent of transport. All its
// dependencies are read-only after construction, so a single engine serves
// concurrent requests.
type Engine struct {
	router    RouterInterface
	retriever RetrieverInterface
	store     *knowledge.Store
	logger    Logger
}

// NewEngine creates a chat engine. logger may be nil.
func NewEngine(router RouterInterface, retriever RetrieverInterface, store *knowledge.Store, logger Logger) *Engine {
	return &Engine{
		router:    router,
		retriever: retriever,
		store:     store,
		logger:    logger,
	}
}

// Process routes a message, builds the answer through the matching handler
// and applies the personalization post-pass. It never returns an error to
// the caller: low retrieval confidence and unavailable models degrade to
// fixed fallback answers.
func (e *Engine) Process(ctx context.Context, message string, prof *profile.Profile) Response {
	intent := e.router.Route(message)
	log.Printf("Routed message: intent=%s, length=%d", intent, len(message))

	var resp Response
	switch intent {
	case classifier.IntentGreeting:
		resp = Response{Answer: templates.Greeting(), Confidence: 1.0, Category: string(intent)}
	case classifier.IntentPregnancy:
		resp = Response{Answer: templates.Pregnancy(message, e.store), Confidence: templatedConfidence, Category: string(intent)}
	case classifier.IntentWomensHealth:
		resp = Response{Answer: templates.WomensHealth(message, e.store), Confidence: templatedConfidence, Category: string(intent)}
	case classifier.IntentNutrition:
		resp = Response{Answer: templates.Nutrition(prof, e.store), Confidence: templatedConfidence, Category: string(intent)}
	case classifier.IntentExercise:
		resp = Response{Answer: templates.Exercise(prof), Confidence: templatedConfidence, Category: string(intent)}
	default:
		result := e.retriever.Retrieve(message)
		resp = Response{Answer: result.Answer, Confidence: result.Confidence, Category: result.Category}
	}

	// Greetings stay impersonal; everything else gets the profile post-pass.
	if intent != classifier.IntentGreeting {
		resp.Answer = personalize.Personalize(resp.Answer, prof, e.store)
	}

	if e.logger != nil {
		if err := e.logger.SaveChatLog(ctx, message, resp.Answer, resp.Category, resp.Confidence); err != nil {
			log.Printf("Warning: failed to save chat log: %v", err)
		}
	}

	return resp
}
