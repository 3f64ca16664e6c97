package support

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/compose"

	"github.com/zhouzirui/solace/backend/internal/analysis/mood"
	"github.com/zhouzirui/solace/backend/internal/analysis/sentiment"
	"github.com/zhouzirui/solace/backend/internal/model/chat"
	"github.com/zhouzirui/solace/backend/internal/model/emergency"
	"github.com/zhouzirui/solace/backend/internal/model/resource"
)

// Config 控制分类策略开关。
type Config struct {
	SentimentRefinement     bool
	NegativeThreshold       int
	PositiveThreshold       int
	CrisisOverridesExplicit bool
}

// DefaultConfig mirrors mood.DefaultConfig.
func DefaultConfig() Config {
	def := mood.DefaultConfig()
	return Config{
		SentimentRefinement:     def.SentimentRefinement,
		NegativeThreshold:       def.NegativeThreshold,
		PositiveThreshold:       def.PositiveThreshold,
		CrisisOverridesExplicit: def.CrisisOverridesExplicit,
	}
}

// Request is one inbound chat message.
type Request struct {
	Message string
	// UserMood is the mood the user declared, if any. Unrecognized labels are ignored.
	UserMood string
	History  []chat.Turn
}

type classified struct {
	classification mood.Classification
	history        []chat.Turn
}

// Service 组合分类、回复选择以及静态资源查询。
type Service struct {
	classifier *mood.Classifier
	selector   *mood.Selector
	resources  resource.Catalog
	directory  emergency.Directory
	pipeline   compose.Runnable[*Request, *mood.Result]
}

// NewService compiles the classify → respond pipeline once. Shared tables are built here and never mutated.
func NewService(ctx context.Context, cfg Config, opts ...mood.SelectorOption) (*Service, error) {
	svc := &Service{
		classifier: mood.NewClassifier(sentiment.NewScorer(), mood.Config{
			SentimentRefinement:     cfg.SentimentRefinement,
			NegativeThreshold:       cfg.NegativeThreshold,
			PositiveThreshold:       cfg.PositiveThreshold,
			CrisisOverridesExplicit: cfg.CrisisOverridesExplicit,
		}),
		selector:  mood.NewSelector(mood.DefaultTable(), opts...),
		resources: resource.NewMemoryCatalog(resource.Seed(), resource.Generic()),
		directory: emergency.Seed(),
	}

	chain := compose.NewChain[*Request, *mood.Result]()
	chain.AppendLambda(compose.InvokableLambda(svc.classify))
	chain.AppendLambda(compose.InvokableLambda(svc.respond))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile support pipeline: %w", err)
	}
	svc.pipeline = runnable
	return svc, nil
}

// SentimentRefinement reports whether the sentiment layer is active.
func (s *Service) SentimentRefinement() bool {
	return s.classifier.SentimentRefinement()
}

// ClassifyAndRespond classifies req.Message and picks the reply.
func (s *Service) ClassifyAndRespond(ctx context.Context, req Request) (mood.Result, error) {
	out, err := s.pipeline.Invoke(ctx, &req)
	if err != nil {
		return mood.Result{}, fmt.Errorf("support pipeline: %w", err)
	}
	if out == nil {
		return mood.Result{}, fmt.Errorf("support pipeline returned no result")
	}
	return *out, nil
}

// ResourcesFor returns the resource bundle for any mood string.
func (s *Service) ResourcesFor(label string) resource.Bundle {
	return s.resources.For(label)
}

// EmergencyContacts returns a copy of the crisis line directory.
func (s *Service) EmergencyContacts() emergency.Directory {
	return s.directory.Clone()
}

func (s *Service) classify(_ context.Context, req *Request) (*classified, error) {
	explicit, _ := mood.Parse(req.UserMood)
	c := s.classifier.Classify(req.Message, explicit)
	if c.Mood == mood.Crisis {
		log.Printf("[support] crisis mood (explicit=%t)", explicit != "")
	}
	return &classified{classification: c, history: req.History}, nil
}

func (s *Service) respond(_ context.Context, in *classified) (*mood.Result, error) {
	result := s.selector.Respond(in.classification, in.history)
	return &result, nil
}
