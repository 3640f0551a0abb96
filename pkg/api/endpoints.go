// Package api exposes the three regulatory lookups over HTTP and MCP
// transports, both dispatching to the same kit.Endpoints.
package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hazyhaar/drugreg/pkg/drugsfda"
	"github.com/hazyhaar/drugreg/pkg/kit"
	"github.com/hazyhaar/drugreg/pkg/rxclass"
	"github.com/hazyhaar/drugreg/pkg/trials"
	"github.com/hazyhaar/drugreg/pkg/vocab"
)

// Services bundles the API clients and the vocabulary registry behind the
// transport layer.
type Services struct {
	Drugs   *drugsfda.Client
	Trials  *trials.Client
	RxClass *rxclass.Client
	Vocab   *vocab.Registry

	// Log receives endpoint audit records; nil falls back to slog.Default().
	Log *slog.Logger
}

func (s *Services) logger() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.Default()
}

// traced assigns a request ID when the transport did not carry one in.
func traced() kit.Middleware {
	return func(next kit.Endpoint) kit.Endpoint {
		return func(ctx context.Context, request any) (any, error) {
			if kit.GetRequestID(ctx) == "" {
				ctx = kit.WithRequestID(ctx, uuid.NewString())
			}
			return next(ctx, request)
		}
	}
}

// audited logs every dispatch with its transport tag and request ID, so a
// lookup can be traced whether it arrived over HTTP or MCP.
func audited(name string, log *slog.Logger) kit.Middleware {
	return func(next kit.Endpoint) kit.Endpoint {
		return func(ctx context.Context, request any) (any, error) {
			resp, err := next(ctx, request)
			if err != nil {
				log.Error("endpoint failed",
					"endpoint", name,
					"transport", kit.GetTransport(ctx),
					"request_id", kit.GetRequestID(ctx),
					"error", err)
				return nil, err
			}
			log.Debug("endpoint served",
				"endpoint", name,
				"transport", kit.GetTransport(ctx),
				"request_id", kit.GetRequestID(ctx))
			return resp, nil
		}
	}
}

// instrument wraps an endpoint in the shared middleware stack. Both
// transports dispatch through this, never to a bare endpoint.
func (s *Services) instrument(name string, e kit.Endpoint) kit.Endpoint {
	return kit.Chain(traced(), audited(name, s.logger()))(e)
}

// Shared request/response types used by both HTTP and MCP transports.

type drugApplicationsReq struct {
	ANDA      string
	NDA       string
	Search    string
	Normalize bool
}

type drugApplicationsResp struct {
	Results []*drugsfda.Result `json:"results"`
}

type clinicalTrialsReq struct {
	Drug      string
	Normalize bool
}

type clinicalTrialsResp struct {
	Studies []*trials.Study `json:"studies"`
}

type drugClassesReq struct {
	Drug      string
	Normalize bool
}

type drugClassesResp struct {
	Entries []*rxclass.Entry `json:"entries"`
}

type vocabulariesResp struct {
	Vocabularies []vocab.Info `json:"vocabularies"`
}

// Endpoints backed by the services.

func drugApplicationsEndpoint(s *Services) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*drugApplicationsReq)
		var (
			results []*drugsfda.Result
			err     error
		)
		switch {
		case req.ANDA != "":
			results, err = s.Drugs.SearchANDA(ctx, req.ANDA, req.Normalize)
		case req.NDA != "":
			results, err = s.Drugs.SearchNDA(ctx, req.NDA, req.Normalize)
		case req.Search != "":
			results, err = s.Drugs.Search(ctx, req.Search, req.Normalize)
		default:
			return nil, fmt.Errorf("one of anda, nda, or search is required")
		}
		if err != nil {
			return nil, err
		}
		return drugApplicationsResp{Results: results}, nil
	}
}

func clinicalTrialsEndpoint(s *Services) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*clinicalTrialsReq)
		studies, err := s.Trials.SearchIntervention(ctx, req.Drug, req.Normalize)
		if err != nil {
			return nil, err
		}
		return clinicalTrialsResp{Studies: studies}, nil
	}
}

func drugClassesEndpoint(s *Services) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*drugClassesReq)
		entries, err := s.RxClass.SearchDrugName(ctx, req.Drug, req.Normalize)
		if err != nil {
			return nil, err
		}
		return drugClassesResp{Entries: entries}, nil
	}
}

func vocabulariesEndpoint(s *Services) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		return vocabulariesResp{Vocabularies: s.Vocab.List()}, nil
	}
}
