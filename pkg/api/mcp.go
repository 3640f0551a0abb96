package api

import (
	"context"

	"github.com/hazyhaar/drugreg/pkg/kit"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterMCPTools registers the four drugreg MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, s *Services) {
	registerDrugApplications(srv, s)
	registerClinicalTrials(srv, s)
	registerDrugClasses(srv, s)
	registerListVocabularies(srv, s)
}

func registerDrugApplications(srv *server.MCPServer, s *Services) {
	tool := mcp.NewTool("drug_applications",
		mcp.WithDescription("Look up FDA drug application records from Drugs@FDA by ANDA or NDA number, or by a raw search expression."),
		mcp.WithString("anda", mcp.Description("ANDA number, e.g. 090639")),
		mcp.WithString("nda", mcp.Description("NDA number, e.g. 017031")),
		mcp.WithString("search", mcp.Description("Raw Drugs@FDA search expression, used when no application number is given")),
		mcp.WithBoolean("normalize", mcp.Description("Normalize field values to controlled vocabularies (default true)")),
	)

	endpoint := s.instrument("drug_applications", drugApplicationsEndpoint(s))
	kit.RegisterMCPTool(srv, tool, endpoint, func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		anda, _ := args["anda"].(string)
		nda, _ := args["nda"].(string)
		search, _ := args["search"].(string)
		return &kit.MCPDecodeResult{
			Request: &drugApplicationsReq{
				ANDA:      anda,
				NDA:       nda,
				Search:    search,
				Normalize: argNormalize(args),
			},
			EnrichCtx: tagMCP,
		}, nil
	})
}

func registerClinicalTrials(srv *server.MCPServer, s *Services) {
	tool := mcp.NewTool("clinical_trials",
		mcp.WithDescription("Look up registered clinical trials from ClinicalTrials.gov whose intervention matches a drug name."),
		mcp.WithString("drug", mcp.Required(), mcp.Description("Drug name used for the trial intervention")),
		mcp.WithBoolean("normalize", mcp.Description("Normalize field values to controlled vocabularies (default true)")),
	)

	endpoint := s.instrument("clinical_trials", clinicalTrialsEndpoint(s))
	kit.RegisterMCPTool(srv, tool, endpoint, func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		drug, _ := args["drug"].(string)
		return &kit.MCPDecodeResult{
			Request: &clinicalTrialsReq{
				Drug:      drug,
				Normalize: argNormalize(args),
			},
			EnrichCtx: tagMCP,
		}, nil
	})
}

func registerDrugClasses(srv *server.MCPServer, s *Services) {
	tool := mcp.NewTool("drug_classes",
		mcp.WithDescription("Look up drug classification claims from NLM RxClass by RxNorm drug name."),
		mcp.WithString("drug", mcp.Required(), mcp.Description("RxNorm-provided drug name")),
		mcp.WithBoolean("normalize", mcp.Description("Normalize field values to controlled vocabularies (default true)")),
	)

	endpoint := s.instrument("drug_classes", drugClassesEndpoint(s))
	kit.RegisterMCPTool(srv, tool, endpoint, func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		drug, _ := args["drug"].(string)
		return &kit.MCPDecodeResult{
			Request: &drugClassesReq{
				Drug:      drug,
				Normalize: argNormalize(args),
			},
			EnrichCtx: tagMCP,
		}, nil
	})
}

func registerListVocabularies(srv *server.MCPServer, s *Services) {
	tool := mcp.NewTool("list_vocabularies",
		mcp.WithDescription("List the loaded controlled vocabularies with member and alias counts."),
	)

	endpoint := s.instrument("list_vocabularies", vocabulariesEndpoint(s))
	kit.RegisterMCPTool(srv, tool, endpoint, func(_ mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil, EnrichCtx: tagMCP}, nil
	})
}

// tagMCP marks the dispatch context so audit records name the MCP transport.
func tagMCP(ctx context.Context) context.Context {
	return kit.WithTransport(ctx, "mcp")
}

func argNormalize(args map[string]any) bool {
	if v, ok := args["normalize"].(bool); ok {
		return v
	}
	return true
}
