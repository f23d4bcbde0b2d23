package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"rampeditor://palettes",
		"Palettes",
		mcp.WithResourceDescription("All stored palettes with their bounds and history depth."),
		mcp.WithMIMEType("application/json"),
	)
	srv.AddResource(resource, readPalettes(svc))

	template := mcp.NewResourceTemplate(
		"rampeditor://palettes/{name}",
		"Palette",
		mcp.WithTemplateDescription("Every occupied slot of a palette with its resolved color."),
		mcp.WithTemplateMIMEType("application/json"),
	)
	srv.AddResourceTemplate(template, readPalette(svc))
}

func readPalettes(svc *Service) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		summaries, err := svc.ListPalettes(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"palettes": summaries,
			"count":    len(summaries),
		})
	}
}

func readPalette(svc *Service) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		name := templateArgument(request.Params.Arguments["name"])
		if name == "" {
			return nil, fmt.Errorf("palette name is required")
		}
		dto, err := svc.GetPalette(ctx, name)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	}
}

// templateArgument reads a URI template variable, which the server may
// deliver as a string or a one-element list.
func templateArgument(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
