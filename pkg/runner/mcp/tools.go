package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/color"
	"tableflip.dev/rampeditor/pkg/format"
	"tableflip.dev/rampeditor/pkg/palette"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	srv.AddTool(listPalettesTool(), listPalettes(svc))
	srv.AddTool(getPaletteTool(), getPalette(svc))
	srv.AddTool(createPaletteTool(), createPalette(svc))
	srv.AddTool(insertColorTool(), insertColor(svc))
	srv.AddTool(insertRampTool(), insertRamp(svc))
	srv.AddTool(insertWatcherTool(), insertWatcher(svc))
	srv.AddTool(copyColorTool(), copyColor(svc))
	srv.AddTool(removeElementsTool(), removeElements(svc))
	srv.AddTool(historyTool("undo", "Undo the last operation of a palette."), undo(svc))
	srv.AddTool(historyTool("redo", "Redo the last undone operation of a palette."), redo(svc))
	srv.AddTool(exportPaletteTool(), exportPalette(svc))
}

func paletteArg() mcp.ToolOption {
	return mcp.WithString("palette",
		mcp.Description("Palette name, defaults to the configured palette."),
	)
}

func placementArgs() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("at",
			mcp.Description("Target address such as 00:01:0A, defaults to the first free slot."),
		),
		mcp.WithBoolean("overwrite",
			mcp.Description("Replace occupied slots instead of skipping them."),
		),
	}
}

func listPalettesTool() mcp.Tool {
	return mcp.NewTool("list_palettes",
		mcp.WithDescription("List stored palettes with their bounds and history depth."),
	)
}

func listPalettes(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summaries, err := svc.ListPalettes(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"palettes": summaries,
			"count":    len(summaries),
		})
	}
}

func getPaletteTool() mcp.Tool {
	return mcp.NewTool("get_palette",
		mcp.WithDescription("Get a palette with every slot resolved to a color."),
		paletteArg(),
	)
}

func getPalette(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.GetPalette(ctx, request.GetString("palette", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func createPaletteTool() mcp.Tool {
	return mcp.NewTool("create_palette",
		mcp.WithDescription("Create an empty palette."),
		mcp.WithString("palette",
			mcp.Required(),
			mcp.Description("Name of the new palette."),
		),
		mcp.WithNumber("pages", mcp.Description("Number of pages."), mcp.Min(0)),
		mcp.WithNumber("lines", mcp.Description("Lines per page."), mcp.Min(0)),
		mcp.WithNumber("columns", mcp.Description("Columns per line."), mcp.Min(0)),
	)
}

func createPalette(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("palette")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		bounds := address.Bounds{
			Pages:   request.GetInt("pages", 0),
			Lines:   request.GetInt("lines", 0),
			Columns: request.GetInt("columns", 0),
		}
		dto, err := svc.CreatePalette(ctx, name, bounds)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func insertColorTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Insert a plain color."),
		paletteArg(),
		mcp.WithString("color",
			mcp.Required(),
			mcp.Description("Color in hex, #rrggbb or #rgb."),
		),
	}
	return mcp.NewTool("insert_color", append(opts, placementArgs()...)...)
}

func insertColor(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		hex, err := request.RequireString("color")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		c, err := color.ParseHex(hex)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		at, err := optionalAddress(request, "at")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return apply(ctx, svc, request, &palette.InsertColor{
			Color:     c,
			Location:  at,
			Overwrite: request.GetBool("overwrite", false),
		})
	}
}

func insertRampTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Insert colors that stay mixed between two source slots."),
		paletteArg(),
		mcp.WithString("from", mcp.Required(), mcp.Description("Address of the first source.")),
		mcp.WithString("to", mcp.Required(), mcp.Description("Address of the second source.")),
		mcp.WithNumber("count",
			mcp.Required(),
			mcp.Description("Number of colors in the ramp."),
			mcp.Min(1),
		),
		mcp.WithBoolean("make_sources",
			mcp.Description("Create missing sources as black placeholders."),
		),
	}
	return mcp.NewTool("insert_ramp", append(opts, placementArgs()...)...)
}

func insertRamp(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		from, err := requireAddress(request, "from")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		to, err := requireAddress(request, "to")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		count := request.GetInt("count", 0)
		if count < 1 {
			return mcp.NewToolResultError(fmt.Sprintf("count must be positive, got %d", count)), nil
		}
		at, err := optionalAddress(request, "at")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return apply(ctx, svc, request, &palette.InsertRamp{
			From:        from,
			To:          to,
			Count:       count,
			Location:    at,
			Overwrite:   request.GetBool("overwrite", false),
			MakeSources: request.GetBool("make_sources", false),
		})
	}
}

func insertWatcherTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Insert a watcher that always shows the color of its source slot."),
		paletteArg(),
		mcp.WithString("source", mcp.Required(), mcp.Description("Address to watch.")),
		mcp.WithBoolean("make_source",
			mcp.Description("Create a missing source as a black placeholder."),
		),
	}
	return mcp.NewTool("insert_watcher", append(opts, placementArgs()...)...)
}

func insertWatcher(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		source, err := requireAddress(request, "source")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		at, err := optionalAddress(request, "at")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return apply(ctx, svc, request, &palette.InsertWatcher{
			Source:     source,
			Location:   at,
			Overwrite:  request.GetBool("overwrite", false),
			MakeSource: request.GetBool("make_source", false),
		})
	}
}

func copyColorTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Copy the element at a slot, or its resolved color."),
		paletteArg(),
		mcp.WithString("source", mcp.Required(), mcp.Description("Address to copy from.")),
		mcp.WithBoolean("resolve",
			mcp.Description("Copy the resolved color instead of the expression."),
		),
	}
	return mcp.NewTool("copy_color", append(opts, placementArgs()...)...)
}

func copyColor(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		source, err := requireAddress(request, "source")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		at, err := optionalAddress(request, "at")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return apply(ctx, svc, request, &palette.CopyColor{
			Source:    source,
			Location:  at,
			Overwrite: request.GetBool("overwrite", false),
			Resolve:   request.GetBool("resolve", false),
		})
	}
}

func removeElementsTool() mcp.Tool {
	return mcp.NewTool("remove_elements",
		mcp.WithDescription("Remove the elements at one or more addresses as a single operation."),
		paletteArg(),
		mcp.WithArray("addresses",
			mcp.Required(),
			mcp.Description("Addresses to clear."),
			mcp.WithStringItems(),
		),
	)
}

func removeElements(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := request.RequireStringSlice("addresses")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if len(raw) == 0 {
			return mcp.NewToolResultError("addresses must not be empty"), nil
		}
		ops := make([]palette.Operation, 0, len(raw))
		for _, s := range raw {
			a, err := address.Parse(s)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			ops = append(ops, &palette.RemoveElement{Location: a})
		}
		var op palette.Operation = &palette.Sequence{Name: "Remove Elements", Operations: ops}
		if len(ops) == 1 {
			op = ops[0]
		}
		return apply(ctx, svc, request, op)
	}
}

func historyTool(name, description string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		paletteArg(),
	)
}

func undo(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Undo(ctx, request.GetString("palette", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func redo(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Redo(ctx, request.GetString("palette", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func exportPaletteTool() mcp.Tool {
	return mcp.NewTool("export_palette",
		mcp.WithDescription("Render a palette in one of the export formats."),
		paletteArg(),
		mcp.WithString("format",
			mcp.Description("Export format, defaults to text."),
			mcp.Enum(format.Names()...),
		),
	)
}

func exportPalette(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := request.GetString("format", "text")
		if strings.EqualFold(name, "zpl") {
			return mcp.NewToolResultError("zpl is binary, export it from the command line"), nil
		}
		text, err := svc.Export(ctx, request.GetString("palette", ""), name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}

func apply(ctx context.Context, svc *Service, request mcp.CallToolRequest, op palette.Operation) (*mcp.CallToolResult, error) {
	dto, err := svc.Apply(ctx, request.GetString("palette", ""), op)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(dto)
}

func requireAddress(request mcp.CallToolRequest, key string) (address.Address, error) {
	s, err := request.RequireString(key)
	if err != nil {
		return address.Address{}, err
	}
	return address.Parse(s)
}

func optionalAddress(request mcp.CallToolRequest, key string) (*address.Address, error) {
	s := strings.TrimSpace(request.GetString(key, ""))
	if s == "" {
		return nil, nil
	}
	a, err := address.Parse(s)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
