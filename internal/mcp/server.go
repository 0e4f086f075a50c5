package mcp

import (
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ayselgur/cradle/internal/config"
	"github.com/ayselgur/cradle/internal/repo"
	"github.com/ayselgur/cradle/internal/store"
)

// timeNow is swapped in tests that need a fixed clock.
var timeNow = time.Now

// KnownTypes lists all valid type names.
var KnownTypes = []string{"mood", "feeding", "panas", "note", "journal"}

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"mood_log": {
		def:     moodLogToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleMoodLog },
	},
	"mood_list": {
		def:     moodListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleMoodList },
	},
	"mood_delete": {
		def:     moodDeleteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleMoodDelete },
	},
	"feeding_log": {
		def:     feedingLogToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleFeedingLog },
	},
	"feeding_list": {
		def:     feedingListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleFeedingList },
	},
	"feeding_delete": {
		def:     feedingDeleteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleFeedingDelete },
	},
	"panas_submit": {
		def:     panasSubmitToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePanasSubmit },
	},
	"panas_list": {
		def:     panasListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePanasList },
	},
	"panas_delete": {
		def:     panasDeleteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePanasDelete },
	},
	"note_add": {
		def:     noteAddToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleNoteAdd },
	},
	"note_update": {
		def:     noteUpdateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleNoteUpdate },
	},
	"note_list": {
		def:     noteListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleNoteList },
	},
	"note_delete": {
		def:     noteDeleteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleNoteDelete },
	},
	"journal_summary": {
		def:     journalSummaryToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleJournalSummary },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// ValidateDisabledTypes returns a list of unknown type names from the given list.
func ValidateDisabledTypes(names []string) []string {
	known := make(map[string]bool, len(KnownTypes))
	for _, t := range KnownTypes {
		known[t] = true
	}

	unknown := make([]string, 0)
	for _, name := range names {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// GetTypeForTool extracts the type name from a tool name.
// Tool names follow the pattern "type_action" (e.g., "mood_log" → "mood").
func GetTypeForTool(toolName string) string {
	if idx := strings.Index(toolName, "_"); idx > 0 {
		return toolName[:idx]
	}
	return ""
}

// ExpandTypesToTools returns all tool names belonging to the given types.
func ExpandTypesToTools(types []string) []string {
	if len(types) == 0 {
		return nil
	}

	typeSet := make(map[string]bool, len(types))
	for _, t := range types {
		typeSet[t] = true
	}

	tools := make([]string, 0)
	for name := range toolRegistry {
		typ := GetTypeForTool(name)
		if typeSet[typ] {
			tools = append(tools, name)
		}
	}
	return tools
}

// NewServer creates a new MCP server with journal tools registered.
// Tools listed in cfg.DisabledTools or belonging to cfg.DisabledTypes
// are excluded from registration.
func NewServer(r repo.Repository, st *store.Store, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"cradle",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(r, st, cfg)

	// Build set of disabled tools: first expand types, then add individual tools
	disabled := make(map[string]bool)
	for _, tool := range ExpandTypesToTools(cfg.DisabledTypes) {
		disabled[tool] = true
	}
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(r repo.Repository, st *store.Store, cfg *config.Config, version string) error {
	s := NewServer(r, st, cfg, version)
	return server.ServeStdio(s)
}
