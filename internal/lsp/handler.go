package lsp

import (
	"context"
	"fmt"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"pj/internal/config"
	"pj/internal/driver"
)

var log = commonlog.GetLogger("pj.lsp")

// Define the set of supported semantic token types, in legend order
var SemanticTokenTypes = []string{
	"variable",
	"keyword",
	"number",
	"operator",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
}

type document struct {
	text   string
	result *driver.Result
}

// PJHandler implements the LSP server handlers for PJ
type PJHandler struct {
	mu        sync.RWMutex
	documents map[protocol.DocumentUri]*document
	driver    *driver.Driver
}

// NewPJHandler creates a handler that analyzes documents with cfg. A nil cfg
// uses the defaults.
func NewPJHandler(cfg *config.Config) *PJHandler {
	return &PJHandler{
		documents: make(map[protocol.DocumentUri]*document),
		driver:    driver.New(cfg),
	}
}

// Handler returns the protocol handler table wired to h.
func (h *PJHandler) Handler() *protocol.Handler {
	return &protocol.Handler{
		Initialize:                     h.Initialize,
		Initialized:                    h.Initialized,
		Shutdown:                       h.Shutdown,
		SetTrace:                       h.SetTrace,
		TextDocumentDidOpen:            h.TextDocumentDidOpen,
		TextDocumentDidChange:          h.TextDocumentDidChange,
		TextDocumentDidClose:           h.TextDocumentDidClose,
		TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
		TextDocumentDefinition:         h.TextDocumentDefinition,
		TextDocumentHover:              h.TextDocumentHover,
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *PJHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Infof("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
			DefinitionProvider: true,
			HoverProvider:      true,
		},
	}, nil
}

func (h *PJHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("initialized")
	return nil
}

func (h *PJHandler) Shutdown(ctx *glsp.Context) error {
	log.Infof("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *PJHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *PJHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Infof("opened %s", params.TextDocument.URI)
	return h.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *PJHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI

	h.mu.RLock()
	text := ""
	if doc, ok := h.documents[uri]; ok {
		text = doc.text
	}
	h.mu.RUnlock()

	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text = c.Text
				continue
			}
			start, end := c.Range.IndexesIn(text)
			text = text[:start] + c.Text + text[end:]
		default:
			return fmt.Errorf("unsupported content change %T", change)
		}
	}

	return h.update(ctx, uri, text)
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *PJHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.documents, params.TextDocument.URI)
	h.mu.Unlock()

	publishDiagnostics(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

func (h *PJHandler) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) error {
	result, err := h.driver.Run(context.Background(), string(uri), text)
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", uri, err)
	}
	log.Debugf("analyzed %s in run %s", uri, result.RunID)

	h.mu.Lock()
	h.documents[uri] = &document{text: text, result: result}
	h.mu.Unlock()

	publishDiagnostics(ctx, uri, ConvertResult(result, text))
	return nil
}

func (h *PJHandler) document(uri protocol.DocumentUri) (*document, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	doc, ok := h.documents[uri]
	if !ok {
		return nil, fmt.Errorf("document %s is not open", uri)
	}
	return doc, nil
}

func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
