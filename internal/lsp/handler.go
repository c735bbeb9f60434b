package lsp

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"nire/internal/ast"
	"nire/internal/errors"
	"nire/internal/operators"
	"nire/internal/parser"
)

// Semantic token types the server reports, in legend order. Token type
// indices in the wire format refer to this slice.
var SemanticTokenTypes = []string{
	"namespace",
	"type",
	"typeParameter",
	"function",
	"variable",
	"parameter",
	"property",
	"keyword",
	"number",
	"operator",
	"modifier",
}

// Semantic token modifiers, a bitmask in legend order.
var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
	"static",
	"deprecated",
	"abstract",
}

// NireHandler implements the LSP server handlers for the nire language.
// Documents arrive as full-text pushes; each one is parsed on every
// change and the resulting program (or its diagnostics) is cached.
type NireHandler struct {
	mu       sync.RWMutex
	content  map[string]string
	programs map[string]*ast.Program
}

// NewNireHandler creates and returns a new NireHandler instance
func NewNireHandler() *NireHandler {
	return &NireHandler{
		content:  make(map[string]string),
		programs: make(map[string]*ast.Program),
	}
}

// Initialize responds to the client's initialize request and advertises
// the server's capabilities.
func (h *NireHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

// Initialized is called once the client has processed the capabilities.
func (h *NireHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("nire LSP initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *NireHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("nire LSP shutdown")
	return nil
}

// SetTrace handles trace level changes; tracing is not used.
func (h *NireHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen parses the opened document and publishes its
// diagnostics.
func (h *NireHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	diagnostics := h.updateDocument(path, params.TextDocument.Text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidChange reparses on every full-content push.
func (h *NireHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	text, ok := lastFullContent(params.ContentChanges)
	if !ok {
		return nil
	}

	diagnostics := h.updateDocument(path, text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose drops the document from the caches and clears
// its diagnostics.
func (h *NireHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	delete(h.content, path)
	delete(h.programs, path)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentCompletion offers the language's keywords and the known
// operators. The parser carries no scope information, so names defined
// in the document are not offered.
func (h *NireHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	keywords := make([]string, 0, len(parser.KEYWORDS))
	for kw := range parser.KEYWORDS {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)

	items := make([]protocol.CompletionItem, 0, len(keywords))
	keywordKind := protocol.CompletionItemKindKeyword
	for _, kw := range keywords {
		items = append(items, protocol.CompletionItem{
			Label: kw,
			Kind:  &keywordKind,
		})
	}

	operatorKind := protocol.CompletionItemKindOperator
	table := operators.DefaultTable()
	for _, op := range table.Operators() {
		fixity := table.Lookup(op)
		detail := fmt.Sprintf("%s %d", fixity.Assoc.Keyword(), fixity.Precedence)
		items = append(items, protocol.CompletionItem{
			Label:  op,
			Kind:   &operatorKind,
			Detail: &detail,
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull answers full-document semantic token
// requests from the cached program.
func (h *NireHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	program, err := h.getOrLoadProgram(path)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(program)
	return &protocol.SemanticTokens{Data: encodeSemanticTokens(tokens)}, nil
}

// getOrLoadProgram returns the cached program for path, reading and
// parsing the file from disk when the editor has not pushed it yet.
func (h *NireHandler) getOrLoadProgram(path string) (*ast.Program, error) {
	h.mu.RLock()
	program, ok := h.programs[path]
	h.mu.RUnlock()
	if ok {
		return program, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	if diagnostics := h.updateDocument(path, string(content)); diagnostics != nil {
		// The file does not parse; there is nothing to tokenize.
		return nil, nil
	}

	h.mu.RLock()
	program = h.programs[path]
	h.mu.RUnlock()
	return program, nil
}

// updateDocument stores the document text, reparses it, and returns the
// diagnostics to publish. A nil result means the document is clean.
func (h *NireHandler) updateDocument(path, text string) []protocol.Diagnostic {
	program, err := parser.ParseProgram(path, text, nil)

	h.mu.Lock()
	h.content[path] = text
	if err == nil {
		h.programs[path] = program
	} else {
		delete(h.programs, path)
	}
	h.mu.Unlock()

	if err != nil {
		return ConvertDiagnostics(errors.FromParse(err))
	}
	return nil
}

// encodeSemanticTokens sorts tokens into document order, drops
// duplicates introduced by desugared nodes that share one source span,
// and emits the LSP delta-encoded wire format.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].Line != tokens[j].Line {
			return tokens[i].Line < tokens[j].Line
		}
		return tokens[i].StartChar < tokens[j].StartChar
	})

	var data []uint32
	var prevLine, prevStart uint32
	emitted := false

	for _, token := range tokens {
		if emitted && token.Line == prevLine && token.StartChar == prevStart {
			continue
		}

		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		}
		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
		emitted = true
	}

	return data
}

// lastFullContent extracts the final full-document text from a change
// notification. With full sync every change carries the whole document.
func lastFullContent(changes []any) (string, bool) {
	text, ok := "", false
	for _, change := range changes {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, ok = c.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			text, ok = c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			text, ok = c.Text, true
		case *protocol.TextDocumentContentChangeEvent:
			text, ok = c.Text, true
		}
	}
	return text, ok
}

// uriToPath converts a file URI to a platform-local path.
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, strip the leading slash of /C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}

	log.Printf("publishing %d diagnostics for %s", len(diagnostics), uri)

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
