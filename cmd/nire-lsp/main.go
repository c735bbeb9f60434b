// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"nire/internal/lsp"
)

const lsName = "nire"

var handler protocol.Handler

func main() {
	// 1 = debug level, nil = default backend
	commonlog.Configure(1, nil)

	nireHandler := lsp.NewNireHandler()

	handler = protocol.Handler{
		Initialize:                     nireHandler.Initialize,
		Initialized:                    nireHandler.Initialized,
		Shutdown:                       nireHandler.Shutdown,
		SetTrace:                       nireHandler.SetTrace,
		TextDocumentDidOpen:            nireHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           nireHandler.TextDocumentDidClose,
		TextDocumentDidChange:          nireHandler.TextDocumentDidChange,
		TextDocumentCompletion:         nireHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: nireHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting nire LSP server...")

	// Editors talk to the server over stdin/stdout.
	if err := s.RunStdio(); err != nil {
		log.Println("Error starting nire LSP server:", err)
		os.Exit(1)
	}
}
