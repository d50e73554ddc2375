// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"log"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/tliron/glsp/server"

	"pj/internal/config"
	"pj/internal/lsp"
)

const lsName = "pj"

func main() {
	configPath := flag.String("config", "", "config file")
	websocket := flag.String("websocket", "", "listen on this address instead of stdio")
	flag.Parse()

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		log.Println("Error loading configuration:", err)
		os.Exit(1)
	}
	commonlog.Configure(cfg.Log.Verbosity, cfg.LogPath())

	handler := lsp.NewPJHandler(cfg).Handler()

	// stdout carries the protocol, so the server's own debug logging stays off
	s := server.NewServer(handler, lsName, false)

	if *websocket != "" {
		log.Println("Starting PJ LSP server on", *websocket)
		err = s.RunWebSocket(*websocket)
	} else {
		log.Println("Starting PJ LSP server...")
		err = s.RunStdio()
	}
	if err != nil {
		log.Println("Error running PJ LSP server:", err)
		os.Exit(1)
	}
}
