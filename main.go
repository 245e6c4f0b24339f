package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"

	"observernode/pkg/engine/input"
	"observernode/pkg/game/console"
	"observernode/pkg/game/router"
	"observernode/pkg/game/server"
	"observernode/pkg/game/world"
)

func initGotext() {
	gotext.Configure("mo/", "en_GB.utf8", "default")
}

func main() {
	delayMs := flag.Int("delay", 12, "typewriter delay per character in milliseconds (0 disables)")
	listen := flag.String("listen", "", "serve sessions over websocket on this address instead of the terminal")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	initGotext()

	if *listen != "" {
		log.Fatal(server.New().ListenAndServe(*listen))
	}

	runTerminal(time.Duration(*delayMs)*time.Millisecond, *noColor)
}

func runTerminal(delay time.Duration, noColor bool) {
	tui := console.NewTUI(os.Stdout, delay)
	if !noColor {
		tui.Init()
	}

	rt := router.New(world.NewState(), tui, tui)
	rt.Boot()

	reader := input.NewReader(os.Stdin)

	for {
		tui.Prompt()

		line, err := reader.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("cannot read stdin: %v", err)
			}
			fmt.Println()
			fmt.Println(gotext.Get("GOODBYE"))
			return
		}

		// Quitting is a shell concern; the session itself has no end state.
		if strings.EqualFold(strings.TrimSpace(line), "quit") {
			fmt.Println(gotext.Get("GOODBYE"))
			return
		}

		rt.Handle(line)
	}
}
