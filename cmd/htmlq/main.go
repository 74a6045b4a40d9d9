// Command htmlq parses an HTML document and prints the tags a CSS-like
// selector matches.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tslnc04/tl"
)

func main() {
	selector := flag.String("s", "", "CSS-like selector to match (empty prints the whole document)")
	trackIDs := flag.Bool("track-ids", false, "maintain an id -> element index while parsing")
	trackClasses := flag.Bool("track-classes", false, "maintain a class -> elements index while parsing")
	inner := flag.Bool("text", false, "print inner text instead of outer HTML")
	flag.Parse()

	input, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "htmlq:", err)
		os.Exit(1)
	}

	dom := tl.Parse(input, tl.ParserOptions{TrackIDs: *trackIDs, TrackClasses: *trackClasses})

	if *selector == "" {
		fmt.Println(dom.OuterHTML())
		return
	}

	matches, err := dom.QuerySelector(*selector)
	if err != nil {
		fmt.Fprintln(os.Stderr, "htmlq:", err)
		os.Exit(1)
	}

	parser := dom.Parser()
	for {
		h, ok := matches.Next()
		if !ok {
			break
		}
		node, ok := h.Get(parser)
		if !ok {
			continue
		}
		tag, ok := node.AsTag()
		if !ok {
			continue
		}
		if *inner {
			fmt.Println(tag.InnerText(parser))
		} else {
			fmt.Println(tag.OuterHTML(parser))
		}
	}
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
