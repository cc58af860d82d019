// Copyright 2026 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command postcontent converts post bodies between editor documents,
// canonical markup, and display forms.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"zombiezen.com/go/postcontent"
	"zombiezen.com/go/postcontent/format"
	"zombiezen.com/go/postcontent/textlayout"
	"zombiezen.com/go/postcontent/truncate"
)

const version = "0.1.0"

// showMoreMarker is printed below truncated previews.
const showMoreMarker = "… show more"

type cli struct {
	Encode   encodeCmd   `cmd:"" help:"Encode a JSON document into canonical markup"`
	Decode   decodeCmd   `cmd:"" help:"Decode canonical markup for display"`
	Hashtags hashtagsCmd `cmd:"" help:"List the hashtags in a post"`
	Preview  previewCmd  `cmd:"" help:"Show a post as a truncated terminal preview"`
	Version  versionCmd  `cmd:"" help:"Print version information"`
}

// streams is bound into every command's Run method.
type streams struct {
	in  io.Reader
	out io.Writer
}

// readInput reads a post from the named file, or stdin if path is empty or "-".
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func readDocument(path string, stdin io.Reader) (*postcontent.Document, error) {
	data, err := readInput(path, stdin)
	if err != nil {
		return nil, err
	}
	doc := new(postcontent.Document)
	if err := json.Unmarshal([]byte(data), doc); err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return doc, nil
}

type encodeCmd struct {
	Input      string `arg:"" optional:"" help:"File to read (default stdin)"`
	Submission bool   `help:"Print the JSON submission body instead of bare markup"`
}

func (c *encodeCmd) Run(s *streams) error {
	doc, err := readDocument(c.Input, s.in)
	if err != nil {
		return err
	}
	if !c.Submission {
		_, err := fmt.Fprintln(s.out, postcontent.Encode(doc))
		return err
	}
	if doc.IsBlank() {
		log.Printf("document is blank; submitting without content")
	}
	enc := json.NewEncoder(s.out)
	enc.SetEscapeHTML(false)
	return enc.Encode(postcontent.NewSubmission(doc))
}

type decodeCmd struct {
	Input       string `arg:"" optional:"" help:"File to read (default stdin)"`
	Format      string `help:"Output format (${enum})" enum:"text,html,json" default:"text"`
	HashtagPath string `help:"Path prefix of hashtag links in HTML output" default:"${hashtag_path}"`
}

func (c *decodeCmd) Run(s *streams) error {
	markup, err := readInput(c.Input, s.in)
	if err != nil {
		return err
	}
	switch c.Format {
	case "html":
		r := &postcontent.HTMLRenderer{HashtagPath: c.HashtagPath}
		if err := r.Render(s.out, postcontent.Decode(markup)); err != nil {
			return err
		}
		_, err := io.WriteString(s.out, "\n")
		return err
	case "json":
		enc := json.NewEncoder(s.out)
		enc.SetEscapeHTML(false)
		return enc.Encode(postcontent.Load(markup))
	default:
		return format.Format(s.out, postcontent.Decode(markup))
	}
}

type hashtagsCmd struct {
	Input  string `arg:"" optional:"" help:"File to read (default stdin)"`
	Markup bool   `help:"Read canonical markup instead of a JSON document"`
	Unique bool   `help:"Remove duplicates, ignoring case"`
}

func (c *hashtagsCmd) Run(s *streams) error {
	var tags []string
	if c.Markup {
		markup, err := readInput(c.Input, s.in)
		if err != nil {
			return err
		}
		tags = postcontent.RenderHashtags(postcontent.Decode(markup))
	} else {
		doc, err := readDocument(c.Input, s.in)
		if err != nil {
			return err
		}
		tags = postcontent.ExtractHashtags(doc)
	}
	if c.Unique {
		tags = postcontent.UniqueHashtags(tags)
	}
	for _, tag := range tags {
		if _, err := fmt.Fprintln(s.out, tag); err != nil {
			return err
		}
	}
	return nil
}

type previewCmd struct {
	Input  string `arg:"" optional:"" help:"File to read (default stdin)"`
	Width  int    `help:"Width of the preview in cells" env:"POSTCONTENT_WIDTH" default:"80"`
	Lines  int    `help:"Number of lines shown before truncating" env:"POSTCONTENT_LINES" default:"${line_clamp}"`
	Expand bool   `help:"Expand truncated content"`
}

func (c *previewCmd) Run(s *streams) error {
	markup, err := readInput(c.Input, s.in)
	if err != nil {
		return err
	}
	m := textlayout.Measurer{Width: c.Width}
	ctrl := truncate.New(truncate.Config{LineClamp: c.Lines})
	ctrl.SetContent(markup)
	if err := ctrl.Measure(m); err != nil {
		return err
	}
	if c.Expand {
		ctrl.Expand()
	}

	view := ctrl.View()
	lineClamp := 0
	if view.Constrained {
		lineClamp = ctrl.LineClamp()
	}
	for _, line := range m.Layout(view.Paragraphs, lineClamp) {
		if _, err := fmt.Fprintln(s.out, line); err != nil {
			return err
		}
	}
	if view.ShowMore {
		if _, err := fmt.Fprintln(s.out, showMoreMarker); err != nil {
			return err
		}
	}
	return nil
}

type versionCmd struct{}

func (c *versionCmd) Run(s *streams) error {
	_, err := fmt.Fprintf(s.out, "postcontent version %s\n", version)
	return err
}

func newParser(c *cli) (*kong.Kong, error) {
	return kong.New(c,
		kong.Name("postcontent"),
		kong.Description("Convert post bodies between documents, markup, and display forms."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"hashtag_path": postcontent.DefaultHashtagPath,
			"line_clamp":   strconv.Itoa(truncate.DefaultLineClamp),
		},
	)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("postcontent: ")

	c := new(cli)
	parser, err := newParser(c)
	if err != nil {
		log.Fatal(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	err = ctx.Run(&streams{in: os.Stdin, out: os.Stdout})
	ctx.FatalIfErrorf(err)
}
