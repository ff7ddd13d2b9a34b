package main

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/AntonVopilov/fastai-genomic/cmd"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootPage = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// meta is for describing the position/info for a command doc page
type meta struct {
	title    string
	navOrder int
	parent   string
}

// map from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"fagen":          {title: "fagen", navOrder: 0},
	"fagen_tokenize": {title: "tokenize", navOrder: 0, parent: "fagen"},
	"fagen_vocab":    {title: "vocab", navOrder: 1, parent: "fagen"},
	"fagen_bunch":    {title: "bunch", navOrder: 2, parent: "fagen"},
	"fagen_embed":    {title: "embed", navOrder: 3, parent: "fagen"},
	"fagen_download": {title: "download", navOrder: 4, parent: "fagen"},
}

// makeDocs parses the custom commands and outputs Markdown documentation files
func makeDocs() {
	if err := doc.GenMarkdownTreeCustom(cmd.RootCmd, "./docs", filePrepender, linkHandler); err != nil {
		fmt.Println(err.Error())
	}
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m := metaMap[base]

	if m.parent == "" {
		return fmt.Sprintf(rootPage, m.title, m.navOrder)
	}
	return fmt.Sprintf(childPage, m.title, m.parent, m.navOrder)
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "fagen" {
		return "/"
	}
	return base
}
