package main

import (
	"os"

	"github.com/AntonVopilov/fastai-genomic/cmd"
)

func main() {
	// "docs" regenerates the Markdown command docs (see docs.go)
	if len(os.Args) > 1 && os.Args[1] == "docs" {
		makeDocs()
		return
	}

	cmd.Execute()
}
