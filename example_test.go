package awpak_test

import (
	"context"
	"fmt"

	"github.com/afuentesan/awpak-builder"
	"github.com/afuentesan/awpak-builder/pkg/domain"
	"github.com/afuentesan/awpak-builder/pkg/dsl"
)

func Example() {
	b := dsl.New()
	b.Add("fetch").
		Web(domain.MethodGet, dsl.Static("https://example.com")).
		Output("page", domain.DataTypeString).
		Go("summarize")
	b.Add("summarize").
		Agent(&domain.ProviderOllama{Model: "llama3"}, dsl.Ctx("page")).
		Exit(dsl.History("summarize"))

	g, err := b.Build()
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	ed := awpak.New(nil)
	if err := ed.Save(ctx, "digest", g); err != nil {
		panic(err)
	}

	n, err := ed.RenameNode(ctx, "digest", "summarize", "digest")
	if err != nil {
		panic(err)
	}
	g, _ = ed.Load(ctx, "digest")
	fmt.Println(n, g.NodeIDs())
	// Output: 2 [fetch digest]
}
