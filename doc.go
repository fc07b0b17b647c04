/*
Package awpak edits awpak workflow graph documents.

A graph is a JSON document describing nodes (commands, agents, web calls,
context mutations, sub-graphs) and the conditional routes between them. This
module does not run graphs; it reads, checks, rewrites and stores them so an
editor or automation can change a document without breaking the references
an execution engine relies on.

# Concept

The Editor combines four pieces:

  - the Wire Codec (pkg/codec), which decodes documents leniently and encodes them canonically;
  - the Referential Integrity Walker (pkg/refs), which keeps node references consistent on rename and removal;
  - the Variant Transition Engine (pkg/transition), which changes a node or executor kind while carrying compatible fields over;
  - a GraphStore (pkg/ports), which persists documents by name.

# Usage

	store := memory.NewStore()
	ed := awpak.New(store)

	if err := ed.Save(ctx, "triage", g); err != nil {
		log.Fatal(err)
	}

	n, err := ed.RenameNode(ctx, "triage", "classify", "label")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d references updated\n", n)

Edits run as load, modify, save under a lock keyed by the document name.
Pass WithLocker with a Redis locker when several replicas share a store.
*/
package awpak
