/*
Package dsl provides a fluent Go builder for constructing awpak graphs.

It lets library users and tests assemble graphs with type checking instead of
hand-writing wire JSON. The first node added becomes the graph's first node.

Example usage:

	b := dsl.New().InputType(domain.DataTypeString)

	b.Add("classify").
		Agent(&domain.ProviderOllama{Model: "llama3"}, dsl.Input()).
		Output("label", domain.DataTypeString).
		Branch(dsl.Eq(dsl.Ctx("label"), dsl.Static("spam")), "drop").
		Go("reply")

	b.Add("drop").Fail(dsl.Static("rejected"))

	b.Add("reply").
		Command(dsl.Static("notify"), dsl.Ctx("label")).
		Exit(dsl.Ctx("output"))

	g, err := b.Build() // validated *domain.Graph
*/
package dsl
