package middleware

import "github.com/afuentesan/awpak-builder/pkg/domain"

// apiKeys returns a pointer to every provider credential in g: agent
// providers and vector store embedding models.
func apiKeys(g *domain.Graph) []*string {
	var keys []*string
	for _, n := range g.AllNodes() {
		pn, ok := n.(*domain.PlainNode)
		if !ok {
			continue
		}
		agent, ok := pn.Executor.(*domain.AIAgent)
		if !ok {
			continue
		}
		switch p := agent.Provider.(type) {
		case *domain.ProviderOpenAI:
			keys = append(keys, &p.APIKey)
		case *domain.ProviderAnthropic:
			keys = append(keys, &p.APIKey)
		case *domain.ProviderDeepSeek:
			keys = append(keys, &p.APIKey)
		case *domain.ProviderGemini:
			keys = append(keys, &p.APIKey)
		}
	}
	for i := range g.Stores {
		switch m := g.Stores[i].Model.(type) {
		case *domain.StoreOpenAI:
			keys = append(keys, &m.APIKey)
		case *domain.StoreGemini:
			keys = append(keys, &m.APIKey)
		}
	}
	return keys
}
