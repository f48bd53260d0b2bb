package main

import (
	"context"
	"flag"
	"log"

	"faq-chat-be/pkg/faq"

	"github.com/fatih/color"
)

// Prints the ranked candidates for a handful of queries so scoring changes
// can be eyeballed against the real document.
func main() {
	path := flag.String("file", "data/knowledge_base.yaml", "knowledge base document (json or yaml)")
	category := flag.String("category", "", "last matched category")
	flag.Parse()

	kb, err := faq.LoadKnowledgeBase(context.Background(), faq.FileSource{Path: *path})
	if err != nil {
		log.Fatalf("Failed to load knowledge base: %v", err)
	}

	queries := flag.Args()
	if len(queries) == 0 {
		queries = []string{
			"cuanto tarda el envio",
			"¿Cuánto cuesta mandar a Córdoba?",
			"puedo pagar con tarjeta en cuotas",
			"quiero devolver algo",
			"plata",
			"hola",
			"chau gracias",
			"",
		}
	}

	for _, q := range queries {
		u := faq.NewUtterance(q, kb.Synonyms())
		color.Cyan("\n%q -> %q", q, u.Normalized())

		res := faq.Match(kb, q, *category, nil)
		color.Yellow("outcome: %s  category: %s", res.Outcome, res.Category)
		color.Green("reply:   %s", res.Reply)

		for i, c := range res.Candidates {
			if i == 5 {
				break
			}
			color.White("  %5.2f  [%s] %s", c.Score, c.Entry.Category, c.Entry.Question)
		}
		for _, r := range res.RelatedQuestions {
			color.HiBlack("  related: %s", r)
		}
	}
}
