package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"faq-chat-be/pkg/faq"

	"github.com/fatih/color"
)

// Terminal chat against a knowledge base document, without the HTTP server.
func main() {
	path := flag.String("file", "data/knowledge_base.yaml", "knowledge base document (json or yaml)")
	flag.Parse()

	kb, err := faq.LoadKnowledgeBase(context.Background(), faq.FileSource{Path: *path})
	if err != nil {
		log.Fatalf("Failed to load knowledge base: %v", err)
	}
	stats := kb.Stats()
	color.Cyan("Loaded %d entries from %s (/salir to quit, /cerrar and /abrir to toggle the session)\n", stats.Entries, *path)

	session := faq.OpenSession(kb)
	bot := color.New(color.FgGreen)
	sub := color.New(color.FgHiBlack)
	chip := color.New(color.FgYellow)

	bot.Printf("bot> %s\n", session.Opening())
	printSuggestions(chip, kb.DefaultSuggestions())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("vos> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()

		switch strings.TrimSpace(line) {
		case "/salir":
			return
		case "/cerrar":
			session.Close()
			color.Magenta("(session closed)")
			continue
		case "/abrir":
			session.Reopen()
			color.Magenta("(session reopened)")
			continue
		}

		reply, err := session.Submit(line)
		if err != nil {
			color.Red("error: %v", err)
			continue
		}

		bot.Printf("bot> %s\n", reply.Reply)
		for _, q := range reply.RelatedQuestions {
			sub.Printf("     · %s\n", q)
		}
		color.HiBlack("     [%s %s]", reply.Outcome, reply.Category)
		printSuggestions(chip, reply.Suggestions)
	}
}

func printSuggestions(c *color.Color, suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	c.Printf("     %s\n", strings.Join(suggestions, " | "))
}
