// Command-line chat client for the Voyago travel planner.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"voyago/voyago/client"
	"voyago/voyago/conversation"
	"voyago/voyago/types"
	"voyago/voyago/utils/color"
)

// Settings is the explicit per-run presentation state; no package
// globals hold the theme.
type Settings struct {
	ServerURL string
	Theme     color.Theme
}

func main() {
	serverURL := flag.String("server", envOr("VOYAGO_SERVER_URL", "http://localhost:3001"), "travel API base URL")
	theme := flag.String("theme", envOr("VOYAGO_THEME", "dark"), "terminal theme: dark or light")
	flag.Parse()

	settings := Settings{
		ServerURL: *serverURL,
		Theme:     color.Theme(*theme),
	}
	palette := color.NewPalette(settings.Theme)

	api := client.New(settings.ServerURL)
	ctx := context.Background()

	if err := api.Health(ctx); err != nil {
		fmt.Println(palette.Warning("Cannot reach the travel API at " + settings.ServerURL + " — start the server first."))
	}

	engine := conversation.New(api)
	renderMessages(palette, engine.Messages())
	fmt.Println(palette.Info("Type your message, or 'exit' to quit."))
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(palette.Prompt("you> "))
		if !scanner.Scan() {
			break // EOF or error
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			fmt.Println(palette.Info("Safe travels! 👋"))
			break
		}
		if line == "" {
			continue
		}

		renderMessages(palette, engine.HandleMessage(ctx, line))
	}
	if err := scanner.Err(); err != nil {
		fmt.Println(palette.Error("input error: " + err.Error()))
		os.Exit(1)
	}
}

func renderMessages(palette *color.Palette, msgs []conversation.Message) {
	for _, msg := range msgs {
		switch msg.Type {
		case conversation.MessageBot:
			fmt.Println(palette.Bot("bot> " + msg.Content.(string)))
		case conversation.MessageItinerary:
			renderItinerary(palette, msg.Content.([]types.ItineraryDay))
		case conversation.MessageImage:
			att := msg.Content.(conversation.ImageAttachment)
			fmt.Println(palette.Info(fmt.Sprintf("📸 %s: %s", att.Place, att.Image.URL)))
		}
	}
}

func renderItinerary(palette *color.Palette, days []types.ItineraryDay) {
	for _, day := range days {
		fmt.Println(palette.Info(fmt.Sprintf("  Day %d — %s", day.Day, day.City)))
		for _, activity := range day.Activities {
			fmt.Println("    • " + activity)
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
