// promptpreview prints the exact instruction string the backend would submit
// for a given mode, profile, and message. Useful for inspecting prompt
// changes without calling the inference endpoint.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/lifecoach/backend/internal/model/chat"
	coachmodel "github.com/lifecoach/backend/internal/model/coach"
	"github.com/lifecoach/backend/internal/model/profile"
	"github.com/lifecoach/backend/internal/service/coach"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	mode := flag.String("mode", "general", "coaching mode: career, fitness, finance, mental, general")
	message := flag.String("message", "", "user message to wrap in the prompt")
	profilePath := flag.String("profile", "", "path to a JSON profile file (optional)")
	flag.Parse()

	if strings.TrimSpace(*message) == "" {
		flag.Usage()
		log.Fatal("provide a user message via -message")
	}

	var p *profile.Profile
	if *profilePath != "" {
		raw, err := os.ReadFile(*profilePath)
		if err != nil {
			log.Fatalf("failed to read profile file: %v", err)
		}
		var decoded profile.Profile
		if err := json.Unmarshal(raw, &decoded); err != nil {
			log.Fatalf("failed to parse profile file: %v", err)
		}
		p = &decoded
	}

	turns := []chat.Turn{{Role: chat.RoleUser, Content: *message}}
	prompt := coach.BuildPrompt(turns, coachmodel.ParseMode(*mode), p)

	fmt.Println(prompt)
}
