package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (

	// termenv output for consistent terminal styling
	output = termenv.NewOutput(os.Stdout)

	// Style helpers - initialized in initColors()
	highlightStyle termenv.Style
	dimStyle       termenv.Style
	userStyle      termenv.Style
	assistantStyle termenv.Style
)

// initColors initializes color styles based on terminal background
func initColors() {
	if !isTerminal() {
		plain := output.String()
		highlightStyle = plain
		dimStyle = plain
		userStyle = plain
		assistantStyle = plain
		return
	}

	if termenv.HasDarkBackground() {
		// Dark background - use lighter/brighter colors
		highlightStyle = output.String().Foreground(output.Color("179")).Bold() // Muted yellow
		dimStyle = output.String().Faint()                                      // Dimmed text
		userStyle = output.String().Foreground(output.Color("32")).Bold()       // Muted blue for user
		assistantStyle = output.String().Foreground(output.Color("141"))        // Muted purple for assistant
	} else {
		// Light background - use darker/more saturated colors
		highlightStyle = output.String().Foreground(output.Color("136")).Bold() // Dark orange/brown
		dimStyle = output.String().Foreground(output.Color("240"))              // Dark gray
		userStyle = output.String().Foreground(output.Color("26")).Bold()       // Dark blue for user
		assistantStyle = output.String().Foreground(output.Color("90"))         // Dark purple for assistant
	}
}

// isTerminal checks if output is going to a terminal
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// printBanner prints the welcome banner and usage hints
func printBanner() {
	divider := strings.Repeat("=", 40)
	fmt.Println()
	fmt.Println(divider)
	fmt.Println(highlightStyle.Styled("Azure OpenAI Travel Assistant"))
	fmt.Println(divider)
	fmt.Println()
	fmt.Println("Hi! I'm your travel assistant. Ask me anything about travel!")
	fmt.Println(dimStyle.Styled("Type 'exit' to quit, 'clear' to clear conversation history"))
	fmt.Println(strings.Repeat("-", 40))
}
