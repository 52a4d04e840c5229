// Package tui renders a reading recap as a navigable full-screen slide deck.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshsymonds/shelf-wrapped/internal/recap"
)

// Slide is one screen of the deck. Lines are plain text; styling is applied at
// render time so the same slides back both the TUI and the text export.
type Slide struct {
	Title  string
	Accent lipgloss.Color // persona-colored slides override the theme accent
	Lines  []string
}

// BuildSlides assembles the deck for one recap result. The display name is
// pure decoration; it never feeds back into the computation.
func BuildSlides(res recap.Result, displayName string) []Slide {
	stats := res.Stats

	slides := []Slide{
		{
			Title: fmt.Sprintf("📚 %d Wrapped", res.Year),
			Lines: []string{
				fmt.Sprintf("Hello, %s.", displayName),
				"Let's see what your shelves say about you.",
			},
		},
	}

	if stats.TotalBooks == 0 {
		slides = append(slides, Slide{
			Title: "A quiet year",
			Lines: []string{
				fmt.Sprintf("No finished books landed in %d.", res.Year),
				"The year still counts. The books will wait.",
			},
		})
	} else {
		slides = append(slides, Slide{
			Title: "The totals",
			Lines: []string{
				fmt.Sprintf("You finished %s.", plural(stats.TotalBooks, "book")),
				fmt.Sprintf("That's %s turned.", plural(stats.TotalPages, "page")),
			},
		})

		slides = append(slides, Slide{
			Title: "Your pace",
			Lines: []string{
				fmt.Sprintf("The average book ran %d pages.", stats.AvgPages),
				fmt.Sprintf("Your average rating: %s stars.", stats.FormattedAvgRating()),
			},
		})

		slides = append(slides, Slide{
			Title: "The heavyweight",
			Lines: []string{
				fmt.Sprintf("%q", stats.ThickestBook.Title),
				fmt.Sprintf("by %s — %s.", stats.ThickestBook.Author, plural(stats.ThickestBook.Pages, "page")),
			},
		})

		if stats.HasPeakMonth() {
			slides = append(slides, Slide{
				Title: "Peak month",
				Lines: []string{
					fmt.Sprintf("%s was your biggest reading month.", stats.PeakMonth),
				},
			})
		}

		if len(stats.TopBooks) > 0 {
			lines := make([]string, 0, len(stats.TopBooks))
			for i, b := range stats.TopBooks {
				lines = append(lines, fmt.Sprintf("%d. %s (%s★)", i+1, b.Title, trimRating(b.Rating)))
			}
			slides = append(slides, Slide{Title: "Your top books", Lines: lines})
		}

		if len(stats.TopAuthors) > 0 {
			lines := make([]string, 0, len(stats.TopAuthors))
			for i, a := range stats.TopAuthors {
				lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, a.Name, plural(a.Count, "book")))
			}
			slides = append(slides, Slide{Title: "Your top authors", Lines: lines})
		}
	}

	slides = append(slides, Slide{
		Title: "Meanwhile, on the backlog...",
		Lines: []string{
			fmt.Sprintf("You added %s to the to-read pile this year.", plural(res.Backlog, "book")),
		},
	})

	p := res.Persona
	personaLines := []string{
		fmt.Sprintf("%s  %s", p.Icon, p.Name),
		"",
	}
	personaLines = append(personaLines, wrap(p.Description, 52)...)
	personaLines = append(personaLines, "", strings.Join(p.Tags, "  "), "")
	personaLines = append(personaLines, wrap(p.Roast, 52)...)

	slides = append(slides, Slide{
		Title:  "You are...",
		Accent: lipgloss.Color(p.PrimaryColor),
		Lines:  personaLines,
	})

	return slides
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func trimRating(r float64) string {
	s := fmt.Sprintf("%.2f", r)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// wrap breaks text into lines at most width runes wide, on word boundaries.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// RenderPlain renders the deck as unstyled text, one section per slide. Used
// for --plain output and file export, the text stand-in at the image-export
// boundary.
func RenderPlain(slides []Slide) string {
	var sb strings.Builder
	for i, s := range slides {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(s.Title)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("─", len([]rune(s.Title))))
		sb.WriteString("\n")
		for _, line := range s.Lines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
