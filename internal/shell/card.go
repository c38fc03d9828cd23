package shell

import (
	"fmt"
	"io"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/pokedex/internal/entities"
)

const (
	// StatBarMax is the value that fills a stat bar
	StatBarMax = 200.0
	// StatBarWidth is the number of cells in a stat bar
	StatBarWidth = 20
)

var titleCaser = cases.Title(language.English)

// DisplayName turns an API name such as "mr-mime" into "Mr Mime"
func DisplayName(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "-", " "))
}

// FormatHeight formats meters with one decimal
func FormatHeight(meters float64) string {
	return fmt.Sprintf("%.1fm", meters)
}

// FormatWeight switches to kilograms from 1000g up
func FormatWeight(grams float64) string {
	if grams >= 1000 {
		return fmt.Sprintf("%.1fkg", grams/1000)
	}
	return fmt.Sprintf("%gg", grams)
}

// StatBar draws value on a 0..StatBarMax scale, clamping out of range values
func StatBar(value float64) string {
	filled := int(math.Round(math.Max(0, math.Min(value, StatBarMax)) / StatBarMax * StatBarWidth))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", StatBarWidth-filled) + "]"
}

// RenderCard writes the text card for a record
func RenderCard(w io.Writer, record *entities.CreatureRecord) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s  #%d\n", DisplayName(record.Name()), strings.Join(record.Types(), " "), record.ID())
	fmt.Fprintf(&b, "height: %s\n", FormatHeight(record.HeightMeters()))
	fmt.Fprintf(&b, "weight: %s\n", FormatWeight(record.WeightGrams()))
	fmt.Fprintf(&b, "\n%s\n\n", record.Description())
	for _, stat := range entities.AllStats {
		fmt.Fprintf(&b, "%-16s %s %3.0f\n", stat.Label(), StatBar(record.Stat(stat)), record.Stat(stat))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderView writes whatever the view currently shows
func RenderView(w io.Writer, v View) error {
	switch v.State {
	case StateLoaded:
		return RenderCard(w, v.Record)
	case StateFailed:
		_, err := fmt.Fprintf(w, "Whoops! %v\n", v.Err)
		return err
	default:
		_, err := io.WriteString(w, "Searching for Pokémon...\n")
		return err
	}
}
