// Command orbits advances the orbital registry without a window and prints
// where every body ends up.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leterax/go-orrery/pkg/orbit"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(10).Align(lipgloss.Right)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func main() {
	ticks := flag.Int("ticks", 0, "Ticks to advance before printing")
	scale := flag.Float64("time-scale", 1, "Ticks advanced per step")
	seed := flag.Int64("seed", 0, "Seed for starting angles (0 starts every body at angle 0)")
	catalogPath := flag.String("catalog", "", "JSON body catalog (empty for the built-in solar system)")
	flag.Parse()

	catalog := orbit.DefaultCatalog()
	if *catalogPath != "" {
		var err error
		if catalog, err = orbit.LoadCatalog(*catalogPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}
	reg, err := orbit.NewRegistry(catalog, rng)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i := 0; i < *ticks; i++ {
		reg.Advance(float32(*scale))
	}
	report(os.Stdout, reg, *ticks)
}

// report writes one row per body: name, orbit radius, angle in degrees and
// world position
func report(w io.Writer, reg *orbit.Registry, ticks int) {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Bodies after %d ticks", ticks)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Name"))
	for _, h := range []string{"Orbit", "Angle", "X", "Y", "Z"} {
		b.WriteString(valueStyle.Render(h))
	}
	b.WriteString("\n")

	for _, body := range append([]*orbit.Body{reg.Star()}, reg.Bodies()...) {
		name := body.Name()
		if host := body.Host(); host != nil {
			name = " " + name
		}
		p := body.Position()
		b.WriteString(labelStyle.Render(name))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f", body.OrbitRadius())))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f°", body.Angle()*180/math.Pi)))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.2f", p.X())))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.2f", p.Y())))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.2f", p.Z())))
		if body.IsStar() {
			b.WriteString(dimStyle.Render("  (star)"))
		}
		b.WriteString("\n")
	}

	fmt.Fprint(w, b.String())
}
