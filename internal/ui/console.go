package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/Amr-9/AddrScope/pkg/classifier"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorPurple = "\033[35m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

// NewWriter returns stdout wrapped for ANSI output. Escape sequences are
// stripped when color is disabled or stdout is not a terminal.
func NewWriter(color bool) io.Writer {
	return newWriter(os.Stdout, color && isatty.IsTerminal(os.Stdout.Fd()))
}

func newWriter(w io.Writer, color bool) io.Writer {
	if !color {
		return colorable.NewNonColorable(w)
	}
	if f, ok := w.(*os.File); ok {
		return colorable.NewColorable(f)
	}
	return w
}

// ClearScreen clears the terminal
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// PrintWelcomeBanner shows the welcome screen
func PrintWelcomeBanner(w io.Writer, version string) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s%s", ColorCyan, ColorBold)
	fmt.Fprintln(w, "  ╔══════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "  ║   ₿  A D D R S C O P E                           ║")
	fmt.Fprintln(w, "  ╠══════════════════════════════════════════════════╣")
	fmt.Fprintf(w, "  ║%s   Bitcoin Address Classifier %s• v%-16s%s   ║\n", ColorYellow, ColorDim, version, ColorCyan+ColorBold)
	fmt.Fprintln(w, "  ╚══════════════════════════════════════════════════╝")
	fmt.Fprint(w, ColorReset)
	fmt.Fprintln(w)
}

// FormatCategories renders categories as colored tags, or a dim "none".
func FormatCategories(cat classifier.Category) string {
	names := cat.Names()
	if len(names) == 0 {
		return ColorDim + "none" + ColorReset
	}
	tags := make([]string, len(names))
	for i, name := range names {
		tags[i] = ColorGreen + ColorBold + name + ColorReset
	}
	return strings.Join(tags, ColorDim+" · "+ColorReset)
}

// PrintReport shows the classification of one address.
func PrintReport(w io.Writer, r classifier.Report) {
	if !r.Known {
		fmt.Fprintf(w, "    %s✗%s %s%s%s\n", ColorRed, ColorReset, ColorBold, r.Address, ColorReset)
		fmt.Fprintf(w, "      %sdoes not resemble any known address shape%s\n", ColorDim, ColorReset)
		return
	}

	fmt.Fprintf(w, "    %s✓%s %s%s%s\n", ColorGreen, ColorReset, ColorBold, r.Address, ColorReset)

	types := make([]string, len(r.Types))
	for i, typ := range r.Types {
		types[i] = typ.Description()
	}
	fmt.Fprintf(w, "      %sType%s       %s\n", ColorCyan, ColorReset, strings.Join(types, ", "))
	fmt.Fprintf(w, "      %sNetwork%s    %s\n", ColorCyan, ColorReset, r.Network)
	fmt.Fprintf(w, "      %sCategory%s   %s\n", ColorCyan, ColorReset, FormatCategories(r.Categories))

	if r.OutsideAlphabet != "" {
		fmt.Fprintf(w, "      %s⚠ Characters outside the encoding alphabet: %q%s\n",
			ColorYellow, r.OutsideAlphabet, ColorReset)
	}
}
