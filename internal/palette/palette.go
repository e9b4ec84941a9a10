// Package palette holds the color tables behind the built-in themes.
//
// Colors are given by name ("yellow", "bright-cyan", "dark-grey") or as
// "#rrggbb" and are parsed by the renderer's style configuration.
package palette

// Palette names the colors used by one theme.
type Palette struct {
	// Headings is indexed by heading level - 1. Levels past the end reuse the
	// last entry.
	Headings  []string
	Paragraph string
	List      string
	Quote     string
	CodeFg    string
	CodeBg    string
	Rule      string
	// CodeTheme is the chroma style used for fenced code blocks.
	CodeTheme string
}

var (
	PaletteDefault = Palette{
		Headings:  []string{"yellow"},
		Paragraph: "white",
		List:      "white",
		Quote:     "white",
		CodeBg:    "blue",
		Rule:      "dark-grey",
		CodeTheme: "monokai",
	}
	PaletteDracula = Palette{
		Headings:  []string{"#ff79c6", "#bd93f9", "#8be9fd", "#50fa7b"},
		Paragraph: "#f8f8f2",
		List:      "#ffb86c",
		Quote:     "#6272a4",
		CodeFg:    "#f1fa8c",
		CodeBg:    "#44475a",
		Rule:      "#6272a4",
		CodeTheme: "dracula",
	}
	PaletteNord = Palette{
		Headings:  []string{"#88c0d0", "#81a1c1", "#5e81ac"},
		Paragraph: "#d8dee9",
		List:      "#a3be8c",
		Quote:     "#616e88",
		CodeFg:    "#ebcb8b",
		CodeBg:    "#3b4252",
		Rule:      "#4c566a",
		CodeTheme: "nord",
	}
	PaletteSolarizedDark = Palette{
		Headings:  []string{"#b58900", "#cb4b16", "#d33682", "#6c71c4"},
		Paragraph: "#839496",
		List:      "#2aa198",
		Quote:     "#586e75",
		CodeFg:    "#93a1a1",
		CodeBg:    "#073642",
		Rule:      "#586e75",
		CodeTheme: "solarized-dark",
	}
	PaletteGithubLight = Palette{
		Headings:  []string{"#0550ae", "#0969da"},
		Paragraph: "#24292f",
		List:      "#953800",
		Quote:     "#57606a",
		CodeFg:    "#24292f",
		CodeBg:    "#eaeef2",
		Rule:      "#d0d7de",
		CodeTheme: "github",
	}
	// PaletteMono carries no colors; themes built from it rely on attributes.
	PaletteMono = Palette{
		Headings:  []string{""},
		CodeTheme: "bw",
	}
)
