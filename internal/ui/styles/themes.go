package styles

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

func init() {
	styles.Register(RainbowSyntax)
	styles.Register(RainbowLightSyntax)
}

// RainbowSyntax is a dark chroma theme for YAML config output
var RainbowSyntax = chroma.MustNewStyle("rainbow", chroma.StyleEntries{
	chroma.Background: "bg:#1a1a2e",
	chroma.Text:       "#eaeaea",
	chroma.Error:      "#ff5555 bold",

	// Keys
	chroma.NameTag:       "bold #8be9fd",
	chroma.NameAttribute: "#8be9fd",

	chroma.Keyword:         "#ff79c6",
	chroma.KeywordConstant: "#bd93f9", // true, false, null

	chroma.LiteralString:       "#f1fa8c",
	chroma.LiteralStringDouble: "#f1fa8c",
	chroma.LiteralStringSingle: "#f1fa8c",

	chroma.LiteralNumber:        "#bd93f9",
	chroma.LiteralNumberFloat:   "#bd93f9",
	chroma.LiteralNumberInteger: "#bd93f9",

	chroma.Comment:     "italic #6272a4",
	chroma.Punctuation: "#f8f8f2",
})

// RainbowLightSyntax is the light variant
var RainbowLightSyntax = chroma.MustNewStyle("rainbow-light", chroma.StyleEntries{
	chroma.Background: "bg:#fafafa",
	chroma.Text:       "#383a42",

	chroma.NameTag:       "bold #0184bc",
	chroma.NameAttribute: "#0184bc",

	chroma.Keyword:         "#a626a4",
	chroma.KeywordConstant: "#986801",

	chroma.LiteralString:       "#50a14f",
	chroma.LiteralStringDouble: "#50a14f",
	chroma.LiteralStringSingle: "#50a14f",

	chroma.LiteralNumber:        "#986801",
	chroma.LiteralNumberFloat:   "#986801",
	chroma.LiteralNumberInteger: "#986801",

	chroma.Comment:     "italic #a0a1a7",
	chroma.Punctuation: "#383a42",
})
