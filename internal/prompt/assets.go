package prompt

import (
	_ "embed"
)

//go:embed assets/instructions.md
var instructionsDoc string

//go:embed assets/advisors.yaml
var advisorsYAML []byte

//go:embed assets/output_schema.json
var outputSchemaDoc string

// Assets are the static documents concatenated into the system prompt.
// The assembler treats them as opaque text.
type Assets struct {
	Instructions   string
	AdvisorCatalog string
	OutputSchema   string
}

// DefaultAssets returns the documents compiled into the binary.
func DefaultAssets() Assets {
	return Assets{
		Instructions:   instructionsDoc,
		AdvisorCatalog: DefaultCatalog().Render(),
		OutputSchema:   outputSchemaDoc,
	}
}
