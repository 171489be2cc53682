package llm

import _ "embed"

//go:embed prompts/order_parsing.txt
var orderParsingPrompt string
