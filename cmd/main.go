package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"nlsql/internal/lexer"
	"nlsql/internal/pipeline"
)

// Exit status contract: grammar and lexing rejections are structured output
// and exit 0, like any successful run. Only invocation misuse (no sentence
// given) exits non-zero.
func main() {
	dumpTokens := flag.Bool("tokens", false, "print the token stream instead of translating")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: nlsql [-tokens] <sentence>")
		os.Exit(2)
	}

	text := strings.Join(flag.Args(), " ")
	encoder := json.NewEncoder(os.Stdout)

	if *dumpTokens {
		tokens, err := lexer.Tokenize(text)
		if err != nil {
			writeError(encoder, err)
			return
		}
		for _, tok := range tokens {
			fmt.Printf("%-20s %q\n", tok.Type, tok.Literal)
		}
		return
	}

	result, err := pipeline.Run(text)
	if err != nil {
		writeError(encoder, err)
		return
	}

	if err := encoder.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode result: %v\n", err)
		os.Exit(1)
	}
}

type errorOutput struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func writeError(encoder *json.Encoder, err error) {
	body := errorBody{Message: err.Error()}

	var pipelineErr *pipeline.Error
	var lexErr *lexer.Error
	if errors.As(err, &pipelineErr) {
		body.Kind = pipelineErr.Kind
	} else if errors.As(err, &lexErr) {
		body.Kind = lexErr.Kind
	}

	if encodeErr := encoder.Encode(errorOutput{Error: body}); encodeErr != nil {
		fmt.Fprintf(os.Stderr, "failed to encode error: %v\n", encodeErr)
		os.Exit(1)
	}
}
