package repl

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	l "nlsql/internal/logger"
	"nlsql/internal/pipeline"
)

func Repl() {
	logger := l.New("repl", "logs", l.ERROR)

	logger.Info("Starting REPL session")
	fmt.Println("Welcome to nlsql")
	fmt.Println("Describe a query in plain English, or type 'exit' to quit")

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		input := scanner.Text()

		if strings.ToLower(input) == "exit" {
			logger.Info("User requested exit")
			break
		}

		if input == "" {
			continue
		}

		logger.Debug("Translating: %s", input)

		result, err := pipeline.Run(input)
		if err != nil {
			logger.Error("Translation failed: %v", err)
			fmt.Printf("Error: %v\n", err)
			continue
		}

		logger.Debug("Translation succeeded")
		fmt.Println(result.SQL)
		fmt.Println("-- " + result.Explanation)
	}

	if err := scanner.Err(); err != nil {
		logger.Error("Error reading input: %v", err)
		fmt.Printf("Error reading input: %v\n", err)
	}

	logger.Info("REPL session ended")
}
