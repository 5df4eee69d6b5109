// Package parse handles the OCR text parsing command
package parse

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"fjacquet/subscan/cmd/root"
	"fjacquet/subscan/internal/config"
	"fjacquet/subscan/internal/extractor"
)

var inputFile string

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract subscription data from OCR text",
	Long: `Parse noisy OCR text (a receipt or billing screenshot) into a sparse
subscription record. Reads from --input or stdin and prints the detected
fields as YAML. Undetected fields are omitted; the result is a best-effort
pre-fill, not a validated record.`,
	RunE: parseFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Text file to parse (default: stdin)")
}

func parseFunc(cmd *cobra.Command, args []string) error {
	text, err := readInput()
	if err != nil {
		return err
	}
	if len(text) == 0 {
		return fmt.Errorf("no input text to parse")
	}

	ext := extractor.New(root.SharedFlags.Locale)

	if root.Cfg.AI.Enabled {
		apiKey := root.Cfg.AI.APIKey
		if apiKey == "" {
			apiKey = config.GetGeminiAPIKey()
		}
		client, err := extractor.NewGeminiClient(cmd.Context(), apiKey, root.Cfg.AI.Model)
		if err != nil {
			root.Log.WithError(err).Warn("AI category fallback unavailable")
		} else {
			defer func() {
				if err := client.Close(); err != nil {
					root.Log.WithError(err).Debug("Failed to close Gemini client")
				}
			}()
			ext = ext.WithAIClient(client)
		}
	}

	result := ext.Parse(cmd.Context(), string(text))
	if result.IsEmpty() {
		root.Log.Warn("Nothing could be extracted from the input text")
	}

	out, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal parse result: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

func readInput() ([]byte, error) {
	if inputFile == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("could not read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return nil, fmt.Errorf("could not read input file %s: %w", inputFile, err)
	}
	return data, nil
}
