package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjx20/benglish-gemini/relay"
)

var languagePair string

var convertCmd = &cobra.Command{
	Use:   "convert [text...]",
	Short: "Convert Benglish/Hinglish text once and print the result",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rl, err := newRelay()
		if err != nil {
			return err
		}
		out, err := rl.Convert(cmd.Context(), &relay.ConversionRequest{
			Text:         strings.Join(args, " "),
			LanguagePair: languagePair,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var grammarCmd = &cobra.Command{
	Use:   "grammar [text...]",
	Short: "Grammar-check text once and print the corrected version",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rl, err := newRelay()
		if err != nil {
			return err
		}
		out, err := rl.CheckGrammar(cmd.Context(), &relay.GrammarRequest{
			Text: strings.Join(args, " "),
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(&languagePair, "pair", "p", relay.DefaultPair,
		"one of benglish-bangla, hinglish-hindi, benglish-english, hinglish-english")
	rootCmd.AddCommand(convertCmd, grammarCmd)
}
