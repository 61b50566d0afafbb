package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/stringhandler/utils/stringx"
)

// addTextCommands registers the commands that transform or measure one text
func (a *app) addTextCommands(root *cobra.Command) {
	var strict bool
	asciiCmd := &cobra.Command{
		Use:   "ascii [text]",
		Short: "Transliteriert Text nach ASCII",
		Long: `Transliteriert Text nach ASCII mit der Tabelle der Sprache (--lang).

Ohne Tabelle für die Sprache wird der Text unverändert ausgegeben,
mit --strict schlägt der Aufruf fehl.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			value, err := input(cmd, args)
			if err != nil {
				return err
			}
			result, err := stringx.TransliterateWith(a.table, value, a.language())
			if err != nil {
				if strict {
					return err
				}
				a.logger.LogError(err)
			}
			return printResult(cmd, result)
		}),
	}
	asciiCmd.Flags().BoolVar(&strict, "strict", false, "Fehler bei unbekannter Sprache")

	isASCIICmd := &cobra.Command{
		Use:   "is-ascii [text]",
		Short: "Prüft, ob Text nur aus 7-Bit-ASCII besteht",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			value, err := input(cmd, args)
			if err != nil {
				return err
			}
			return printResult(cmd, stringx.IsAscii(value))
		}),
	}

	var encoding string
	lengthCmd := &cobra.Command{
		Use:   "length [text]",
		Short: "Zählt die Codepoints eines Textes",
		Long: `Zählt die Codepoints eines Textes.

Mit --encoding wird die Eingabe (sinnvollerweise über stdin) aus dem
angegebenen IANA-Zeichensatz dekodiert, z.B. ISO-8859-1 oder Shift_JIS.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			value, err := input(cmd, args)
			if err != nil {
				return err
			}
			if encoding == "" {
				return printResult(cmd, stringx.Length(value))
			}
			n, err := stringx.LengthIn([]byte(value), encoding)
			if err != nil {
				return err
			}
			return printResult(cmd, n)
		}),
	}
	lengthCmd.Flags().StringVar(&encoding, "encoding", "", "Zeichensatz der Eingabe")

	validateCmd := &cobra.Command{
		Use:   "validate [text]",
		Short: "Prüft, ob die Eingabe gültiges UTF-8 ist",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			value, err := input(cmd, args)
			if err != nil {
				return err
			}
			if err := stringx.Validate(value); err != nil {
				return err
			}
			return printResult(cmd, "ok")
		}),
	}

	lowerCmd := &cobra.Command{
		Use:   "lower [text]",
		Short: "Wandelt Text in Kleinbuchstaben",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			return a.convertCase(cmd, args, stringx.Lower, stringx.LowerIn)
		}),
	}

	upperCmd := &cobra.Command{
		Use:   "upper [text]",
		Short: "Wandelt Text in Großbuchstaben",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			return a.convertCase(cmd, args, stringx.Upper, stringx.UpperIn)
		}),
	}

	ucfirstCmd := &cobra.Command{
		Use:   "ucfirst [text]",
		Short: "Schreibt den ersten Codepoint groß",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			value, err := input(cmd, args)
			if err != nil {
				return err
			}
			return printResult(cmd, stringx.Ucfirst(value))
		}),
	}

	var start, length int
	substrCmd := &cobra.Command{
		Use:   "substr [text]",
		Short: "Gibt einen Teilstring aus (Positionen in Codepoints)",
		Long: `Gibt einen Teilstring aus. Positionen zählen Codepoints.

Ein negativer --start zählt vom Ende, eine negative --length lässt
entsprechend viele Codepoints am Ende weg. Ohne --length bis zum Ende.`,
		Example: `  strhandler substr --start 20 "Orange, ÄãÈëÍïÕöÛü, Juice"
  strhandler substr --start -5 --length 2 "Orange, ÄãÈëÍïÕöÛü, Juice"`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			value, err := input(cmd, args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("length") {
				return printResult(cmd, stringx.Substr(value, start, length))
			}
			return printResult(cmd, stringx.Substr(value, start))
		}),
	}
	substrCmd.Flags().IntVar(&start, "start", 0, "Startposition")
	substrCmd.Flags().IntVar(&length, "length", 0, "Länge")

	root.AddCommand(asciiCmd, isASCIICmd, lengthCmd, validateCmd, lowerCmd, upperCmd, ucfirstCmd, substrCmd)
}

func (a *app) convertCase(cmd *cobra.Command, args []string,
	plain func(string) string, localized func(string, string) (string, error)) error {
	value, err := input(cmd, args)
	if err != nil {
		return err
	}
	if a.lang == "" {
		return printResult(cmd, plain(value))
	}
	result, err := localized(value, a.lang)
	if err != nil {
		return err
	}
	return printResult(cmd, result)
}

// addAffixCommands registers the prefix, suffix and wrapping commands
func (a *app) addAffixCommands(root *cobra.Command) {
	finishCmd := &cobra.Command{
		Use:   "finish <text> <suffix>",
		Short: "Beendet Text mit genau einem Suffix",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, stringx.Finish(args[0], args[1]))
		}),
	}

	startCmd := &cobra.Command{
		Use:   "start <text> <prefix>",
		Short: "Beginnt Text mit genau einem Präfix",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, stringx.Start(args[0], args[1]))
		}),
	}

	var force bool
	wrapCmd := &cobra.Command{
		Use:   "wrap <text> <wrapper>",
		Short: "Umschließt Text, sofern nicht schon umschlossen",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, stringx.Wrap(args[0], args[1], force))
		}),
	}
	wrapCmd.Flags().BoolVar(&force, "force", false, "Immer umschließen")

	var quoteForce, double bool
	quoteCmd := &cobra.Command{
		Use:   "quote [text]",
		Short: "Setzt Text in einfache (oder mit --double doppelte) Anführungszeichen",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			value, err := input(cmd, args)
			if err != nil {
				return err
			}
			if double {
				return printResult(cmd, stringx.Quoted2(value, quoteForce))
			}
			return printResult(cmd, stringx.Quoted(value, quoteForce))
		}),
	}
	quoteCmd.Flags().BoolVar(&quoteForce, "force", false, "Immer quoten")
	quoteCmd.Flags().BoolVar(&double, "double", false, "Doppelte Anführungszeichen")

	startsWithCmd := &cobra.Command{
		Use:   "starts-with <text> <needle>...",
		Short: "Prüft, ob Text mit einem der Präfixe beginnt (leeres Präfix passt nie)",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, stringx.StartsWith(args[0], args[1:]...))
		}),
	}

	endsWithCmd := &cobra.Command{
		Use:   "ends-with <text> <needle>...",
		Short: "Prüft, ob Text mit einem der Suffixe endet (leeres Suffix passt immer)",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, stringx.EndsWith(args[0], args[1:]...))
		}),
	}

	root.AddCommand(finishCmd, startCmd, wrapCmd, quoteCmd, startsWithCmd, endsWithCmd)
}

// addMiscCommands registers join, replacement, random and membership
func (a *app) addMiscCommands(root *cobra.Command) {
	joinCmd := &cobra.Command{
		Use:   "join <glue> <piece>...",
		Short: "Verbindet nicht-leere Teile mit einem Trenner",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, stringx.Join(args[0], args[1:]...))
		}),
	}

	replaceFirstCmd := &cobra.Command{
		Use:   "replace-first <search> <replace> <subject>",
		Short: "Ersetzt das erste Vorkommen",
		Args:  cobra.ExactArgs(3),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, stringx.ReplaceFirst(args[0], args[1], args[2]))
		}),
	}

	replaceLastCmd := &cobra.Command{
		Use:   "replace-last <search> <replace> <subject>",
		Short: "Ersetzt das letzte Vorkommen",
		Args:  cobra.ExactArgs(3),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, stringx.ReplaceLast(args[0], args[1], args[2]))
		}),
	}

	var length int
	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "Erzeugt einen sicheren alphanumerischen Zufallsstring",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			n := a.settings.RandomLength
			if cmd.Flags().Changed("length") {
				n = length
			}
			token, err := stringx.Random(n)
			if err != nil {
				return err
			}
			return printResult(cmd, token)
		}),
	}
	randomCmd.Flags().IntVarP(&length, "length", "n", stringx.DefaultRandomLength, "Länge, default aus random.length")

	var ignoreCase bool
	inCmd := &cobra.Command{
		Use:   "in <target> <candidate>...",
		Short: "Prüft, ob target einem der Kandidaten entspricht",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, stringx.In(!ignoreCase, args[0], args[1:]...))
		}),
	}
	inCmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Groß-/Kleinschreibung ignorieren")

	root.AddCommand(joinCmd, replaceFirstCmd, replaceLastCmd, randomCmd, inCmd)
}
