package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/msto63/stringhandler/core/config"
	sherror "github.com/msto63/stringhandler/core/error"
	"github.com/msto63/stringhandler/core/errors"
	"github.com/msto63/stringhandler/core/log"
	"github.com/msto63/stringhandler/utils/translit"
)

// app holds the global flags and what setup derives from them
type app struct {
	cfgFile   string
	verbose   bool
	lang      string
	logFormat string

	settings *config.Settings
	logger   *log.Logger
	table    *translit.Table
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{logger: log.Nop()}

	rootCmd := &cobra.Command{
		Use:   "strhandler",
		Short: "UTF-8 String-Werkzeuge",
		Long: `strhandler stellt die stringhandler-Funktionen auf der Kommandozeile bereit.

Längen und Positionen zählen Unicode-Codepoints, nicht Bytes.
Ohne Text-Argument (oder mit "-") wird der Text von stdin gelesen.

Konfiguration:
  --config        TOML- oder YAML-Datei
  STRHANDLER_*    Umgebungsvariablen, z.B. STRHANDLER_TRANSLIT_LANGUAGE=de
  .env            wird vor der Konfiguration geladen, falls vorhanden`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "Config-Datei (TOML oder YAML)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Verbose Output")
	pf.StringVar(&a.lang, "lang", "", "Sprache (BCP 47), default aus translit.language")
	pf.StringVar(&a.logFormat, "log-format", "", "Log-Format: json, text, console, logfmt")

	a.addTextCommands(rootCmd)
	a.addAffixCommands(rootCmd)
	a.addMiscCommands(rootCmd)
	rootCmd.AddCommand(newInfoCmd(), newVersionCmd())

	return rootCmd
}

// Execute runs the CLI and prints a failure to stderr
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitStatus maps err to a process exit status
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	return sherror.GetCode(err).ExitStatus()
}

// setup loads .env, resolves settings and builds logger and table
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return errors.NewErrorBuilder(errors.ModuleCLI).
			Operation("setup").
			Code(sherror.CodeConfigError).
			Message("failed to read .env").
			Cause(err).
			Build()
	}

	settings, err := config.LoadSettings(a.cfgFile)
	if err != nil {
		return err
	}

	if a.logFormat != "" {
		format, err := log.ParseFormat(a.logFormat)
		if err != nil {
			return errors.InvalidArgument(errors.ModuleCLI, "setup", "log-format", a.logFormat,
				"json, text, console or logfmt")
		}
		settings.LogFormat = format
	}
	if a.verbose {
		settings.LogLevel = log.LevelDebug
	}
	a.settings = settings

	a.logger = log.NewWithConfig(log.Config{
		Level:  settings.LogLevel,
		Format: settings.LogFormat,
		Output: cmd.ErrOrStderr(),
		Name:   "strhandler",
	}).WithCorrelationID(uuid.NewString())

	a.table = translit.New(
		translit.WithFiles(settings.TablePaths...),
		translit.WithLogger(a.logger.WithName("translit")),
	)

	a.logger.Debug("settings resolved", log.Fields{
		"command":  cmd.CommandPath(),
		"config":   a.cfgFile,
		"language": a.language(),
		"tables":   len(settings.TablePaths),
	})

	return nil
}

// language returns --lang, falling back to the configured language
func (a *app) language() string {
	if a.lang != "" {
		return a.lang
	}
	if a.settings != nil {
		return a.settings.Language
	}
	return "en"
}

// run wraps a command body so failures reach the debug log
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err != nil {
			a.logger.Debug("command failed", log.Fields{
				"command":    cmd.CommandPath(),
				"error_code": sherror.GetCode(err).String(),
			})
		}
		return err
	}
}

// input returns args[0], or stdin without its final line break when no
// argument or "-" is given
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	data, err := readInput(cmd)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func readInput(cmd *cobra.Command) ([]byte, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, errors.OperationFailed(errors.ModuleCLI, "input", sherror.CodeInvalidInput, err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return []byte(strings.TrimSuffix(s, "\r")), nil
}

func printResult(cmd *cobra.Command, v interface{}) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), v)
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("Fehler: "+err.Error()))
}
