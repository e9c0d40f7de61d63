package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	oierrors "github.com/siyuan-infoblox/order-includes/pkg/errors"
	"github.com/siyuan-infoblox/order-includes/pkg/sorter"
	"github.com/siyuan-infoblox/order-includes/pkg/utils"
	"github.com/siyuan-infoblox/order-includes/pkg/version"
)

const (
	UseDescription   = "order-includes [flags] PATH"
	ShortDescription = "Sorts grouped includes in Go files"
	LongDescription  = `order-includes sorts includes in go files.

Includes are divided into three groups: stdlib, platform and third parties.
Within the groups, they are sorted lexicographically. Blank lines inside the
import block are removed and a single blank line separates adjacent groups.

PATH can be either a single Go file or a directory. When a directory is
specified, all Go source files in the directory and subdirectories are
processed recursively and rewritten in place.

Example:
  order-includes ../connection.go
  order-includes ../memsql/`
)

var (
	verbose     bool
	showVersion bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:               UseDescription,
	Short:             ShortDescription,
	Long:              LongDescription,
	Args:              validateArgs,
	PersistentPreRunE: setupLogger,
	PersistentPostRun: syncLogger,
	RunE:              run,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need file arguments
	if showVersion {
		return nil
	}
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return oierrors.NewExitError(oierrors.ExitCodeUsage, err.Error()+"\n\n"+LongDescription)
	}
	return nil
}

func setupLogger(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func syncLogger(cmd *cobra.Command, args []string) {
	if logger != nil {
		_ = logger.Sync()
	}
}

func run(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Println(version.Get().String())
		return nil
	}

	results, err := processPath(args[0])
	if err != nil {
		return oierrors.NewExitError(oierrors.ExitCodeUnexpected,
			fmt.Sprintf("%s: %v", oierrors.ErrMsgUnexpected, err))
	}

	for _, result := range results {
		fmt.Println(result)
	}

	if len(results) == 0 {
		return oierrors.NewExitError(oierrors.ExitCodeNoGoFiles, oierrors.ErrMsgNoGoFiles)
	}
	return nil
}

// processPath formats a single Go file or every Go file under a
// directory, collecting one Result per file. A path that cannot be
// stat'ed is treated as a file candidate so that the unreadable-file
// status is reported per file rather than aborting the batch.
func processPath(path string) ([]sorter.Result, error) {
	var files []string

	isDir, err := utils.IsDirectory(path)
	if err != nil {
		isDir = false
	}

	if isDir {
		found, err := utils.FindGoFiles(path)
		if err != nil {
			return nil, err
		}
		files = found
		logger.Debug("walked directory", zap.String("path", path), zap.Int("files", len(files)))
	} else if utils.IsGoFile(path) {
		files = []string{path}
	}

	results := make([]sorter.Result, 0, len(files))
	for _, file := range files {
		s := sorter.New(sorter.Config{FilePath: file, Logger: logger})
		result, err := s.FormatFile()
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func Execute() error {
	return rootCmd.Execute()
}
