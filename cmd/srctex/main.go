package main

import (
	"fmt"
	"os"

	"github.com/gubarz/srctex/internal/config"
	"github.com/gubarz/srctex/internal/convert"
	"github.com/gubarz/srctex/internal/output"
	"github.com/gubarz/srctex/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

var directivesCmd = &cobra.Command{
	Use:   "directives",
	Short: "List the recognized documentation directives",
	Long: `Prints the documentation directives recognized inside /** ... */ and
/// comments, together with the LaTeX command each one emits.`,
	RunE: runDirectives,
}

var rootCmd = &cobra.Command{
	Use:   "srctex file1.c [file2.h ...]",
	Short: "Convert C sources to LaTeX documentation",
	Long: `Converts C source files into LaTeX with syntax-highlighted code
listings and documentation extracted from special comments.

Features:
  - Code listings with original line numbers
  - Documentation from /** ... */ and /// comments
  - Doxygen-style directives (@file, @brief, @author, @func, @param, @return)
  - Inline code with backticks and code blocks with 4-space indent
  - @allfunc directive to output accumulated code from @func/@endfunc blocks

The generated LaTeX requires:
  \usepackage{listings}
  \usepackage{xcolor}`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(directivesCmd)

	rootCmd.PersistentFlags().StringP("output", "o", "", "Write output to file instead of stdout")
	rootCmd.PersistentFlags().Bool("copy", false, "Copy output to the clipboard")
	rootCmd.PersistentFlags().BoolP("preview", "p", false, "Preview the output interactively")
	rootCmd.PersistentFlags().String("style", "", "lstlisting style name (default C99)")
	rootCmd.PersistentFlags().Bool("no-preamble", false, "Suppress the LaTeX setup comment")

	viper.BindPFlag("style", rootCmd.PersistentFlags().Lookup("style"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

func newConverter() *convert.Converter {
	c := convert.New()
	if style := config.GetStyle(); style != "" {
		c.Style = style
	}
	if margin := config.GetCommentMargin(); margin != "" {
		c.CommentMargin = margin
	}
	if margin := config.GetAllFuncMargin(); margin != "" {
		c.AllFuncMargin = margin
	}
	return c
}

func preamble() string {
	return `% Generated by srctex
% Requires: \usepackage{listings} and \usepackage{xcolor}
% Configure with: \lstset{basicstyle=\ttfamily\small, frame=none}
`
}

func runConvert(cmd *cobra.Command, args []string) error {
	conv := newConverter()

	if preview, _ := cmd.Flags().GetBool("preview"); preview {
		return runPreview(conv, args)
	}

	body, err := conv.ConvertFiles(args)
	if err != nil {
		return err
	}

	text := body
	if noPreamble, _ := cmd.Flags().GetBool("no-preamble"); !noPreamble && config.GetPreamble() {
		text = preamble() + "\n" + body
	}

	// Pick the output sink
	mode := output.Mode(config.GetOutput())
	path := ""
	if file, _ := cmd.Flags().GetString("output"); file != "" {
		mode = output.ModeFile
		path = file
	} else if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
		mode = output.ModeCopy
	}

	return output.NewSink(mode, path).Write(text)
}

func runPreview(conv *convert.Converter, paths []string) error {
	var files []ui.File
	for _, path := range paths {
		latex, err := conv.ConvertFile(path)
		if err != nil {
			return err
		}
		files = append(files, ui.File{Path: path, LaTeX: latex})
	}
	return ui.Run(files)
}

func runDirectives(cmd *cobra.Command, args []string) error {
	for _, d := range convert.Directives() {
		command := d.Command
		if command == "" {
			command = "(accumulated @func/@endfunc listing)"
		}
		fmt.Printf("  %-16s %s\n", d.Name, command)
	}
	return nil
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
