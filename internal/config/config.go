package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Style         string `mapstructure:"style"`
	CommentMargin string `mapstructure:"comment_code_margin"`
	AllFuncMargin string `mapstructure:"allfunc_code_margin"`
	Preamble      bool   `mapstructure:"preamble"`
	Output        string `mapstructure:"output"`
	ColorHeader   string `mapstructure:"color_header"`
	ColorListing  string `mapstructure:"color_listing"`
	ColorBorder   string `mapstructure:"color_border"`
	ColorDim      string `mapstructure:"color_dim"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("style", "C99")
	viper.SetDefault("comment_code_margin", "5ex") // indent for code inside comments
	viper.SetDefault("allfunc_code_margin", "0ex") // indent for the @allfunc listing
	viper.SetDefault("preamble", true)
	viper.SetDefault("output", "print")
	viper.SetDefault("color_header", "36")  // Cyan
	viper.SetDefault("color_listing", "32") // Green
	viper.SetDefault("color_border", "240")
	viper.SetDefault("color_dim", "241")

	viper.SetConfigName("srctex")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "srctex"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("SRCTEX")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetStyle returns the lstlisting style name
func GetStyle() string {
	return viper.GetString("style")
}

// GetCommentMargin returns the left margin for code blocks inside comments
func GetCommentMargin() string {
	return viper.GetString("comment_code_margin")
}

// GetAllFuncMargin returns the left margin for the accumulated @allfunc listing
func GetAllFuncMargin() string {
	return viper.GetString("allfunc_code_margin")
}

// GetPreamble returns whether the LaTeX preamble comment is printed
func GetPreamble() bool {
	return viper.GetBool("preamble")
}

// GetOutput returns the output mode
func GetOutput() string {
	return viper.GetString("output")
}

// GetColorHeader returns the ANSI color code for file headers in the preview
func GetColorHeader() string {
	return viper.GetString("color_header")
}

// GetColorListing returns the ANSI color code for listing lines in the preview
func GetColorListing() string {
	return viper.GetString("color_listing")
}

// GetColorBorder returns the preview border color
func GetColorBorder() string {
	return viper.GetString("color_border")
}

// GetColorDim returns the preview dim text color
func GetColorDim() string {
	return viper.GetString("color_dim")
}

// SetOutput sets output mode at runtime
func SetOutput(mode string) {
	viper.Set("output", mode)
	C.Output = mode
}

// SetStyle sets the listing style at runtime
func SetStyle(style string) {
	viper.Set("style", style)
	C.Style = style
}

// SetPreamble toggles the preamble at runtime
func SetPreamble(on bool) {
	viper.Set("preamble", on)
	C.Preamble = on
}
