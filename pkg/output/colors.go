package output

import (
	"fmt"

	"github.com/fatih/color"
)

// WithLinkFormat creates string with hyperlink-looking color
func WithLinkFormat(link string, a ...interface{}) string {
	return color.HiCyanString(link, a...)
}

// WithHighLightFormat creates string with highlight-looking color
func WithHighLightFormat(text string, a ...interface{}) string {
	return color.CyanString(text, a...)
}

func WithErrorFormat(text string, a ...interface{}) string {
	return color.RedString(text, a...)
}

func WithWarningFormat(text string, a ...interface{}) string {
	return color.YellowString(text, a...)
}

func WithSuccessFormat(text string, a ...interface{}) string {
	return color.GreenString(text, a...)
}

// WithGrayFormat creates string with gray-looking color
func WithGrayFormat(text string, a ...interface{}) string {
	return color.HiBlackString(text, a...)
}

func WithBold(text string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(text, a...)
}

func WithUnderline(text string, a ...interface{}) string {
	return color.New(color.Underline).Sprintf(text, a...)
}

// WithHyperlink wraps text with the ansi format to be clickable on terminals.
// When colors are disabled the plain name (or url) is returned unchanged.
func WithHyperlink(url string, name string) string {
	if name == "" {
		name = url
	}
	if color.NoColor {
		return name
	}
	return WithLinkFormat(fmt.Sprintf("\x1b]8;;%s\a%s\x1b]8;;\a", url, name))
}

// WithBackticks wraps text with the backtick (`) character.
func WithBackticks(text string) string {
	return "`" + text + "`"
}
