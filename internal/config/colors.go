package config

import (
	"github.com/derailed/tcell/v2"
)

// Color represents a color in the application
type Color string

const (
	// DefaultColor represents a default color
	DefaultColor Color = "default"

	// TransparentColor represents the terminal bg color
	TransparentColor Color = "-"
)

// NewColor returns a new color
func NewColor(c string) Color {
	return Color(c)
}

// String returns color as string
func (c Color) String() string {
	return string(c)
}

// Color converts the config value to a tcell color. Accepts W3C names and
// #rrggbb hex values; unknown values fall back to the terminal default.
func (c Color) Color() tcell.Color {
	switch c {
	case "", DefaultColor, TransparentColor:
		return tcell.ColorDefault
	}
	return tcell.GetColor(string(c)).TrueColor()
}

// ColorsConfig holds the theme palette applied to the dashboard
type ColorsConfig struct {
	Body struct {
		FgColor Color `yaml:"fgColor"`
		BgColor Color `yaml:"bgColor"`
	} `yaml:"body"`
	Frame struct {
		Border struct {
			FgColor    Color `yaml:"fgColor"`
			FocusColor Color `yaml:"focusColor"`
		} `yaml:"border"`
		Title struct {
			FgColor Color `yaml:"fgColor"`
		} `yaml:"title"`
	} `yaml:"frame"`
	UI struct {
		InfoColor       Color `yaml:"infoColor"`
		WarningColor    Color `yaml:"warningColor"`
		ErrorColor      Color `yaml:"errorColor"`
		SuccessColor    Color `yaml:"successColor"`
		LinkColor       Color `yaml:"linkColor"`
		VerifiedColor   Color `yaml:"verifiedColor"`
		UnverifiedColor Color `yaml:"unverifiedColor"`
	} `yaml:"ui"`
}

// DefaultColorsConfig returns the built-in palette
func DefaultColorsConfig() *ColorsConfig {
	cc := &ColorsConfig{}
	cc.Body.FgColor = "white"
	cc.Body.BgColor = "default"
	cc.Frame.Border.FgColor = "gray"
	cc.Frame.Border.FocusColor = "dodgerblue"
	cc.Frame.Title.FgColor = "aqua"
	cc.UI.InfoColor = "skyblue"
	cc.UI.WarningColor = "orange"
	cc.UI.ErrorColor = "orangered"
	cc.UI.SuccessColor = "palegreen"
	cc.UI.LinkColor = "dodgerblue"
	cc.UI.VerifiedColor = "palegreen"
	cc.UI.UnverifiedColor = "orange"
	return cc
}
